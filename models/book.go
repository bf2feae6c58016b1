package models

// Book is a textbook listing offered on the marketplace.
//
// Listings carry no owner reference: nothing ties a book to the user that
// created it.
type Book struct {
	// BookID is the server-assigned unique identifier of the listing.
	BookID int64 `json:"book_id"`

	Title       string `json:"title"`
	Author      string `json:"author"`
	Subject     string `json:"subject"`
	Condition   string `json:"condition"`
	Description string `json:"description"`

	// IsAvailable reports whether the listing is still offered. New listings
	// are available by default; only available books are returned by the
	// listing route.
	IsAvailable bool `json:"is_available"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
