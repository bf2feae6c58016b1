package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToUser converts the request into a not-yet-persisted [User] whose Password
// field still carries the plaintext password.
func (r RegisterRequest) ToUser() User {
	return User{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBookRequest is the body of POST /books.
type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Subject     string `json:"subject"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// ToBook converts the request into a not-yet-persisted available [Book].
func (r CreateBookRequest) ToBook() Book {
	return Book{
		Title:       r.Title,
		Author:      r.Author,
		Subject:     r.Subject,
		Condition:   r.Condition,
		Description: r.Description,
		IsAvailable: true,
	}
}

// SendMessageRequest is the body of POST /messages. The sender is never part
// of the request body.
type SendMessageRequest struct {
	ReceiverUserID int64  `json:"receiver_user_id"`
	Message        string `json:"message"`
}

// CreateTransactionRequest is the body of POST /transactions. The sender is
// never part of the request body.
type CreateTransactionRequest struct {
	ReceiverID int64   `json:"receiver_id"`
	BookID     int64   `json:"book_id"`
	Amount     float64 `json:"amount"`
}
