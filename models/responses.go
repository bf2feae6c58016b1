package models

// AuthResponse is returned by POST /register and POST /login.
type AuthResponse struct {
	// Message is a short human-readable outcome.
	Message string `json:"message"`

	// Token is the signed bearer token to be sent as
	// "Authorization: Bearer <token>".
	Token string `json:"token"`

	// User is the created account. Only set on registration.
	User *User `json:"user,omitempty"`
}

// BookCreatedResponse is returned by POST /books.
type BookCreatedResponse struct {
	Message string `json:"message"`
	Book    Book   `json:"book"`
}

// MessageSentResponse is returned by POST /messages.
type MessageSentResponse struct {
	Message     string  `json:"message"`
	SentMessage Message `json:"sentMessage"`
}

// TransactionCreatedResponse is returned by POST /transactions.
type TransactionCreatedResponse struct {
	Message     string      `json:"message"`
	Transaction Transaction `json:"transaction"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
