package models

import "time"

// Transaction is an immutable ledger entry recording a tip or donation from
// one user to another for a given book. Recording a transaction moves no
// funds and performs no balance checks.
type Transaction struct {
	TransactionID int64 `json:"transaction_id"`

	// SenderID is the paying user, always taken from the bearer token.
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the user receiving the tip.
	ReceiverID int64 `json:"receiver_id"`

	// BookID is the listing the tip refers to.
	BookID int64 `json:"book_id"`

	// Amount is the claimed monetary amount. Must be positive.
	Amount float64 `json:"amount"`

	// Timestamp is the server-assigned creation time.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
