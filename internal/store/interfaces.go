package store

import (
	"context"

	"github.com/MKhiriev/pass-the-pages/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user (Password must already be hashed) and returns
	// the stored row. A taken e-mail yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// ListOtherUsers returns every account except userID.
	ListOtherUsers(ctx context.Context, userID int64) ([]models.UserSummary, error)
}

// BookRepository persists listings.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ListAvailableBooks(ctx context.Context) ([]models.Book, error)
}

// MessageRepository persists direct messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	// GetConversation returns the messages between the two users in both
	// directions, oldest first.
	GetConversation(ctx context.Context, conversation models.ConversationRequest) ([]models.Message, error)
}

// TransactionRepository persists ledger entries.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	// ListUserTransactions returns entries where userID is either party,
	// newest first.
	ListUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
