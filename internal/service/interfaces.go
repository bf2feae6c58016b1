package service

import (
	"context"

	"github.com/MKhiriev/pass-the-pages/models"
)

// AuthService hashes and verifies passwords and issues and verifies bearer
// tokens. It is the only component that sees plaintext passwords.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	ListOtherUsers(ctx context.Context, userID int64) ([]models.UserSummary, error)
}

type BookService interface {
	AddBook(ctx context.Context, book models.Book) (models.Book, error)
	ListAvailableBooks(ctx context.Context) ([]models.Book, error)
}

type MessageService interface {
	SendMessage(ctx context.Context, message models.Message) (models.Message, error)
	GetConversation(ctx context.Context, conversation models.ConversationRequest) ([]models.Message, error)
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	// ListUserTransactions returns the ledger of userID as seen by callerID.
	// Callers may only read their own ledger.
	ListUserTransactions(ctx context.Context, callerID, userID int64) ([]models.Transaction, error)
}

// AppInfoService describes the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetBuildInfo reports the version together with the build date and
	// commit. Unknown fields are "N/A".
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
