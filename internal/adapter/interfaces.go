// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/pass-the-pages/models"
)

// MarketplaceAdapter is a typed client for the marketplace REST API.
//
// The adapter keeps the bearer token obtained by Register or Login and
// attaches it to every protected request. Non-2xx responses are returned as
// errors wrapping one of the package sentinels (ErrBadRequest, ErrForbidden,
// ErrNotFound, ErrConflict, ErrInternalServerError).
type MarketplaceAdapter interface {
	// SetToken replaces the bearer token used for protected routes.
	SetToken(token string)

	// Token returns the current bearer token, or "" when none is held.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)

	// Profile returns the account of the token holder.
	Profile(ctx context.Context) (models.User, error)

	// ListBooks returns the public list of available books.
	ListBooks(ctx context.Context) ([]models.Book, error)

	// AddBook lists a new book for sale.
	AddBook(ctx context.Context, request models.CreateBookRequest) (models.Book, error)

	// SendMessage sends a direct message from the token holder.
	SendMessage(ctx context.Context, request models.SendMessageRequest) (models.Message, error)

	// GetConversation returns the messages exchanged with otherUserID,
	// oldest first.
	GetConversation(ctx context.Context, otherUserID int64) ([]models.Message, error)

	// ListUsers returns every user except the token holder.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// CreateTransaction records a tip from the token holder.
	CreateTransaction(ctx context.Context, request models.CreateTransactionRequest) (models.Transaction, error)

	// ListTransactions returns the ledger of userID, newest first. The server
	// only allows callers to read their own ledger.
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
