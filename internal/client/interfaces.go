// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and returns when it completes.
	Run(ctx context.Context, args []string) error
}

// TokenStore persists the bearer token between invocations.
type TokenStore interface {
	// Load returns the saved token, or "" when none is saved.
	Load() (string, error)
	// Save replaces the saved token.
	Save(token string) error
	// Clear removes the saved token. Clearing an empty store is not an error.
	Clear() error
}

// PasswordReader prompts for a secret without echoing it.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
