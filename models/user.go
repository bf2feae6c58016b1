// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered marketplace account.
// Accounts are created on registration and never modified afterwards.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Username is the public display name shown to other users
	// (user directory, conversation annotations).
	Username string `json:"username"`

	// Email is the unique institutional e-mail address used for login.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password once the user
	// has been persisted. Before hashing it carries the plaintext from the
	// registration request. It is never serialised to JSON.
	Password string `json:"-"`

	// FirstName is the given name of the user.
	FirstName string `json:"first_name"`

	// LastName is the family name of the user.
	LastName string `json:"last_name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the public projection of a [User] returned by the user
// directory. It deliberately omits e-mail, password and names.
type UserSummary struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
