// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload issued to authenticated users.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (iss, sub,
// iat, exp) and adds an explicit "user_id" claim carrying the user's
// identifier.
type Claims struct {
	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"user_id"`

	jwt.RegisteredClaims
}

// Token is the result of issuing or verifying a bearer token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the identifier the token was issued for.
	UserID int64 `json:"-"`

	// IssuedAt is the time the token was signed.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the time after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
