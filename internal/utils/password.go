// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/bcrypt"
)

// maxBcryptPasswordLen is the longest input bcrypt accepts.
const maxBcryptPasswordLen = 72

// HashPassword returns the bcrypt hash of password using the given work
// factor. The hash embeds its own random salt, so two calls with the same
// password produce different results. Passwords of any length are accepted.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A malformed hash yields an error; a plain mismatch yields (false, nil).
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password hash: %w", err)
	}
}

// bcryptInput passes short passwords through unchanged. Longer ones are
// reduced to the base64 of their BLAKE2b-256 digest (44 bytes) so every
// byte still counts.
func bcryptInput(password string) []byte {
	if len(password) <= maxBcryptPasswordLen {
		return []byte(password)
	}

	digest := blake2b.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(digest[:]))
}
