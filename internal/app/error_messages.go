// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pass-the-pages server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// JSON response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInstitutionEmailRequired is returned when a registration e-mail
	// does not belong to the institution domain.
	MsgInstitutionEmailRequired = "email must be an institutional email"

	// MsgInvalidCredentials is returned for every failed login. It never
	// reveals whether the e-mail or the password was wrong.
	MsgInvalidCredentials = "invalid credentials"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the e-mail is already in use.
	MsgEmailAlreadyExists = "email already registered"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoTokenProvided is returned when a protected route is called
	// without a bearer token.
	MsgNoTokenProvided = "access denied, no token provided"

	// MsgInvalidToken is returned when a bearer token is expired, malformed
	// or carries a wrong signature.
	MsgInvalidToken = "invalid token"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// read data that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgUserNotFound is returned when the authenticated user no longer
	// exists.
	MsgUserNotFound = "user not found"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "not found"

	MsgUserRegistered = "user registered successfully"
	MsgLoginSuccess   = "login successful"
	MsgBookAdded      = "book added successfully"
	MsgMessageSent    = "message sent successfully"
	MsgTransactionOK  = "transaction successful"

	// Route-specific failure messages surfaced for store errors.
	MsgRegistrationFailed       = "registration failed"
	MsgLoginFailed              = "login failed"
	MsgAddBookFailed            = "failed to add book"
	MsgFetchBooksFailed         = "failed to fetch books"
	MsgSendMessageFailed        = "failed to send message"
	MsgFetchMessagesFailed      = "failed to retrieve messages"
	MsgFetchUsersFailed         = "failed to fetch users"
	MsgTransactionFailed        = "transaction failed"
	MsgFetchTransactionsFailed  = "failed to fetch transactions"
	MsgFetchProfileFailed       = "failed to fetch profile"
	MsgVersionIsNotSpecified    = "version is not specified"
	MsgInvalidUserIDParameter   = "invalid user id parameter"
	MsgInvalidOtherUserIDParam  = "invalid other_user_id parameter"
	MsgSelfAddressedNotAllowed  = "sender and receiver must be different users"
	MsgAmountMustBePositive     = "amount must be positive"
)
