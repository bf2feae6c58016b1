package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure. The concrete
	// validators error is kept in the chain.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown e-mail and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordHashing = errors.New("password hashing failed")

	ErrTokenMissing            = errors.New("no token provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrAccessDenied is returned when an authenticated caller asks for data
	// belonging to another user.
	ErrAccessDenied = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
