package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername         = errors.New("username is required")
	ErrNonInstitutionalEmail = errors.New("email must belong to the institution")
	ErrEmptyPassword         = errors.New("password is required")
	ErrEmptyTitle            = errors.New("title is required")
	ErrEmptyMessage          = errors.New("message text is required")
	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrInvalidReceiverID     = errors.New("invalid receiver ID")
	ErrInvalidOtherUserID    = errors.New("invalid other user ID")
	ErrSelfAddressed         = errors.New("sender and receiver must differ")
	ErrInvalidBookID         = errors.New("invalid book ID")
	ErrNonPositiveAmount     = errors.New("amount must be positive")
)
