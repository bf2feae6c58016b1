package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/pass-the-pages/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the display name chosen at registration.
	FieldUsername = "username"

	// FieldEmail targets the institution e-mail check.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password submitted at registration.
	FieldPassword = "password"

	// FieldTitle targets the title of a book listing.
	FieldTitle = "title"

	// FieldSenderID targets the authenticated author of a message or payment.
	FieldSenderID = "sender_id"

	// FieldReceiverID targets the addressee of a message or payment.
	FieldReceiverID = "receiver_id"

	// FieldDistinctParticipants requires sender and receiver to differ.
	FieldDistinctParticipants = "distinct_participants"

	// FieldMessage targets the text of a direct message.
	FieldMessage = "message"

	// FieldBookID targets the listing a payment refers to.
	FieldBookID = "book_id"

	// FieldAmount targets the claimed payment amount.
	FieldAmount = "amount"

	// FieldUserID targets the caller in a conversation request.
	FieldUserID = "user_id"

	// FieldOtherUserID targets the counterpart in a conversation request.
	FieldOtherUserID = "other_user_id"
)

// MarketplaceValidator implements [Validator] for the marketplace models:
// registrations ([models.User]), listings ([models.Book]), direct messages
// ([models.Message]), ledger entries ([models.Transaction]) and conversation
// lookups ([models.ConversationRequest]).
//
// Both value and pointer forms are accepted for every model type.
type MarketplaceValidator struct {
	institutionDomain string
}

// NewMarketplaceValidator returns a validator that accepts only e-mail
// addresses containing institutionDomain (for example "@kean.edu").
func NewMarketplaceValidator(institutionDomain string) Validator {
	return &MarketplaceValidator{institutionDomain: strings.ToLower(institutionDomain)}
}

// Validate dispatches to the type-specific rule set. With no fields given
// every rule of that type is applied.
func (v *MarketplaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateRegistration(ctx, value, fields...)
	case *models.User:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		return v.validateBook(ctx, *value, fields...)

	case models.Message:
		return v.validateMessage(ctx, value, fields...)
	case *models.Message:
		return v.validateMessage(ctx, *value, fields...)

	case models.Transaction:
		return v.validateTransaction(ctx, value, fields...)
	case *models.Transaction:
		return v.validateTransaction(ctx, *value, fields...)

	case models.ConversationRequest:
		return v.validateConversation(ctx, value, fields...)
	case *models.ConversationRequest:
		return v.validateConversation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MarketplaceValidator) validateRegistration(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			// substring check, not full address validation
			if !strings.Contains(strings.ToLower(user.Email), v.institutionDomain) {
				return ErrNonInstitutionalEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateBook(_ context.Context, book models.Book, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(book.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateMessage(_ context.Context, message models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSenderID, FieldReceiverID, FieldDistinctParticipants, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldSenderID:
			if message.SenderUserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldReceiverID:
			if message.ReceiverUserID <= 0 {
				return ErrInvalidReceiverID
			}
		case FieldDistinctParticipants:
			if message.SenderUserID == message.ReceiverUserID {
				return ErrSelfAddressed
			}
		case FieldMessage:
			if strings.TrimSpace(message.Message) == "" {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateTransaction(_ context.Context, transaction models.Transaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSenderID, FieldReceiverID, FieldDistinctParticipants, FieldBookID, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldSenderID:
			if transaction.SenderID <= 0 {
				return ErrInvalidUserID
			}
		case FieldReceiverID:
			if transaction.ReceiverID <= 0 {
				return ErrInvalidReceiverID
			}
		case FieldDistinctParticipants:
			if transaction.SenderID == transaction.ReceiverID {
				return ErrSelfAddressed
			}
		case FieldBookID:
			if transaction.BookID <= 0 {
				return ErrInvalidBookID
			}
		case FieldAmount:
			if math.IsNaN(transaction.Amount) || math.IsInf(transaction.Amount, 0) || transaction.Amount <= 0 {
				return ErrNonPositiveAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateConversation(_ context.Context, request models.ConversationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldOtherUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldOtherUserID:
			if request.OtherUserID <= 0 {
				return ErrInvalidOtherUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
