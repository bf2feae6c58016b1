package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
	"github.com/MKhiriev/pass-the-pages/models"
)

// transactionService records claimed payments. No balance is checked.
type transactionService struct {
	transactionRepository store.TransactionRepository
	validator             validators.Validator

	logger *logger.Logger
}

func NewTransactionService(transactionRepository store.TransactionRepository, validator validators.Validator, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		validator:             validator,
		logger:                logger,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, transaction); err != nil {
		log.Debug().Err(err).Int64("sender", transaction.SenderID).Msg("transaction rejected")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.transactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		log.Err(err).
			Int64("sender", transaction.SenderID).
			Int64("receiver", transaction.ReceiverID).
			Int64("book_id", transaction.BookID).
			Msg("transaction creation failed")
		return models.Transaction{}, fmt.Errorf("transaction creation failed: %w", err)
	}

	return created, nil
}

func (s *transactionService) ListUserTransactions(ctx context.Context, callerID, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if callerID != userID {
		log.Warn().Int64("caller", callerID).Int64("user_id", userID).Msg("foreign ledger requested")
		return nil, ErrAccessDenied
	}

	transactions, err := s.transactionRepository.ListUserTransactions(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing transactions failed")
		return nil, fmt.Errorf("listing transactions failed: %w", err)
	}

	return transactions, nil
}
