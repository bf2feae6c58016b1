package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/models"
)

type transactionRepository struct {
	*DB
	logger *logger.Logger
}

func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTransaction records a ledger entry. No balance is checked: the row
// documents a claimed payment.
func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertTransactionQuery(transaction)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.CreateTransaction").Msg("failed to build query")
		return models.Transaction{}, err
	}

	var created models.Transaction
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&created.TransactionID,
		&created.SenderID,
		&created.ReceiverID,
		&created.BookID,
		&created.Amount,
		scanTime(&created.Timestamp),
	)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.CreateTransaction").
			Int64("sender_id", transaction.SenderID).
			Int64("receiver_id", transaction.ReceiverID).
			Int64("book_id", transaction.BookID).
			Msg("error inserting transaction")
		return models.Transaction{}, r.classify(err, nil)
	}

	return created, nil
}

// ListUserTransactions returns the user's ledger, newest first.
func (r *transactionRepository) ListUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectUserTransactionsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListUserTransactions").Int64("user_id", userID).Msg("failed to execute query")
		return nil, r.classify(err, nil)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, 16)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.TransactionID, &t.SenderID, &t.ReceiverID, &t.BookID, &t.Amount, scanTime(&t.Timestamp)); err != nil {
			log.Err(err).Str("func", "*transactionRepository.ListUserTransactions").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*transactionRepository.ListUserTransactions").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return transactions, nil
}
