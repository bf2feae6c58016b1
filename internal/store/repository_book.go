package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/models"
)

type bookRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBook inserts a listing and returns the stored row.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertBookQuery(book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("failed to build query")
		return models.Book{}, err
	}

	var created models.Book
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&created.BookID,
		&created.Title,
		&created.Author,
		&created.Subject,
		&created.Condition,
		&created.Description,
		&created.IsAvailable,
	)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error inserting book")
		return models.Book{}, r.classify(err, nil)
	}

	return created, nil
}

// ListAvailableBooks returns every listing with is_available set.
func (r *bookRepository) ListAvailableBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectAvailableBooksQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListAvailableBooks").Msg("failed to execute query")
		return nil, r.classify(err, nil)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 16)
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.BookID, &b.Title, &b.Author, &b.Subject, &b.Condition, &b.Description, &b.IsAvailable); err != nil {
			log.Err(err).Str("func", "*bookRepository.ListAvailableBooks").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListAvailableBooks").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}
