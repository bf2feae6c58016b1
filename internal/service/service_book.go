package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
	"github.com/MKhiriev/pass-the-pages/models"
)

type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, validator validators.Validator, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		logger:         logger,
	}
}

// AddBook stores a new listing. New listings are always available.
func (s *bookService) AddBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, book); err != nil {
		log.Debug().Err(err).Msg("book rejected")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	book.IsAvailable = true

	created, err := s.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("title", book.Title).Msg("book creation failed")
		return models.Book{}, fmt.Errorf("book creation failed: %w", err)
	}

	return created, nil
}

func (s *bookService) ListAvailableBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.ListAvailableBooks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing books failed")
		return nil, fmt.Errorf("listing books failed: %w", err)
	}

	return books, nil
}
