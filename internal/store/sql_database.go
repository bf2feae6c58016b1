package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/migrations"
)

// DB wraps the pooled *sql.DB together with everything that differs between
// the supported backends: the migration dialect, the placeholder format used
// by the query builder and the constraint error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholders sq.PlaceholderFormat = sq.Question
	if dialect == migrations.Postgres {
		placeholders = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholders),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate brings the schema up to date for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// classify translates constraint violations into store sentinels. Errors
// that are not constraint violations are wrapped with [ErrExecutingQuery].
// uniqueErr is returned for unique violations since its meaning depends on
// the table being written.
func (db *DB) classify(err error, uniqueErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		if uniqueErr != nil {
			return uniqueErr
		}
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceViolation, err)
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrCheckViolation, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
