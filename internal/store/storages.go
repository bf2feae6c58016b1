package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
)

// Storages bundles the repositories built on one shared connection pool.
type Storages struct {
	UserRepository        UserRepository
	BookRepository        BookRepository
	MessageRepository     MessageRepository
	TransactionRepository TransactionRepository

	db *DB
}

// NewStorages connects to the configured backend, applies migrations and
// wires every repository to the resulting pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB wires the repositories to an already opened and migrated
// database.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		BookRepository:        NewBookRepository(db, log),
		MessageRepository:     NewMessageRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
		db:                    db,
	}
}

// Ping implements [HealthChecker].
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
