package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// UserID.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	var created models.User
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&created.UserID,
		&created.Username,
		&created.Email,
		&created.Password,
		&created.FirstName,
		&created.LastName,
	)
	if err != nil {
		classified := r.classify(err, ErrEmailAlreadyExists)
		if errors.Is(classified, ErrEmailAlreadyExists) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already registered")
		} else {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		}
		return models.User{}, classified
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered under email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.buildSelectUserByEmailQuery(email)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the account with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := r.buildSelectUserByIDQuery(userID)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.FirstName,
		&user.LastName,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, r.classify(err, nil)
	}

	return user, nil
}

// ListOtherUsers returns the id and username of every account except userID.
func (r *userRepository) ListOtherUsers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectOtherUsersQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListOtherUsers").Int64("user_id", userID).Msg("failed to execute query")
		return nil, r.classify(err, nil)
	}
	defer rows.Close()

	users := make([]models.UserSummary, 0)
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.UserID, &u.Username); err != nil {
			log.Err(err).Str("func", "*userRepository.ListOtherUsers").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListOtherUsers").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
