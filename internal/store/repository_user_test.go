package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/migrations"
	"github.com/MKhiriev/pass-the-pages/models"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

var userRowColumns = []string{"user_id", "username", "email", "password", "first_name", "last_name"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "jdoe", Email: "jdoe@kean.edu", Password: "hash", FirstName: "John", LastName: "Doe"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.Password, user.FirstName, user.LastName).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "jdoe", "jdoe@kean.edu", "hash", "John", "Doe"))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "jdoe@kean.edu", created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "jdoe@kean.edu"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "jdoe@kean.edu"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("jdoe@kean.edu").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "jdoe", "jdoe@kean.edu", "hash", "John", "Doe"))

	user, err := repo.FindUserByEmail(context.Background(), "jdoe@kean.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, "hash", user.Password)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@kean.edu")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
		WithArgs(int64(9)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListOtherUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id, username FROM users WHERE user_id <> \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username"}).
			AddRow(2, "alice").
			AddRow(3, "bob"))

	users, err := repo.ListOtherUsers(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.UserSummary{{UserID: 2, Username: "alice"}, {UserID: 3, Username: "bob"}}, users)
}

func TestListOtherUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id, username FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username"}))

	users, err := repo.ListOtherUsers(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListOtherUsers_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id, username FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username"}).
			AddRow(2, "alice").
			RowError(0, errors.New("broken row")))

	_, err := repo.ListOtherUsers(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFindUserByEmail_PostgresSendsDollarPlaceholders(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, migrations.Postgres, NewPostgresErrorClassifier(), logger.Nop())
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT user_id, username, email, password, first_name, last_name FROM users WHERE email = $1").
		WithArgs("jdoe@kean.edu").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "jdoe", "jdoe@kean.edu", "hash", "John", "Doe"))

	found, err := repo.FindUserByEmail(context.Background(), "jdoe@kean.edu")
	require.NoError(t, err)

	assert.Equal(t, int64(1), found.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
