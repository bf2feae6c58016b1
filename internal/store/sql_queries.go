package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pass-the-pages/models"
)

var (
	userColumns        = []string{"user_id", "username", "email", "password", "first_name", "last_name"}
	bookColumns        = []string{"book_id", "title", "author", "subject", "condition", "description", "is_available"}
	messageColumns     = []string{"message_id", "sender_user_id", "receiver_user_id", "message", "sent_at"}
	transactionColumns = []string{"transaction_id", "sender_id", "receiver_id", "book_id", "amount", `"timestamp"`}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return toSQL(db.builder.
		Insert(user.TableName()).
		Columns("username", "email", "password", "first_name", "last_name").
		Values(user.Username, user.Email, user.Password, user.FirstName, user.LastName).
		Suffix(returning(userColumns)))
}

func (db *DB) buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return toSQL(db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}))
}

func (db *DB) buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}))
}

func (db *DB) buildSelectOtherUsersQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select("user_id", "username").
		From(models.User{}.TableName()).
		Where(sq.NotEq{"user_id": userID}).
		OrderBy("user_id ASC"))
}

// ── books ─────────────────────────────────────────────────────────────────────

func (db *DB) buildInsertBookQuery(book models.Book) (string, []any, error) {
	return toSQL(db.builder.
		Insert(book.TableName()).
		Columns("title", "author", "subject", "condition", "description", "is_available").
		Values(book.Title, book.Author, book.Subject, book.Condition, book.Description, book.IsAvailable).
		Suffix(returning(bookColumns)))
}

func (db *DB) buildSelectAvailableBooksQuery() (string, []any, error) {
	return toSQL(db.builder.
		Select(bookColumns...).
		From(models.Book{}.TableName()).
		Where(sq.Eq{"is_available": true}).
		OrderBy("book_id ASC"))
}

// ── messages ──────────────────────────────────────────────────────────────────

func (db *DB) buildInsertMessageQuery(message models.Message) (string, []any, error) {
	return toSQL(db.builder.
		Insert(message.TableName()).
		Columns("sender_user_id", "receiver_user_id", "message").
		Values(message.SenderUserID, message.ReceiverUserID, message.Message).
		Suffix(returning(messageColumns)))
}

// buildSelectConversationQuery selects messages exchanged in either direction
// between the two users, joined with the sender's username. Ties on sent_at
// are broken by message_id so that the order is stable.
func (db *DB) buildSelectConversationQuery(conversation models.ConversationRequest) (string, []any, error) {
	return toSQL(db.builder.
		Select(
			"m.message_id",
			"m.sender_user_id",
			"m.receiver_user_id",
			"m.message",
			"m.sent_at",
			"u.username AS sender_username",
		).
		From("messages m").
		Join("users u ON u.user_id = m.sender_user_id").
		Where(sq.Or{
			sq.And{
				sq.Eq{"m.sender_user_id": conversation.UserID},
				sq.Eq{"m.receiver_user_id": conversation.OtherUserID},
			},
			sq.And{
				sq.Eq{"m.sender_user_id": conversation.OtherUserID},
				sq.Eq{"m.receiver_user_id": conversation.UserID},
			},
		}).
		OrderBy("m.sent_at ASC", "m.message_id ASC"))
}

// ── transactions ──────────────────────────────────────────────────────────────

func (db *DB) buildInsertTransactionQuery(transaction models.Transaction) (string, []any, error) {
	return toSQL(db.builder.
		Insert(transaction.TableName()).
		Columns("sender_id", "receiver_id", "book_id", "amount").
		Values(transaction.SenderID, transaction.ReceiverID, transaction.BookID, transaction.Amount).
		Suffix(returning(transactionColumns)))
}

func (db *DB) buildSelectUserTransactionsQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(transactionColumns...).
		From(models.Transaction{}.TableName()).
		Where(sq.Or{
			sq.Eq{"sender_id": userID},
			sq.Eq{"receiver_id": userID},
		}).
		OrderBy(`"timestamp" DESC`, "transaction_id DESC"))
}
