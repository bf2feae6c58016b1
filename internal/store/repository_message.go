package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/models"
)

type messageRepository struct {
	*DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMessage stores a message; sent_at is assigned by the database.
//
// Error handling:
//   - unknown sender or receiver → wrapped [ErrReferenceViolation].
//   - sender equal to receiver → wrapped [ErrCheckViolation].
func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertMessageQuery(message)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("failed to build query")
		return models.Message{}, err
	}

	var created models.Message
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&created.MessageID,
		&created.SenderUserID,
		&created.ReceiverUserID,
		&created.Message,
		scanTime(&created.SentAt),
	)
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Int64("sender_user_id", message.SenderUserID).
			Int64("receiver_user_id", message.ReceiverUserID).
			Msg("error inserting message")
		return models.Message{}, r.classify(err, nil)
	}

	return created, nil
}

// GetConversation returns the messages between the two participants.
func (r *messageRepository) GetConversation(ctx context.Context, conversation models.ConversationRequest) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectConversationQuery(conversation)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*messageRepository.GetConversation").
			Int64("user_id", conversation.UserID).
			Int64("other_user_id", conversation.OtherUserID).
			Msg("failed to execute query")
		return nil, r.classify(err, nil)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 32)
	for rows.Next() {
		var m models.Message
		scanErr := rows.Scan(
			&m.MessageID,
			&m.SenderUserID,
			&m.ReceiverUserID,
			&m.Message,
			scanTime(&m.SentAt),
			&m.SenderUsername,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*messageRepository.GetConversation").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*messageRepository.GetConversation").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
