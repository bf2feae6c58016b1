// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
	"github.com/MKhiriev/pass-the-pages/models"
)

type messageService struct {
	messageRepository store.MessageRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, validator validators.Validator, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		validator:         validator,
		logger:            logger,
	}
}

// SendMessage stores message. SenderUserID must already be set from the
// verified token by the caller.
func (s *messageService) SendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, message); err != nil {
		log.Debug().Err(err).Int64("sender", message.SenderUserID).Msg("message rejected")
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sent, err := s.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		log.Err(err).
			Int64("sender", message.SenderUserID).
			Int64("receiver", message.ReceiverUserID).
			Msg("message creation failed")
		return models.Message{}, fmt.Errorf("message creation failed: %w", err)
	}

	return sent, nil
}

// GetConversation returns both directions of the exchange, oldest first.
func (s *messageService) GetConversation(ctx context.Context, conversation models.ConversationRequest) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, conversation); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	messages, err := s.messageRepository.GetConversation(ctx, conversation)
	if err != nil {
		log.Err(err).
			Int64("user_id", conversation.UserID).
			Int64("other_user_id", conversation.OtherUserID).
			Msg("conversation lookup failed")
		return nil, fmt.Errorf("conversation lookup failed: %w", err)
	}

	return messages, nil
}
