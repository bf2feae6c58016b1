// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a direct message sent from one user to another.
// Messages are immutable once stored.
type Message struct {
	// MessageID is the server-assigned unique identifier of the message.
	MessageID int64 `json:"message_id"`

	// SenderUserID is the author of the message. It is always taken from the
	// verified bearer token, never from client input.
	SenderUserID int64 `json:"sender_user_id"`

	// ReceiverUserID is the addressee of the message.
	ReceiverUserID int64 `json:"receiver_user_id"`

	// Message is the text body.
	Message string `json:"message"`

	// SentAt is the server-assigned creation time.
	SentAt time.Time `json:"sent_at"`

	// SenderUsername is populated only when messages are read back as part
	// of a conversation (joined from the users table).
	SenderUsername string `json:"sender_username,omitempty"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// ConversationRequest identifies the conversation between the calling user
// and another user. Both directions of the exchange belong to it.
type ConversationRequest struct {
	// UserID is the calling user (from the bearer token).
	UserID int64 `json:"user_id"`

	// OtherUserID is the counterpart of the conversation.
	OtherUserID int64 `json:"other_user_id"`
}
