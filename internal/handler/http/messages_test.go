package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
	"github.com/MKhiriev/pass-the-pages/models"
)

func TestSendMessage_SenderComesFromToken(t *testing.T) {
	var received models.Message
	messages := &mockMessageService{
		sendMessageFn: func(_ context.Context, message models.Message) (models.Message, error) {
			received = message
			message.MessageID = 100
			message.SentAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
			return message, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: authAs(7), MessageService: messages}).Init()

	// sender_user_id in the body must be ignored
	body := `{"sender_user_id": 999, "receiver_user_id": 8, "message": "still selling?"}`
	rec := serve(t, router, http.MethodPost, "/messages", body, validToken)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(7), received.SenderUserID)
	assert.Equal(t, int64(8), received.ReceiverUserID)

	resp := decodeBody[models.MessageSentResponse](t, rec)
	assert.Equal(t, "message sent successfully", resp.Message)
	assert.Equal(t, int64(100), resp.SentMessage.MessageID)
	assert.Equal(t, "still selling?", resp.SentMessage.Message)
}

func TestSendMessage_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed JSON",
			body:        `{"receiver_user_id":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON was passed",
		},
		{
			name:        "to self",
			body:        `{"receiver_user_id": 7, "message": "hi"}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrSelfAddressed),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "sender and receiver must be different users",
		},
		{
			name:        "unknown receiver",
			body:        `{"receiver_user_id": 404, "message": "hi"}`,
			err:         fmt.Errorf("%w: FOREIGN KEY constraint failed", store.ErrReferenceViolation),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "failed to send message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := &mockMessageService{
				sendMessageFn: func(context.Context, models.Message) (models.Message, error) {
					return models.Message{}, tt.err
				},
			}
			router := newTestHandler(&service.Services{AuthService: authAs(7), MessageService: messages}).Init()

			rec := serve(t, router, http.MethodPost, "/messages", tt.body, validToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
		})
	}
}

func TestGetConversation(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantMessage string
		wantRequest models.ConversationRequest
	}{
		{
			name:        "valid",
			query:       "?other_user_id=2",
			wantStatus:  http.StatusOK,
			wantRequest: models.ConversationRequest{UserID: 1, OtherUserID: 2},
		},
		{name: "missing", query: "", wantStatus: http.StatusBadRequest, wantMessage: "invalid other_user_id parameter"},
		{name: "not a number", query: "?other_user_id=bob", wantStatus: http.StatusBadRequest, wantMessage: "invalid other_user_id parameter"},
		{name: "negative", query: "?other_user_id=-3", wantStatus: http.StatusBadRequest, wantMessage: "invalid other_user_id parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received models.ConversationRequest
			messages := &mockMessageService{
				getConversationFn: func(_ context.Context, conversation models.ConversationRequest) ([]models.Message, error) {
					received = conversation
					return []models.Message{
						{MessageID: 1, SenderUserID: 1, ReceiverUserID: 2, Message: "hi", SenderUsername: "alice"},
						{MessageID: 2, SenderUserID: 2, ReceiverUserID: 1, Message: "hello", SenderUsername: "bob"},
					}, nil
				},
			}
			router := newTestHandler(&service.Services{AuthService: authAs(1), MessageService: messages}).Init()

			rec := serve(t, router, http.MethodGet, "/messages"+tt.query, nil, validToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}

			assert.Equal(t, tt.wantRequest, received)
			got := decodeBody[[]models.Message](t, rec)
			require.Len(t, got, 2)
			assert.Equal(t, "alice", got[0].SenderUsername)
			assert.Equal(t, "bob", got[1].SenderUsername)
		})
	}
}
