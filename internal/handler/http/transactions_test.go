package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
	"github.com/MKhiriev/pass-the-pages/models"
)

func TestCreateTransaction(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        `{"sender_id": 50, "receiver_id": 2, "book_id": 3, "amount": 12.5}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "transaction successful",
		},
		{
			name:        "non-positive amount",
			body:        `{"receiver_id": 2, "book_id": 3, "amount": -1}`,
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNonPositiveAmount),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "amount must be positive",
		},
		{
			name:        "amount as string",
			body:        `{"receiver_id": 2, "book_id": 3, "amount": "12"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions := &mockTransactionService{
				createTransactionFn: func(_ context.Context, transaction models.Transaction) (models.Transaction, error) {
					if tt.err != nil {
						return models.Transaction{}, tt.err
					}
					assert.Equal(t, int64(1), transaction.SenderID, "sender must come from the token")
					transaction.TransactionID = 77
					return transaction, nil
				},
			}
			router := newTestHandler(&service.Services{AuthService: authAs(1), TransactionService: transactions}).Init()

			rec := serve(t, router, http.MethodPost, "/transactions", tt.body, validToken)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusCreated {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}

			resp := decodeBody[models.TransactionCreatedResponse](t, rec)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, int64(77), resp.Transaction.TransactionID)
			assert.Equal(t, int64(1), resp.Transaction.SenderID)
			assert.InDelta(t, 12.5, resp.Transaction.Amount, 1e-9)
		})
	}
}

func TestListTransactions(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "own ledger", path: "/transactions/4", wantStatus: http.StatusOK},
		{
			name:        "foreign ledger",
			path:        "/transactions/5",
			err:         service.ErrAccessDenied,
			wantStatus:  http.StatusForbidden,
			wantMessage: "access denied",
		},
		{name: "not a number", path: "/transactions/abc", wantStatus: http.StatusBadRequest, wantMessage: "invalid user id parameter"},
		{name: "zero", path: "/transactions/0", wantStatus: http.StatusBadRequest, wantMessage: "invalid user id parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions := &mockTransactionService{
				listUserTransactionsFn: func(_ context.Context, callerID, userID int64) ([]models.Transaction, error) {
					assert.Equal(t, int64(4), callerID)
					if tt.err != nil {
						return nil, tt.err
					}
					return []models.Transaction{{TransactionID: 2, ReceiverID: userID}, {TransactionID: 1, SenderID: userID}}, nil
				},
			}
			router := newTestHandler(&service.Services{AuthService: authAs(4), TransactionService: transactions}).Init()

			rec := serve(t, router, http.MethodGet, tt.path, nil, validToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}

			got := decodeBody[[]models.Transaction](t, rec)
			require.Len(t, got, 2)
			assert.Equal(t, int64(2), got[0].TransactionID)
		})
	}
}
