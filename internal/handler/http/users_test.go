package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/models"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "vanished", err: store.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", err: store.ErrScanningRow, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var asked int64
			users := &mockUserService{
				getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
					asked = userID
					if tt.err != nil {
						return models.User{}, tt.err
					}
					return models.User{UserID: userID, Username: "alice", Email: "alice@kean.edu", Password: "$2a$10$hash"}, nil
				},
			}
			router := newTestHandler(&service.Services{AuthService: authAs(5), UserService: users}).Init()

			rec := serve(t, router, http.MethodGet, "/profile", nil, validToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, int64(5), asked)
			if tt.wantStatus == http.StatusOK {
				user := decodeBody[models.User](t, rec)
				assert.Equal(t, "alice", user.Username)
				assert.NotContains(t, rec.Body.String(), "$2a$")
			}
		})
	}
}

func TestListUsers_ProjectsSummaries(t *testing.T) {
	users := &mockUserService{
		listOtherUsersFn: func(_ context.Context, userID int64) ([]models.UserSummary, error) {
			assert.Equal(t, int64(1), userID)
			return []models.UserSummary{{UserID: 2, Username: "bob"}, {UserID: 3, Username: "carol"}}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: authAs(1), UserService: users}).Init()

	rec := serve(t, router, http.MethodGet, "/users", nil, validToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"user_id":2,"username":"bob"},{"user_id":3,"username":"carol"}]`, rec.Body.String())
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	users := &mockUserService{
		listOtherUsersFn: func(context.Context, int64) ([]models.UserSummary, error) {
			return []models.UserSummary{}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: authAs(1), UserService: users}).Init()

	rec := serve(t, router, http.MethodGet, "/users", nil, validToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
