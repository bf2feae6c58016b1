package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
	"github.com/MKhiriev/pass-the-pages/models"
)

func TestAddBook(t *testing.T) {
	request := models.CreateBookRequest{
		Title:       "Linear Algebra Done Right",
		Author:      "Axler",
		Subject:     "Math",
		Condition:   "good",
		Description: "some notes in pencil",
	}

	tests := []struct {
		name        string
		body        any
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: request, wantStatus: http.StatusCreated, wantMessage: "book added successfully"},
		{name: "malformed JSON", body: "{", wantStatus: http.StatusBadRequest, wantMessage: "invalid JSON was passed"},
		{
			name:        "missing title",
			body:        models.CreateBookRequest{},
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitle),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided",
		},
		{
			name:        "store failure",
			body:        request,
			err:         store.ErrExecutingQuery,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "failed to add book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := &mockBookService{
				addBookFn: func(_ context.Context, book models.Book) (models.Book, error) {
					if tt.err != nil {
						return models.Book{}, tt.err
					}
					assert.True(t, book.IsAvailable)
					book.BookID = 21
					return book, nil
				},
			}
			router := newTestHandler(&service.Services{AuthService: authAs(1), BookService: books}).Init()

			rec := serve(t, router, http.MethodPost, "/books", tt.body, validToken)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusCreated {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}

			resp := decodeBody[models.BookCreatedResponse](t, rec)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, int64(21), resp.Book.BookID)
			assert.Equal(t, request.Title, resp.Book.Title)
			assert.True(t, resp.Book.IsAvailable)
		})
	}
}

func TestListBooks_IsPublic(t *testing.T) {
	books := &mockBookService{
		listAvailableBooksFn: func(context.Context) ([]models.Book, error) {
			return []models.Book{{BookID: 1, Title: "Calculus", IsAvailable: true}}, nil
		},
	}
	router := newTestHandler(&service.Services{BookService: books}).Init()

	rec := serve(t, router, http.MethodGet, "/books", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[[]models.Book](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Calculus", got[0].Title)
}

func TestListBooks_StoreFailure(t *testing.T) {
	books := &mockBookService{
		listAvailableBooksFn: func(context.Context) ([]models.Book, error) {
			return nil, fmt.Errorf("%w: relation \"books\" does not exist", store.ErrExecutingQuery)
		},
	}
	router := newTestHandler(&service.Services{BookService: books}).Init()

	rec := serve(t, router, http.MethodGet, "/books", nil, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to fetch books", errorMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "relation")
}
