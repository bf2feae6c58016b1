package http

import (
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
	"github.com/MKhiriev/pass-the-pages/models"
)

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	var request models.CreateBookRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	book, err := h.services.BookService.AddBook(r.Context(), request.ToBook())
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgAddBookFailed)
		return
	}

	utils.WriteJSON(w, models.BookCreatedResponse{
		Message: app.MsgBookAdded,
		Book:    book,
	}, http.StatusCreated)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.ListAvailableBooks(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgFetchBooksFailed)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}
