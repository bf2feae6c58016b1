package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/books", h.listBooks)
		r.Get("/version", h.getServerVersion)
		r.Get("/version/build", h.getBuildInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.profile)
		r.Post("/books", h.addBook)
		r.Post("/messages", h.sendMessage)
		r.Get("/messages", h.getConversation)
		r.Get("/users", h.listUsers)
		r.Post("/transactions", h.createTransaction)
		r.Get("/transactions/{userId}", h.listTransactions)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
