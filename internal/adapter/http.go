package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
	"github.com/MKhiriev/pass-the-pages/models"
	"github.com/go-resty/resty/v2"
)

type httpMarketplaceAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPMarketplaceAdapter constructs the REST implementation of
// [MarketplaceAdapter]. address may omit the scheme, in which case http:// is
// assumed; a trailing slash is dropped. A zero timeout disables the request
// deadline.
func NewHTTPMarketplaceAdapter(address string, timeout time.Duration, logger *logger.Logger) (MarketplaceAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpMarketplaceAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMarketplaceAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpMarketplaceAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs to /register and keeps the issued token.
func (h *httpMarketplaceAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&authResponse).
		Post("/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.Token)
	h.logger.Debug().Str("email", request.Email).Msg("registered")
	return authResponse, nil
}

// Login POSTs to /login and keeps the issued token.
func (h *httpMarketplaceAdapter) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&authResponse).
		Post("/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.Token)
	h.logger.Debug().Str("email", request.Email).Msg("logged in")
	return authResponse, nil
}

func (h *httpMarketplaceAdapter) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpMarketplaceAdapter) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&books).
		Get("/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return books, nil
}

func (h *httpMarketplaceAdapter) AddBook(ctx context.Context, request models.CreateBookRequest) (models.Book, error) {
	var created models.BookCreatedResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("add book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return created.Book, nil
}

func (h *httpMarketplaceAdapter) SendMessage(ctx context.Context, request models.SendMessageRequest) (models.Message, error) {
	var sent models.MessageSentResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&sent).
		Post("/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return sent.SentMessage, nil
}

func (h *httpMarketplaceAdapter) GetConversation(ctx context.Context, otherUserID int64) ([]models.Message, error) {
	var messages []models.Message

	resp, err := h.authedRequest(ctx).
		SetQueryParam("other_user_id", strconv.FormatInt(otherUserID, 10)).
		SetResult(&messages).
		Get("/messages")
	if err != nil {
		return nil, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

func (h *httpMarketplaceAdapter) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpMarketplaceAdapter) CreateTransaction(ctx context.Context, request models.CreateTransactionRequest) (models.Transaction, error) {
	var created models.TransactionCreatedResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/transactions")
	if err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transaction{}, err
	}

	return created.Transaction, nil
}

func (h *httpMarketplaceAdapter) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	var transactions []models.Transaction

	resp, err := h.authedRequest(ctx).
		SetPathParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&transactions).
		Get("/transactions/{userId}")
	if err != nil {
		return nil, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return transactions, nil
}

// Version reads the plain-text body of GET /version.
func (h *httpMarketplaceAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpMarketplaceAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
