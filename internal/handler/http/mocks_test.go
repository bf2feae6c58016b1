package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks. A nil field panics when called, which fails
// the test that did not expect the call.
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) HashPassword(password string) (string, error) {
	return "hashed-" + password, nil
}

func (m *mockAuthService) VerifyPassword(password, hash string) bool {
	return hash == "hashed-"+password
}

type mockUserService struct {
	getProfileFn     func(ctx context.Context, userID int64) (models.User, error)
	listOtherUsersFn func(ctx context.Context, userID int64) ([]models.UserSummary, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) ListOtherUsers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	return m.listOtherUsersFn(ctx, userID)
}

type mockBookService struct {
	addBookFn            func(ctx context.Context, book models.Book) (models.Book, error)
	listAvailableBooksFn func(ctx context.Context) ([]models.Book, error)
}

func (m *mockBookService) AddBook(ctx context.Context, book models.Book) (models.Book, error) {
	return m.addBookFn(ctx, book)
}

func (m *mockBookService) ListAvailableBooks(ctx context.Context) ([]models.Book, error) {
	return m.listAvailableBooksFn(ctx)
}

type mockMessageService struct {
	sendMessageFn     func(ctx context.Context, message models.Message) (models.Message, error)
	getConversationFn func(ctx context.Context, conversation models.ConversationRequest) ([]models.Message, error)
}

func (m *mockMessageService) SendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return m.sendMessageFn(ctx, message)
}

func (m *mockMessageService) GetConversation(ctx context.Context, conversation models.ConversationRequest) ([]models.Message, error) {
	return m.getConversationFn(ctx, conversation)
}

type mockTransactionService struct {
	createTransactionFn    func(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	listUserTransactionsFn func(ctx context.Context, callerID, userID int64) ([]models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	return m.createTransactionFn(ctx, transaction)
}

func (m *mockTransactionService) ListUserTransactions(ctx context.Context, callerID, userID int64) ([]models.Transaction, error) {
	return m.listUserTransactionsFn(ctx, callerID, userID)
}

type mockAppInfoService struct {
	version string
	build   models.BuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return m.build
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// validToken is the only bearer token accepted by authAs mocks.
const validToken = "valid-token"

// authAs returns an AuthService mock that accepts validToken as userID and
// rejects everything else.
func authAs(userID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != validToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: userID}, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(services, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
