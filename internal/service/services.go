package service

import (
	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	BookService        BookService
	MessageService     MessageService
	TransactionService TransactionService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewMarketplaceValidator(cfg.App.InstitutionDomain)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:        NewUserService(storages.UserRepository, logger),
		BookService:        NewBookService(storages.BookRepository, validator, logger),
		MessageService:     NewMessageService(storages.MessageRepository, validator, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, validator, logger),
		AppInfoService:     appInfoService,
	}, nil
}
