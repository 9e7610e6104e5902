package api

import (
	"context"
	"fmt"

	"product-catalog/internal/api/feed"
	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/auth"
	"product-catalog/internal/database"
	"product-catalog/internal/database/repositories"
	"product-catalog/pkg/config"
	"product-catalog/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	// Core dependencies
	DB     *database.DB
	Logger *logger.Logger
	Config *config.Config

	// Authentication
	hasher        auth.PasswordHasher
	codec         *auth.TokenCodec
	authenticator *auth.Authenticator
	guard         *auth.Guard

	// Repositories
	sellerRepository   *repositories.SellerRepository
	productRepository  *repositories.ProductRepository
	auditLogRepository *repositories.AuditLogRepository

	// Live catalog feed
	hub *feed.Hub
}

// NewServices creates a new services container. A bad security section
// yields an error wrapping auth.ErrConfiguration.
func NewServices(db *database.DB, log *logger.Logger, cfg *config.Config, tokenOpts ...auth.TokenOption) (*Services, error) {
	codec, err := auth.NewTokenCodec(
		cfg.Security.JWTSecret,
		cfg.Security.JWTAlgorithm,
		cfg.Security.TokenTTL,
		tokenOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build token codec: %w", err)
	}

	services := &Services{
		DB:     db,
		Logger: log,
		Config: cfg,
		hasher: auth.NewBcryptHasher(cfg.Security.BcryptCost),
		codec:  codec,
		hub:    feed.NewHub(),
	}

	// Initialize repositories
	services.sellerRepository = repositories.NewSellerRepository(db)
	services.productRepository = repositories.NewProductRepository(db)
	services.auditLogRepository = repositories.NewAuditLogRepository(db)

	// Initialize auth components
	services.authenticator = auth.NewAuthenticator(services.sellerRepository, services.hasher, codec)
	services.guard = auth.NewGuard(codec)

	log.WithComponent("api").Info("API services initialized", "token", codec.String())
	return services, nil
}

// Stop disconnects feed subscribers
func (s *Services) Stop() {
	s.Logger.Info("Stopping API services...")
	s.hub.Close()
	s.Logger.Info("All API services stopped")
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) Authenticator() interfaces.LoginService {
	return s.authenticator
}

func (s *Services) Guard() interfaces.TokenGuard {
	return s.guard
}

func (s *Services) PasswordHasher() auth.PasswordHasher {
	return s.hasher
}

func (s *Services) SellerRepository() *repositories.SellerRepository {
	return s.sellerRepository
}

func (s *Services) ProductRepository() *repositories.ProductRepository {
	return s.productRepository
}

func (s *Services) AuditLogRepository() *repositories.AuditLogRepository {
	return s.auditLogRepository
}

func (s *Services) Hub() *feed.Hub {
	return s.hub
}

// Ping checks the database connection
func (s *Services) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}
