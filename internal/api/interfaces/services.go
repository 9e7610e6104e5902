package interfaces

import (
	"context"

	"product-catalog/internal/api/feed"
	"product-catalog/internal/auth"
	"product-catalog/internal/database/repositories"
	"product-catalog/pkg/config"
	"product-catalog/pkg/logger"
)

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	Authenticator() LoginService
	Guard() TokenGuard
	PasswordHasher() auth.PasswordHasher
	SellerRepository() *repositories.SellerRepository
	ProductRepository() *repositories.ProductRepository
	AuditLogRepository() *repositories.AuditLogRepository
	Hub() *feed.Hub
	Ping(ctx context.Context) error
}
