package api

import (
	"product-catalog/internal/api/handlers"
	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	// Global middleware
	router.Use(middlewares.Recovery(services.GetLogger()))
	router.Use(middlewares.CORS(services.GetConfig().API.CORS))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))

	// Health check (no auth required)
	router.GET("/health", handlers.HealthCheck(services))

	setupPublicRoutes(router, services)
	setupAuthenticatedRoutes(router, services)
	setupWebSocketRoutes(router, services)
}

// setupPublicRoutes configures routes that don't require authentication
func setupPublicRoutes(router *gin.Engine, services interfaces.Services) {
	router.POST("/seller", handlers.CreateSeller(services))
	router.POST("/login", handlers.Login(services))
	router.GET("/product/:id", handlers.GetProduct(services))
}

// setupAuthenticatedRoutes configures routes that require a bearer token
func setupAuthenticatedRoutes(router *gin.Engine, services interfaces.Services) {
	authenticated := router.Group("/")
	authenticated.Use(middlewares.AuthRequired(services))
	{
		authenticated.GET("/products", handlers.ListProducts(services))
		authenticated.POST("/product", handlers.CreateProduct(services))
		authenticated.PUT("/product/:id", handlers.UpdateProduct(services))
		authenticated.DELETE("/product/:id", handlers.DeleteProduct(services))
		authenticated.GET("/audit", handlers.GetAuditLogs(services))
	}
}

// setupWebSocketRoutes configures WebSocket endpoints
func setupWebSocketRoutes(router *gin.Engine, services interfaces.Services) {
	ws := router.Group("/ws")
	ws.Use(middlewares.WSAuthRequired(services))
	{
		ws.GET("/products", handlers.ProductFeedWebSocket(services))
	}
}
