package models

import (
	"time"

	"product-catalog/internal/database"
)

// BaseResponse represents the base API response structure
type BaseResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp" example:"1640995200"`
	RequestID string      `json:"request_id,omitempty" example:"req_123456"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string            `json:"code" example:"INVALID_REQUEST"`
	Message string            `json:"message" example:"Invalid request parameters"`
	Details string            `json:"details,omitempty" example:"Field 'name' is required"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NewSuccessResponse builds a successful envelope
func NewSuccessResponse(message string, data interface{}, requestID string) BaseResponse {
	return BaseResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Unix(),
		RequestID: requestID,
	}
}

// NewErrorResponse builds a failed envelope from an APIError
func NewErrorResponse(apiErr *APIError, requestID string) BaseResponse {
	return BaseResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
			Fields:  apiErr.Fields,
		},
		Timestamp: time.Now().Unix(),
		RequestID: requestID,
	}
}

// TokenResponse is the body returned by /login
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

// SellerResponse represents public seller information
type SellerResponse struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}

// ProductResponse represents a catalog entry
type ProductResponse struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"Desk lamp"`
	Description string          `json:"description" example:"Adjustable LED desk lamp"`
	Price       int64           `json:"price" example:"25"`
	Seller      *SellerResponse `json:"seller,omitempty"`
	CreatedAt   int64           `json:"created_at" example:"1640995200"`
	UpdatedAt   int64           `json:"updated_at" example:"1640995200"`
}

// HealthCheckResponse represents health check response
type HealthCheckResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp int64                  `json:"timestamp" example:"1640995200"`
	Version   string                 `json:"version" example:"1.0.0"`
	Uptime    int64                  `json:"uptime" example:"86400"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck represents individual health check
type HealthCheck struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"Service is running normally"`
	Latency string `json:"latency,omitempty" example:"5ms"`
}

// NewSellerResponse strips private fields from a seller
func NewSellerResponse(seller *database.Seller) *SellerResponse {
	if seller == nil {
		return nil
	}
	return &SellerResponse{
		Username: seller.Username,
		Email:    seller.Email,
	}
}

// NewProductResponse converts a stored product
func NewProductResponse(product *database.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Seller:      NewSellerResponse(product.Seller),
		CreatedAt:   product.CreatedAt.Unix(),
		UpdatedAt:   product.UpdatedAt.Unix(),
	}
}
