package models

// LoginRequest is the OAuth2 password form posted to /login
type LoginRequest struct {
	Username string `form:"username" binding:"required" example:"alice"`
	Password string `form:"password" binding:"required" example:"wonderland"`
}

// SellerCreateRequest represents seller registration
type SellerCreateRequest struct {
	Username string `json:"username" binding:"required,max=255" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,max=72" example:"wonderland"`
}

// ProductRequest represents product creation and replacement
type ProductRequest struct {
	Name        string `json:"name" binding:"required,max=255" example:"Desk lamp"`
	Description string `json:"description" example:"Adjustable LED desk lamp"`
	Price       *int64 `json:"price" binding:"required,gte=0" example:"25"`
}

// AuditQuery filters the audit trail
type AuditQuery struct {
	Action   string `form:"action" example:"product_updated"`
	Username string `form:"username" example:"alice"`
	Since    int64  `form:"since" binding:"omitempty,gte=0" example:"1640995200"`
	Limit    int    `form:"limit" binding:"omitempty,gte=1,lte=500" example:"50"`
	Offset   int    `form:"offset" binding:"omitempty,gte=0" example:"0"`
}
