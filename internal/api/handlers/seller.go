package handlers

import (
	"errors"
	"net/http"

	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/models"
	"product-catalog/internal/database"
	"product-catalog/internal/database/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateSeller registers a seller account
func CreateSeller(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SellerCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, bindingError(err))
			return
		}

		hash, err := services.PasswordHasher().Hash(req.Password)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			respondError(c, models.NewAPIError(models.ErrCodeInvalidRequest, "Invalid request parameters", http.StatusBadRequest).
				WithField("password", "must be at most 72 bytes"))
			return
		}
		if err != nil {
			respondInternal(c, services.GetLogger(), "hash_password", err)
			return
		}

		seller := &database.Seller{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		}

		err = services.SellerRepository().Create(c.Request.Context(), seller)
		if errors.Is(err, repositories.ErrDuplicate) {
			services.GetLogger().Warning("Duplicate seller registration", "username", req.Username)
			respondError(c, models.NewAPIError(models.ErrCodeSellerExists, "Seller with this username already exists", http.StatusConflict))
			return
		}
		if err != nil {
			respondInternal(c, services.GetLogger(), "create_seller", err)
			return
		}

		createAuditLog(c, services, "seller_created", seller.Username, "seller/"+seller.Username, "")
		respondSuccess(c, http.StatusCreated, "Seller created successfully", models.NewSellerResponse(seller))
	}
}
