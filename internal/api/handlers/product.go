package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"product-catalog/internal/api/feed"
	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/middlewares"
	"product-catalog/internal/api/models"
	"product-catalog/internal/database"
	"product-catalog/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the whole catalog
func ListProducts(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := services.ProductRepository().List(c.Request.Context())
		if err != nil {
			respondInternal(c, services.GetLogger(), "list_products", err)
			return
		}

		response := make([]models.ProductResponse, 0, len(products))
		for i := range products {
			response = append(response, models.NewProductResponse(&products[i]))
		}

		respondSuccess(c, http.StatusOK, "", response)
	}
}

// GetProduct returns a single product
func GetProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}

		product, err := services.ProductRepository().GetByID(c.Request.Context(), id)
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, productNotFound(id))
			return
		}
		if err != nil {
			respondInternal(c, services.GetLogger(), "get_product", err)
			return
		}

		respondSuccess(c, http.StatusOK, "", models.NewProductResponse(product))
	}
}

// CreateProduct adds a product owned by the authenticated seller
func CreateProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, bindingError(err))
			return
		}

		seller, ok := currentSeller(c, services)
		if !ok {
			return
		}

		product := &database.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			SellerID:    seller.ID,
			Seller:      seller,
		}

		if err := services.ProductRepository().Create(c.Request.Context(), product); err != nil {
			respondInternal(c, services.GetLogger(), "create_product", err)
			return
		}

		response := models.NewProductResponse(product)
		createAuditLog(c, services, "product_created", seller.Username, productResource(product.ID), product.Name)
		services.Hub().Publish(feed.EventProductCreated, response)

		respondSuccess(c, http.StatusCreated, "Product created successfully", response)
	}
}

// UpdateProduct replaces a product's name, description and price
func UpdateProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}

		var req models.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, bindingError(err))
			return
		}

		ctx := c.Request.Context()
		err := services.ProductRepository().Update(ctx, &database.Product{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
		})
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, productNotFound(id))
			return
		}
		if err != nil {
			respondInternal(c, services.GetLogger(), "update_product", err)
			return
		}

		product, err := services.ProductRepository().GetByID(ctx, id)
		if err != nil {
			respondInternal(c, services.GetLogger(), "reload_product", err)
			return
		}

		response := models.NewProductResponse(product)
		createAuditLog(c, services, "product_updated", c.GetString("username"), productResource(id), product.Name)
		services.Hub().Publish(feed.EventProductUpdated, response)

		respondSuccess(c, http.StatusOK, "Product updated successfully", response)
	}
}

// DeleteProduct removes a product
func DeleteProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}

		err := services.ProductRepository().Delete(c.Request.Context(), id)
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(c, productNotFound(id))
			return
		}
		if err != nil {
			respondInternal(c, services.GetLogger(), "delete_product", err)
			return
		}

		createAuditLog(c, services, "product_deleted", c.GetString("username"), productResource(id), "")
		services.Hub().Publish(feed.EventProductDeleted, gin.H{"id": id})

		respondSuccess(c, http.StatusOK, "product deleted", nil)
	}
}

// currentSeller resolves the authenticated principal to its seller row. A
// valid token whose seller no longer exists is rejected like a bad token.
func currentSeller(c *gin.Context, services interfaces.Services) (*database.Seller, bool) {
	principal, ok := middlewares.CurrentPrincipal(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		respondError(c, models.NewAPIError(models.ErrCodeUnauthorized, models.MsgNotAuthenticated, http.StatusUnauthorized))
		return nil, false
	}

	seller, err := services.SellerRepository().GetByUsername(c.Request.Context(), principal.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		c.Header("WWW-Authenticate", "Bearer")
		respondError(c, models.NewAPIError(models.ErrCodeInvalidToken, models.MsgInvalidCredentials, http.StatusUnauthorized))
		return nil, false
	}
	if err != nil {
		respondInternal(c, services.GetLogger(), "resolve_seller", err)
		return nil, false
	}

	return seller, true
}

func productResource(id int64) string {
	return fmt.Sprintf("product/%d", id)
}
