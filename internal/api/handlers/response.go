package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"product-catalog/internal/api/models"
	"product-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.NewSuccessResponse(message, data, requestID(c)))
}

func respondError(c *gin.Context, apiErr *models.APIError) {
	c.JSON(apiErr.StatusCode, models.NewErrorResponse(apiErr, requestID(c)))
}

// respondInternal logs err with request context and hides it from the client
func respondInternal(c *gin.Context, log *logger.Logger, op string, err error) {
	log.StructuredError(err, map[string]interface{}{
		"request_id": requestID(c),
		"operation":  op,
	})
	respondError(c, models.NewAPIError(models.ErrCodeInternalError, models.MsgInternalServerError, http.StatusInternalServerError))
}

// bindingError converts a gin binding failure into field-level errors
func bindingError(err error) *models.APIError {
	apiErr := models.NewAPIError(models.ErrCodeInvalidRequest, "Invalid request parameters", http.StatusBadRequest)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			apiErr.WithField(strings.ToLower(fe.Field()), validationMessage(fe))
		}
		return apiErr
	}

	return apiErr.WithDetails(err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// productID parses the :id path parameter
func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, models.NewAPIError(models.ErrCodeInvalidRequest, "Invalid product ID", http.StatusBadRequest).
			WithField("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

func productNotFound(id int64) *models.APIError {
	return models.NewAPIError(models.ErrCodeProductNotFound,
		fmt.Sprintf("product with the id %d is not available", id), http.StatusNotFound)
}
