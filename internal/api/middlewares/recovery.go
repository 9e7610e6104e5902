package middlewares

import (
	"fmt"
	"net/http"

	"product-catalog/internal/api/models"
	"product-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics. Panic values are logged, not returned.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.StructuredError(fmt.Errorf("panic: %v", recovered), map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		})

		apiErr := models.NewAPIError(models.ErrCodeInternalError, models.MsgInternalServerError, http.StatusInternalServerError)
		c.AbortWithStatusJSON(apiErr.StatusCode, models.NewErrorResponse(apiErr, c.GetString("request_id")))
	})
}
