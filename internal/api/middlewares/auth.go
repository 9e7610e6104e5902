package middlewares

import (
	"errors"
	"net/http"

	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/models"
	"product-catalog/internal/auth"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the context key holding the authenticated auth.Principal
const PrincipalKey = "principal"

// AuthRequired middleware validates the bearer token in the Authorization header
func AuthRequired(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := services.Guard().Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// WSAuthRequired middleware for WebSocket authentication. Browsers cannot set
// headers on a WebSocket handshake, so the token comes from ?token=.
func WSAuthRequired(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := services.Guard().AuthenticateToken(c.Query("token"))
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// CurrentPrincipal returns the principal stored by AuthRequired
func CurrentPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}

func setPrincipal(c *gin.Context, principal auth.Principal) {
	c.Set(PrincipalKey, principal)
	c.Set("username", principal.Username)
}

func abortUnauthorized(c *gin.Context, err error) {
	apiErr := models.NewAPIError(models.ErrCodeInvalidToken, models.MsgInvalidCredentials, http.StatusUnauthorized)
	if errors.Is(err, auth.ErrMissingToken) {
		apiErr = models.NewAPIError(models.ErrCodeUnauthorized, models.MsgNotAuthenticated, http.StatusUnauthorized)
	}

	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(apiErr.StatusCode, models.NewErrorResponse(apiErr, c.GetString("request_id")))
}
