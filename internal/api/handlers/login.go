package handlers

import (
	"errors"
	"net/http"

	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/models"
	"product-catalog/internal/auth"

	"github.com/gin-gonic/gin"
)

// Login exchanges form credentials for a bearer token. The body is the bare
// token object rather than the usual envelope so OAuth2 password-flow
// clients can read it directly.
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			respondError(c, bindingError(err))
			return
		}

		token, err := services.Authenticator().Login(c.Request.Context(), req.Username, req.Password)
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			respondError(c, models.NewAPIError(models.ErrCodeUserNotFound, models.MsgUserNotFound, http.StatusNotFound))
			return
		case errors.Is(err, auth.ErrInvalidPassword):
			respondError(c, models.NewAPIError(models.ErrCodeInvalidPassword, models.MsgInvalidPassword, http.StatusNotFound))
			return
		case err != nil:
			respondInternal(c, services.GetLogger(), "login", err)
			return
		}

		c.JSON(http.StatusOK, models.TokenResponse{
			AccessToken: token.AccessToken,
			TokenType:   token.TokenType,
		})
	}
}
