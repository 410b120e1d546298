package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edustack/homework-help-api/internal/models"
	appErrors "github.com/edustack/homework-help-api/pkg/errors"
	"github.com/edustack/homework-help-api/pkg/response"
)

// ContextUserKey is the gin context key storing the authenticated claims.
const ContextUserKey = "currentUser"

type tokenVerifier interface {
	Verify(tokenString string) (*models.AuthClaims, error)
}

// JWT protects routes by requiring a valid access token from the external
// identity provider.
func JWT(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}
