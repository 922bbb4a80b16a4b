package middleware

import (
	"net/http"
	"strings"

	"careerhub-backend/internal/delivery/http/response"
	"careerhub-backend/internal/domain"
	"careerhub-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the session credential by signature and expiry and
// puts the account id and role on the request context. Account existence is
// NOT checked here; the usecases resolve the account and answer 404 when it
// is gone.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
