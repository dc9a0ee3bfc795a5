package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// AuthMW resolves the session token on protected routes.
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates the session validation middleware
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// RequireAuth extracts the session token from the Authorization header
// or the session cookie. A missing token is 401, a bad token is 400;
// the two cases are reported distinctly.
func (m *AuthMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized - no token provided",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenSvc.Validate(token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("account_role", claims.Role)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
