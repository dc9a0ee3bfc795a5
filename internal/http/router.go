package httpx

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Bavikaran/Authentication-System-Backend/internal/http/handlers"
	"github.com/Bavikaran/Authentication-System-Backend/internal/http/middleware"
)

// BuildRouter wires the auth surface. Routing, CORS and cookie
// mechanics live here; the handlers only translate between JSON and
// the auth service.
func BuildRouter(ah *handlers.AuthHandlers, authMW *middleware.AuthMW, clientURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if clientURL != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{clientURL},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/verify-email", ah.VerifyEmail)
	auth.POST("/resend-verification", ah.ResendVerification)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.PUT("/reset-password/:token", ah.ResetPassword)
	auth.GET("/check-auth", authMW.RequireAuth(), ah.CheckAuth)

	return r
}
