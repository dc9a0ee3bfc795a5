package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// AuthHandlers translates HTTP requests into auth service calls and
// maps the domain error taxonomy back onto status codes.
type AuthHandlers struct {
	authSvc      domain.AuthService
	logger       zerolog.Logger
	cookieSecure bool
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, logger zerolog.Logger, cookieSecure bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

// sessionCookie is the cookie carrying the session token.
const sessionCookie = "token"

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest represents the verify-email request body
type VerifyEmailRequest struct {
	Code string `json:"code" binding:"required"`
}

// EmailRequest carries a bare email field (resend, forgot-password)
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the reset-password request body
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), domain.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.UserType,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, result)
	h.logger.Info().Str("email", result.Account.Email).Msg("user signed up")

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    result.Account,
	})
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}

	view, err := h.authSvc.VerifyEmail(c.Request.Context(), req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info().Str("email", view.Email).Msg("email verified")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email verified successfully",
	})
}

// ResendVerification handles POST /api/auth/resend-verification
func (h *AuthHandlers) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}

	if err := h.authSvc.ResendVerification(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification code resent",
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.setSessionCookie(c, result)
	h.logger.Info().Str("email", result.Account.Email).Msg("user logged in")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"user":    result.Account,
	})
}

// Logout handles POST /api/auth/logout. Sessions are stateless, so the
// only effect is telling the caller to drop the cookie.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset link sent to your email",
	})
}

// ResetPassword handles PUT /api/auth/reset-password/:token
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindingError(c, err)
		return
	}

	token := c.Param("token")
	if err := h.authSvc.ResetPassword(c.Request.Context(), token, req.Password, req.ConfirmPassword); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successful",
	})
}

// CheckAuth handles GET /api/auth/check-auth. The auth middleware has
// already resolved the token into an account id.
func (h *AuthHandlers) CheckAuth(c *gin.Context) {
	accountID, exists := c.Get("account_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": domain.ErrNoToken.Error()})
		return
	}

	view, err := h.authSvc.CheckAuth(c.Request.Context(), accountID.(uint))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    view,
	})
}

func (h *AuthHandlers) setSessionCookie(c *gin.Context, result *domain.AuthResult) {
	c.SetSameSite(http.SameSiteStrictMode)
	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetCookie(sessionCookie, result.SessionToken, maxAge, "/", "", h.cookieSecure, true)
}

func (h *AuthHandlers) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.cookieSecure, true)
}

// respondBindingError turns gin binding failures into the same shape as
// domain validation errors, listing every violated field.
func (h *AuthHandlers) respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{
				Field:   jsonField(fe.Field()),
				Message: bindingMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  fields,
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
}

// respondError owns the taxonomy-to-status mapping. Anything outside
// the taxonomy becomes a generic 500 without leaking internals.
func (h *AuthHandlers) respondError(c *gin.Context, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSecretInvalid),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrAlreadyVerified):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
	}
}

// jsonField maps a request struct field name to its json tag spelling.
func jsonField(name string) string {
	switch name {
	case "UserType":
		return "userType"
	case "ConfirmPassword":
		return "confirmPassword"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Name":
		return "name"
	case "Code":
		return "code"
	default:
		return name
	}
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
