package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
	infraauth "github.com/Bavikaran/Authentication-System-Backend/internal/infrastructure/auth"
	"github.com/Bavikaran/Authentication-System-Backend/internal/mocks"
)

func setupAuthTest(tokenSvc domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMW(tokenSvc)

	r := gin.New()
	r.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		id, _ := c.Get("account_id")
		role, _ := c.Get("account_role")
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func TestAuthMW_MissingToken(t *testing.T) {
	r := setupAuthTest(mocks.NewMockTokenService())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no token provided")
}

func TestAuthMW_InvalidToken(t *testing.T) {
	r := setupAuthTest(mocks.NewMockTokenService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMW_MalformedHeader(t *testing.T) {
	r := setupAuthTest(mocks.NewMockTokenService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// A non-bearer header counts as no token at all.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMW_BearerToken(t *testing.T) {
	tokenSvc := infraauth.NewJWTService("test-secret", "auth-backend", time.Hour)
	token, _, err := tokenSvc.Generate(42, domain.RoleTeacher)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	r := setupAuthTest(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), `"role":"teacher"`)
}

func TestAuthMW_CookieToken(t *testing.T) {
	tokenSvc := infraauth.NewJWTService("test-secret", "auth-backend", time.Hour)
	token, _, err := tokenSvc.Generate(7, domain.RoleStudent)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	r := setupAuthTest(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestAuthMW_ExpiredToken(t *testing.T) {
	tokenSvc := infraauth.NewJWTService("test-secret", "auth-backend", -time.Minute)
	token, _, err := tokenSvc.Generate(42, domain.RoleStudent)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	r := setupAuthTest(infraauth.NewJWTService("test-secret", "auth-backend", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"role allowed", domain.RoleTeacher, []string{domain.RoleTeacher}, http.StatusOK},
		{"one of several", domain.RoleStudent, []string{domain.RoleTeacher, domain.RoleStudent}, http.StatusOK},
		{"role denied", domain.RoleStudent, []string{domain.RoleTeacher}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/gated", func(c *gin.Context) {
				c.Set("account_role", tt.role)
			}, RequireRole(tt.allowed...), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated", RequireRole(domain.RoleTeacher), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
