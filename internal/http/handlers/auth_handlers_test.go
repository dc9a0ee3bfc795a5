package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
	"github.com/Bavikaran/Authentication-System-Backend/internal/mocks"
)

func setupHandlerTest(authSvc domain.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandlers(authSvc, zerolog.Nop(), false)

	r := gin.New()
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.POST("/api/auth/verify-email", h.VerifyEmail)
	r.POST("/api/auth/resend-verification", h.ResendVerification)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	r.PUT("/api/auth/reset-password/:token", h.ResetPassword)
	r.GET("/api/auth/check-auth", func(c *gin.Context) {
		// Stand-in for the auth middleware.
		c.Set("account_id", uint(42))
		h.CheckAuth(c)
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleResult() *domain.AuthResult {
	return &domain.AuthResult{
		Account: &domain.AccountView{
			ID:       42,
			Email:    "a@x.com",
			Name:     "A",
			Role:     domain.RoleStudent,
			Verified: false,
		},
		SessionToken: "signed-token",
		ExpiresAt:    time.Now().Add(7 * 24 * time.Hour),
	}
}

func TestAuthHandlers_Signup(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.SignupFunc = func(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
		assert.Equal(t, "a@x.com", in.Email)
		assert.Equal(t, domain.RoleStudent, in.Role)
		return sampleResult(), nil
	}
	r := setupHandlerTest(authSvc)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email":"a@x.com","password":"secret1","name":"A","userType":"student"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "User created successfully", resp.Message)
	assert.NotContains(t, resp.User, "password")
	assert.NotContains(t, w.Body.String(), "password")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandlers_Signup_BindingErrorsListEveryField(t *testing.T) {
	r := setupHandlerTest(mocks.NewMockAuthService())

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email":"not-an-email","password":"abc","name":"","userType":""}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Errors  []domain.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 4)

	fields := make(map[string]bool)
	for _, fe := range resp.Errors {
		fields[fe.Field] = true
	}
	for _, f := range []string{"email", "password", "name", "userType"} {
		assert.True(t, fields[f], "missing violation for %s", f)
	}
}

func TestAuthHandlers_Signup_Conflict(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.SignupFunc = func(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
		return nil, domain.ErrEmailTaken
	}
	r := setupHandlerTest(authSvc)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		`{"email":"a@x.com","password":"secret1","name":"A","userType":"student"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginFunc  func(ctx context.Context, email, password string) (*domain.AuthResult, error)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success sets cookie",
			body: `{"email":"a@x.com","password":"secret1"}`,
			loginFunc: func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
				return sampleResult(), nil
			},
			wantStatus: http.StatusOK,
			wantBody:   "Logged in successfully",
		},
		{
			name: "invalid credentials",
			body: `{"email":"a@x.com","password":"wrong"}`,
			loginFunc: func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
				return nil, domain.ErrInvalidCredentials
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid credentials",
		},
		{
			name: "unknown email reports the same message",
			body: `{"email":"ghost@x.com","password":"secret1"}`,
			loginFunc: func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
				return nil, domain.ErrInvalidCredentials
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.LoginFunc = tt.loginFunc
			r := setupHandlerTest(authSvc)

			w := doJSON(t, r, http.MethodPost, "/api/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthHandlers_Logout_ClearsCookie(t *testing.T) {
	r := setupHandlerTest(mocks.NewMockAuthService())

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAuthHandlers_VerifyEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.VerifyEmailFunc = func(ctx context.Context, code string) (*domain.AccountView, error) {
			assert.Equal(t, "123456", code)
			view := sampleResult().Account
			view.Verified = true
			return view, nil
		}
		r := setupHandlerTest(authSvc)

		w := doJSON(t, r, http.MethodPost, "/api/auth/verify-email", `{"code":"123456"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Email verified successfully")
	})

	t.Run("invalid or expired", func(t *testing.T) {
		r := setupHandlerTest(mocks.NewMockAuthService())

		w := doJSON(t, r, http.MethodPost, "/api/auth/verify-email", `{"code":"000000"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired")
	})
}

func TestAuthHandlers_ForgotPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.ForgotPasswordFunc = func(ctx context.Context, email string) error { return nil }
		r := setupHandlerTest(authSvc)

		w := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", `{"email":"a@x.com"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Password reset link sent")
	})

	t.Run("unknown email", func(t *testing.T) {
		r := setupHandlerTest(mocks.NewMockAuthService())

		w := doJSON(t, r, http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "user not found")
	})
}

func TestAuthHandlers_ResetPassword(t *testing.T) {
	t.Run("token comes from the path", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		var gotToken string
		authSvc.ResetPasswordFunc = func(ctx context.Context, token, newPassword, confirmPassword string) error {
			gotToken = token
			return nil
		}
		r := setupHandlerTest(authSvc)

		w := doJSON(t, r, http.MethodPut, "/api/auth/reset-password/tok123",
			`{"password":"newsecret","confirmPassword":"newsecret"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tok123", gotToken)
		assert.Contains(t, w.Body.String(), "Password reset successful")
	})

	t.Run("mismatch surfaces the violation list", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.ResetPasswordFunc = func(ctx context.Context, token, newPassword, confirmPassword string) error {
			ve := &domain.ValidationError{}
			return ve.Add("confirmPassword", "passwords do not match")
		}
		r := setupHandlerTest(authSvc)

		w := doJSON(t, r, http.MethodPut, "/api/auth/reset-password/tok123",
			`{"password":"newsecret","confirmPassword":"other"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "confirmPassword")
	})

	t.Run("replayed token", func(t *testing.T) {
		r := setupHandlerTest(mocks.NewMockAuthService())

		w := doJSON(t, r, http.MethodPut, "/api/auth/reset-password/used",
			`{"password":"newsecret","confirmPassword":"newsecret"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired")
	})
}

func TestAuthHandlers_CheckAuth(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.CheckAuthFunc = func(ctx context.Context, accountID uint) (*domain.AccountView, error) {
			assert.Equal(t, uint(42), accountID)
			return sampleResult().Account, nil
		}
		r := setupHandlerTest(authSvc)

		w := doJSON(t, r, http.MethodGet, "/api/auth/check-auth", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"a@x.com"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("account deleted after token issuance", func(t *testing.T) {
		r := setupHandlerTest(mocks.NewMockAuthService())

		w := doJSON(t, r, http.MethodGet, "/api/auth/check-auth", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "user not found")
	})
}

func TestAuthHandlers_UnexpectedErrorIsGeneric(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		return nil, assert.AnError
	}
	r := setupHandlerTest(authSvc)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server Error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
