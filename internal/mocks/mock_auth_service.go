package mocks

import (
	"context"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// MockAuthService implements domain.AuthService for handler tests
type MockAuthService struct {
	SignupFunc             func(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error)
	VerifyEmailFunc        func(ctx context.Context, code string) (*domain.AccountView, error)
	ResendVerificationFunc func(ctx context.Context, email string) error
	LoginFunc              func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	ForgotPasswordFunc     func(ctx context.Context, email string) error
	ResetPasswordFunc      func(ctx context.Context, token, newPassword, confirmPassword string) error
	CheckAuthFunc          func(ctx context.Context, accountID uint) (*domain.AccountView, error)
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Signup(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return nil, domain.ErrEmailTaken
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, code string) (*domain.AccountView, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, code)
	}
	return nil, domain.ErrSecretInvalid
}

func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return domain.ErrAccountNotFound
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return domain.ErrAccountNotFound
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword, confirmPassword)
	}
	return domain.ErrSecretInvalid
}

func (m *MockAuthService) CheckAuth(ctx context.Context, accountID uint) (*domain.AccountView, error) {
	if m.CheckAuthFunc != nil {
		return m.CheckAuthFunc(ctx, accountID)
	}
	return nil, domain.ErrAccountNotFound
}
