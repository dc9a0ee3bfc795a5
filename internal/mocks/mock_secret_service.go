package mocks

import (
	"context"
	"time"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// MockSecretService implements domain.SecretService for testing
type MockSecretService struct {
	IssueVerificationFunc  func(ctx context.Context, accountID uint) (string, time.Time, error)
	RedeemVerificationFunc func(ctx context.Context, code string) (uint, error)
	IssueResetFunc         func(ctx context.Context, accountID uint) (string, time.Time, error)
	RedeemResetFunc        func(ctx context.Context, token string) (uint, error)
}

// NewMockSecretService creates a new MockSecretService with default behaviors
func NewMockSecretService() *MockSecretService {
	return &MockSecretService{}
}

// IssueVerification mints a verification code
func (m *MockSecretService) IssueVerification(ctx context.Context, accountID uint) (string, time.Time, error) {
	if m.IssueVerificationFunc != nil {
		return m.IssueVerificationFunc(ctx, accountID)
	}
	return "123456", time.Now().Add(24 * time.Hour), nil
}

// RedeemVerification consumes a verification code
func (m *MockSecretService) RedeemVerification(ctx context.Context, code string) (uint, error) {
	if m.RedeemVerificationFunc != nil {
		return m.RedeemVerificationFunc(ctx, code)
	}
	// Default behavior: unknown code
	return 0, domain.ErrSecretInvalid
}

// IssueReset mints a reset token
func (m *MockSecretService) IssueReset(ctx context.Context, accountID uint) (string, time.Time, error) {
	if m.IssueResetFunc != nil {
		return m.IssueResetFunc(ctx, accountID)
	}
	return "reset-token", time.Now().Add(time.Hour), nil
}

// RedeemReset consumes a reset token
func (m *MockSecretService) RedeemReset(ctx context.Context, token string) (uint, error) {
	if m.RedeemResetFunc != nil {
		return m.RedeemResetFunc(ctx, token)
	}
	// Default behavior: unknown token
	return 0, domain.ErrSecretInvalid
}
