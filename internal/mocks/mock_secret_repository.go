package mocks

import (
	"context"
	"time"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// MockSecretRepository implements domain.SecretRepository for testing
type MockSecretRepository struct {
	PutVerificationFunc     func(ctx context.Context, accountID uint, code string, ttl time.Duration) error
	ConsumeVerificationFunc func(ctx context.Context, code string) (uint, error)
	PutResetFunc            func(ctx context.Context, accountID uint, token string, ttl time.Duration) error
	ConsumeResetFunc        func(ctx context.Context, token string) (uint, error)
}

// NewMockSecretRepository creates a new MockSecretRepository
func NewMockSecretRepository() *MockSecretRepository {
	return &MockSecretRepository{}
}

func (m *MockSecretRepository) PutVerification(ctx context.Context, accountID uint, code string, ttl time.Duration) error {
	if m.PutVerificationFunc != nil {
		return m.PutVerificationFunc(ctx, accountID, code, ttl)
	}
	return nil
}

func (m *MockSecretRepository) ConsumeVerification(ctx context.Context, code string) (uint, error) {
	if m.ConsumeVerificationFunc != nil {
		return m.ConsumeVerificationFunc(ctx, code)
	}
	return 0, domain.ErrSecretInvalid
}

func (m *MockSecretRepository) PutReset(ctx context.Context, accountID uint, token string, ttl time.Duration) error {
	if m.PutResetFunc != nil {
		return m.PutResetFunc(ctx, accountID, token, ttl)
	}
	return nil
}

func (m *MockSecretRepository) ConsumeReset(ctx context.Context, token string) (uint, error) {
	if m.ConsumeResetFunc != nil {
		return m.ConsumeResetFunc(ctx, token)
	}
	return 0, domain.ErrSecretInvalid
}
