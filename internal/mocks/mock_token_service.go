package mocks

import (
	"time"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(accountID uint, role string) (string, time.Time, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a session token
func (m *MockTokenService) Generate(accountID uint, role string) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(accountID, role)
	}
	return "session-token", time.Now().Add(7 * 24 * time.Hour), nil
}

// Validate verifies a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: reject
	return nil, domain.ErrTokenInvalid
}
