package mocks

import (
	"context"
	"time"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc         func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.Account, error)
	UpdateFunc         func(ctx context.Context, account *domain.Account) error
	MarkVerifiedFunc   func(ctx context.Context, accountID uint) error
	UpdatePasswordFunc func(ctx context.Context, accountID uint, passwordHash string) error
	TouchLastLoginFunc func(ctx context.Context, accountID uint, at time.Time) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success with a synthetic id
	account.ID = 1
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// Update updates an existing account
func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

// MarkVerified flips the verified flag
func (m *MockAccountRepository) MarkVerified(ctx context.Context, accountID uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, accountID)
	}
	return nil
}

// UpdatePassword replaces the stored credential
func (m *MockAccountRepository) UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, accountID, passwordHash)
	}
	return nil
}

// TouchLastLogin updates the last-authenticated timestamp
func (m *MockAccountRepository) TouchLastLogin(ctx context.Context, accountID uint, at time.Time) error {
	if m.TouchLastLoginFunc != nil {
		return m.TouchLastLoginFunc(ctx, accountID, at)
	}
	return nil
}
