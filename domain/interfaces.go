package domain

import (
	"context"
	"time"
)

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uint) (*Account, error)
	Update(ctx context.Context, account *Account) error
	MarkVerified(ctx context.Context, accountID uint) error
	UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error
	TouchLastLogin(ctx context.Context, accountID uint, at time.Time) error
}

// SecretRepository stores time-bounded one-time secrets. At most one
// secret of each kind is active per account; storing a new one
// supersedes the previous, and consuming clears it.
type SecretRepository interface {
	PutVerification(ctx context.Context, accountID uint, code string, ttl time.Duration) error
	ConsumeVerification(ctx context.Context, code string) (uint, error)
	PutReset(ctx context.Context, accountID uint, token string, ttl time.Duration) error
	ConsumeReset(ctx context.Context, token string) (uint, error)
}

// SecretService issues and redeems verification codes and reset tokens
type SecretService interface {
	IssueVerification(ctx context.Context, accountID uint) (code string, expiresAt time.Time, err error)
	RedeemVerification(ctx context.Context, code string) (uint, error)
	IssueReset(ctx context.Context, accountID uint) (token string, expiresAt time.Time, err error)
	RedeemReset(ctx context.Context, token string) (uint, error)
}

// AuthService defines the authentication state machine
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	VerifyEmail(ctx context.Context, code string) (*AccountView, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	CheckAuth(ctx context.Context, accountID uint) (*AccountView, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(accountID uint, role string) (token string, expiresAt time.Time, err error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService delivers out-of-band messages. Every method may
// fail and the failure must surface to the caller.
type NotificationService interface {
	SendVerification(email, code string) error
	SendWelcome(email, name string) error
	SendPasswordReset(email, resetURL string) error
	SendResetSuccess(email string) error
}
