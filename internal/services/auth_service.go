package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

const minPasswordLength = 6

// AuthServiceImpl implements domain.AuthService. Each operation is a
// single pass over the account record; concurrent operations on the
// same account are last-writer-wins.
type AuthServiceImpl struct {
	accounts    domain.AccountRepository
	secrets     domain.SecretService
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	notifier    domain.NotificationService
	clientURL   string
}

// NewAuthService creates a new auth service
func NewAuthService(
	accounts domain.AccountRepository,
	secrets domain.SecretService,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifier domain.NotificationService,
	clientURL string,
) domain.AuthService {
	return &AuthServiceImpl{
		accounts:    accounts,
		secrets:     secrets,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		notifier:    notifier,
		clientURL:   clientURL,
	}
}

// NormalizeEmail lowercases and trims an email address so lookups and
// the unique index agree on a single spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup implements domain.AuthService. The account starts unverified;
// the verification email must be dispatched before the call succeeds.
func (s *AuthServiceImpl) Signup(ctx context.Context, in domain.SignupInput) (*domain.AuthResult, error) {
	in.Email = NormalizeEmail(in.Email)

	if err := validateSignup(in); err != nil {
		return nil, err
	}

	hash, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		Verified:     false,
		LastLogin:    time.Now(),
	}

	// The unique index decides the race between two concurrent signups.
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	code, _, err := s.secrets.IssueVerification(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}

	if err := s.notifier.SendVerification(account.Email, code); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenSvc.Generate(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		Account:      account.ToView(),
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

// VerifyEmail implements domain.AuthService. A consumed, expired or
// unknown code all fail the same way; re-verifying an already verified
// account falls out of that rule because its code no longer exists.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, code string) (*domain.AccountView, error) {
	accountID, err := s.secrets.RedeemVerification(ctx, code)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.MarkVerified(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to mark account verified: %w", err)
	}
	account.Verified = true

	if err := s.notifier.SendWelcome(account.Email, account.Name); err != nil {
		return nil, err
	}

	return account.ToView(), nil
}

// ResendVerification implements domain.AuthService. The fresh code
// supersedes the previous one.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}

	if account.Verified {
		return domain.ErrAlreadyVerified
	}

	code, _, err := s.secrets.IssueVerification(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to issue verification code: %w", err)
	}

	return s.notifier.SendVerification(account.Email, code)
}

// Login implements domain.AuthService. An unknown email and a wrong
// password return the identical error so accounts cannot be
// enumerated. Verification is not required to log in.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	account, err := s.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.accounts.TouchLastLogin(ctx, account.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	account.LastLogin = now

	token, expiresAt, err := s.tokenSvc.Generate(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{
		Account:      account.ToView(),
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

// ForgotPassword implements domain.AuthService. The reset flow is
// independent of the verification state.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	account, err := s.accounts.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}

	token, _, err := s.secrets.IssueReset(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(s.clientURL, "/"), token)
	return s.notifier.SendPasswordReset(account.Email, resetURL)
}

// ResetPassword implements domain.AuthService. Input is validated
// before the store is touched; the token is single-use.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	ve := &domain.ValidationError{}
	if len(newPassword) < minPasswordLength {
		ve.Add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if newPassword != confirmPassword {
		ve.Add("confirmPassword", "passwords do not match")
	}
	if !ve.Empty() {
		return ve
	}

	accountID, err := s.secrets.RedeemReset(ctx, token)
	if err != nil {
		return err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return s.notifier.SendResetSuccess(account.Email)
}

// CheckAuth implements domain.AuthService
func (s *AuthServiceImpl) CheckAuth(ctx context.Context, accountID uint) (*domain.AccountView, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.ToView(), nil
}

// validateSignup aggregates every field violation instead of stopping
// at the first.
func validateSignup(in domain.SignupInput) error {
	ve := &domain.ValidationError{}

	if in.Email == "" {
		ve.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		ve.Add("email", "email is not well-formed")
	}

	if len(in.Password) < minPasswordLength {
		ve.Add("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "name is required")
	}

	if !domain.ValidRole(in.Role) {
		ve.Add("userType", "userType must be student or teacher")
	}

	if !ve.Empty() {
		return ve
	}
	return nil
}
