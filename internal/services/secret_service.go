package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// resetTokenBytes gives a 40-char hex token, 160 bits of entropy.
const resetTokenBytes = 20

// SecretServiceImpl implements domain.SecretService. It mints the
// time-bounded secrets and delegates their storage to the repository,
// which enforces the one-active-secret-per-account invariant.
type SecretServiceImpl struct {
	secrets domain.SecretRepository
	config  SecretConfig
}

type SecretConfig struct {
	CodeLength      int
	VerificationTTL time.Duration
	ResetTTL        time.Duration
}

// NewSecretService creates a new secret service
func NewSecretService(secrets domain.SecretRepository, config SecretConfig) domain.SecretService {
	return &SecretServiceImpl{
		secrets: secrets,
		config:  config,
	}
}

// IssueVerification implements domain.SecretService. A fresh code
// supersedes any code still active for the account.
func (s *SecretServiceImpl) IssueVerification(ctx context.Context, accountID uint) (string, time.Time, error) {
	code, err := s.generateCode()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.secrets.PutVerification(ctx, accountID, code, s.config.VerificationTTL); err != nil {
		return "", time.Time{}, err
	}

	return code, time.Now().Add(s.config.VerificationTTL), nil
}

// RedeemVerification implements domain.SecretService
func (s *SecretServiceImpl) RedeemVerification(ctx context.Context, code string) (uint, error) {
	return s.secrets.ConsumeVerification(ctx, code)
}

// IssueReset implements domain.SecretService
func (s *SecretServiceImpl) IssueReset(ctx context.Context, accountID uint) (string, time.Time, error) {
	token, err := s.generateToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.secrets.PutReset(ctx, accountID, token, s.config.ResetTTL); err != nil {
		return "", time.Time{}, err
	}

	return token, time.Now().Add(s.config.ResetTTL), nil
}

// RedeemReset implements domain.SecretService
func (s *SecretServiceImpl) RedeemReset(ctx context.Context, token string) (uint, error) {
	return s.secrets.ConsumeReset(ctx, token)
}

// generateCode draws each decimal digit independently and uniformly
// from crypto/rand.
func (s *SecretServiceImpl) generateCode() (string, error) {
	digits := make([]byte, s.config.CodeLength)

	for i := 0; i < s.config.CodeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}

// generateToken returns a hex-encoded opaque token from a
// cryptographically secure source.
func (s *SecretServiceImpl) generateToken() (string, error) {
	bytes := make([]byte, resetTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
