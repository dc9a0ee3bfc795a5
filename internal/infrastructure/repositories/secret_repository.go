package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
)

// SecretRepositoryImpl implements domain.SecretRepository using Redis.
// Each secret is held under two keys: value->account for redemption and
// account->value so a fresh secret supersedes the previous one. TTL
// expiry clears both, so an expired code is indistinguishable from a
// wrong one.
type SecretRepositoryImpl struct {
	client *redis.Client
}

const (
	verifyCodePrefix    = "verify:code:"
	verifyAccountPrefix = "verify:acct:"
	resetTokenPrefix    = "reset:token:"
	resetAccountPrefix  = "reset:acct:"
)

// NewSecretRepository creates a new Redis-backed secret repository
func NewSecretRepository(client *redis.Client) domain.SecretRepository {
	return &SecretRepositoryImpl{client: client}
}

// PutVerification implements domain.SecretRepository
func (r *SecretRepositoryImpl) PutVerification(ctx context.Context, accountID uint, code string, ttl time.Duration) error {
	return r.put(ctx, verifyCodePrefix, verifyAccountPrefix, accountID, code, ttl)
}

// ConsumeVerification implements domain.SecretRepository
func (r *SecretRepositoryImpl) ConsumeVerification(ctx context.Context, code string) (uint, error) {
	return r.consume(ctx, verifyCodePrefix, verifyAccountPrefix, code)
}

// PutReset implements domain.SecretRepository
func (r *SecretRepositoryImpl) PutReset(ctx context.Context, accountID uint, token string, ttl time.Duration) error {
	return r.put(ctx, resetTokenPrefix, resetAccountPrefix, accountID, token, ttl)
}

// ConsumeReset implements domain.SecretRepository
func (r *SecretRepositoryImpl) ConsumeReset(ctx context.Context, token string) (uint, error) {
	return r.consume(ctx, resetTokenPrefix, resetAccountPrefix, token)
}

func (r *SecretRepositoryImpl) put(ctx context.Context, valuePrefix, accountPrefix string, accountID uint, value string, ttl time.Duration) error {
	accountKey := accountPrefix + strconv.FormatUint(uint64(accountID), 10)

	// Drop the previously active secret, if any, so at most one is live
	// per account.
	if old, err := r.client.Get(ctx, accountKey).Result(); err == nil {
		if err := r.client.Del(ctx, valuePrefix+old).Err(); err != nil {
			return fmt.Errorf("failed to supersede secret: %w", err)
		}
	} else if err != redis.Nil {
		return fmt.Errorf("failed to look up active secret: %w", err)
	}

	if err := r.client.Set(ctx, valuePrefix+value, accountID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store secret: %w", err)
	}
	if err := r.client.Set(ctx, accountKey, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store secret owner: %w", err)
	}
	return nil
}

func (r *SecretRepositoryImpl) consume(ctx context.Context, valuePrefix, accountPrefix, value string) (uint, error) {
	raw, err := r.client.GetDel(ctx, valuePrefix+value).Result()
	if err == redis.Nil {
		return 0, domain.ErrSecretInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("failed to redeem secret: %w", err)
	}

	accountID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("corrupt secret record: %w", err)
	}

	r.client.Del(ctx, accountPrefix+raw)

	return uint(accountID), nil
}
