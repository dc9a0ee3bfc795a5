package database

import "github.com/redis/go-redis/v9"

// NewRedis creates a new Redis client
func NewRedis(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}
