package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CSRFTokenTTL bounds how long an issued token stays valid. The UI
// fetches a fresh token on view-open, so a short window is enough.
const CSRFTokenTTL = 15 * time.Minute

// CSRFStore issues and consumes one-time anti-forgery tokens backed by
// Redis. Tokens expire on their own; a consumed token cannot be reused.
type CSRFStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewCSRFStore returns a store over the shared CSRF Redis client.
func NewCSRFStore() *CSRFStore {
	return &CSRFStore{Client: GetCSRFCacheClient(), TTL: CSRFTokenTTL}
}

// Issue generates a token and caches it with a TTL.
func (s *CSRFStore) Issue(ctx context.Context) (string, error) {
	token := uuid.New().String()
	key := fmt.Sprintf("csrf:%s", token)
	if err := s.Client.Set(ctx, key, "1", s.TTL).Err(); err != nil {
		GetLogger().Error("Failed to cache CSRF token", zap.Error(err))
		return "", fmt.Errorf("failed to issue CSRF token: %w", err)
	}
	return token, nil
}

// Consume validates a token and deletes it so it cannot be replayed.
func (s *CSRFStore) Consume(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("CSRF token missing")
	}
	key := fmt.Sprintf("csrf:%s", token)
	if err := s.Client.GetDel(ctx, key).Err(); err != nil {
		if err == redis.Nil {
			return fmt.Errorf("CSRF token not found or expired")
		}
		return fmt.Errorf("failed to verify CSRF token: %w", err)
	}
	return nil
}
