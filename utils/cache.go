// File: webnest/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"webnest/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CSRFCacheClient holds issued anti-forgery tokens.
	CSRFCacheClient *redis.Client
	// GeoCacheClient caches per-IP geolocation lookups.
	GeoCacheClient *redis.Client
	// SessionCacheClient holds open quote customization sessions.
	SessionCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes every Redis client the server uses.
func InitRedis() {
	CSRFCacheClient = newClient(config.AppConfig.RedisCSRFDB)
	GeoCacheClient = newClient(config.AppConfig.RedisGeoDB)
	SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
}

// GetCSRFCacheClient returns the client for anti-forgery tokens.
func GetCSRFCacheClient() *redis.Client {
	if CSRFCacheClient == nil {
		CSRFCacheClient = newClient(config.AppConfig.RedisCSRFDB)
	}
	return CSRFCacheClient
}

// GetGeoCacheClient returns the client for geolocation caching.
func GetGeoCacheClient() *redis.Client {
	if GeoCacheClient == nil {
		GeoCacheClient = newClient(config.AppConfig.RedisGeoDB)
	}
	return GeoCacheClient
}

// GetSessionCacheClient returns the client for quote sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}
