// database/redis.go - Optional read cache for the static quiz catalog
package database

import (
	"context"
	"log"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis when REDIS_ADDR is configured. Returns nil when
// unconfigured or unreachable; callers treat a nil client as "cache disabled".
func InitRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: Redis at %s unreachable, quiz cache disabled: %v", cfg.RedisAddr, err)
		return nil
	}

	log.Println("✅ Redis connection successfully established")
	return rdb
}
