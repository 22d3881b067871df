package database

import (
	"context"
	"log"

	"booze/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the client backing shopper sessions and the checkout
// lock. The process exits if the first ping fails.
func ConnectRedis(ctx context.Context, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis connection failed addr=%s: %v", cfg.RedisAddr, err)
	}
	log.Printf("[infra][redis] ping succeeded addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return client
}
