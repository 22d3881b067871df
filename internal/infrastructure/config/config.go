package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port int

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL           time.Duration
	SubmitLockTTL        time.Duration
	CatalogLookupTimeout time.Duration
}

// Load reads the service configuration from the environment. Invalid numbers
// and durations fall back to their defaults.
func Load() Config {
	return Config{
		Port: getEnvInt("PORT", 8080),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SessionTTL:           getEnvDuration("SESSION_TTL", 24*time.Hour),
		SubmitLockTTL:        getEnvDuration("SUBMIT_LOCK_TTL", 30*time.Second),
		CatalogLookupTimeout: getEnvDuration("CATALOG_LOOKUP_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
