package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"booze/internal/domain/entities"
	"booze/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 24 * time.Hour

// SessionRedisRepository keeps session snapshots as JSON values in Redis.
// Every Save refreshes the TTL, so idle sessions expire on their own.
type SessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(client *redis.Client, ttl time.Duration) *SessionRedisRepository {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionRedisRepository{client: client, ttl: ttl}
}

func (r *SessionRedisRepository) Load(ctx context.Context, sessionID string) (entities.SessionSnapshot, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.SessionSnapshot{ID: sessionID}, nil
	}
	if err != nil {
		return entities.SessionSnapshot{}, fmt.Errorf("redis get failed: %w", err)
	}

	var snap entities.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return entities.SessionSnapshot{}, fmt.Errorf("unmarshal session failed: %w", err)
	}
	snap.ID = sessionID
	return snap, nil
}

func (r *SessionRedisRepository) Save(ctx context.Context, snapshot entities.SessionSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(snapshot.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// releaseSubmitLock deletes the lock only while it still carries the caller's
// token, so a checkout that outlived its TTL cannot drop a newer holder's lock.
var releaseSubmitLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (r *SessionRedisRepository) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := r.client.SetNX(ctx, submitLockKey(sessionID), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis setnx failed: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (r *SessionRedisRepository) ReleaseSubmitLock(ctx context.Context, sessionID, token string) error {
	if token == "" {
		return nil
	}
	if err := releaseSubmitLock.Run(ctx, r.client, []string{submitLockKey(sessionID)}, token).Err(); err != nil {
		return fmt.Errorf("redis release lock failed: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func submitLockKey(sessionID string) string {
	return fmt.Sprintf("checkout-lock:%s", sessionID)
}
