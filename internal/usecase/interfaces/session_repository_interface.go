package interfaces

import (
	"context"
	"time"

	"booze/internal/domain/entities"
)

// ISessionRepository keeps shopper session snapshots between requests.
//
// Load returns a snapshot with only the ID set when nothing is stored yet.
// AcquireSubmitLock reports false when another checkout for the same session
// still holds the lock. On success it returns the holder token that
// ReleaseSubmitLock needs; a release with a stale token leaves the lock alone.

type ISessionRepository interface {
	Load(ctx context.Context, sessionID string) (entities.SessionSnapshot, error)
	Save(ctx context.Context, snapshot entities.SessionSnapshot) error
	Delete(ctx context.Context, sessionID string) error
	AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (token string, acquired bool, err error)
	ReleaseSubmitLock(ctx context.Context, sessionID, token string) error
}
