// Package repositories provides the storage-facing layer. The only state
// this service persists is the session credential set; everything else
// lives in the remote backend or on-chain.
package repositories

import (
	"context"
	"time"

	apperrors "hawamoni/internal/errors"
	"hawamoni/internal/models"

	"github.com/redis/go-redis/v9"
)

// Hash field names mirror the fixed storage keys the web client used for
// its persisted credentials.
const (
	fieldAccessToken  = "hawamoni_token"
	fieldRefreshToken = "hawamoni_refresh_token"
	fieldEmail        = "hawamoni_user_email"

	sessionKeyPrefix = "hawamoni:session:"

	DefaultSessionTTL = 7 * 24 * time.Hour
)

// SessionStore wraps all access to persisted credentials behind explicit
// load/save/clear operations; nothing else reads or writes them.
type SessionStore interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context, id string) (*models.Session, error)
	Clear(ctx context.Context, id string) error
	Close() error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &redisSessionStore{client: client, ttl: ttl}
}

func (r *redisSessionStore) Save(ctx context.Context, s models.Session) error {
	key := sessionKeyPrefix + s.ID
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		fieldAccessToken:  s.AccessToken,
		fieldRefreshToken: s.RefreshToken,
		fieldEmail:        s.Email,
	})
	pipe.Expire(ctx, key, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisSessionStore) Load(ctx context.Context, id string) (*models.Session, error) {
	fields, err := r.client.HGetAll(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, apperrors.ErrSessionNotFound
	}
	return &models.Session{
		ID:           id,
		Email:        fields[fieldEmail],
		AccessToken:  fields[fieldAccessToken],
		RefreshToken: fields[fieldRefreshToken],
	}, nil
}

// Clear removes every credential field in one DEL, so the caller never
// observes a half-cleared session.
func (r *redisSessionStore) Clear(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (r *redisSessionStore) Close() error {
	return r.client.Close()
}
