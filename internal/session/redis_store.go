// internal/session/redis_store.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/db"
)

type redisStore struct {
	rdb *db.RedisDB
}

// NewRedisStore returns a Store backed by Redis. TTLs map directly onto key
// expiry, so no cleanup job is needed.
func NewRedisStore(rdb *db.RedisDB) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	if err := s.rdb.SetSession(ctx, sess.ID, sess, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	if err := s.rdb.GetSession(ctx, id, &sess); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	sess.ID = id
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *redisStore) Refresh(ctx context.Context, id string, ttl time.Duration) error {
	return s.rdb.RefreshSession(ctx, id, ttl)
}
