// Package session keeps authenticated sessions in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/personal-finance/tracker/internal/application/adapter"
	"github.com/personal-finance/tracker/internal/domain/entity"
	domainerror "github.com/personal-finance/tracker/internal/domain/error"
)

const keyPrefix = "session:"

// redisStore implements the adapter.SessionStore interface.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a session store whose entries expire after ttl of inactivity.
func NewRedisStore(client *redis.Client, ttl time.Duration) adapter.SessionStore {
	return &redisStore{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and opens a client. password and db override the URL when set.
func NewRedisClient(url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}
	return redis.NewClient(opts), nil
}

func key(id string) string {
	return keyPrefix + id
}

// Save writes the session and resets its expiry.
func (s *redisStore) Save(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, key(session.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Refresh rewrites a session only if it still exists, so a request that raced a
// logout cannot bring the session back.
func (s *redisStore) Refresh(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	stored, err := s.client.SetXX(ctx, key(session.ID), payload, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	if !stored {
		return domainerror.ErrSessionNotFound
	}
	return nil
}

// Find loads a session by id.
func (s *redisStore) Find(ctx context.Context, id string) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Ping checks connectivity to Redis.
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
