package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobportal/portal-client/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

const (
	tokenKey   = "portal:session:token"
	profileKey = "portal:session:profile"
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps the session slots in Redis, for setups where several
// terminals on the same host share one logged-in session.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, timeout: defaultTimeout}
}

func (s *RedisStore) Token() (string, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	token, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: read token: %w", err)
	}
	return token, nil
}

func (s *RedisStore) SetToken(token string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Set(ctx, tokenKey, token, 0).Err(); err != nil {
		return fmt.Errorf("session: store token: %w", err)
	}
	return nil
}

func (s *RedisStore) Profile() (*domain.Profile, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	raw, err := s.client.Get(ctx, profileKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read profile: %w", err)
	}
	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("session: decode profile: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) SetProfile(profile *domain.Profile) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if profile == nil {
		if err := s.client.Del(ctx, profileKey).Err(); err != nil {
			return fmt.Errorf("session: clear profile: %w", err)
		}
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("session: encode profile: %w", err)
	}
	if err := s.client.Set(ctx, profileKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("session: store profile: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.client.Del(ctx, tokenKey, profileKey).Err(); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}

func (s *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
