package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// SessionTTL is the lifetime of a plain browser session.
	SessionTTL = 24 * time.Hour
	// RememberTTL is the lifetime of a remember-me session.
	RememberTTL = 7 * 24 * time.Hour
)

// ErrSessionNotFound is returned when a token resolves to no live session.
var ErrSessionNotFound = errors.New("session not found")

// SessionService issues and resolves opaque session tokens backed by
// Redis. Only an HMAC of the token is stored server-side, so the
// keyspace never contains a usable bearer token.
type SessionService interface {
	Create(ctx context.Context, userID int64, remember bool) (token string, ttl time.Duration, err error)
	Resolve(ctx context.Context, token string) (userID int64, err error)
	Destroy(ctx context.Context, token string) error
}

type sessionService struct {
	redis  *redis.Client
	secret []byte
}

// NewSessionService creates a new SessionService instance.
func NewSessionService(redisClient *redis.Client, secret string) SessionService {
	return &sessionService{
		redis:  redisClient,
		secret: []byte(secret),
	}
}

func (s *sessionService) Create(ctx context.Context, userID int64, remember bool) (string, time.Duration, error) {
	token := uuid.NewString()
	ttl := SessionTTL
	if remember {
		ttl = RememberTTL
	}

	err := s.redis.Set(ctx, s.key(token), strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		return "", 0, fmt.Errorf("failed to store session: %w", err)
	}
	return token, ttl, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (int64, error) {
	value, err := s.redis.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up session: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", value, err)
	}
	return userID, nil
}

func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (s *sessionService) key(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return "session:" + hex.EncodeToString(mac.Sum(nil))
}
