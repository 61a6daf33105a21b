package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SessionService stores web sessions in Redis as an opaque token mapped to
// the authenticated user id. The browser only ever sees the token.
type SessionService struct {
	log         *logrus.Logger
	redisClient *redis.Client
	expiry      time.Duration
}

func NewSessionService(log *logrus.Logger, redisClient *redis.Client, expiry time.Duration) *SessionService {
	return &SessionService{
		log:         log,
		redisClient: redisClient,
		expiry:      expiry,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create registers a new session for the user and returns its token.
func (s *SessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.New().String()
	if err := s.redisClient.Set(ctx, sessionKey(token), userID.String(), s.expiry).Err(); err != nil {
		s.log.Warnf("Failed to store session: %+v", err)
		return "", err
	}
	return token, nil
}

// Get resolves a session token to a user id. The second return value is
// false when the session does not exist or has expired.
func (s *SessionService) Get(ctx context.Context, token string) (uuid.UUID, bool, error) {
	value, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return uuid.Nil, false, nil
	}
	if err != nil {
		s.log.Warnf("Failed to read session: %+v", err)
		return uuid.Nil, false, err
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, err
	}
	return userID, true, nil
}

// Destroy removes the session. Destroying an unknown token is a no-op.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
		s.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (s *SessionService) Expiry() time.Duration {
	return s.expiry
}
