package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/repositories"
	"planora/pkg/config"
	"planora/pkg/logger"
)

const redisKeyPrefix = "session:"

var _ repositories.SessionStore = (*RedisStore)(nil)

// RedisStore เก็บ session ใน Redis - TTL จัดการหมดอายุให้เอง
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis session store connected", "url", cfg.URL)

	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Put(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKeyPrefix+session.ID, data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+sessionID).Err()
}

// Close ปิด Redis connection (เรียกตอน shutdown)
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
