package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"homefinder/internal/config"
	"homefinder/internal/domain/document"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "doc:"

// DocumentStore keeps each document as a JSON string under doc:<collection>:<key>
// with no expiry.
type DocumentStore struct {
	client *goredis.Client
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

// Connect dials Redis and pings it. Unlike a cache, the store refuses to start
// without a reachable server.
func Connect(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*DocumentStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewDocumentStore(client, logger), nil
}

func NewDocumentStore(client *goredis.Client, logger *zap.Logger) *DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentStore{client: client, logger: logger.Named("redis_store")}
}

func Key(collection, key string) string {
	return keyPrefix + collection + ":" + key
}

func (s *DocumentStore) WriteDocument(ctx context.Context, collection, key string, record document.Record) error {
	if err := document.ValidateKey(collection, key); err != nil {
		return err
	}
	if record == nil {
		record = document.Record{}
	}
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, Key(collection, key), b, 0).Err(); err != nil {
		s.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (s *DocumentStore) ReadDocument(ctx context.Context, collection, key string) (document.Record, error) {
	if err := document.ValidateKey(collection, key); err != nil {
		return nil, err
	}
	b, err := s.client.Get(ctx, Key(collection, key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, document.ErrNotFound
		}
		s.warnUnavailableOnce(err)
		return nil, err
	}

	var rec document.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *DocumentStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *DocumentStore) warnUnavailableOnce(err error) {
	if s.warnedUnavailable.CompareAndSwap(false, true) {
		s.logger.Warn("redis unavailable", zap.Error(err))
	}
}
