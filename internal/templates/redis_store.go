package templates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/resume-pdf/internal/types"
)

// DefaultRedisKeyPrefix namespaces template keys
const DefaultRedisKeyPrefix = "resume-pdf:template:"

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore keeps each template as a JSON value under its own key
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	now       func() time.Time
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, &StoreError{Message: "failed to connect to redis", Cause: err}
	}
	return NewRedisStoreWithClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix, now: time.Now}
}

func (s *RedisStore) key(name string) string {
	return s.keyPrefix + name
}

// GetTemplate implements Store
func (s *RedisStore) GetTemplate(ctx context.Context, name string) (*Template, error) {
	raw, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, &StoreError{Message: fmt.Sprintf("failed to get template %s", name), Cause: err}
	}
	return decodeTemplate(raw)
}

// UpsertTemplate implements Store. SETNX makes creation atomic across processes.
func (s *RedisStore) UpsertTemplate(ctx context.Context, tmpl *Template) (*Template, bool, error) {
	stored := cloneTemplate(tmpl)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now().UTC()
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, false, &StoreError{Message: "failed to encode template", Cause: err}
	}

	created, err := s.client.SetNX(ctx, s.key(tmpl.Name), raw, 0).Result()
	if err != nil {
		return nil, false, &StoreError{Message: fmt.Sprintf("failed to upsert template %s", tmpl.Name), Cause: err}
	}
	if created {
		return stored, true, nil
	}

	existing, err := s.GetTemplate(ctx, tmpl.Name)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, &StoreError{Message: fmt.Sprintf("template %s vanished during upsert", tmpl.Name)}
	}
	return existing, false, nil
}

// ReplaceTemplate implements Store
func (s *RedisStore) ReplaceTemplate(ctx context.Context, tmpl *Template) error {
	stored := cloneTemplate(tmpl)
	existing, err := s.GetTemplate(ctx, tmpl.Name)
	if err != nil {
		return err
	}
	switch {
	case existing != nil:
		stored.CreatedAt = existing.CreatedAt
	case stored.CreatedAt.IsZero():
		stored.CreatedAt = s.now().UTC()
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return &StoreError{Message: "failed to encode template", Cause: err}
	}
	if err := s.client.Set(ctx, s.key(tmpl.Name), raw, 0).Err(); err != nil {
		return &StoreError{Message: fmt.Sprintf("failed to replace template %s", tmpl.Name), Cause: err}
	}
	return nil
}

// ListTemplates implements Store
func (s *RedisStore) ListTemplates(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, &StoreError{Message: "failed to list templates", Cause: err}
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func decodeTemplate(raw []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, &StoreError{Message: "failed to decode template", Cause: err}
	}
	if t.Themes == nil {
		t.Themes = make(types.ThemeCatalog)
	}
	return &t, nil
}

var _ Store = (*RedisStore)(nil)
