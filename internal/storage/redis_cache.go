// Package storage binds the opaque verification-cache and blob-store
// collaborators to Redis and Badger.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"verifact/internal/model"
)

// ErrDuplicateRecord is returned when another run already recorded the
// same fingerprint; the losing write is discarded.
var ErrDuplicateRecord = errors.New("storage: record already exists for fingerprint")

const recordTTL = 30 * 24 * time.Hour

// RedisCache is the verification cache keyed by content fingerprint.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps a redis client.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func recordKey(fingerprint string) string {
	return fmt.Sprintf("verify:record:%s", fingerprint)
}

// Exists reports whether a record is stored for the fingerprint.
func (c *RedisCache) Exists(ctx context.Context, fingerprint string) (bool, error) {
	n, err := c.rdb.Exists(ctx, recordKey(fingerprint)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Get fetches the record for a fingerprint, or nil when absent.
func (c *RedisCache) Get(ctx context.Context, fingerprint string) (*model.CacheRecord, error) {
	b, err := c.rdb.Get(ctx, recordKey(fingerprint)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec model.CacheRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("storage: corrupt cache record: %w", err)
	}
	return &rec, nil
}

// Put stores a record with at-most-one-writer-wins semantics: the first
// write for a fingerprint sticks, later ones get ErrDuplicateRecord.
// Returns a transaction id for the winning write.
func (c *RedisCache) Put(ctx context.Context, fingerprint string, rec model.CacheRecord) (string, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	ok, err := c.rdb.SetNX(ctx, recordKey(fingerprint), b, recordTTL).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrDuplicateRecord
	}
	return uuid.NewString(), nil
}
