package database

import (
	"context"
	"encoding/json"
	"time"
)

const (
	// Cache key prefixes
	CacheKeyConcentratorStats = "backoffice:reports:concentrators"
	CacheKeyUserStats         = "backoffice:reports:userstats"

	// Cache TTLs
	CacheTTLReports = 30 * time.Second
)

// CacheGet retrieves a value from Redis cache and unmarshals it into dest
func (c *Conn) CacheGet(key string, dest interface{}) error {
	ctx := context.Background()
	data, err := c.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// CacheSet stores a value in Redis cache with TTL
func (c *Conn) CacheSet(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, key, data, ttl).Err()
}

// CacheDelete removes a key from Redis cache
func (c *Conn) CacheDelete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx := context.Background()
	return c.Redis.Del(ctx, keys...).Err()
}
