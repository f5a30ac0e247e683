/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a local TinyLFU cache, optionally backed by Redis, for remote lookups.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is not cached.
var ErrCacheMiss = cache.ErrCacheMiss

// CacheInterface provides the basic operations of a cache.
type CacheInterface interface {
	// Set stores a value under the key for the given time-to-live.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get loads the value stored under the key into data. Returns ErrCacheMiss for unknown keys.
	Get(ctx context.Context, key string, data interface{}) error
	// GetOrLoad loads the value stored under the key into data, calling load and caching its
	// result on a miss.
	GetOrLoad(ctx context.Context, key string, data interface{}, ttl time.Duration,
		load func() (interface{}, error)) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Cache implements CacheInterface on top of go-redis/cache.
type Cache struct {
	cache *cache.Cache
}

// NewLocalCache creates a process local cache holding at most size entries for up to ttl.
func NewLocalCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		cache: cache.New(&cache.Options{
			LocalCache: cache.NewTinyLFU(size, ttl),
		}),
	}
}

// NewRedisCache creates a cache shared through Redis with a local TinyLFU layer in front of it.
func NewRedisCache(client *redis.Client, size int, ttl time.Duration) *Cache {
	return &Cache{
		cache: cache.New(&cache.Options{
			Redis:      client,
			LocalCache: cache.NewTinyLFU(size, ttl),
		}),
	}
}

// Set stores a value under the key for the given time-to-live.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	})
}

// Get loads the value stored under the key into data.
func (c *Cache) Get(ctx context.Context, key string, data interface{}) error {
	return c.cache.Get(ctx, key, data)
}

// GetOrLoad loads the value stored under the key into data, calling load on a miss. Concurrent
// misses of the same key share a single load.
func (c *Cache) GetOrLoad(ctx context.Context, key string, data interface{}, ttl time.Duration,
	load func() (interface{}, error)) error {
	return c.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: data,
		TTL:   ttl,
		Do: func(*cache.Item) (interface{}, error) {
			return load()
		},
	})
}

// Delete removes the key. Deleting an unknown key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	err := c.cache.Delete(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return nil
	}
	return err
}
