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

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type cachedValue struct {
	Name  string
	Count int
}

type CacheTestSuite struct {
	suite.Suite
	cache *Cache
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) SetupTest() {
	suite.cache = NewLocalCache(100, time.Minute)
}

func (suite *CacheTestSuite) TestSetAndGet() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "k", &cachedValue{Name: "a", Count: 1}, time.Minute))

	var value cachedValue
	suite.Require().NoError(suite.cache.Get(ctx, "k", &value))
	assert.Equal(suite.T(), cachedValue{Name: "a", Count: 1}, value)
}

func (suite *CacheTestSuite) TestGetMiss() {
	var value cachedValue
	err := suite.cache.Get(context.Background(), "missing", &value)
	assert.ErrorIs(suite.T(), err, ErrCacheMiss)
}

func (suite *CacheTestSuite) TestGetOrLoadCallsLoaderOnce() {
	ctx := context.Background()
	calls := 0
	load := func() (interface{}, error) {
		calls++
		return &cachedValue{Name: "loaded"}, nil
	}

	var first, second cachedValue
	suite.Require().NoError(suite.cache.GetOrLoad(ctx, "org", &first, time.Minute, load))
	suite.Require().NoError(suite.cache.GetOrLoad(ctx, "org", &second, time.Minute, load))

	assert.Equal(suite.T(), 1, calls)
	assert.Equal(suite.T(), "loaded", first.Name)
	assert.Equal(suite.T(), "loaded", second.Name)
}

func (suite *CacheTestSuite) TestGetOrLoadDoesNotCacheErrors() {
	ctx := context.Background()
	calls := 0
	load := func() (interface{}, error) {
		calls++
		return nil, errors.New("unavailable")
	}

	var value cachedValue
	assert.Error(suite.T(), suite.cache.GetOrLoad(ctx, "org", &value, time.Minute, load))
	assert.Error(suite.T(), suite.cache.GetOrLoad(ctx, "org", &value, time.Minute, load))
	assert.Equal(suite.T(), 2, calls)
}

func (suite *CacheTestSuite) TestDelete() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "k", &cachedValue{Name: "a"}, time.Minute))
	suite.Require().NoError(suite.cache.Delete(ctx, "k"))
	assert.NoError(suite.T(), suite.cache.Delete(ctx, "k"))

	var value cachedValue
	assert.ErrorIs(suite.T(), suite.cache.Get(ctx, "k", &value), ErrCacheMiss)
}

func TestRedisCacheSharesValues(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer func() {
		_ = client.Close()
	}()

	ctx := context.Background()
	writer := NewRedisCache(client, 10, time.Minute)
	reader := NewRedisCache(client, 10, time.Minute)
	assert.NoError(t, writer.Set(ctx, "shared", &cachedValue{Name: "b", Count: 2}, time.Minute))

	var value cachedValue
	assert.NoError(t, reader.Get(ctx, "shared", &value))
	assert.Equal(t, cachedValue{Name: "b", Count: 2}, value)
}
