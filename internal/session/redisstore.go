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

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

var errRedisUpdateConflict = errors.New("operation session updated concurrently")

// redisStore keeps operation sessions in Redis. Each operation is a JSON value, and each HTTP
// session has a set of the operations registered in it.
type redisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore creates an operation session store backed by Redis. Entries expire after ttl.
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) OperationSessionStoreInterface {
	return &redisStore{redis: redisClient, ttl: ttl}
}

func (s *redisStore) RegisterIfAbsent(ctx context.Context, session OperationSession) (bool, error) {
	if session.TimestampCreated.IsZero() {
		session.TimestampCreated = time.Now()
	}
	encoded, err := json.Marshal(session)
	if err != nil {
		return false, err
	}

	registered, err := s.redis.SetNX(ctx, redisOperationKeyPrefix+session.OperationID, encoded, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to register operation session: %w", err)
	}
	if !registered {
		return false, nil
	}

	sessionKey := redisSessionKeyPrefix + session.HTTPSessionID
	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, sessionKey, session.OperationID)
		pipe.Expire(ctx, sessionKey, s.ttl)
		return nil
	})
	if err != nil {
		// A registration without its index entry is dropped.
		if delErr := s.redis.Del(ctx, redisOperationKeyPrefix+session.OperationID).Err(); delErr != nil {
			return false, fmt.Errorf("failed to index operation session: %w (rollback error: %w)", err, delErr)
		}
		return false, fmt.Errorf("failed to index operation session: %w", err)
	}
	return true, nil
}

func (s *redisStore) Get(ctx context.Context, operationID string) (*OperationSession, error) {
	data, err := s.redis.Get(ctx, redisOperationKeyPrefix+operationID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrOperationSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read operation session: %w", err)
	}

	var session OperationSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *redisStore) CancelAllForSession(ctx context.Context, httpSessionID string) ([]OperationSession, error) {
	operationIDs, err := s.redis.SMembers(ctx, redisSessionKeyPrefix+httpSessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list operation sessions: %w", err)
	}

	canceled := make([]OperationSession, 0, len(operationIDs))
	for _, operationID := range operationIDs {
		previous, err := s.update(ctx, operationID, func(session *OperationSession) bool {
			if session.HTTPSessionID != httpSessionID || session.Result != model.AuthResultContinue {
				return false
			}
			session.Result = model.AuthResultFailed
			return true
		})
		if errors.Is(err, ErrOperationSessionNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if previous != nil {
			canceled = append(canceled, *previous)
		}
	}
	sort.Slice(canceled, func(i, j int) bool {
		return canceled[i].TimestampCreated.Before(canceled[j].TimestampCreated)
	})
	return canceled, nil
}

func (s *redisStore) UpdateResult(ctx context.Context, operationID string, result model.AuthResult) error {
	_, err := s.update(ctx, operationID, func(session *OperationSession) bool {
		session.Result = result
		return true
	})
	return err
}

// update applies change to the stored session under optimistic locking. It returns the session
// as it was before the change, or nil when change reported nothing to do.
func (s *redisStore) update(ctx context.Context, operationID string,
	change func(session *OperationSession) bool) (*OperationSession, error) {
	key := redisOperationKeyPrefix + operationID

	for i := 0; i < redisMaxRetries; i++ {
		var previous *OperationSession

		err := s.redis.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				return err
			}

			var session OperationSession
			if err := json.Unmarshal(data, &session); err != nil {
				return err
			}
			before := session
			if !change(&session) {
				return nil
			}

			updated, err := json.Marshal(session)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, updated, redis.KeepTTL)
				return nil
			})
			if err != nil {
				return err
			}
			previous = &before
			return nil
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, redis.Nil) {
			return nil, ErrOperationSessionNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to update operation session: %w", err)
		}
		return previous, nil
	}
	return nil, errRedisUpdateConflict
}

// redisStateStore keeps each session state in a Redis hash.
type redisStateStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStateStore creates a state store backed by Redis. States expire ttl after their last save.
func NewRedisStateStore(redisClient *redis.Client, ttl time.Duration) StateStoreInterface {
	return &redisStateStore{redis: redisClient, ttl: ttl}
}

func (s *redisStateStore) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.redis.HGetAll(ctx, redisStateKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}
	values := make(map[SessionKey]string, len(raw))
	for k, v := range raw {
		values[SessionKey(k)] = v
	}
	return stateFromValues(sessionID, values), nil
}

func (s *redisStateStore) Save(ctx context.Context, state *State) error {
	key := redisStateKeyPrefix + state.SessionID
	values := state.Values()

	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) == 0 {
			return nil
		}
		fields := make(map[string]interface{}, len(values))
		for k, v := range values {
			fields[string(k)] = v
		}
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

func (s *redisStateStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, redisStateKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session state: %w", err)
	}
	return nil
}
