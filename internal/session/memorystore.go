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
	"sort"
	"sync"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// memoryStore keeps operation sessions in process memory.
type memoryStore struct {
	mu         sync.RWMutex
	operations map[string]OperationSession
}

// NewMemoryStore creates an in-memory operation session store.
func NewMemoryStore() OperationSessionStoreInterface {
	return &memoryStore{operations: map[string]OperationSession{}}
}

func (s *memoryStore) RegisterIfAbsent(_ context.Context, session OperationSession) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.operations[session.OperationID]; exists {
		return false, nil
	}
	if session.TimestampCreated.IsZero() {
		session.TimestampCreated = time.Now()
	}
	s.operations[session.OperationID] = session
	return true, nil
}

func (s *memoryStore) Get(_ context.Context, operationID string) (*OperationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.operations[operationID]
	if !exists {
		return nil, ErrOperationSessionNotFound
	}
	return &session, nil
}

func (s *memoryStore) CancelAllForSession(_ context.Context, httpSessionID string) ([]OperationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var canceled []OperationSession
	for id, session := range s.operations {
		if session.HTTPSessionID != httpSessionID || session.Result != model.AuthResultContinue {
			continue
		}
		canceled = append(canceled, session)
		session.Result = model.AuthResultFailed
		s.operations[id] = session
	}
	sort.Slice(canceled, func(i, j int) bool {
		return canceled[i].TimestampCreated.Before(canceled[j].TimestampCreated)
	})
	return canceled, nil
}

func (s *memoryStore) UpdateResult(_ context.Context, operationID string, result model.AuthResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.operations[operationID]
	if !exists {
		return ErrOperationSessionNotFound
	}
	session.Result = result
	s.operations[operationID] = session
	return nil
}

type stateEntry struct {
	values    map[SessionKey]string
	expiresAt time.Time
}

// memoryStateStore keeps session states in process memory for a limited time.
type memoryStateStore struct {
	mu     sync.RWMutex
	ttl    time.Duration
	states map[string]stateEntry
}

// NewMemoryStateStore creates an in-memory state store. States expire ttl after their last save.
func NewMemoryStateStore(ttl time.Duration) StateStoreInterface {
	return &memoryStateStore{ttl: ttl, states: map[string]stateEntry{}}
}

func (s *memoryStateStore) Load(_ context.Context, sessionID string) (*State, error) {
	s.mu.RLock()
	entry, exists := s.states[sessionID]
	s.mu.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return NewState(sessionID), nil
	}
	return stateFromValues(sessionID, entry.values), nil
}

func (s *memoryStateStore) Save(_ context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, entry := range s.states {
		if now.After(entry.expiresAt) {
			delete(s.states, id)
		}
	}
	s.states[state.SessionID] = stateEntry{values: state.Values(), expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *memoryStateStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
