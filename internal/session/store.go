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

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// OperationSessionStoreInterface persists the operation to HTTP session mapping.
type OperationSessionStoreInterface interface {
	// RegisterIfAbsent stores the mapping unless the operation is already mapped. Returns false
	// when the operation was already registered.
	RegisterIfAbsent(ctx context.Context, session OperationSession) (bool, error)
	// Get returns the mapping of the operation, or ErrOperationSessionNotFound.
	Get(ctx context.Context, operationID string) (*OperationSession, error)
	// CancelAllForSession marks the CONTINUE operations of the HTTP session FAILED and returns them
	// as they were before the change.
	CancelAllForSession(ctx context.Context, httpSessionID string) ([]OperationSession, error)
	// UpdateResult stores the latest result of the operation.
	UpdateResult(ctx context.Context, operationID string, result model.AuthResult) error
}

// StateStoreInterface persists the per-session authentication state.
type StateStoreInterface interface {
	// Load returns the state of the session, or an empty state for an unknown session.
	Load(ctx context.Context, sessionID string) (*State, error)
	// Save stores the state, replacing the previous one.
	Save(ctx context.Context, state *State) error
	// Delete removes the state of the session.
	Delete(ctx context.Context, sessionID string) error
}
