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
	"strconv"
	"strings"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/crypto/hash"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// ServiceInterface manages the binding of operations to HTTP sessions.
type ServiceInterface interface {
	RegisterHTTPSession(ctx context.Context, operationID, httpSessionID string, result model.AuthResult) (bool, error)
	GetOperationSession(ctx context.Context, operationID string) (*OperationSession, error)
	CancelOperationsInHTTPSession(ctx context.Context, httpSessionID string) ([]OperationSession, error)
	UpdateOperationResult(ctx context.Context, operationID string, result model.AuthResult) error
	GenerateOperationHash(op *model.OperationDetail) string
}

// Service is the default implementation of ServiceInterface.
type Service struct {
	store OperationSessionStoreInterface
}

// NewService creates a session service on top of the given store.
func NewService(store OperationSessionStoreInterface) ServiceInterface {
	return &Service{store: store}
}

// RegisterHTTPSession binds the operation to the HTTP session. Returns false when the operation is
// already bound, which callers treat as a hard failure.
func (s *Service) RegisterHTTPSession(ctx context.Context, operationID, httpSessionID string,
	result model.AuthResult) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationSessionService"),
		log.String(log.LoggerKeyOperationID, operationID))

	registered, err := s.store.RegisterIfAbsent(ctx, OperationSession{
		OperationID:      operationID,
		HTTPSessionID:    httpSessionID,
		Result:           result,
		TimestampCreated: time.Now(),
	})
	if err != nil {
		logger.Error("Failed to register operation session", log.Error(err))
		return false, err
	}
	if !registered {
		logger.Warn("Operation is already bound to an HTTP session")
	}
	return registered, nil
}

// GetOperationSession returns the mapping of the operation.
func (s *Service) GetOperationSession(ctx context.Context, operationID string) (*OperationSession, error) {
	return s.store.Get(ctx, operationID)
}

// CancelOperationsInHTTPSession marks the active operations of the HTTP session failed and returns
// them so that the caller can cancel each one remotely.
func (s *Service) CancelOperationsInHTTPSession(ctx context.Context,
	httpSessionID string) ([]OperationSession, error) {
	return s.store.CancelAllForSession(ctx, httpSessionID)
}

// UpdateOperationResult stores the latest result of the operation.
func (s *Service) UpdateOperationResult(ctx context.Context, operationID string, result model.AuthResult) error {
	return s.store.UpdateResult(ctx, operationID, result)
}

// GenerateOperationHash returns a digest of the mutable state of the operation. Any update of the
// operation at Next Step changes the digest.
func (s *Service) GenerateOperationHash(op *model.OperationDetail) string {
	return GenerateOperationHash(op)
}

// GenerateOperationHash computes the operation digest, or an empty string for a nil operation.
func GenerateOperationHash(op *model.OperationDetail) string {
	if op == nil {
		return ""
	}

	chosen := ""
	if op.ChosenAuthMethod != nil {
		chosen = string(*op.ChosenAuthMethod)
	}
	last := ""
	if entry := op.LastHistory(); entry != nil {
		last = string(entry.RequestAuthMethod) + "/" + string(entry.RequestAuthStepResult) + "/" +
			string(entry.ResponseResult)
	}
	steps := make([]string, 0, len(op.Steps))
	for _, step := range op.Steps {
		steps = append(steps, string(step.AuthMethod))
	}

	return hash.HashParts(op.OperationID, string(op.Result), chosen, strconv.Itoa(len(op.History)), last,
		strings.Join(steps, ","))
}
