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

// Package methodquery decides which authentication methods are currently available to a user.
package methodquery

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// userConfiguredMethods are enabled only when the user enabled them in Next Step.
var userConfiguredMethods = map[model.AuthMethod]bool{
	model.AuthMethodPowerAuthToken: true,
}

// ServiceInterface defines the availability queries of authentication methods.
type ServiceInterface interface {
	IsAuthMethodEnabled(ctx context.Context, method model.AuthMethod, userID, operationID string) bool
	FilterSteps(ctx context.Context, steps []model.AuthStep, userID, operationID string) []model.AuthStep
}

// Service is the implementation of ServiceInterface.
type Service struct {
	nextStep nextstep.ClientInterface
	disabled map[model.AuthMethod]bool
}

// NewService creates the availability service. Methods in the disabled list are never available.
func NewService(nextStep nextstep.ClientInterface, disabled []string) *Service {
	set := make(map[model.AuthMethod]bool, len(disabled))
	for _, method := range disabled {
		set[model.AuthMethod(method)] = true
	}
	return &Service{nextStep: nextStep, disabled: set}
}

// IsAuthMethodEnabled reports whether the method may be used by the user in the operation.
func (s *Service) IsAuthMethodEnabled(ctx context.Context, method model.AuthMethod, userID,
	operationID string) bool {
	return s.isEnabled(ctx, method, userID, operationID, nil)
}

// FilterSteps returns the steps whose method is enabled, keeping their order. The user settings
// are fetched at most once.
func (s *Service) FilterSteps(ctx context.Context, steps []model.AuthStep, userID,
	operationID string) []model.AuthStep {
	var userMethods map[model.AuthMethod]bool
	filtered := make([]model.AuthStep, 0, len(steps))
	for _, step := range steps {
		if userID != "" && userConfiguredMethods[step.AuthMethod] && userMethods == nil {
			userMethods = s.userMethods(ctx, userID, operationID)
		}
		if s.isEnabled(ctx, step.AuthMethod, userID, operationID, userMethods) {
			filtered = append(filtered, step)
		}
	}
	return filtered
}

func (s *Service) isEnabled(ctx context.Context, method model.AuthMethod, userID, operationID string,
	userMethods map[model.AuthMethod]bool) bool {
	switch method {
	case model.AuthMethodInit, model.AuthMethodShowOperationDetail:
		return true
	}
	if s.disabled[method] {
		return false
	}
	if !userConfiguredMethods[method] {
		return true
	}
	if userID == "" {
		return false
	}
	if userMethods == nil {
		userMethods = s.userMethods(ctx, userID, operationID)
	}
	return userMethods[method]
}

// userMethods returns the methods the user enabled. A failed lookup enables none of them.
func (s *Service) userMethods(ctx context.Context, userID, operationID string) map[model.AuthMethod]bool {
	methods := map[model.AuthMethod]bool{}
	details, err := s.nextStep.GetAuthMethodsEnabledForUser(ctx, userID)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthMethodQueryService")).
			Warn("Failed to get authentication methods of user", log.String(log.LoggerKeyOperationID, operationID),
				log.Error(err))
		return methods
	}
	for _, detail := range details {
		methods[detail.AuthMethod] = true
	}
	return methods
}
