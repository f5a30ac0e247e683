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

package customization

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// UserLookupServiceInterface defines the user lookups.
type UserLookupServiceInterface interface {
	LookupUser(ctx context.Context, request UserLookupRequest) *UserLookupResponse
}

// UserLookupService resolves users through the Next Step user identities, falling back to the
// Data Adapter.
type UserLookupService struct {
	nextStep    nextstep.ClientInterface
	dataAdapter dataadapter.ClientInterface
	logger      *log.Logger
}

// NewUserLookupService creates a user lookup service.
func NewUserLookupService(nextStep nextstep.ClientInterface,
	dataAdapter dataadapter.ClientInterface) *UserLookupService {
	return &UserLookupService{
		nextStep:    nextStep,
		dataAdapter: dataAdapter,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserLookupService")),
	}
}

// LookupUser resolves the user. Next Step is consulted first when a credential name is known and
// no client certificate is presented.
func (s *UserLookupService) LookupUser(ctx context.Context, request UserLookupRequest) *UserLookupResponse {
	if request.CredentialName != "" && request.ClientCertificate == "" {
		if resp := s.lookupUserIdentity(ctx, request); resp != nil {
			return resp
		}
	}

	return callResilient(ctx, s.logger, "lookupUser",
		func(ctx context.Context) (*UserLookupResponse, error) {
			user, err := s.dataAdapter.LookupUser(ctx, dataadapter.LookupUserRequest{
				Username:          request.Username,
				OrganizationID:    request.OrganizationID,
				ClientCertificate: request.ClientCertificate,
				OperationContext:  request.OperationContext,
			})
			if err != nil {
				return nil, err
			}
			organizationID := user.OrganizationID
			if organizationID == "" {
				organizationID = request.OrganizationID
			}
			return &UserLookupResponse{
				UserID:               user.ID,
				OrganizationID:       organizationID,
				AccountStatus:        user.AccountStatus,
				AuthenticationResult: resultOf(user.ID != ""),
			}, nil
		},
		func(error) *UserLookupResponse {
			return &UserLookupResponse{
				OrganizationID:       request.OrganizationID,
				AuthenticationResult: AuthenticationFailed,
				ErrorMessage:         MessageUserNotFound,
			}
		})
}

// lookupUserIdentity returns the user found in Next Step, or nil to fall back to the Data Adapter.
func (s *UserLookupService) lookupUserIdentity(ctx context.Context, request UserLookupRequest) *UserLookupResponse {
	resp, err := s.nextStep.LookupUser(ctx, nextstep.LookupUserRequest{
		Username:       request.Username,
		CredentialName: request.CredentialName,
		OperationID:    request.OperationContext.ID,
	})
	if err != nil {
		s.logger.Debug("User identity lookup failed, falling back to Data Adapter", log.Error(err))
		return nil
	}
	if resp.User == nil || resp.User.UserID == "" {
		return nil
	}

	accountStatus := model.AccountStatusActive
	if resp.User.Status != nextstep.UserIdentityStatusActive {
		accountStatus = model.AccountStatusBlocked
	}
	return &UserLookupResponse{
		UserID:               resp.User.UserID,
		OrganizationID:       request.OrganizationID,
		AccountStatus:        accountStatus,
		AuthenticationResult: AuthenticationSucceeded,
	}
}
