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

// Package cancellation cancels operations at Next Step and, for mobile token operations, at the
// PowerAuth server.
package cancellation

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/powerauth"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const loggerComponentName = "OperationCancellationService"

// CancelRequest describes the cancellation of an operation.
type CancelRequest struct {
	OperationID    string
	UserID         string
	OrganizationID string
	AuthMethod     model.AuthMethod
	Reason         model.OperationCancelReason
	Params         []model.KeyValueParameter
	// CancelRemote cancels the paired mobile token operation at the PowerAuth server too.
	CancelRemote bool
}

// ServiceInterface defines the operation cancellation.
type ServiceInterface interface {
	CancelOperation(ctx context.Context, request CancelRequest) (*nextstep.UpdateOperationResponse, error)
}

// Service is the implementation of ServiceInterface.
type Service struct {
	nextStep  nextstep.ClientInterface
	powerAuth powerauth.ClientInterface
	operation customization.OperationServiceInterface
}

// NewService creates an operation cancellation service.
func NewService(nextStep nextstep.ClientInterface, powerAuth powerauth.ClientInterface,
	operation customization.OperationServiceInterface) *Service {
	return &Service{nextStep: nextStep, powerAuth: powerAuth, operation: operation}
}

// CancelOperation submits a CANCELED step with the reason as its description. The bank is notified
// about the canceled operation afterwards. Errors of the PowerAuth server are logged only, the
// operation stays canceled at Next Step.
func (s *Service) CancelOperation(ctx context.Context,
	request CancelRequest) (*nextstep.UpdateOperationResponse, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyOperationID, request.OperationID),
		log.String("cancelReason", string(request.Reason)))

	op, err := s.nextStep.GetOperationDetail(ctx, request.OperationID)
	if err != nil {
		logger.Error("Failed to get operation detail", log.Error(err))
		return nil, err
	}

	userID := request.UserID
	if userID == "" {
		userID = op.UserID
	}
	organizationID := request.OrganizationID
	if organizationID == "" {
		organizationID = op.OrganizationID
	}

	resp, err := s.nextStep.UpdateOperation(ctx, nextstep.UpdateOperationRequest{
		OperationID:               request.OperationID,
		UserID:                    userID,
		OrganizationID:            organizationID,
		AuthMethod:                request.AuthMethod,
		AuthStepResult:            model.AuthStepResultCanceled,
		AuthStepResultDescription: string(request.Reason),
		Params:                    request.Params,
		ApplicationContext:        op.ApplicationContext,
	})
	if err != nil {
		logger.Error("Failed to cancel operation", log.Error(err))
		return nil, err
	}
	logger.Debug("Operation canceled", log.String("result", string(resp.Result)))

	if request.CancelRemote && op.PAOperationID != "" && s.powerAuth != nil {
		if _, err := s.powerAuth.CancelOperation(ctx, op.PAOperationID); err != nil {
			logger.Warn("Failed to cancel mobile token operation", log.String("paOperationId", op.PAOperationID),
				log.Error(err))
		}
	}

	canceled := *op
	canceled.UserID = userID
	canceled.OrganizationID = organizationID
	canceled.Result = resp.Result
	canceled.Steps = resp.Steps
	canceled.History = append(append([]model.OperationHistory(nil), op.History...), model.OperationHistory{
		RequestAuthMethod:     request.AuthMethod,
		RequestAuthStepResult: model.AuthStepResultCanceled,
		ResponseResult:        resp.Result,
	})
	if err := s.operation.NotifyOperationChange(ctx, &canceled); err != nil {
		logger.Warn("Operation change was not notified", log.Error(err))
	}

	return resp, nil
}
