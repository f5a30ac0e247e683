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
	"errors"

	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// ErrEmptyOperationHistory is returned when a terminal operation without history is notified.
var ErrEmptyOperationHistory = errors.New("operation history is empty")

// OperationServiceInterface defines the operation notifications and decorations.
type OperationServiceInterface interface {
	NotifyOperationChange(ctx context.Context, op *model.OperationDetail) error
	DecorateFormData(ctx context.Context, op *model.OperationDetail, userID string,
		method model.AuthMethod) *model.OperationFormData
	GetPAOperationMapping(ctx context.Context, op *model.OperationDetail, userID string,
		method model.AuthMethod) *dataadapter.GetPAOperationMappingResponse
}

// OperationService is the implementation of OperationServiceInterface.
type OperationService struct {
	dataAdapter dataadapter.ClientInterface
	logger      *log.Logger
}

// NewOperationService creates an operation customization service.
func NewOperationService(dataAdapter dataadapter.ClientInterface) *OperationService {
	return &OperationService{
		dataAdapter: dataAdapter,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationService")),
	}
}

// NotifyOperationChange notifies the bank about an operation which reached DONE or FAILED.
// A failed operation is reported as CANCELED when its last history entry was a cancellation.
// CONTINUE operations are not reported. Remote failures are logged only; the only error
// returned is ErrEmptyOperationHistory for a terminal operation without history.
func (s *OperationService) NotifyOperationChange(ctx context.Context, op *model.OperationDetail) error {
	change, notify := operationChangeOf(op)
	if !notify {
		return nil
	}
	if len(op.History) == 0 {
		s.logger.Error("Operation change cannot be notified, operation history is empty",
			log.String(log.LoggerKeyOperationID, op.OperationID))
		return ErrEmptyOperationHistory
	}

	request := dataadapter.OperationChangeRequest{
		OperationChange:       change,
		UserID:                op.UserID,
		OrganizationID:        op.OrganizationID,
		OperationContext:      model.NewOperationContext(op),
		AuthenticationContext: lastAuthenticationContext(op.History),
	}
	callResilient(ctx, s.logger, "operationChangedNotification",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.dataAdapter.OperationChangedNotification(ctx, request)
		},
		func(error) struct{} { return struct{}{} })
	return nil
}

// DecorateFormData lets the bank decorate the form data for the user. The original form data is
// kept when the bank could not be reached.
func (s *OperationService) DecorateFormData(ctx context.Context, op *model.OperationDetail, userID string,
	method model.AuthMethod) *model.OperationFormData {
	return callResilient(ctx, s.logger, "decorateFormData",
		func(ctx context.Context) (*model.OperationFormData, error) {
			resp, err := s.dataAdapter.DecorateFormData(ctx, dataadapter.DecorateFormDataRequest{
				UserID:           userID,
				OrganizationID:   op.OrganizationID,
				AuthMethod:       method,
				OperationContext: model.NewOperationContext(op),
			})
			if err != nil {
				return nil, err
			}
			if resp.FormData == nil {
				return op.FormData, nil
			}
			return resp.FormData, nil
		},
		func(error) *model.OperationFormData { return op.FormData })
}

// GetPAOperationMapping returns the mobile token representation of the operation, or nil when
// the bank could not be reached.
func (s *OperationService) GetPAOperationMapping(ctx context.Context, op *model.OperationDetail, userID string,
	method model.AuthMethod) *dataadapter.GetPAOperationMappingResponse {
	return callResilient(ctx, s.logger, "getPAOperationMapping",
		func(ctx context.Context) (*dataadapter.GetPAOperationMappingResponse, error) {
			return s.dataAdapter.GetPAOperationMapping(ctx, dataadapter.GetPAOperationMappingRequest{
				UserID:           userID,
				OrganizationID:   op.OrganizationID,
				AuthMethod:       method,
				OperationContext: model.NewOperationContext(op),
			})
		},
		func(error) *dataadapter.GetPAOperationMappingResponse { return nil })
}

// operationChangeOf classifies the operation result. The last history entry alone decides
// between CANCELED and FAILED.
func operationChangeOf(op *model.OperationDetail) (model.OperationChange, bool) {
	switch op.Result {
	case model.AuthResultDone:
		return model.OperationChangeDone, true
	case model.AuthResultFailed:
		if last := op.LastHistory(); last != nil && last.RequestAuthStepResult == model.AuthStepResultCanceled {
			return model.OperationChangeCanceled, true
		}
		return model.OperationChangeFailed, true
	default:
		return "", false
	}
}

// lastAuthenticationContext returns the newest PowerAuth authentication context in the history,
// or an empty context when no entry carries one.
func lastAuthenticationContext(history []model.OperationHistory) model.PAAuthenticationContext {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].PAAuthenticationContext != nil {
			return *history[i].PAAuthenticationContext
		}
	}
	return model.PAAuthenticationContext{}
}
