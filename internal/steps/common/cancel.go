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

package common

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// CancelRequest is the body of the cancel endpoints. An empty reason cancels with UNKNOWN.
type CancelRequest struct {
	Reason model.OperationCancelReason `json:"reason"`
}

// Validate validates the cancel request.
func (c *CancelRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Reason, validation.In(
			model.CancelReasonUnknown, model.CancelReasonIncorrectData, model.CancelReasonUnexpectedOperation,
			model.CancelReasonUnavailableAuthMethod, model.CancelReasonInterruptedOperation,
			model.CancelReasonTimedOutOperation, model.CancelReasonAuthMethodNotAvailable)),
	)
}

// CancelStep returns the step function which cancels the pending operation on behalf of the method.
func CancelStep(controller *authmethod.Controller, method model.AuthMethod) StepFunc {
	return func(ctx context.Context, rc *authmethod.RequestContext, r *http.Request) (interface{}, error) {
		var request CancelRequest
		if err := DecodeRequest(r, &request); err != nil {
			return nil, err
		}
		if rc.State.PendingOperationID == "" {
			return nil, authmethod.ErrOperationNotAvailable
		}
		reason := request.Reason
		if reason == "" {
			reason = model.CancelReasonUnknown
		}

		result, err := controller.CancelAuthorization(ctx, rc, method, authmethod.CancelRequest{
			OperationID:  rc.State.PendingOperationID,
			UserID:       rc.State.UserID,
			Reason:       reason,
			CancelRemote: true,
		})
		if err != nil {
			return nil, err
		}
		return UpdateResponse(result), nil
	}
}
