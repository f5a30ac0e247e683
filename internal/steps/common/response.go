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

// Package common holds the HTTP plumbing shared by the authentication step controllers: session
// cookies, request decoding and validation, and the step response.
package common

import (
	"errors"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// Message keys of step responses.
const (
	MessageAuthenticationSuccess = "authentication.success"
	MessageAuthenticationFail    = "authentication.fail"
	MessageOperationCanceled     = "operation.canceled"
	MessageUnknownError          = "error.unknown"
)

// StepResponse is the body returned by every step endpoint.
type StepResponse struct {
	Result             model.AuthStepResult `json:"result"`
	Message            string               `json:"message,omitempty"`
	RemainingAttempts  *int                 `json:"remainingAttempts,omitempty"`
	AccountStatus      model.AccountStatus  `json:"accountStatus,omitempty"`
	OperationHash      string               `json:"operationHash,omitempty"`
	MobileTokenEnabled bool                 `json:"mobileTokenEnabled,omitempty"`
	Next               []model.AuthStep     `json:"next,omitempty"`
	Config             map[string]string    `json:"config,omitempty"`
}

// ResponseProvider maps the result of an operation to a step response.
type ResponseProvider struct{}

// DoneAuthentication confirms the step of a finished operation.
func (ResponseProvider) DoneAuthentication(string) *StepResponse {
	return &StepResponse{Result: model.AuthStepResultConfirmed, Message: MessageAuthenticationSuccess}
}

// FailedAuthentication reports a failed operation.
func (ResponseProvider) FailedAuthentication(_, failedReason string) *StepResponse {
	message := failedReason
	if message == "" {
		message = MessageAuthenticationFail
	}
	return &StepResponse{Result: model.AuthStepResultAuthFailed, Message: message}
}

// ContinueAuthentication confirms the step and lists the next steps of the operation.
func (ResponseProvider) ContinueAuthentication(_, _ string, steps []model.AuthStep) *StepResponse {
	return &StepResponse{Result: model.AuthStepResultConfirmed, Message: MessageAuthenticationSuccess, Next: steps}
}

// UpdateResponse maps a step update done outside the authorization flow, such as a cancellation.
func UpdateResponse(result *authmethod.UpdateResult) *StepResponse {
	switch result.Result {
	case model.AuthResultDone:
		return ResponseProvider{}.DoneAuthentication(result.UserID)
	case model.AuthResultFailed:
		return &StepResponse{Result: model.AuthStepResultCanceled, Message: MessageOperationCanceled}
	default:
		return ResponseProvider{}.ContinueAuthentication(result.OperationID, result.UserID, result.Steps)
	}
}

// ErrorResponse converts an error of a step into a failed step response.
func ErrorResponse(err error) *StepResponse {
	var stepErr *authmethod.AuthStepError
	if !errors.As(err, &stepErr) {
		return &StepResponse{Result: model.AuthStepResultAuthFailed, Message: MessageUnknownError}
	}
	return &StepResponse{
		Result:            model.AuthStepResultAuthFailed,
		Message:           stepErr.MessageKey,
		RemainingAttempts: stepErr.RemainingAttempts,
		AccountStatus:     stepErr.AccountStatus,
	}
}

// NominalMethod returns the first of the candidate methods offered by the operation, or the first
// candidate when none is offered.
func NominalMethod(op *model.OperationDetail, candidates ...model.AuthMethod) model.AuthMethod {
	for _, method := range candidates {
		if op.HasStep(method) {
			return method
		}
	}
	return candidates[0]
}

// UserOf returns the user of the operation, or the user authenticated in the session, with the
// organization of the session falling back to the one of the operation.
func UserOf(op *model.OperationDetail, rc *authmethod.RequestContext) (userID, organizationID string) {
	userID = op.UserID
	if userID == "" {
		userID = rc.State.UserID
	}
	organizationID = rc.State.OrganizationID
	if organizationID == "" {
		organizationID = op.OrganizationID
	}
	return userID, organizationID
}
