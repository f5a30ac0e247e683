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

package authmethod

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
)

// RequestContext carries the per-request inputs of the orchestration.
type RequestContext struct {
	// State is the authentication state of the caller's HTTP session. It is updated in place.
	State *session.State
	// OperationHash is the operation digest presented by the client, empty when not sent.
	OperationHash string
	// Locale selects the language of the operation form data.
	Locale string
}

// AuthResultDetail is what an authenticator learned about the user. An empty UserID means the
// user was not authenticated.
type AuthResultDetail struct {
	UserID         string
	OrganizationID string
	// OperationAlreadyUpdated is set when the operation was updated outside Web Flow, for example
	// by a mobile token approval.
	OperationAlreadyUpdated bool
	AuthInstruments         []model.AuthInstrument
	PAAuthenticationContext *model.PAAuthenticationContext
	// RemainingAttempts is the bank side counter reported for a failed attempt.
	RemainingAttempts *int
	AccountStatus     model.AccountStatus
	// MessageKey overrides the default message of a failed attempt.
	MessageKey string
}

// Authenticator verifies one authentication method.
type Authenticator[T any] interface {
	AuthMethod() model.AuthMethod
	Authenticate(ctx context.Context, rc *RequestContext, request T) (*AuthResultDetail, error)
}

// AuthResponseProvider builds the response for each aggregate result of the operation.
type AuthResponseProvider[R any] interface {
	DoneAuthentication(userID string) R
	FailedAuthentication(userID, failedReason string) R
	ContinueAuthentication(operationID, userID string, steps []model.AuthStep) R
}

// AuthMethodResolver may substitute the method recorded in the operation history for a nominal
// method. It returns false to keep the nominal method.
type AuthMethodResolver interface {
	ResolveAuthMethod(op *model.OperationDetail, method model.AuthMethod) (model.AuthMethod, bool)
}

// AuthorizeRequest describes an authorization or a failed authorization of a step.
type AuthorizeRequest struct {
	OperationID             string
	UserID                  string
	OrganizationID          string
	AuthInstruments         []model.AuthInstrument
	PAAuthenticationContext *model.PAAuthenticationContext
	Params                  []model.KeyValueParameter
}

// CancelRequest describes the cancellation of a step.
type CancelRequest struct {
	OperationID  string
	UserID       string
	Reason       model.OperationCancelReason
	Params       []model.KeyValueParameter
	CancelRemote bool
}

// UpdateResult is the state of the operation after a step update.
type UpdateResult struct {
	OperationID       string
	UserID            string
	Result            model.AuthResult
	ResultDescription string
	Steps             []model.AuthStep
}

// InitRequest describes a new operation.
type InitRequest struct {
	OperationName         string
	OperationData         string
	OrganizationID        string
	ExternalTransactionID string
	FormData              *model.OperationFormData
	ApplicationContext    *model.ApplicationContext
	Params                []model.KeyValueParameter
}

// ResolveRemainingAttempts reconciles the bank side and the Next Step counters of remaining
// attempts. A nil counter means no limit.
func ResolveRemainingAttempts(remote, local *int) *int {
	switch {
	case remote == nil && local == nil:
		return nil
	case remote == nil:
		value := *local
		return &value
	case local == nil:
		value := *remote
		return &value
	default:
		value := min(*remote, *local)
		return &value
	}
}

// ChosenMethodResolver reports SCA steps under the method chosen for their second factor.
type ChosenMethodResolver struct{}

// ResolveAuthMethod substitutes LOGIN_SCA and APPROVAL_SCA with the chosen POWERAUTH_TOKEN or
// SMS_KEY method.
func (ChosenMethodResolver) ResolveAuthMethod(op *model.OperationDetail,
	method model.AuthMethod) (model.AuthMethod, bool) {
	if method != model.AuthMethodLoginSCA && method != model.AuthMethodApprovalSCA {
		return "", false
	}
	if op == nil || op.ChosenAuthMethod == nil {
		return "", false
	}
	switch *op.ChosenAuthMethod {
	case model.AuthMethodPowerAuthToken, model.AuthMethodSMSKey:
		return *op.ChosenAuthMethod, true
	}
	return "", false
}
