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
	"errors"

	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// BuildAuthorizationResponse authenticates the request with the method and submits the outcome to
// Next Step. The aggregate result of the operation selects exactly one callback of the provider.
// A request which resolved no user is a failed attempt: it returns ErrMaxAttemptsExceeded when the
// operation failed because of it, or an authentication failure with the remaining attempts.
func BuildAuthorizationResponse[T, R any](ctx context.Context, c *Controller, rc *RequestContext,
	auth Authenticator[T], request T, provider AuthResponseProvider[R]) (R, error) {
	var zero R
	if rc.State == nil || rc.State.PendingOperationID == "" {
		return zero, ErrOperationNotAvailable
	}
	method := auth.AuthMethod()
	operationID := rc.State.PendingOperationID

	detail, err := auth.Authenticate(ctx, rc, request)
	if err != nil {
		return zero, err
	}
	if detail == nil {
		detail = &AuthResultDetail{}
	}

	if detail.UserID == "" {
		return zero, c.failedAttempt(ctx, rc, method, operationID, detail)
	}

	var result *UpdateResult
	if detail.OperationAlreadyUpdated {
		result, err = c.currentResult(ctx, rc, method, operationID, detail.UserID)
	} else {
		result, err = c.Authorize(ctx, rc, method, AuthorizeRequest{
			OperationID:             operationID,
			UserID:                  detail.UserID,
			OrganizationID:          detail.OrganizationID,
			AuthInstruments:         detail.AuthInstruments,
			PAAuthenticationContext: detail.PAAuthenticationContext,
		})
	}
	if err != nil {
		return zero, err
	}

	rc.State.UserID = detail.UserID
	if detail.OrganizationID != "" {
		rc.State.OrganizationID = detail.OrganizationID
	}
	return respond(provider, operationID, detail.UserID, result.Result, result.ResultDescription, result.Steps), nil
}

// failedAttempt records a failed authentication and returns the error describing it.
func (c *Controller) failedAttempt(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	operationID string, detail *AuthResultDetail) error {
	result, err := c.FailAuthorization(ctx, rc, method, AuthorizeRequest{
		OperationID:             operationID,
		UserID:                  rc.State.UserID,
		OrganizationID:          rc.State.OrganizationID,
		AuthInstruments:         detail.AuthInstruments,
		PAAuthenticationContext: detail.PAAuthenticationContext,
	})
	if err != nil {
		return err
	}

	if result.Result == model.AuthResultFailed {
		c.logger.Info("Maximum number of authentication attempts exceeded",
			log.String(log.LoggerKeyOperationID, operationID), log.String(log.LoggerKeyAuthMethod, string(method)))
		c.afs.ExecuteLogoutAction(ctx, operationID, model.TerminationReasonFailed)
		exceeded := *ErrMaxAttemptsExceeded
		exceeded.AccountStatus = detail.AccountStatus
		return &exceeded
	}

	remaining := c.RemainingAttempts(ctx, operationID, detail.RemainingAttempts)
	rc.State.RemoteRemainingAttempts = detail.RemainingAttempts
	return NewAuthenticationFailed(detail.MessageKey, remaining, detail.AccountStatus)
}

// InitiateOperationWithName creates a new operation and binds it to the caller's session.
func InitiateOperationWithName[R any](ctx context.Context, c *Controller, rc *RequestContext, request InitRequest,
	provider AuthResponseProvider[R]) (R, error) {
	var zero R
	logger := c.logger.With(log.String(log.LoggerKeySessionID, rc.State.SessionID),
		log.String("operationName", request.OperationName))

	resp, err := c.nextStep.CreateOperation(ctx, nextstep.CreateOperationRequest{
		OperationName:         request.OperationName,
		OperationData:         request.OperationData,
		OrganizationID:        request.OrganizationID,
		ExternalTransactionID: request.ExternalTransactionID,
		FormData:              request.FormData,
		Params:                request.Params,
		ApplicationContext:    request.ApplicationContext,
	})
	if err != nil {
		logger.Error("Failed to create operation", log.Error(err))
		return zero, RemoteError(err)
	}

	if err := c.bindOperation(ctx, rc, resp.OperationID, resp.Result); err != nil {
		return zero, err
	}
	steps := c.filterSteps(ctx, resp.Result, resp.Steps, "", resp.OperationID)
	return respond(provider, resp.OperationID, "", resp.Result, resp.ResultDescription, steps), nil
}

// ContinueOperationWithID resumes an existing operation in the caller's session. The operation is
// validated first, so an expired one is canceled. An operation bound to another session is refused.
func ContinueOperationWithID[R any](ctx context.Context, c *Controller, rc *RequestContext, operationID string,
	provider AuthResponseProvider[R]) (R, error) {
	var zero R
	logger := c.logger.With(log.String(log.LoggerKeySessionID, rc.State.SessionID),
		log.String(log.LoggerKeyOperationID, operationID))

	op, err := c.GetOperationByID(ctx, rc, operationID, model.AuthMethodInit, true)
	if err != nil {
		return zero, err
	}

	existing, err := c.sessions.GetOperationSession(ctx, operationID)
	switch {
	case err == nil:
		if existing.HTTPSessionID != rc.State.SessionID {
			logger.Warn("Operation is bound to another session")
			return zero, ErrInvalidRequest
		}
		if rc.State.PendingOperationID != operationID {
			rc.State.PendingOperationID = operationID
			rc.State.ResetAuthentication()
		}
	case errors.Is(err, session.ErrOperationSessionNotFound):
		if err := c.bindOperation(ctx, rc, operationID, op.Result); err != nil {
			return zero, err
		}
	default:
		logger.Error("Failed to get session of operation", log.Error(err))
		return zero, ErrCommunicationFailed.with(err)
	}

	return respond(provider, operationID, op.UserID, op.Result, op.ResultDescription, op.Steps), nil
}

// bindOperation registers the operation in the caller's session and makes it the pending one.
// Operations still in progress in the session are canceled as interrupted first.
func (c *Controller) bindOperation(ctx context.Context, rc *RequestContext, operationID string,
	result model.AuthResult) error {
	c.cancelSupersededOperations(ctx, rc)
	registered, err := c.sessions.RegisterHTTPSession(ctx, operationID, rc.State.SessionID, result)
	if err != nil {
		return ErrCommunicationFailed.with(err)
	}
	if !registered {
		return ErrInvalidRequest
	}
	rc.State.PendingOperationID = operationID
	rc.State.ResetAuthentication()
	return nil
}

func respond[R any](provider AuthResponseProvider[R], operationID, userID string, result model.AuthResult,
	description string, steps []model.AuthStep) R {
	switch result {
	case model.AuthResultDone:
		return provider.DoneAuthentication(userID)
	case model.AuthResultFailed:
		return provider.FailedAuthentication(userID, description)
	default:
		return provider.ContinueAuthentication(operationID, userID, steps)
	}
}
