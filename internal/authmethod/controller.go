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

// Package authmethod orchestrates the authentication steps of an operation: it resolves and
// validates the operation of the caller, submits step results to Next Step and maps the aggregate
// result of the operation to a response.
package authmethod

import (
	"context"
	"errors"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/afs"
	"github.com/wultra/powerauth-webflow-sub005/internal/cancellation"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/methodquery"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

const loggerComponentName = "AuthMethodController"

// FormDataTranslator localizes the form data of an operation.
type FormDataTranslator interface {
	TranslateFormData(formData *model.OperationFormData, locale string) *model.OperationFormData
}

// Dependencies are the collaborators of the Controller. Resolver, Translator and Clock are
// optional.
type Dependencies struct {
	NextStep     nextstep.ClientInterface
	Sessions     session.ServiceInterface
	Cancellation cancellation.ServiceInterface
	Methods      methodquery.ServiceInterface
	Afs          afs.NotifierInterface
	Operations   customization.OperationServiceInterface
	Resolver     AuthMethodResolver
	Translator   FormDataTranslator
	Clock        func() time.Time
}

// Controller holds the operation state machine shared by all authentication methods.
type Controller struct {
	nextStep     nextstep.ClientInterface
	sessions     session.ServiceInterface
	cancellation cancellation.ServiceInterface
	methods      methodquery.ServiceInterface
	afs          afs.NotifierInterface
	operations   customization.OperationServiceInterface
	resolver     AuthMethodResolver
	translator   FormDataTranslator
	now          func() time.Time
	logger       *log.Logger
}

// NewController creates a controller from its collaborators.
func NewController(deps Dependencies) *Controller {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	return &Controller{
		nextStep:     deps.NextStep,
		sessions:     deps.Sessions,
		cancellation: deps.Cancellation,
		methods:      deps.Methods,
		afs:          deps.Afs,
		operations:   deps.Operations,
		resolver:     deps.Resolver,
		translator:   deps.Translator,
		now:          now,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Operations returns the operation customization service, used by methods which decorate the
// operation for the user.
func (c *Controller) Operations() customization.OperationServiceInterface {
	return c.operations
}

// GetOperation returns the pending operation of the caller's session.
func (c *Controller) GetOperation(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	validate bool) (*model.OperationDetail, error) {
	if rc.State == nil || rc.State.PendingOperationID == "" {
		return nil, ErrOperationNotAvailable
	}
	return c.GetOperationByID(ctx, rc, rc.State.PendingOperationID, method, validate)
}

// GetOperationByID fetches the operation from Next Step, keeps only the steps available to the
// user and, when validate is set, refuses operations which cannot be used by the method. Canceled
// and finished operations pass validation so that they can be displayed.
func (c *Controller) GetOperationByID(ctx context.Context, rc *RequestContext, operationID string,
	method model.AuthMethod, validate bool) (*model.OperationDetail, error) {
	logger := c.logger.With(log.String(log.LoggerKeyOperationID, operationID),
		log.String(log.LoggerKeyAuthMethod, string(method)))

	op, err := c.nextStep.GetOperationDetail(ctx, operationID)
	if err != nil {
		logger.Error("Failed to get operation detail", log.Error(err))
		return nil, RemoteError(err)
	}

	if op.Result == model.AuthResultContinue {
		op.Steps = c.methods.FilterSteps(ctx, op.Steps, c.userOf(rc, op), operationID)
	}

	if validate {
		switch outcome := c.ValidateOperationState(ctx, rc, op, method).(type) {
		case FailedOutcome:
			return nil, outcome.Reason
		case AlreadyTerminalOutcome:
			if outcome.Kind == TerminalFailed {
				return nil, outcome.Err()
			}
		}
	}

	if c.translator != nil && op.FormData != nil {
		op.FormData = c.translator.TranslateFormData(op.FormData, rc.Locale)
	}
	return op, nil
}

// ValidateOperationState checks the operation against the state machine rules. An expired
// operation which is still in progress is canceled.
func (c *Controller) ValidateOperationState(ctx context.Context, rc *RequestContext, op *model.OperationDetail,
	method model.AuthMethod) OperationOutcome {
	if op == nil {
		return FailedOutcome{Reason: ErrOperationNotAvailable}
	}
	logger := c.logger.With(log.String(log.LoggerKeyOperationID, op.OperationID),
		log.String(log.LoggerKeyAuthMethod, string(method)))

	if op.Result == model.AuthResultContinue && op.IsExpired(c.now()) {
		logger.Info("Operation has timed out")
		c.cancelTimedOut(ctx, rc, op, method)
		return FailedOutcome{Reason: ErrOperationTimeout}
	}

	if op.Result == model.AuthResultFailed {
		if op.IsCanceled() {
			return AlreadyTerminalOutcome{Kind: TerminalCanceled}
		}
		logger.Info("Operation has already failed")
		return AlreadyTerminalOutcome{Kind: TerminalFailed}
	}

	if len(op.History) == 0 {
		logger.Error("Operation is missing its history")
		return FailedOutcome{Reason: ErrOperationMissingHistory}
	}

	if op.Result == model.AuthResultDone {
		return DoneOutcome{UserID: op.UserID}
	}

	if op.ChosenAuthMethod != nil && !op.HasStep(*op.ChosenAuthMethod) {
		logger.Warn("Chosen authentication method is not available",
			log.String("chosenAuthMethod", string(*op.ChosenAuthMethod)))
		return FailedOutcome{Reason: ErrInvalidChosenMethod}
	}

	if rc != nil && rc.OperationHash != "" && rc.OperationHash != c.sessions.GenerateOperationHash(op) {
		logger.Info("Operation was changed by another request")
		return FailedOutcome{Reason: ErrOperationInterrupted}
	}

	if method == model.AuthMethodShowOperationDetail && !op.HasStep(model.AuthMethodSMSKey) &&
		!op.HasStep(model.AuthMethodPowerAuthToken) && !op.HasStep(model.AuthMethodLoginSCA) {
		return FailedOutcome{Reason: ErrAuthMethodNotAvailable}
	}

	return ContinueOutcome{Steps: op.Steps}
}

// Authorize confirms the step of the method for the user.
func (c *Controller) Authorize(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	request AuthorizeRequest) (*UpdateResult, error) {
	return c.updateStep(ctx, rc, method, request, model.AuthStepResultConfirmed)
}

// FailAuthorization records a failed attempt of the method. The operation stays in progress while
// Next Step allows further attempts.
func (c *Controller) FailAuthorization(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	request AuthorizeRequest) (*UpdateResult, error) {
	return c.updateStep(ctx, rc, method, request, model.AuthStepResultAuthFailed)
}

// CancelAuthorization cancels the operation on behalf of the method.
func (c *Controller) CancelAuthorization(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	request CancelRequest) (*UpdateResult, error) {
	logger := c.logger.With(log.String(log.LoggerKeyOperationID, request.OperationID),
		log.String(log.LoggerKeyAuthMethod, string(method)))

	op, err := c.GetOperationByID(ctx, rc, request.OperationID, method, false)
	if err != nil {
		return nil, err
	}
	if terminal, ok := terminalOutcomeOf(op); ok {
		return nil, terminal.Err()
	}

	userID := request.UserID
	if userID == "" {
		userID = op.UserID
	}
	resp, err := c.cancellation.CancelOperation(ctx, cancellation.CancelRequest{
		OperationID:    request.OperationID,
		UserID:         userID,
		OrganizationID: op.OrganizationID,
		AuthMethod:     c.AuthMethodName(op, method),
		Reason:         request.Reason,
		Params:         request.Params,
		CancelRemote:   request.CancelRemote,
	})
	if err != nil {
		logger.Error("Failed to cancel operation", log.Error(err))
		return nil, RemoteError(err)
	}

	c.persistResult(ctx, request.OperationID, resp.Result)
	return &UpdateResult{
		OperationID:       request.OperationID,
		UserID:            userID,
		Result:            resp.Result,
		ResultDescription: resp.ResultDescription,
		Steps:             c.filterSteps(ctx, resp.Result, resp.Steps, userID, request.OperationID),
	}, nil
}

// AuthMethodName returns the method recorded for a step of the nominal method.
func (c *Controller) AuthMethodName(op *model.OperationDetail, method model.AuthMethod) model.AuthMethod {
	if c.resolver != nil {
		if resolved, ok := c.resolver.ResolveAuthMethod(op, method); ok {
			return resolved
		}
	}
	return method
}

// OperationHash returns the digest clients present to detect concurrent changes of the operation.
func (c *Controller) OperationHash(op *model.OperationDetail) string {
	return c.sessions.GenerateOperationHash(op)
}

// RemainingAttempts reconciles the bank side counter with the Next Step counter of the operation.
// The bank side counter alone is returned when the operation is not available.
func (c *Controller) RemainingAttempts(ctx context.Context, operationID string, remote *int) *int {
	op, err := c.nextStep.GetOperationDetail(ctx, operationID)
	if err != nil {
		c.logger.Warn("Failed to get remaining attempts of operation",
			log.String(log.LoggerKeyOperationID, operationID), log.Error(err))
		return ResolveRemainingAttempts(remote, nil)
	}
	return ResolveRemainingAttempts(remote, op.RemainingAttempts)
}

func (c *Controller) updateStep(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	request AuthorizeRequest, stepResult model.AuthStepResult) (*UpdateResult, error) {
	logger := c.logger.With(log.String(log.LoggerKeyOperationID, request.OperationID),
		log.String(log.LoggerKeyAuthMethod, string(method)), log.String("authStepResult", string(stepResult)))

	op, err := c.GetOperationByID(ctx, rc, request.OperationID, method, true)
	if err != nil {
		return nil, err
	}
	if terminal, ok := terminalOutcomeOf(op); ok {
		logger.Info("Refusing to update an operation which already ended")
		return nil, terminal.Err()
	}

	authMethod := c.AuthMethodName(op, method)
	resp, err := c.nextStep.UpdateOperation(ctx, nextstep.UpdateOperationRequest{
		OperationID:           request.OperationID,
		UserID:                request.UserID,
		OrganizationID:        request.OrganizationID,
		AuthMethod:            authMethod,
		AuthInstruments:       request.AuthInstruments,
		AuthStepResult:        stepResult,
		Params:                request.Params,
		ApplicationContext:    op.ApplicationContext,
		AuthenticationContext: request.PAAuthenticationContext,
	})
	if err != nil {
		logger.Error("Failed to update operation", log.Error(err))
		return nil, RemoteError(err)
	}
	logger.Debug("Operation updated", log.String("result", string(resp.Result)))

	if stepResult == model.AuthStepResultConfirmed && resp.Result == model.AuthResultDone {
		c.afs.ExecuteLogoutAction(ctx, request.OperationID, model.TerminationReasonDone)
	}
	if resp.Result.IsTerminal() {
		c.notifyChange(ctx, op, request, authMethod, stepResult, resp.Result)
	}
	c.persistResult(ctx, request.OperationID, resp.Result)

	return &UpdateResult{
		OperationID:       request.OperationID,
		UserID:            request.UserID,
		Result:            resp.Result,
		ResultDescription: resp.ResultDescription,
		Steps:             c.filterSteps(ctx, resp.Result, resp.Steps, request.UserID, request.OperationID),
	}, nil
}

// currentResult maps the operation as it is, for methods which updated it outside Web Flow.
func (c *Controller) currentResult(ctx context.Context, rc *RequestContext, method model.AuthMethod,
	operationID, userID string) (*UpdateResult, error) {
	op, err := c.GetOperationByID(ctx, rc, operationID, method, false)
	if err != nil {
		return nil, err
	}
	if op.Result == model.AuthResultDone && !c.alreadyDone(ctx, operationID) {
		c.afs.ExecuteLogoutAction(ctx, operationID, model.TerminationReasonDone)
	}
	c.persistResult(ctx, operationID, op.Result)
	return &UpdateResult{
		OperationID:       operationID,
		UserID:            userID,
		Result:            op.Result,
		ResultDescription: op.ResultDescription,
		Steps:             op.Steps,
	}, nil
}

func (c *Controller) cancelTimedOut(ctx context.Context, rc *RequestContext, op *model.OperationDetail,
	method model.AuthMethod) {
	resp, err := c.cancellation.CancelOperation(ctx, cancellation.CancelRequest{
		OperationID:    op.OperationID,
		UserID:         c.userOf(rc, op),
		OrganizationID: op.OrganizationID,
		AuthMethod:     c.AuthMethodName(op, method),
		Reason:         model.CancelReasonTimedOutOperation,
		CancelRemote:   true,
	})
	if err != nil {
		c.logger.Error("Failed to cancel timed out operation", log.String(log.LoggerKeyOperationID, op.OperationID),
			log.Error(err))
		return
	}
	c.persistResult(ctx, op.OperationID, resp.Result)
}

// notifyChange reports a terminal operation to the bank.
func (c *Controller) notifyChange(ctx context.Context, op *model.OperationDetail, request AuthorizeRequest,
	authMethod model.AuthMethod, stepResult model.AuthStepResult, result model.AuthResult) {
	changed := *op
	if request.UserID != "" {
		changed.UserID = request.UserID
	}
	if request.OrganizationID != "" {
		changed.OrganizationID = request.OrganizationID
	}
	changed.Result = result
	changed.History = append(append([]model.OperationHistory(nil), op.History...), model.OperationHistory{
		RequestAuthMethod:       authMethod,
		RequestAuthStepResult:   stepResult,
		ResponseResult:          result,
		PAAuthenticationContext: request.PAAuthenticationContext,
	})
	if err := c.operations.NotifyOperationChange(ctx, &changed); err != nil {
		c.logger.Warn("Operation change was not notified", log.String(log.LoggerKeyOperationID, op.OperationID),
			log.Error(err))
	}
}

func (c *Controller) persistResult(ctx context.Context, operationID string, result model.AuthResult) {
	if err := c.sessions.UpdateOperationResult(ctx, operationID, result); err != nil {
		c.logger.Warn("Failed to store operation result in its session",
			log.String(log.LoggerKeyOperationID, operationID), log.Error(err))
	}
}

// alreadyDone reports whether the session mapping already recorded the operation as done.
func (c *Controller) alreadyDone(ctx context.Context, operationID string) bool {
	stored, err := c.sessions.GetOperationSession(ctx, operationID)
	return err == nil && stored.Result == model.AuthResultDone
}

func (c *Controller) filterSteps(ctx context.Context, result model.AuthResult, steps []model.AuthStep, userID,
	operationID string) []model.AuthStep {
	if result != model.AuthResultContinue {
		return steps
	}
	return c.methods.FilterSteps(ctx, steps, userID, operationID)
}

// cancelSupersededOperations cancels the operations still in progress in the caller's session.
func (c *Controller) cancelSupersededOperations(ctx context.Context, rc *RequestContext) {
	superseded, err := c.sessions.CancelOperationsInHTTPSession(ctx, rc.State.SessionID)
	if err != nil {
		c.logger.Warn("Failed to list operations of session", log.String(log.LoggerKeySessionID, rc.State.SessionID),
			log.Error(err))
		return
	}
	for _, entry := range superseded {
		_, err := c.cancellation.CancelOperation(ctx, cancellation.CancelRequest{
			OperationID:  entry.OperationID,
			AuthMethod:   model.AuthMethodInit,
			Reason:       model.CancelReasonInterruptedOperation,
			CancelRemote: true,
		})
		if err != nil {
			c.logger.Warn("Failed to cancel superseded operation",
				log.String(log.LoggerKeyOperationID, entry.OperationID), log.Error(err))
		}
	}
}

func (c *Controller) userOf(rc *RequestContext, op *model.OperationDetail) string {
	if op.UserID != "" {
		return op.UserID
	}
	if rc != nil && rc.State != nil {
		return rc.State.UserID
	}
	return ""
}

// RemoteError converts a gateway error to an *AuthStepError. The terminal operation codes of Next
// Step keep their own kinds.
func RemoteError(err error) error {
	var stepErr *AuthStepError
	if errors.As(err, &stepErr) {
		return err
	}
	switch {
	case restclient.HasRemoteCode(err, nextstep.ErrorCodeOperationAlreadyFinished):
		return ErrOperationAlreadyFinished.with(err)
	case restclient.HasRemoteCode(err, nextstep.ErrorCodeOperationAlreadyCanceled):
		return ErrOperationAlreadyCanceled.with(err)
	case restclient.HasRemoteCode(err, nextstep.ErrorCodeOperationAlreadyFailed):
		return ErrOperationAlreadyFailed.with(err)
	case restclient.HasRemoteCode(err, nextstep.ErrorCodeOperationNotFound):
		return ErrOperationNotAvailable.with(err)
	default:
		return ErrCommunicationFailed.with(err)
	}
}
