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
	"fmt"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// ErrorKind classifies the failures of an authentication step.
type ErrorKind string

const (
	KindOperationNotAvailable    ErrorKind = "OPERATION_NOT_AVAILABLE"
	KindOperationTimeout         ErrorKind = "OPERATION_TIMEOUT"
	KindOperationInterrupted     ErrorKind = "OPERATION_INTERRUPTED"
	KindOperationMissingHistory  ErrorKind = "OPERATION_MISSING_HISTORY"
	KindInvalidChosenMethod      ErrorKind = "INVALID_CHOSEN_METHOD"
	KindAuthMethodNotAvailable   ErrorKind = "AUTH_METHOD_NOT_AVAILABLE"
	KindOperationAlreadyFinished ErrorKind = "OPERATION_ALREADY_FINISHED"
	KindOperationAlreadyCanceled ErrorKind = "OPERATION_ALREADY_CANCELED"
	KindOperationAlreadyFailed   ErrorKind = "OPERATION_ALREADY_FAILED"
	KindInvalidRequest           ErrorKind = "INVALID_REQUEST"
	KindCommunicationFailed      ErrorKind = "COMMUNICATION_FAILED"
	KindAuthenticationFailed     ErrorKind = "AUTHENTICATION_FAILED"
	KindMaxAttemptsExceeded      ErrorKind = "MAX_ATTEMPTS_EXCEEDED"
)

// AuthStepError is a failure of an authentication step. MessageKey is the localizable key shown
// to the user.
type AuthStepError struct {
	Kind              ErrorKind
	MessageKey        string
	RemainingAttempts *int
	AccountStatus     model.AccountStatus
	Err               error
}

func (e *AuthStepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.MessageKey, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.MessageKey)
}

func (e *AuthStepError) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind, so that errors.Is works against the sentinels.
func (e *AuthStepError) Is(target error) bool {
	t, ok := target.(*AuthStepError)
	return ok && t.Kind == e.Kind
}

// with returns a copy of the error wrapping the cause.
func (e *AuthStepError) with(cause error) *AuthStepError {
	clone := *e
	clone.Err = cause
	return &clone
}

var (
	ErrOperationNotAvailable = &AuthStepError{Kind: KindOperationNotAvailable,
		MessageKey: "operation.notAvailable"}
	ErrOperationTimeout     = &AuthStepError{Kind: KindOperationTimeout, MessageKey: "operation.timeout"}
	ErrOperationInterrupted = &AuthStepError{Kind: KindOperationInterrupted,
		MessageKey: "operation.interrupted"}
	ErrOperationMissingHistory = &AuthStepError{Kind: KindOperationMissingHistory,
		MessageKey: "operation.missingHistory"}
	ErrInvalidChosenMethod = &AuthStepError{Kind: KindInvalidChosenMethod,
		MessageKey: "operation.invalidChosenMethod"}
	ErrAuthMethodNotAvailable = &AuthStepError{Kind: KindAuthMethodNotAvailable,
		MessageKey: "operation.methodNotAvailable"}
	ErrOperationAlreadyFinished = &AuthStepError{Kind: KindOperationAlreadyFinished,
		MessageKey: "operation.alreadyFinished"}
	ErrOperationAlreadyCanceled = &AuthStepError{Kind: KindOperationAlreadyCanceled,
		MessageKey: "operation.canceled"}
	ErrOperationAlreadyFailed = &AuthStepError{Kind: KindOperationAlreadyFailed,
		MessageKey: "operation.alreadyFailed"}
	ErrInvalidRequest      = &AuthStepError{Kind: KindInvalidRequest, MessageKey: "error.invalidRequest"}
	ErrCommunicationFailed = &AuthStepError{Kind: KindCommunicationFailed,
		MessageKey: "error.communication"}
	ErrAuthenticationFailed = &AuthStepError{Kind: KindAuthenticationFailed,
		MessageKey: "login.authenticationFailed"}
	ErrMaxAttemptsExceeded = &AuthStepError{Kind: KindMaxAttemptsExceeded,
		MessageKey: "authentication.maxAttemptsExceeded"}
)

// NewAuthenticationFailed returns an authentication failure with the remaining attempts and the
// account status known after the failed attempt. An empty message key keeps the default one.
func NewAuthenticationFailed(messageKey string, remainingAttempts *int,
	accountStatus model.AccountStatus) *AuthStepError {
	err := *ErrAuthenticationFailed
	if messageKey != "" {
		err.MessageKey = messageKey
	}
	err.RemainingAttempts = remainingAttempts
	err.AccountStatus = accountStatus
	return &err
}
