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

// Package model defines the operation data structures shared by the Web Flow components.
package model

// AuthMethod identifies an authentication method or step of an operation.
type AuthMethod string

const (
	// AuthMethodInit is the initial step of every operation.
	AuthMethodInit AuthMethod = "INIT"
	// AuthMethodUsernamePassword is the form based username and password login.
	AuthMethodUsernamePassword AuthMethod = "USERNAME_PASSWORD_AUTH"
	// AuthMethodShowOperationDetail is the operation review pseudo-method.
	AuthMethodShowOperationDetail AuthMethod = "SHOW_OPERATION_DETAIL"
	// AuthMethodPowerAuthToken is the mobile token approval.
	AuthMethodPowerAuthToken AuthMethod = "POWERAUTH_TOKEN"
	// AuthMethodSMSKey is the SMS OTP authorization.
	AuthMethodSMSKey AuthMethod = "SMS_KEY"
	// AuthMethodConsent is the consent step.
	AuthMethodConsent AuthMethod = "CONSENT"
	// AuthMethodLoginSCA is the SCA login step.
	AuthMethodLoginSCA AuthMethod = "LOGIN_SCA"
	// AuthMethodApprovalSCA is the SCA approval step.
	AuthMethodApprovalSCA AuthMethod = "APPROVAL_SCA"
	// AuthMethodClientCertificate is the TLS client certificate authentication.
	AuthMethodClientCertificate AuthMethod = "CLIENT_CERTIFICATE"
)

// AuthResult is the aggregate result of an operation.
type AuthResult string

const (
	// AuthResultContinue means the operation expects further steps.
	AuthResultContinue AuthResult = "CONTINUE"
	// AuthResultDone means the operation was authorized.
	AuthResultDone AuthResult = "DONE"
	// AuthResultFailed means the operation failed or was canceled.
	AuthResultFailed AuthResult = "FAILED"
)

// IsTerminal reports whether the result can no longer change.
func (r AuthResult) IsTerminal() bool {
	return r == AuthResultDone || r == AuthResultFailed
}

// AuthStepResult is the result of a single step attempt.
type AuthStepResult string

const (
	// AuthStepResultConfirmed means the step was confirmed.
	AuthStepResultConfirmed AuthStepResult = "CONFIRMED"
	// AuthStepResultCanceled means the step was canceled.
	AuthStepResultCanceled AuthStepResult = "CANCELED"
	// AuthStepResultAuthFailed means authentication failed.
	AuthStepResultAuthFailed AuthStepResult = "AUTH_FAILED"
	// AuthStepResultAuthMethodFailed means the method itself failed.
	AuthStepResultAuthMethodFailed AuthStepResult = "AUTH_METHOD_FAILED"
)

// AccountStatus is the status of the user account at the bank.
type AccountStatus string

const (
	// AccountStatusActive is an active account.
	AccountStatusActive AccountStatus = "ACTIVE"
	// AccountStatusNotActive is an account that is not active yet or any more.
	AccountStatusNotActive AccountStatus = "NOT_ACTIVE"
	// AccountStatusBlocked is a blocked account.
	AccountStatusBlocked AccountStatus = "BLOCKED"
)

// OperationCancelReason explains why an operation was canceled.
type OperationCancelReason string

const (
	CancelReasonUnknown                OperationCancelReason = "UNKNOWN"
	CancelReasonIncorrectData          OperationCancelReason = "INCORRECT_DATA"
	CancelReasonUnexpectedOperation    OperationCancelReason = "UNEXPECTED_OPERATION"
	CancelReasonUnavailableAuthMethod  OperationCancelReason = "UNAVAILABLE_AUTH_METHOD"
	CancelReasonInterruptedOperation   OperationCancelReason = "INTERRUPTED_OPERATION"
	CancelReasonTimedOutOperation      OperationCancelReason = "TIMED_OUT_OPERATION"
	CancelReasonAuthMethodNotAvailable OperationCancelReason = "AUTH_METHOD_NOT_AVAILABLE"
)

// OperationTerminationReason is reported to the anti-fraud system when a session ends.
type OperationTerminationReason string

const (
	TerminationReasonDone   OperationTerminationReason = "DONE"
	TerminationReasonFailed OperationTerminationReason = "FAILED"
)

// OperationChange is reported to the Data Adapter when an operation reaches a terminal state.
type OperationChange string

const (
	OperationChangeDone     OperationChange = "DONE"
	OperationChangeFailed   OperationChange = "FAILED"
	OperationChangeCanceled OperationChange = "CANCELED"
)
