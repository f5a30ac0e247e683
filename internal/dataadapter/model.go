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

package dataadapter

import (
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// ServiceName is used to build the client error code of Data Adapter calls.
const ServiceName = "DATA_ADAPTER"

// Remote error codes returned by the Data Adapter.
const (
	ErrorCodeUserNotFound         = "USER_NOT_FOUND"
	ErrorCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	ErrorCodeSMSAuthorizationFail = "SMS_AUTHORIZATION_FAILED"
	ErrorCodeInvalidRequest       = "INVALID_REQUEST"
)

// Result is a success flag reported by the Data Adapter.
type Result string

const (
	ResultSucceeded Result = "SUCCEEDED"
	ResultFailed    Result = "FAILED"
	ResultVerified  Result = "VERIFIED"
)

// IsSuccess reports whether the result signals success.
func (r Result) IsSuccess() bool {
	return r == ResultSucceeded || r == ResultVerified
}

// UserDetail describes a user known to the bank.
type UserDetail struct {
	ID             string              `json:"id"`
	GivenName      string              `json:"givenName,omitempty"`
	FamilyName     string              `json:"familyName,omitempty"`
	OrganizationID string              `json:"organizationId,omitempty"`
	AccountStatus  model.AccountStatus `json:"accountStatus,omitempty"`
	Extras         map[string]string   `json:"extras,omitempty"`
}

// AuthenticateUserRequest is the request of the credential authentication call.
type AuthenticateUserRequest struct {
	UserID           string                 `json:"userId,omitempty"`
	Username         string                 `json:"username"`
	Password         string                 `json:"password"`
	OrganizationID   string                 `json:"organizationId"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// AuthenticateUserResponse is the response of the credential authentication call.
type AuthenticateUserResponse struct {
	UserDetail            *UserDetail         `json:"userDetail,omitempty"`
	AuthenticationResult  Result              `json:"authenticationResult"`
	AccountStatus         model.AccountStatus `json:"accountStatus,omitempty"`
	RemainingAttempts     *int                `json:"remainingAttempts,omitempty"`
	ShowRemainingAttempts bool                `json:"showRemainingAttempts"`
	ErrorMessage          string              `json:"errorMessage,omitempty"`
}

// CreateSMSRequest is the request of the SMS OTP create and send call.
type CreateSMSRequest struct {
	UserID           string                 `json:"userId"`
	OrganizationID   string                 `json:"organizationId"`
	AccountStatus    model.AccountStatus    `json:"accountStatus,omitempty"`
	AuthMethod       model.AuthMethod       `json:"authMethod"`
	Lang             string                 `json:"lang"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// SendSMSRequest is the request of the SMS OTP resend call.
type SendSMSRequest struct {
	MessageID        string                 `json:"messageId"`
	UserID           string                 `json:"userId"`
	OrganizationID   string                 `json:"organizationId"`
	AccountStatus    model.AccountStatus    `json:"accountStatus,omitempty"`
	AuthMethod       model.AuthMethod       `json:"authMethod"`
	Lang             string                 `json:"lang"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// SMSDeliveryResponse is the response of the SMS OTP create and resend calls.
type SMSDeliveryResponse struct {
	MessageID      string `json:"messageId"`
	DeliveryResult Result `json:"smsDeliveryResult"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
}

// VerifySMSRequest is the request of the SMS OTP verification call.
type VerifySMSRequest struct {
	MessageID         string                 `json:"messageId"`
	AuthorizationCode string                 `json:"authorizationCode"`
	UserID            string                 `json:"userId"`
	OrganizationID    string                 `json:"organizationId"`
	AccountStatus     model.AccountStatus    `json:"accountStatus,omitempty"`
	OperationContext  model.OperationContext `json:"operationContext"`
}

// VerifySMSResponse is the response of the SMS OTP verification call.
type VerifySMSResponse struct {
	SMSAuthorizationResult Result              `json:"smsAuthorizationResult"`
	AccountStatus          model.AccountStatus `json:"accountStatus,omitempty"`
	RemainingAttempts      *int                `json:"remainingAttempts,omitempty"`
	ShowRemainingAttempts  bool                `json:"showRemainingAttempts"`
	ErrorMessage           string              `json:"errorMessage,omitempty"`
}

// VerifySMSAndPasswordRequest is the request of the combined SMS OTP and password verification call.
type VerifySMSAndPasswordRequest struct {
	MessageID         string                 `json:"messageId"`
	AuthorizationCode string                 `json:"authorizationCode"`
	UserID            string                 `json:"userId"`
	OrganizationID    string                 `json:"organizationId"`
	AccountStatus     model.AccountStatus    `json:"accountStatus,omitempty"`
	Password          string                 `json:"password"`
	OperationContext  model.OperationContext `json:"operationContext"`
}

// VerifySMSAndPasswordResponse is the response of the combined verification call.
type VerifySMSAndPasswordResponse struct {
	SMSAuthorizationResult Result              `json:"smsAuthorizationResult"`
	UserAuthResult         Result              `json:"userAuthenticationResult"`
	AccountStatus          model.AccountStatus `json:"accountStatus,omitempty"`
	RemainingAttempts      *int                `json:"remainingAttempts,omitempty"`
	ShowRemainingAttempts  bool                `json:"showRemainingAttempts"`
	ErrorMessage           string              `json:"errorMessage,omitempty"`
}

// VerifyCertificateRequest is the request of the client certificate verification call.
type VerifyCertificateRequest struct {
	Certificate      string                 `json:"certificate"`
	AuthMethod       model.AuthMethod       `json:"authMethod"`
	UserID           string                 `json:"userId"`
	OrganizationID   string                 `json:"organizationId"`
	AccountStatus    model.AccountStatus    `json:"accountStatus,omitempty"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// VerifyCertificateResponse is the response of the client certificate verification call.
type VerifyCertificateResponse struct {
	VerificationResult    Result              `json:"certificateVerificationResult"`
	AccountStatus         model.AccountStatus `json:"accountStatus,omitempty"`
	RemainingAttempts     *int                `json:"remainingAttempts,omitempty"`
	ShowRemainingAttempts bool                `json:"showRemainingAttempts"`
	ErrorMessage          string              `json:"errorMessage,omitempty"`
}

// DecorateFormDataRequest is the request of the form data decoration call.
type DecorateFormDataRequest struct {
	UserID           string                 `json:"userId"`
	OrganizationID   string                 `json:"organizationId"`
	AuthMethod       model.AuthMethod       `json:"authMethod"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// DecorateFormDataResponse is the response of the form data decoration call.
type DecorateFormDataResponse struct {
	FormData *model.OperationFormData `json:"formData"`
}

// OperationChangeRequest notifies the Data Adapter about a terminal operation change.
type OperationChangeRequest struct {
	OperationChange       model.OperationChange         `json:"operationChange"`
	UserID                string                        `json:"userId,omitempty"`
	OrganizationID        string                        `json:"organizationId,omitempty"`
	OperationContext      model.OperationContext        `json:"operationContext"`
	AuthenticationContext model.PAAuthenticationContext `json:"authenticationContext"`
}

// LookupUserRequest is the request of the user lookup call.
type LookupUserRequest struct {
	Username          string                 `json:"username"`
	OrganizationID    string                 `json:"organizationId"`
	ClientCertificate string                 `json:"clientCertificate,omitempty"`
	OperationContext  model.OperationContext `json:"operationContext"`
}

// InitAuthMethodRequest is the request of the auth method initialization call.
type InitAuthMethodRequest struct {
	UserID           string                 `json:"userId,omitempty"`
	OrganizationID   string                 `json:"organizationId,omitempty"`
	AuthMethod       model.AuthMethod       `json:"authMethod"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// InitAuthMethodResponse is the response of the auth method initialization call.
type InitAuthMethodResponse struct {
	AuthMethod model.AuthMethod  `json:"authMethod"`
	Config     map[string]string `json:"config,omitempty"`
}

// GetPAOperationMappingRequest is the request of the mobile token operation mapping call.
type GetPAOperationMappingRequest struct {
	UserID           string                 `json:"userId"`
	OrganizationID   string                 `json:"organizationId"`
	AuthMethod       model.AuthMethod       `json:"authMethod"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// GetPAOperationMappingResponse maps an operation to its mobile token representation.
type GetPAOperationMappingResponse struct {
	OperationName     string                   `json:"operationName"`
	OperationData     string                   `json:"operationData"`
	OperationFormData *model.OperationFormData `json:"formData,omitempty"`
}

// AfsAction is an anti-fraud system action type.
type AfsAction string

const (
	AfsActionLoginInit    AfsAction = "LOGIN_INIT"
	AfsActionLoginAuth    AfsAction = "LOGIN_AUTH"
	AfsActionApprovalAuth AfsAction = "APPROVAL_AUTH"
	AfsActionLogout       AfsAction = "LOGOUT"
)

// AfsRequest is the request of the anti-fraud action call.
type AfsRequest struct {
	UserID           string                 `json:"userId,omitempty"`
	OrganizationID   string                 `json:"organizationId,omitempty"`
	Action           AfsAction              `json:"afsAction"`
	AuthMethod       model.AuthMethod       `json:"authMethod,omitempty"`
	StepIndex        int                    `json:"stepIndex"`
	ExtraParameters  map[string]string      `json:"extras,omitempty"`
	OperationContext model.OperationContext `json:"operationContext"`
}

// AfsResponse is the response of the anti-fraud action call.
type AfsResponse struct {
	AfsResponseApplied bool     `json:"afsResponseApplied"`
	AfsLabel           string   `json:"afsLabel,omitempty"`
	AuthInstruments    []string `json:"authInstruments,omitempty"`
}
