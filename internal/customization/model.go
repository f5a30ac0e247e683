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
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// AuthenticationResult is the local result of an authentication attempt.
type AuthenticationResult string

const (
	AuthenticationSucceeded AuthenticationResult = "SUCCEEDED"
	AuthenticationFailed    AuthenticationResult = "FAILED"
)

// UserIdentityStatus is the locally tracked status of an authenticated user.
type UserIdentityStatus string

const (
	UserIdentityActive  UserIdentityStatus = "ACTIVE"
	UserIdentityBlocked UserIdentityStatus = "BLOCKED"
)

// Default message keys of degraded results.
const (
	MessageAuthenticationFailed   = "login.authenticationFailed"
	MessageSMSAuthorizationFailed = "smsAuthorization.failed"
	MessageSMSDeliveryFailed      = "smsAuthorization.deliveryFailed"
	MessageCertificateFailed      = "clientCertificate.failed"
	MessageUserNotFound           = "login.userNotFound"
)

// CredentialRequest carries a username and password verification.
type CredentialRequest struct {
	UserID           string
	Username         string
	Password         string
	OrganizationID   string
	OperationContext model.OperationContext
}

// CredentialAuthResponse is the result of a username and password verification.
type CredentialAuthResponse struct {
	UserID                string
	OrganizationID        string
	AuthenticationResult  AuthenticationResult
	AccountStatus         model.AccountStatus
	UserIdentityStatus    UserIdentityStatus
	RemainingAttempts     *int
	ShowRemainingAttempts bool
	ErrorMessage          string
}

// OtpRequest carries an SMS OTP verification.
type OtpRequest struct {
	MessageID         string
	AuthorizationCode string
	UserID            string
	OrganizationID    string
	AccountStatus     model.AccountStatus
	OperationContext  model.OperationContext
}

// CombinedRequest carries an SMS OTP verification combined with the user password.
type CombinedRequest struct {
	OtpRequest
	Password string
}

// CertificateRequest carries a TLS client certificate verification.
type CertificateRequest struct {
	Certificate      string
	AuthMethod       model.AuthMethod
	UserID           string
	OrganizationID   string
	AccountStatus    model.AccountStatus
	OperationContext model.OperationContext
}

// VerificationResponse is the result of an OTP or certificate verification.
type VerificationResponse struct {
	AuthenticationResult  AuthenticationResult
	AccountStatus         model.AccountStatus
	RemainingAttempts     *int
	ShowRemainingAttempts bool
	ErrorMessage          string
}

// CombinedAuthResponse is the result of an SMS OTP verification combined with the password.
// AuthenticationResult succeeds only when both sub-results succeed.
type CombinedAuthResponse struct {
	CredentialResult      AuthenticationResult
	OtpResult             AuthenticationResult
	AuthenticationResult  AuthenticationResult
	AccountStatus         model.AccountStatus
	RemainingAttempts     *int
	ShowRemainingAttempts bool
	ErrorMessage          string
}

// OtpDeliveryRequest carries an SMS OTP delivery.
type OtpDeliveryRequest struct {
	UserID           string
	OrganizationID   string
	AccountStatus    model.AccountStatus
	AuthMethod       model.AuthMethod
	Lang             string
	OperationContext model.OperationContext
}

// OtpDeliveryResponse is the result of an SMS OTP delivery.
type OtpDeliveryResponse struct {
	MessageID    string
	Delivered    bool
	ErrorMessage string
}

// UserLookupRequest carries a user lookup by username or client certificate.
type UserLookupRequest struct {
	Username          string
	OrganizationID    string
	CredentialName    string
	ClientCertificate string
	OperationContext  model.OperationContext
}

// UserLookupResponse is the result of a user lookup.
type UserLookupResponse struct {
	UserID               string
	OrganizationID       string
	AccountStatus        model.AccountStatus
	AuthenticationResult AuthenticationResult
	ErrorMessage         string
}

func resultOf(success bool) AuthenticationResult {
	if success {
		return AuthenticationSucceeded
	}
	return AuthenticationFailed
}
