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

package model

import (
	"time"
)

// OperationDetail is the full state of an operation held by Next Step.
type OperationDetail struct {
	OperationID           string              `json:"operationId"`
	OperationName         string              `json:"operationName"`
	OperationData         string              `json:"operationData"`
	OrganizationID        string              `json:"organizationId,omitempty"`
	ExternalTransactionID string              `json:"externalTransactionId,omitempty"`
	UserID                string              `json:"userId,omitempty"`
	AccountStatus         AccountStatus       `json:"accountStatus,omitempty"`
	ChosenAuthMethod      *AuthMethod         `json:"chosenAuthMethod,omitempty"`
	Result                AuthResult          `json:"result"`
	ResultDescription     string              `json:"resultDescription,omitempty"`
	TimestampCreated      Timestamp           `json:"timestampCreated"`
	TimestampExpires      Timestamp           `json:"timestampExpires"`
	History               []OperationHistory  `json:"history"`
	Steps                 []AuthStep          `json:"steps"`
	FormData              *OperationFormData  `json:"formData,omitempty"`
	AfsActions            []AfsActionDetail   `json:"afsActions,omitempty"`
	ApplicationContext    *ApplicationContext `json:"applicationContext,omitempty"`
	RemainingAttempts     *int                `json:"remainingAttempts,omitempty"`
	PAOperationID         string              `json:"paOperationId,omitempty"`
	Params                []KeyValueParameter `json:"params,omitempty"`
}

// IsExpired reports whether the operation expired at the given time. An operation without an
// expiry never expires.
func (o *OperationDetail) IsExpired(now time.Time) bool {
	if o.TimestampExpires.IsZero() {
		return false
	}
	return now.After(o.TimestampExpires.Time)
}

// LastHistory returns the most recent history entry, or nil for an empty history.
func (o *OperationDetail) LastHistory() *OperationHistory {
	if len(o.History) == 0 {
		return nil
	}
	return &o.History[len(o.History)-1]
}

// IsCanceled reports whether the operation failed because it was canceled.
func (o *OperationDetail) IsCanceled() bool {
	last := o.LastHistory()
	return o.Result == AuthResultFailed && last != nil && last.RequestAuthStepResult == AuthStepResultCanceled
}

// HasStep reports whether the given method is among the available next steps.
func (o *OperationDetail) HasStep(method AuthMethod) bool {
	for _, step := range o.Steps {
		if step.AuthMethod == method {
			return true
		}
	}
	return false
}

// AuthStep is one still available next action of an operation.
type AuthStep struct {
	AuthMethod AuthMethod `json:"authMethod"`
	Link       string     `json:"link,omitempty"`
}

// OperationHistory is an append-only entry describing one step attempt.
type OperationHistory struct {
	RequestAuthMethod       AuthMethod               `json:"requestAuthMethod"`
	ChosenAuthMethod        *AuthMethod              `json:"chosenAuthMethod,omitempty"`
	RequestAuthStepResult   AuthStepResult           `json:"requestAuthStepResult"`
	ResponseResult          AuthResult               `json:"responseResult"`
	PAAuthenticationContext *PAAuthenticationContext `json:"paAuthenticationContext,omitempty"`
}

// PAAuthenticationContext describes the PowerAuth signature used in a step.
type PAAuthenticationContext struct {
	SignatureType     string `json:"signatureType,omitempty"`
	RemainingAttempts *int   `json:"remainingAttempts,omitempty"`
	Blocked           bool   `json:"blocked"`
}

// ApplicationContext describes the OAuth2 client which started the operation.
type ApplicationContext struct {
	ID             string            `json:"id"`
	Name           string            `json:"name,omitempty"`
	Description    string            `json:"description,omitempty"`
	OriginalScopes []string          `json:"originalScopes,omitempty"`
	Extras         map[string]string `json:"extras,omitempty"`
}

// AfsActionDetail is a logged anti-fraud system action.
type AfsActionDetail struct {
	Action             string `json:"action"`
	StepIndex          int    `json:"stepIndex"`
	AfsLabel           string `json:"afsLabel,omitempty"`
	AfsResponseApplied bool   `json:"afsResponseApplied"`
}

// KeyValueParameter is a generic parameter passed along with an operation update.
type KeyValueParameter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AuthInstrument is a credential type used in a step.
type AuthInstrument string

const (
	AuthInstrumentCredential        AuthInstrument = "CREDENTIAL"
	AuthInstrumentOTPKey            AuthInstrument = "OTP_KEY"
	AuthInstrumentPowerAuthToken    AuthInstrument = "POWERAUTH_TOKEN"
	AuthInstrumentClientCertificate AuthInstrument = "CLIENT_CERTIFICATE"
	AuthInstrumentNone              AuthInstrument = "NONE"
)
