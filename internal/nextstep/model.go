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

package nextstep

import (
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// Remote error codes returned by Next Step when an operation can no longer be updated.
const (
	ErrorCodeOperationAlreadyFinished = "OPERATION_ALREADY_FINISHED"
	ErrorCodeOperationAlreadyCanceled = "OPERATION_ALREADY_CANCELED"
	ErrorCodeOperationAlreadyFailed   = "OPERATION_ALREADY_FAILED"
	ErrorCodeOperationNotFound        = "OPERATION_NOT_FOUND"
	ErrorCodeUserNotFound             = "USER_IDENTITY_NOT_FOUND"
	ErrorCodeOrganizationNotFound     = "ORGANIZATION_NOT_FOUND"
)

// ServiceName is used to build the client error code of Next Step calls.
const ServiceName = "NEXT_STEP"

// GetOperationDetailRequest is the request of the operation detail call.
type GetOperationDetailRequest struct {
	OperationID string `json:"operationId"`
}

// CreateOperationRequest is the request of the operation create call.
type CreateOperationRequest struct {
	OperationName         string                    `json:"operationName"`
	OperationID           string                    `json:"operationId,omitempty"`
	OperationData         string                    `json:"operationData"`
	OrganizationID        string                    `json:"organizationId,omitempty"`
	ExternalTransactionID string                    `json:"externalTransactionId,omitempty"`
	FormData              *model.OperationFormData  `json:"formData,omitempty"`
	Params                []model.KeyValueParameter `json:"params,omitempty"`
	ApplicationContext    *model.ApplicationContext `json:"applicationContext,omitempty"`
}

// CreateOperationResponse is the response of the operation create call.
type CreateOperationResponse struct {
	OperationID       string                   `json:"operationId"`
	OperationName     string                   `json:"operationName"`
	OrganizationID    string                   `json:"organizationId,omitempty"`
	Result            model.AuthResult         `json:"result"`
	ResultDescription string                   `json:"resultDescription,omitempty"`
	TimestampCreated  model.Timestamp          `json:"timestampCreated"`
	TimestampExpires  model.Timestamp          `json:"timestampExpires"`
	Steps             []model.AuthStep         `json:"steps"`
	FormData          *model.OperationFormData `json:"formData,omitempty"`
}

// UpdateOperationRequest is the request of the operation update call.
type UpdateOperationRequest struct {
	OperationID               string                         `json:"operationId"`
	UserID                    string                         `json:"userId,omitempty"`
	OrganizationID            string                         `json:"organizationId,omitempty"`
	AuthMethod                model.AuthMethod               `json:"authMethod"`
	AuthInstruments           []model.AuthInstrument         `json:"authInstruments,omitempty"`
	AuthStepResult            model.AuthStepResult           `json:"authStepResult"`
	AuthStepResultDescription string                         `json:"authStepResultDescription,omitempty"`
	Params                    []model.KeyValueParameter      `json:"params,omitempty"`
	ApplicationContext        *model.ApplicationContext      `json:"applicationContext,omitempty"`
	AuthenticationContext     *model.PAAuthenticationContext `json:"authenticationContext,omitempty"`
}

// UpdateOperationResponse is the response of the operation update call.
type UpdateOperationResponse struct {
	OperationID       string           `json:"operationId"`
	OperationName     string           `json:"operationName"`
	UserID            string           `json:"userId,omitempty"`
	OrganizationID    string           `json:"organizationId,omitempty"`
	Result            model.AuthResult `json:"result"`
	ResultDescription string           `json:"resultDescription,omitempty"`
	TimestampCreated  model.Timestamp  `json:"timestampCreated"`
	TimestampExpires  model.Timestamp  `json:"timestampExpires"`
	Steps             []model.AuthStep `json:"steps"`
}

// UpdateChosenAuthMethodRequest is the request of the chosen method update call.
type UpdateChosenAuthMethodRequest struct {
	OperationID      string           `json:"operationId"`
	ChosenAuthMethod model.AuthMethod `json:"chosenAuthMethod"`
}

// GetOrganizationDetailRequest is the request of the organization detail call.
type GetOrganizationDetailRequest struct {
	OrganizationID string `json:"organizationId"`
}

// OrganizationDetail describes an organization configured in Next Step.
type OrganizationDetail struct {
	OrganizationID        string `json:"organizationId"`
	DisplayNameKey        string `json:"displayNameKey"`
	IsDefault             bool   `json:"isDefault"`
	OrderNumber           int    `json:"orderNumber"`
	DefaultCredentialName string `json:"defaultCredentialName,omitempty"`
	DefaultOtpName        string `json:"defaultOtpName,omitempty"`
}

// LookupUserRequest is the request of the user identity lookup call.
type LookupUserRequest struct {
	Username       string `json:"username"`
	CredentialName string `json:"credentialName"`
	OperationID    string `json:"operationId,omitempty"`
}

// UserIdentityStatus is the status of a user identity in Next Step.
type UserIdentityStatus string

const (
	UserIdentityStatusActive  UserIdentityStatus = "ACTIVE"
	UserIdentityStatusBlocked UserIdentityStatus = "BLOCKED"
	UserIdentityStatusRemoved UserIdentityStatus = "REMOVED"
)

// UserIdentity is the user found by a lookup.
type UserIdentity struct {
	UserID string             `json:"userId"`
	Status UserIdentityStatus `json:"userIdentityStatus"`
}

// CredentialDetail describes a credential of a user identity.
type CredentialDetail struct {
	CredentialName string `json:"credentialName"`
	Username       string `json:"username"`
	Status         string `json:"credentialStatus"`
}

// LookupUserResponse is the response of the user identity lookup call.
type LookupUserResponse struct {
	User        *UserIdentity      `json:"user"`
	Credentials []CredentialDetail `json:"credentials,omitempty"`
}

// GetUserAuthMethodsRequest is the request of the user auth method list call.
type GetUserAuthMethodsRequest struct {
	UserID string `json:"userId"`
}

// UserAuthMethodDetail is an authentication method setting of a user.
type UserAuthMethodDetail struct {
	UserID     string            `json:"userId"`
	AuthMethod model.AuthMethod  `json:"authMethod"`
	Config     map[string]string `json:"config,omitempty"`
}

// GetUserAuthMethodsResponse is the response of the user auth method list call.
type GetUserAuthMethodsResponse struct {
	UserAuthMethods []UserAuthMethodDetail `json:"userAuthMethods"`
}
