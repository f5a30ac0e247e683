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

// Package dataadapter provides the client of the Data Adapter, the bank specific service which
// verifies credentials and certificates, delivers SMS messages and decorates operations.
package dataadapter

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

// ClientInterface defines the Data Adapter operations used by Web Flow.
type ClientInterface interface {
	AuthenticateUser(ctx context.Context, request AuthenticateUserRequest) (*AuthenticateUserResponse, error)
	LookupUser(ctx context.Context, request LookupUserRequest) (*UserDetail, error)
	CreateAndSendSMS(ctx context.Context, request CreateSMSRequest) (*SMSDeliveryResponse, error)
	SendSMS(ctx context.Context, request SendSMSRequest) (*SMSDeliveryResponse, error)
	VerifySMS(ctx context.Context, request VerifySMSRequest) (*VerifySMSResponse, error)
	VerifySMSAndPassword(ctx context.Context,
		request VerifySMSAndPasswordRequest) (*VerifySMSAndPasswordResponse, error)
	VerifyCertificate(ctx context.Context, request VerifyCertificateRequest) (*VerifyCertificateResponse, error)
	DecorateFormData(ctx context.Context, request DecorateFormDataRequest) (*DecorateFormDataResponse, error)
	OperationChangedNotification(ctx context.Context, request OperationChangeRequest) error
	InitAuthMethod(ctx context.Context, request InitAuthMethodRequest) (*InitAuthMethodResponse, error)
	GetPAOperationMapping(ctx context.Context,
		request GetPAOperationMappingRequest) (*GetPAOperationMappingResponse, error)
	ExecuteAfsAction(ctx context.Context, request AfsRequest) (*AfsResponse, error)
}

// client is the implementation of ClientInterface.
type client struct {
	rest restclient.ClientInterface
}

// NewClient creates a Data Adapter client on top of the given REST client.
func NewClient(rest restclient.ClientInterface) ClientInterface {
	return &client{rest: rest}
}

// call posts the request and decodes the response object into a new T.
func call[T any](ctx context.Context, rest restclient.ClientInterface, path string, request interface{},
	opts ...restclient.CallOption) (*T, error) {
	var resp T
	if err := rest.Post(ctx, path, request, &resp, opts...); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthenticateUser verifies the username and password of a user.
func (c *client) AuthenticateUser(ctx context.Context,
	request AuthenticateUserRequest) (*AuthenticateUserResponse, error) {
	return call[AuthenticateUserResponse](ctx, c.rest, "/api/auth/user/authenticate", request)
}

// LookupUser resolves a user by username or client certificate.
func (c *client) LookupUser(ctx context.Context, request LookupUserRequest) (*UserDetail, error) {
	return call[UserDetail](ctx, c.rest, "/api/auth/user/lookup", request, restclient.WithRetry())
}

// CreateAndSendSMS creates an SMS OTP and sends it to the user.
func (c *client) CreateAndSendSMS(ctx context.Context, request CreateSMSRequest) (*SMSDeliveryResponse, error) {
	return call[SMSDeliveryResponse](ctx, c.rest, "/api/auth/sms/create", request)
}

// SendSMS resends an already created SMS OTP.
func (c *client) SendSMS(ctx context.Context, request SendSMSRequest) (*SMSDeliveryResponse, error) {
	return call[SMSDeliveryResponse](ctx, c.rest, "/api/auth/sms/send", request)
}

// VerifySMS verifies an SMS OTP.
func (c *client) VerifySMS(ctx context.Context, request VerifySMSRequest) (*VerifySMSResponse, error) {
	return call[VerifySMSResponse](ctx, c.rest, "/api/auth/sms/verify", request)
}

// VerifySMSAndPassword verifies an SMS OTP together with the user password.
func (c *client) VerifySMSAndPassword(ctx context.Context,
	request VerifySMSAndPasswordRequest) (*VerifySMSAndPasswordResponse, error) {
	return call[VerifySMSAndPasswordResponse](ctx, c.rest, "/api/auth/sms/password/verify", request)
}

// VerifyCertificate verifies a TLS client certificate.
func (c *client) VerifyCertificate(ctx context.Context,
	request VerifyCertificateRequest) (*VerifyCertificateResponse, error) {
	return call[VerifyCertificateResponse](ctx, c.rest, "/api/auth/certificate/verify", request)
}

// DecorateFormData lets the bank add user specific attributes to the operation form data.
func (c *client) DecorateFormData(ctx context.Context,
	request DecorateFormDataRequest) (*DecorateFormDataResponse, error) {
	return call[DecorateFormDataResponse](ctx, c.rest, "/api/operation/formdata/decorate", request,
		restclient.WithRetry())
}

// OperationChangedNotification notifies the bank about a terminal operation change.
func (c *client) OperationChangedNotification(ctx context.Context, request OperationChangeRequest) error {
	return c.rest.Post(ctx, "/api/operation/change/notify", request, nil)
}

// InitAuthMethod lets the bank prepare an authentication method for the user.
func (c *client) InitAuthMethod(ctx context.Context, request InitAuthMethodRequest) (*InitAuthMethodResponse, error) {
	return call[InitAuthMethodResponse](ctx, c.rest, "/api/auth/method/init", request)
}

// GetPAOperationMapping returns the mobile token representation of an operation.
func (c *client) GetPAOperationMapping(ctx context.Context,
	request GetPAOperationMappingRequest) (*GetPAOperationMappingResponse, error) {
	return call[GetPAOperationMappingResponse](ctx, c.rest, "/api/operation/mapping", request,
		restclient.WithRetry())
}

// ExecuteAfsAction executes an anti-fraud system action.
func (c *client) ExecuteAfsAction(ctx context.Context, request AfsRequest) (*AfsResponse, error) {
	return call[AfsResponse](ctx, c.rest, "/api/afs/action/execute", request)
}
