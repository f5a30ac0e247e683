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

// Package nextstep provides the client of the Next Step server, which owns the operation state
// machine, together with the organization lookups built on top of it.
package nextstep

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

// ClientInterface defines the Next Step operations used by Web Flow.
type ClientInterface interface {
	GetOperationDetail(ctx context.Context, operationID string) (*model.OperationDetail, error)
	CreateOperation(ctx context.Context, request CreateOperationRequest) (*CreateOperationResponse, error)
	UpdateOperation(ctx context.Context, request UpdateOperationRequest) (*UpdateOperationResponse, error)
	UpdateChosenAuthMethod(ctx context.Context, operationID string, method model.AuthMethod) error
	GetOrganizationDetail(ctx context.Context, organizationID string) (*OrganizationDetail, error)
	LookupUser(ctx context.Context, request LookupUserRequest) (*LookupUserResponse, error)
	GetAuthMethodsEnabledForUser(ctx context.Context, userID string) ([]UserAuthMethodDetail, error)
}

// client is the implementation of ClientInterface.
type client struct {
	rest restclient.ClientInterface
}

// NewClient creates a Next Step client on top of the given REST client.
func NewClient(rest restclient.ClientInterface) ClientInterface {
	return &client{rest: rest}
}

// GetOperationDetail retrieves the full state of an operation.
func (c *client) GetOperationDetail(ctx context.Context, operationID string) (*model.OperationDetail, error) {
	var resp model.OperationDetail
	if err := c.rest.Post(ctx, "/operation/detail", GetOperationDetailRequest{OperationID: operationID},
		&resp, restclient.WithRetry()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateOperation creates a new operation.
func (c *client) CreateOperation(ctx context.Context,
	request CreateOperationRequest) (*CreateOperationResponse, error) {
	var resp CreateOperationResponse
	if err := c.rest.Post(ctx, "/operation", request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateOperation submits a step result and returns the new aggregate result with the next steps.
func (c *client) UpdateOperation(ctx context.Context,
	request UpdateOperationRequest) (*UpdateOperationResponse, error) {
	var resp UpdateOperationResponse
	if err := c.rest.Post(ctx, "/operation/update", request, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateChosenAuthMethod stores the method chosen by the user.
func (c *client) UpdateChosenAuthMethod(ctx context.Context, operationID string, method model.AuthMethod) error {
	return c.rest.Post(ctx, "/operation/chosenAuthMethod/update",
		UpdateChosenAuthMethodRequest{OperationID: operationID, ChosenAuthMethod: method}, nil)
}

// GetOrganizationDetail retrieves an organization.
func (c *client) GetOrganizationDetail(ctx context.Context, organizationID string) (*OrganizationDetail, error) {
	var resp OrganizationDetail
	if err := c.rest.Post(ctx, "/organization/detail", GetOrganizationDetailRequest{OrganizationID: organizationID},
		&resp, restclient.WithRetry()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LookupUser looks up a user identity by username and credential name.
func (c *client) LookupUser(ctx context.Context, request LookupUserRequest) (*LookupUserResponse, error) {
	var resp LookupUserResponse
	if err := c.rest.Post(ctx, "/user/lookup/single", request, &resp, restclient.WithRetry()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAuthMethodsEnabledForUser lists the authentication methods the user has enabled.
func (c *client) GetAuthMethodsEnabledForUser(ctx context.Context, userID string) ([]UserAuthMethodDetail, error) {
	var resp GetUserAuthMethodsResponse
	if err := c.rest.Post(ctx, "/user/auth-method/list", GetUserAuthMethodsRequest{UserID: userID},
		&resp, restclient.WithRetry()); err != nil {
		return nil, err
	}
	return resp.UserAuthMethods, nil
}
