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

// Package powerauth provides the client of the PowerAuth server operations API used to cancel
// mobile token operations.
package powerauth

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

// ServiceName is used to build the client error code of PowerAuth server calls.
const ServiceName = "POWERAUTH"

// CancelOperationRequest is the request of the operation cancel call.
type CancelOperationRequest struct {
	OperationID string `json:"operationId"`
}

// OperationDetail is the mobile token operation returned by the PowerAuth server.
type OperationDetail struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// ClientInterface defines the PowerAuth server operations used by Web Flow.
type ClientInterface interface {
	CancelOperation(ctx context.Context, operationID string) (*OperationDetail, error)
}

type client struct {
	rest restclient.ClientInterface
}

// NewClient creates a PowerAuth server client on top of the given REST client.
func NewClient(rest restclient.ClientInterface) ClientInterface {
	return &client{rest: rest}
}

// CancelOperation cancels a mobile token operation.
func (c *client) CancelOperation(ctx context.Context, operationID string) (*OperationDetail, error) {
	var resp OperationDetail
	if err := c.rest.Post(ctx, "/rest/v3/operation/cancel", CancelOperationRequest{OperationID: operationID},
		&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
