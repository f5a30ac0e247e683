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

// Package afsmock provides testify mocks of the afs interfaces.
package afsmock

import (
	"context"

	model "github.com/wultra/powerauth-webflow-sub005/internal/operation/model"

	mock "github.com/stretchr/testify/mock"
)

// NotifierInterfaceMock is an autogenerated mock type for the NotifierInterface type
type NotifierInterfaceMock struct {
	mock.Mock
}

// ExecuteLogoutAction provides a mock function with given fields: ctx, operationID, reason
func (_m *NotifierInterfaceMock) ExecuteLogoutAction(ctx context.Context, operationID string, reason model.OperationTerminationReason) {
	_m.Called(ctx, operationID, reason)
}

// ExecuteAuthAction provides a mock function with given fields: ctx, operationID, method, userID
func (_m *NotifierInterfaceMock) ExecuteAuthAction(ctx context.Context, operationID string, method model.AuthMethod, userID string) {
	_m.Called(ctx, operationID, method, userID)
}

// NewNotifierInterfaceMock creates a new instance of NotifierInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotifierInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotifierInterfaceMock {
	m := &NotifierInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
