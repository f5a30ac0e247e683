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

// Package sessionmock provides testify mocks of the session interfaces.
package sessionmock

import (
	"context"

	model "github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	session "github.com/wultra/powerauth-webflow-sub005/internal/session"

	mock "github.com/stretchr/testify/mock"
)

// ServiceInterfaceMock is an autogenerated mock type for the ServiceInterface type
type ServiceInterfaceMock struct {
	mock.Mock
}

// RegisterHTTPSession provides a mock function with given fields: ctx, operationID, httpSessionID, result
func (_m *ServiceInterfaceMock) RegisterHTTPSession(ctx context.Context, operationID string, httpSessionID string, result model.AuthResult) (bool, error) {
	ret := _m.Called(ctx, operationID, httpSessionID, result)

	if len(ret) == 0 {
		panic("no return value specified for RegisterHTTPSession")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, model.AuthResult) (bool, error)); ok {
		return rf(ctx, operationID, httpSessionID, result)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, model.AuthResult) bool); ok {
		r0 = rf(ctx, operationID, httpSessionID, result)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, model.AuthResult) error); ok {
		r1 = rf(ctx, operationID, httpSessionID, result)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetOperationSession provides a mock function with given fields: ctx, operationID
func (_m *ServiceInterfaceMock) GetOperationSession(ctx context.Context, operationID string) (*session.OperationSession, error) {
	ret := _m.Called(ctx, operationID)

	if len(ret) == 0 {
		panic("no return value specified for GetOperationSession")
	}

	var r0 *session.OperationSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*session.OperationSession, error)); ok {
		return rf(ctx, operationID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *session.OperationSession); ok {
		r0 = rf(ctx, operationID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*session.OperationSession)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, operationID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CancelOperationsInHTTPSession provides a mock function with given fields: ctx, httpSessionID
func (_m *ServiceInterfaceMock) CancelOperationsInHTTPSession(ctx context.Context, httpSessionID string) ([]session.OperationSession, error) {
	ret := _m.Called(ctx, httpSessionID)

	if len(ret) == 0 {
		panic("no return value specified for CancelOperationsInHTTPSession")
	}

	var r0 []session.OperationSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]session.OperationSession, error)); ok {
		return rf(ctx, httpSessionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []session.OperationSession); ok {
		r0 = rf(ctx, httpSessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]session.OperationSession)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, httpSessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOperationResult provides a mock function with given fields: ctx, operationID, result
func (_m *ServiceInterfaceMock) UpdateOperationResult(ctx context.Context, operationID string, result model.AuthResult) error {
	ret := _m.Called(ctx, operationID, result)

	if len(ret) == 0 {
		panic("no return value specified for UpdateOperationResult")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, model.AuthResult) error); ok {
		r0 = rf(ctx, operationID, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GenerateOperationHash provides a mock function with given fields: op
func (_m *ServiceInterfaceMock) GenerateOperationHash(op *model.OperationDetail) string {
	ret := _m.Called(op)

	if len(ret) == 0 {
		panic("no return value specified for GenerateOperationHash")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(*model.OperationDetail) string); ok {
		r0 = rf(op)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// NewServiceInterfaceMock creates a new instance of ServiceInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ServiceInterfaceMock {
	m := &ServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
