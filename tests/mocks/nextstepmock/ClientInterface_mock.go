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

// Package nextstepmock provides testify mocks of the nextstep interfaces.
package nextstepmock

import (
	"context"

	nextstep "github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	model "github.com/wultra/powerauth-webflow-sub005/internal/operation/model"

	mock "github.com/stretchr/testify/mock"
)

// ClientInterfaceMock is an autogenerated mock type for the ClientInterface type
type ClientInterfaceMock struct {
	mock.Mock
}

// GetOperationDetail provides a mock function with given fields: ctx, operationID
func (_m *ClientInterfaceMock) GetOperationDetail(ctx context.Context, operationID string) (*model.OperationDetail, error) {
	ret := _m.Called(ctx, operationID)

	if len(ret) == 0 {
		panic("no return value specified for GetOperationDetail")
	}

	var r0 *model.OperationDetail
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*model.OperationDetail, error)); ok {
		return rf(ctx, operationID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *model.OperationDetail); ok {
		r0 = rf(ctx, operationID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.OperationDetail)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, operationID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateOperation provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) CreateOperation(ctx context.Context, request nextstep.CreateOperationRequest) (*nextstep.CreateOperationResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for CreateOperation")
	}

	var r0 *nextstep.CreateOperationResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, nextstep.CreateOperationRequest) (*nextstep.CreateOperationResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, nextstep.CreateOperationRequest) *nextstep.CreateOperationResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*nextstep.CreateOperationResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, nextstep.CreateOperationRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOperation provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) UpdateOperation(ctx context.Context, request nextstep.UpdateOperationRequest) (*nextstep.UpdateOperationResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for UpdateOperation")
	}

	var r0 *nextstep.UpdateOperationResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, nextstep.UpdateOperationRequest) (*nextstep.UpdateOperationResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, nextstep.UpdateOperationRequest) *nextstep.UpdateOperationResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*nextstep.UpdateOperationResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, nextstep.UpdateOperationRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateChosenAuthMethod provides a mock function with given fields: ctx, operationID, method
func (_m *ClientInterfaceMock) UpdateChosenAuthMethod(ctx context.Context, operationID string, method model.AuthMethod) error {
	ret := _m.Called(ctx, operationID, method)

	if len(ret) == 0 {
		panic("no return value specified for UpdateChosenAuthMethod")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, model.AuthMethod) error); ok {
		r0 = rf(ctx, operationID, method)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetOrganizationDetail provides a mock function with given fields: ctx, organizationID
func (_m *ClientInterfaceMock) GetOrganizationDetail(ctx context.Context, organizationID string) (*nextstep.OrganizationDetail, error) {
	ret := _m.Called(ctx, organizationID)

	if len(ret) == 0 {
		panic("no return value specified for GetOrganizationDetail")
	}

	var r0 *nextstep.OrganizationDetail
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*nextstep.OrganizationDetail, error)); ok {
		return rf(ctx, organizationID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *nextstep.OrganizationDetail); ok {
		r0 = rf(ctx, organizationID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*nextstep.OrganizationDetail)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, organizationID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// LookupUser provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) LookupUser(ctx context.Context, request nextstep.LookupUserRequest) (*nextstep.LookupUserResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for LookupUser")
	}

	var r0 *nextstep.LookupUserResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, nextstep.LookupUserRequest) (*nextstep.LookupUserResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, nextstep.LookupUserRequest) *nextstep.LookupUserResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*nextstep.LookupUserResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, nextstep.LookupUserRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetAuthMethodsEnabledForUser provides a mock function with given fields: ctx, userID
func (_m *ClientInterfaceMock) GetAuthMethodsEnabledForUser(ctx context.Context, userID string) ([]nextstep.UserAuthMethodDetail, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetAuthMethodsEnabledForUser")
	}

	var r0 []nextstep.UserAuthMethodDetail
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]nextstep.UserAuthMethodDetail, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []nextstep.UserAuthMethodDetail); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]nextstep.UserAuthMethodDetail)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewClientInterfaceMock creates a new instance of ClientInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewClientInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ClientInterfaceMock {
	m := &ClientInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
