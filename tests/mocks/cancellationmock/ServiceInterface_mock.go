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

// Package cancellationmock provides testify mocks of the cancellation interfaces.
package cancellationmock

import (
	"context"

	cancellation "github.com/wultra/powerauth-webflow-sub005/internal/cancellation"
	nextstep "github.com/wultra/powerauth-webflow-sub005/internal/nextstep"

	mock "github.com/stretchr/testify/mock"
)

// ServiceInterfaceMock is an autogenerated mock type for the ServiceInterface type
type ServiceInterfaceMock struct {
	mock.Mock
}

// CancelOperation provides a mock function with given fields: ctx, request
func (_m *ServiceInterfaceMock) CancelOperation(ctx context.Context, request cancellation.CancelRequest) (*nextstep.UpdateOperationResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for CancelOperation")
	}

	var r0 *nextstep.UpdateOperationResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, cancellation.CancelRequest) (*nextstep.UpdateOperationResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, cancellation.CancelRequest) *nextstep.UpdateOperationResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*nextstep.UpdateOperationResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, cancellation.CancelRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
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
