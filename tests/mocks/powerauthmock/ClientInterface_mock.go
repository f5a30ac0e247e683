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

// Package powerauthmock provides testify mocks of the powerauth interfaces.
package powerauthmock

import (
	"context"

	powerauth "github.com/wultra/powerauth-webflow-sub005/internal/powerauth"

	mock "github.com/stretchr/testify/mock"
)

// ClientInterfaceMock is an autogenerated mock type for the ClientInterface type
type ClientInterfaceMock struct {
	mock.Mock
}

// CancelOperation provides a mock function with given fields: ctx, operationID
func (_m *ClientInterfaceMock) CancelOperation(ctx context.Context, operationID string) (*powerauth.OperationDetail, error) {
	ret := _m.Called(ctx, operationID)

	if len(ret) == 0 {
		panic("no return value specified for CancelOperation")
	}

	var r0 *powerauth.OperationDetail
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*powerauth.OperationDetail, error)); ok {
		return rf(ctx, operationID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *powerauth.OperationDetail); ok {
		r0 = rf(ctx, operationID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*powerauth.OperationDetail)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, operationID)
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
