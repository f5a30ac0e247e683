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

package customizationmock

import (
	"context"

	customization "github.com/wultra/powerauth-webflow-sub005/internal/customization"

	mock "github.com/stretchr/testify/mock"
)

// UserLookupServiceInterfaceMock is an autogenerated mock type for the UserLookupServiceInterface type
type UserLookupServiceInterfaceMock struct {
	mock.Mock
}

// LookupUser provides a mock function with given fields: ctx, request
func (_m *UserLookupServiceInterfaceMock) LookupUser(ctx context.Context, request customization.UserLookupRequest) *customization.UserLookupResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for LookupUser")
	}

	var r0 *customization.UserLookupResponse
	if rf, ok := ret.Get(0).(func(context.Context, customization.UserLookupRequest) *customization.UserLookupResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.UserLookupResponse)
		}
	}

	return r0
}

// NewUserLookupServiceInterfaceMock creates a new instance of UserLookupServiceInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserLookupServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserLookupServiceInterfaceMock {
	m := &UserLookupServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
