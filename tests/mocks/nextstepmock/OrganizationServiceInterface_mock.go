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

package nextstepmock

import (
	"context"

	nextstep "github.com/wultra/powerauth-webflow-sub005/internal/nextstep"

	mock "github.com/stretchr/testify/mock"
)

// OrganizationServiceInterfaceMock is an autogenerated mock type for the OrganizationServiceInterface type
type OrganizationServiceInterfaceMock struct {
	mock.Mock
}

// GetOrganization provides a mock function with given fields: ctx, organizationID
func (_m *OrganizationServiceInterfaceMock) GetOrganization(ctx context.Context, organizationID string) (*nextstep.OrganizationDetail, error) {
	ret := _m.Called(ctx, organizationID)

	if len(ret) == 0 {
		panic("no return value specified for GetOrganization")
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

// NewOrganizationServiceInterfaceMock creates a new instance of OrganizationServiceInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrganizationServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrganizationServiceInterfaceMock {
	m := &OrganizationServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
