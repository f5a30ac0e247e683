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

	dataadapter "github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	model "github.com/wultra/powerauth-webflow-sub005/internal/operation/model"

	mock "github.com/stretchr/testify/mock"
)

// OperationServiceInterfaceMock is an autogenerated mock type for the OperationServiceInterface type
type OperationServiceInterfaceMock struct {
	mock.Mock
}

// NotifyOperationChange provides a mock function with given fields: ctx, op
func (_m *OperationServiceInterfaceMock) NotifyOperationChange(ctx context.Context, op *model.OperationDetail) error {
	ret := _m.Called(ctx, op)

	if len(ret) == 0 {
		panic("no return value specified for NotifyOperationChange")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *model.OperationDetail) error); ok {
		r0 = rf(ctx, op)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DecorateFormData provides a mock function with given fields: ctx, op, userID, method
func (_m *OperationServiceInterfaceMock) DecorateFormData(ctx context.Context, op *model.OperationDetail, userID string, method model.AuthMethod) *model.OperationFormData {
	ret := _m.Called(ctx, op, userID, method)

	if len(ret) == 0 {
		panic("no return value specified for DecorateFormData")
	}

	var r0 *model.OperationFormData
	if rf, ok := ret.Get(0).(func(context.Context, *model.OperationDetail, string, model.AuthMethod) *model.OperationFormData); ok {
		r0 = rf(ctx, op, userID, method)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.OperationFormData)
		}
	}

	return r0
}

// GetPAOperationMapping provides a mock function with given fields: ctx, op, userID, method
func (_m *OperationServiceInterfaceMock) GetPAOperationMapping(ctx context.Context, op *model.OperationDetail, userID string, method model.AuthMethod) *dataadapter.GetPAOperationMappingResponse {
	ret := _m.Called(ctx, op, userID, method)

	if len(ret) == 0 {
		panic("no return value specified for GetPAOperationMapping")
	}

	var r0 *dataadapter.GetPAOperationMappingResponse
	if rf, ok := ret.Get(0).(func(context.Context, *model.OperationDetail, string, model.AuthMethod) *dataadapter.GetPAOperationMappingResponse); ok {
		r0 = rf(ctx, op, userID, method)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.GetPAOperationMappingResponse)
		}
	}

	return r0
}

// NewOperationServiceInterfaceMock creates a new instance of OperationServiceInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOperationServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *OperationServiceInterfaceMock {
	m := &OperationServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
