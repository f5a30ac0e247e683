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

// OtpServiceInterfaceMock is an autogenerated mock type for the OtpServiceInterface type
type OtpServiceInterfaceMock struct {
	mock.Mock
}

// CreateAndSendOtp provides a mock function with given fields: ctx, request
func (_m *OtpServiceInterfaceMock) CreateAndSendOtp(ctx context.Context, request customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for CreateAndSendOtp")
	}

	var r0 *customization.OtpDeliveryResponse
	if rf, ok := ret.Get(0).(func(context.Context, customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.OtpDeliveryResponse)
		}
	}

	return r0
}

// SendOtp provides a mock function with given fields: ctx, messageID, request
func (_m *OtpServiceInterfaceMock) SendOtp(ctx context.Context, messageID string, request customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse {
	ret := _m.Called(ctx, messageID, request)

	if len(ret) == 0 {
		panic("no return value specified for SendOtp")
	}

	var r0 *customization.OtpDeliveryResponse
	if rf, ok := ret.Get(0).(func(context.Context, string, customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse); ok {
		r0 = rf(ctx, messageID, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.OtpDeliveryResponse)
		}
	}

	return r0
}

// NewOtpServiceInterfaceMock creates a new instance of OtpServiceInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOtpServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *OtpServiceInterfaceMock {
	m := &OtpServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
