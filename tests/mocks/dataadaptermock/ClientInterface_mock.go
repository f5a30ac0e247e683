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

// Package dataadaptermock provides testify mocks of the dataadapter interfaces.
package dataadaptermock

import (
	"context"

	dataadapter "github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"

	mock "github.com/stretchr/testify/mock"
)

// ClientInterfaceMock is an autogenerated mock type for the ClientInterface type
type ClientInterfaceMock struct {
	mock.Mock
}

// AuthenticateUser provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) AuthenticateUser(ctx context.Context, request dataadapter.AuthenticateUserRequest) (*dataadapter.AuthenticateUserResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for AuthenticateUser")
	}

	var r0 *dataadapter.AuthenticateUserResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.AuthenticateUserRequest) (*dataadapter.AuthenticateUserResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.AuthenticateUserRequest) *dataadapter.AuthenticateUserResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.AuthenticateUserResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.AuthenticateUserRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// LookupUser provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) LookupUser(ctx context.Context, request dataadapter.LookupUserRequest) (*dataadapter.UserDetail, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for LookupUser")
	}

	var r0 *dataadapter.UserDetail
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.LookupUserRequest) (*dataadapter.UserDetail, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.LookupUserRequest) *dataadapter.UserDetail); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.UserDetail)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.LookupUserRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateAndSendSMS provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) CreateAndSendSMS(ctx context.Context, request dataadapter.CreateSMSRequest) (*dataadapter.SMSDeliveryResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for CreateAndSendSMS")
	}

	var r0 *dataadapter.SMSDeliveryResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.CreateSMSRequest) (*dataadapter.SMSDeliveryResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.CreateSMSRequest) *dataadapter.SMSDeliveryResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.SMSDeliveryResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.CreateSMSRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SendSMS provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) SendSMS(ctx context.Context, request dataadapter.SendSMSRequest) (*dataadapter.SMSDeliveryResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for SendSMS")
	}

	var r0 *dataadapter.SMSDeliveryResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.SendSMSRequest) (*dataadapter.SMSDeliveryResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.SendSMSRequest) *dataadapter.SMSDeliveryResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.SMSDeliveryResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.SendSMSRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// VerifySMS provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) VerifySMS(ctx context.Context, request dataadapter.VerifySMSRequest) (*dataadapter.VerifySMSResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for VerifySMS")
	}

	var r0 *dataadapter.VerifySMSResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.VerifySMSRequest) (*dataadapter.VerifySMSResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.VerifySMSRequest) *dataadapter.VerifySMSResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.VerifySMSResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.VerifySMSRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// VerifySMSAndPassword provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) VerifySMSAndPassword(ctx context.Context, request dataadapter.VerifySMSAndPasswordRequest) (*dataadapter.VerifySMSAndPasswordResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for VerifySMSAndPassword")
	}

	var r0 *dataadapter.VerifySMSAndPasswordResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.VerifySMSAndPasswordRequest) (*dataadapter.VerifySMSAndPasswordResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.VerifySMSAndPasswordRequest) *dataadapter.VerifySMSAndPasswordResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.VerifySMSAndPasswordResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.VerifySMSAndPasswordRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// VerifyCertificate provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) VerifyCertificate(ctx context.Context, request dataadapter.VerifyCertificateRequest) (*dataadapter.VerifyCertificateResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for VerifyCertificate")
	}

	var r0 *dataadapter.VerifyCertificateResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.VerifyCertificateRequest) (*dataadapter.VerifyCertificateResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.VerifyCertificateRequest) *dataadapter.VerifyCertificateResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.VerifyCertificateResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.VerifyCertificateRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DecorateFormData provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) DecorateFormData(ctx context.Context, request dataadapter.DecorateFormDataRequest) (*dataadapter.DecorateFormDataResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for DecorateFormData")
	}

	var r0 *dataadapter.DecorateFormDataResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.DecorateFormDataRequest) (*dataadapter.DecorateFormDataResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.DecorateFormDataRequest) *dataadapter.DecorateFormDataResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.DecorateFormDataResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.DecorateFormDataRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// OperationChangedNotification provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) OperationChangedNotification(ctx context.Context, request dataadapter.OperationChangeRequest) error {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for OperationChangedNotification")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.OperationChangeRequest) error); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// InitAuthMethod provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) InitAuthMethod(ctx context.Context, request dataadapter.InitAuthMethodRequest) (*dataadapter.InitAuthMethodResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for InitAuthMethod")
	}

	var r0 *dataadapter.InitAuthMethodResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.InitAuthMethodRequest) (*dataadapter.InitAuthMethodResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.InitAuthMethodRequest) *dataadapter.InitAuthMethodResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.InitAuthMethodResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.InitAuthMethodRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPAOperationMapping provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) GetPAOperationMapping(ctx context.Context, request dataadapter.GetPAOperationMappingRequest) (*dataadapter.GetPAOperationMappingResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for GetPAOperationMapping")
	}

	var r0 *dataadapter.GetPAOperationMappingResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.GetPAOperationMappingRequest) (*dataadapter.GetPAOperationMappingResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.GetPAOperationMappingRequest) *dataadapter.GetPAOperationMappingResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.GetPAOperationMappingResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.GetPAOperationMappingRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ExecuteAfsAction provides a mock function with given fields: ctx, request
func (_m *ClientInterfaceMock) ExecuteAfsAction(ctx context.Context, request dataadapter.AfsRequest) (*dataadapter.AfsResponse, error) {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for ExecuteAfsAction")
	}

	var r0 *dataadapter.AfsResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.AfsRequest) (*dataadapter.AfsResponse, error)); ok {
		return rf(ctx, request)
	}
	if rf, ok := ret.Get(0).(func(context.Context, dataadapter.AfsRequest) *dataadapter.AfsResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*dataadapter.AfsResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, dataadapter.AfsRequest) error); ok {
		r1 = rf(ctx, request)
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
