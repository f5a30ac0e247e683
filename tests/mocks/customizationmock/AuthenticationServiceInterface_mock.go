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

// Package customizationmock provides testify mocks of the customization interfaces.
package customizationmock

import (
	"context"

	customization "github.com/wultra/powerauth-webflow-sub005/internal/customization"
	model "github.com/wultra/powerauth-webflow-sub005/internal/operation/model"

	mock "github.com/stretchr/testify/mock"
)

// AuthenticationServiceInterfaceMock is an autogenerated mock type for the AuthenticationServiceInterface type
type AuthenticationServiceInterfaceMock struct {
	mock.Mock
}

// AuthenticateWithCredential provides a mock function with given fields: ctx, request
func (_m *AuthenticationServiceInterfaceMock) AuthenticateWithCredential(ctx context.Context, request customization.CredentialRequest) *customization.CredentialAuthResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for AuthenticateWithCredential")
	}

	var r0 *customization.CredentialAuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, customization.CredentialRequest) *customization.CredentialAuthResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.CredentialAuthResponse)
		}
	}

	return r0
}

// AuthenticateWithOtp provides a mock function with given fields: ctx, request
func (_m *AuthenticationServiceInterfaceMock) AuthenticateWithOtp(ctx context.Context, request customization.OtpRequest) *customization.VerificationResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for AuthenticateWithOtp")
	}

	var r0 *customization.VerificationResponse
	if rf, ok := ret.Get(0).(func(context.Context, customization.OtpRequest) *customization.VerificationResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.VerificationResponse)
		}
	}

	return r0
}

// AuthenticateCombined provides a mock function with given fields: ctx, request
func (_m *AuthenticationServiceInterfaceMock) AuthenticateCombined(ctx context.Context, request customization.CombinedRequest) *customization.CombinedAuthResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for AuthenticateCombined")
	}

	var r0 *customization.CombinedAuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, customization.CombinedRequest) *customization.CombinedAuthResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.CombinedAuthResponse)
		}
	}

	return r0
}

// AuthenticateWithCertificate provides a mock function with given fields: ctx, request
func (_m *AuthenticationServiceInterfaceMock) AuthenticateWithCertificate(ctx context.Context, request customization.CertificateRequest) *customization.VerificationResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for AuthenticateWithCertificate")
	}

	var r0 *customization.VerificationResponse
	if rf, ok := ret.Get(0).(func(context.Context, customization.CertificateRequest) *customization.VerificationResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*customization.VerificationResponse)
		}
	}

	return r0
}

// InitAuthMethod provides a mock function with given fields: ctx, method, userID, organizationID, opContext
func (_m *AuthenticationServiceInterfaceMock) InitAuthMethod(ctx context.Context, method model.AuthMethod, userID string, organizationID string, opContext model.OperationContext) map[string]string {
	ret := _m.Called(ctx, method, userID, organizationID, opContext)

	if len(ret) == 0 {
		panic("no return value specified for InitAuthMethod")
	}

	var r0 map[string]string
	if rf, ok := ret.Get(0).(func(context.Context, model.AuthMethod, string, string, model.OperationContext) map[string]string); ok {
		r0 = rf(ctx, method, userID, organizationID, opContext)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]string)
		}
	}

	return r0
}

// NewAuthenticationServiceInterfaceMock creates a new instance of AuthenticationServiceInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthenticationServiceInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthenticationServiceInterfaceMock {
	m := &AuthenticationServiceInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
