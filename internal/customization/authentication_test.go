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

package customization

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wacul/ptr"

	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/dataadaptermock"
)

type AuthenticationServiceTestSuite struct {
	suite.Suite
	dataAdapter *dataadaptermock.ClientInterfaceMock
	service     *AuthenticationService
	opContext   model.OperationContext
}

func TestAuthenticationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthenticationServiceTestSuite))
}

func (suite *AuthenticationServiceTestSuite) SetupTest() {
	suite.dataAdapter = dataadaptermock.NewClientInterfaceMock(suite.T())
	suite.service = NewAuthenticationService(suite.dataAdapter)
	suite.opContext = model.OperationContext{ID: "op-1", Name: "login"}
}

func (suite *AuthenticationServiceTestSuite) TestAuthenticateWithCredentialSucceeded() {
	suite.dataAdapter.On("AuthenticateUser", mock.Anything, mock.Anything).Return(&dataadapter.AuthenticateUserResponse{
		UserDetail:           &dataadapter.UserDetail{ID: "u1", OrganizationID: "RETAIL"},
		AuthenticationResult: dataadapter.ResultSucceeded,
		AccountStatus:        model.AccountStatusActive,
	}, nil)

	resp := suite.service.AuthenticateWithCredential(context.Background(), CredentialRequest{
		Username: "jan", Password: "s3cret", OrganizationID: "RETAIL", OperationContext: suite.opContext})
	assert.Equal(suite.T(), AuthenticationSucceeded, resp.AuthenticationResult)
	assert.Equal(suite.T(), "u1", resp.UserID)
	assert.Equal(suite.T(), "RETAIL", resp.OrganizationID)
	assert.Equal(suite.T(), UserIdentityActive, resp.UserIdentityStatus)
}

func (suite *AuthenticationServiceTestSuite) TestAuthenticateWithCredentialNonActiveAccountIsBlocked() {
	suite.dataAdapter.On("AuthenticateUser", mock.Anything, mock.Anything).Return(&dataadapter.AuthenticateUserResponse{
		UserDetail:           &dataadapter.UserDetail{ID: "u1", AccountStatus: model.AccountStatusNotActive},
		AuthenticationResult: dataadapter.ResultSucceeded,
	}, nil)

	resp := suite.service.AuthenticateWithCredential(context.Background(), CredentialRequest{Username: "jan"})
	assert.Equal(suite.T(), AuthenticationSucceeded, resp.AuthenticationResult)
	assert.Equal(suite.T(), model.AccountStatusNotActive, resp.AccountStatus)
	assert.Equal(suite.T(), UserIdentityBlocked, resp.UserIdentityStatus)
}

func (suite *AuthenticationServiceTestSuite) TestAuthenticateWithCredentialRemoteFailure() {
	suite.dataAdapter.On("AuthenticateUser", mock.Anything, mock.Anything).Return(nil, &restclient.Error{
		StatusCode: 401, Code: "DATA_ADAPTER_CLIENT_ERROR", RemoteCode: dataadapter.ErrorCodeAuthenticationFailed,
		RemainingAttempts: ptr.Int(2), AccountStatus: "ACTIVE"})

	resp := suite.service.AuthenticateWithCredential(context.Background(), CredentialRequest{
		Username: "jan", OrganizationID: "RETAIL"})
	suite.Require().NotNil(resp)
	assert.Equal(suite.T(), AuthenticationFailed, resp.AuthenticationResult)
	assert.Equal(suite.T(), MessageAuthenticationFailed, resp.ErrorMessage)
	suite.Require().NotNil(resp.RemainingAttempts)
	assert.Equal(suite.T(), 2, *resp.RemainingAttempts)
	assert.Equal(suite.T(), model.AccountStatusActive, resp.AccountStatus)
}

func (suite *AuthenticationServiceTestSuite) TestAuthenticateWithOtpCarriesRemainingAttempts() {
	suite.dataAdapter.On("VerifySMS", mock.Anything, mock.MatchedBy(func(req dataadapter.VerifySMSRequest) bool {
		return req.MessageID == "m-1" && req.AuthorizationCode == "00000000"
	})).Return(&dataadapter.VerifySMSResponse{
		SMSAuthorizationResult: dataadapter.ResultFailed,
		RemainingAttempts:      ptr.Int(1),
		ShowRemainingAttempts:  true,
		ErrorMessage:           "smsAuthorization.invalidCode",
	}, nil)

	resp := suite.service.AuthenticateWithOtp(context.Background(), OtpRequest{
		MessageID: "m-1", AuthorizationCode: "00000000", UserID: "u1"})
	assert.Equal(suite.T(), AuthenticationFailed, resp.AuthenticationResult)
	suite.Require().NotNil(resp.RemainingAttempts)
	assert.Equal(suite.T(), 1, *resp.RemainingAttempts)
	assert.True(suite.T(), resp.ShowRemainingAttempts)
	assert.Equal(suite.T(), "smsAuthorization.invalidCode", resp.ErrorMessage)
}

func (suite *AuthenticationServiceTestSuite) TestAuthenticateCombinedTruthTable() {
	tests := []struct {
		credential dataadapter.Result
		otp        dataadapter.Result
		expected   AuthenticationResult
	}{
		{dataadapter.ResultSucceeded, dataadapter.ResultVerified, AuthenticationSucceeded},
		{dataadapter.ResultSucceeded, dataadapter.ResultFailed, AuthenticationFailed},
		{dataadapter.ResultFailed, dataadapter.ResultVerified, AuthenticationFailed},
		{dataadapter.ResultFailed, dataadapter.ResultFailed, AuthenticationFailed},
	}

	for _, tc := range tests {
		suite.Run(string(tc.credential)+"_"+string(tc.otp), func() {
			dataAdapter := dataadaptermock.NewClientInterfaceMock(suite.T())
			dataAdapter.On("VerifySMSAndPassword", mock.Anything, mock.Anything).
				Return(&dataadapter.VerifySMSAndPasswordResponse{
					UserAuthResult:         tc.credential,
					SMSAuthorizationResult: tc.otp,
				}, nil)

			resp := NewAuthenticationService(dataAdapter).AuthenticateCombined(context.Background(), CombinedRequest{
				OtpRequest: OtpRequest{MessageID: "m-1", AuthorizationCode: "12345678"}, Password: "s3cret"})
			assert.Equal(suite.T(), resultOf(tc.credential.IsSuccess()), resp.CredentialResult)
			assert.Equal(suite.T(), resultOf(tc.otp.IsSuccess()), resp.OtpResult)
			assert.Equal(suite.T(), tc.expected, resp.AuthenticationResult)
		})
	}
}

func (suite *AuthenticationServiceTestSuite) TestRemoteFailuresYieldFailedResults() {
	remoteErr := &restclient.Error{StatusCode: 503, Code: restclient.ErrorCodeRemote}
	suite.dataAdapter.On("VerifySMS", mock.Anything, mock.Anything).Return(nil, remoteErr)
	suite.dataAdapter.On("VerifySMSAndPassword", mock.Anything, mock.Anything).Return(nil, remoteErr)
	suite.dataAdapter.On("VerifyCertificate", mock.Anything, mock.Anything).Return(nil, remoteErr)
	suite.dataAdapter.On("InitAuthMethod", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp"))

	ctx := context.Background()
	otp := suite.service.AuthenticateWithOtp(ctx, OtpRequest{})
	suite.Require().NotNil(otp)
	assert.Equal(suite.T(), AuthenticationFailed, otp.AuthenticationResult)
	assert.Equal(suite.T(), MessageSMSAuthorizationFailed, otp.ErrorMessage)

	combined := suite.service.AuthenticateCombined(ctx, CombinedRequest{})
	suite.Require().NotNil(combined)
	assert.Equal(suite.T(), AuthenticationFailed, combined.AuthenticationResult)
	assert.Equal(suite.T(), AuthenticationFailed, combined.CredentialResult)
	assert.Equal(suite.T(), AuthenticationFailed, combined.OtpResult)

	certificate := suite.service.AuthenticateWithCertificate(ctx, CertificateRequest{})
	suite.Require().NotNil(certificate)
	assert.Equal(suite.T(), AuthenticationFailed, certificate.AuthenticationResult)
	assert.Equal(suite.T(), MessageCertificateFailed, certificate.ErrorMessage)

	assert.Nil(suite.T(), suite.service.InitAuthMethod(ctx, model.AuthMethodSMSKey, "u1", "RETAIL", suite.opContext))
}

func (suite *AuthenticationServiceTestSuite) TestAuthenticateWithCertificateSucceeded() {
	suite.dataAdapter.On("VerifyCertificate", mock.Anything, mock.MatchedBy(func(req dataadapter.VerifyCertificateRequest) bool {
		return req.Certificate == "cert" && req.AuthMethod == model.AuthMethodLoginSCA
	})).Return(&dataadapter.VerifyCertificateResponse{VerificationResult: dataadapter.ResultSucceeded}, nil)

	resp := suite.service.AuthenticateWithCertificate(context.Background(), CertificateRequest{
		Certificate: "cert", AuthMethod: model.AuthMethodLoginSCA, UserID: "u1"})
	assert.Equal(suite.T(), AuthenticationSucceeded, resp.AuthenticationResult)
}
