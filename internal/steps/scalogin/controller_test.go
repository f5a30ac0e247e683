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

package scalogin

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/customizationmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/steptest"
)

type LoginScaTestSuite struct {
	suite.Suite
	env            *steptest.Env
	userLookup     *customizationmock.UserLookupServiceInterfaceMock
	authentication *customizationmock.AuthenticationServiceInterfaceMock
	controller     *Controller
}

func TestLoginScaSuite(t *testing.T) {
	suite.Run(t, new(LoginScaTestSuite))
}

func (suite *LoginScaTestSuite) SetupTest() {
	suite.env = steptest.NewEnv(suite.T())
	suite.userLookup = customizationmock.NewUserLookupServiceInterfaceMock(suite.T())
	suite.authentication = customizationmock.NewAuthenticationServiceInterfaceMock(suite.T())
	suite.controller = NewController(suite.env.Controller, suite.userLookup, suite.authentication, suite.env.Methods)
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodLoginSCA)
	})
}

func (suite *LoginScaTestSuite) TestLoginStoresUser() {
	suite.env.Bind(nil)
	suite.userLookup.On("LookupUser", mock.Anything, mock.MatchedBy(func(req customization.UserLookupRequest) bool {
		return req.Username == "alice" && req.OrganizationID == "RETAIL" && req.ClientCertificate == ""
	})).Return(&customization.UserLookupResponse{
		UserID:               "u1",
		AccountStatus:        model.AccountStatusActive,
		AuthenticationResult: customization.AuthenticationSucceeded,
	}).Once()
	suite.env.NextStep.On("GetAuthMethodsEnabledForUser", mock.Anything, "u1").
		Return([]nextstep.UserAuthMethodDetail{{UserID: "u1", AuthMethod: model.AuthMethodPowerAuthToken}}, nil).
		Once()

	recorder := suite.env.Post(suite.controller, "/login-sca/authenticate", `{"username":"alice"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)
	assert.True(suite.T(), response.MobileTokenEnabled)
	assert.Equal(suite.T(), []model.AuthStep{{AuthMethod: model.AuthMethodLoginSCA}}, response.Next)

	state := suite.env.State()
	assert.Equal(suite.T(), "u1", state.UserID)
	assert.Equal(suite.T(), "alice", state.Username)
	assert.Equal(suite.T(), "RETAIL", state.OrganizationID)
	assert.True(suite.T(), state.MobileTokenEnabled)
}

func (suite *LoginScaTestSuite) TestUnknownUser() {
	suite.env.Bind(nil)
	suite.userLookup.On("LookupUser", mock.Anything, mock.Anything).
		Return(&customization.UserLookupResponse{AuthenticationResult: customization.AuthenticationFailed}).Once()

	recorder := suite.env.Post(suite.controller, "/login-sca/authenticate", `{"username":"mallory"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), customization.MessageUserNotFound, response.Message)
	assert.Empty(suite.T(), suite.env.State().UserID)
}

func (suite *LoginScaTestSuite) TestUsernameRequired() {
	suite.env.Bind(nil)

	recorder := suite.env.Post(suite.controller, "/login-sca/authenticate", `{}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *LoginScaTestSuite) TestCertificateRequiresTLS() {
	suite.env.Bind(nil)

	recorder := suite.env.Post(suite.controller, "/login-sca/authenticate", `{"clientCertificate":true}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *LoginScaTestSuite) certificateRequest() (*authmethod.RequestContext, *http.Request) {
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login-sca/authenticate",
		strings.NewReader(`{"clientCertificate":true}`))
	request.TLS = &tls.ConnectionState{PeerCertificates: []*x509.Certificate{{Raw: []byte{0x30, 0x01, 0x00}}}}
	rc := &authmethod.RequestContext{State: &session.State{
		SessionID:          suite.env.SessionID,
		PendingOperationID: steptest.OperationID,
	}}
	return rc, request
}

func (suite *LoginScaTestSuite) TestCertificateLogin() {
	suite.userLookup.On("LookupUser", mock.Anything, mock.MatchedBy(func(req customization.UserLookupRequest) bool {
		return strings.HasPrefix(req.ClientCertificate, "-----BEGIN CERTIFICATE-----")
	})).Return(&customization.UserLookupResponse{
		UserID:               "u1",
		OrganizationID:       "SME",
		AuthenticationResult: customization.AuthenticationSucceeded,
	}).Once()
	suite.authentication.On("AuthenticateWithCertificate", mock.Anything,
		mock.MatchedBy(func(req customization.CertificateRequest) bool {
			return req.UserID == "u1" && req.OrganizationID == "SME" && req.AuthMethod == model.AuthMethodLoginSCA
		})).Return(&customization.VerificationResponse{AuthenticationResult: customization.AuthenticationSucceeded}).
		Once()
	suite.env.NextStep.On("GetAuthMethodsEnabledForUser", mock.Anything, "u1").
		Return([]nextstep.UserAuthMethodDetail{}, nil).Once()

	rc, request := suite.certificateRequest()
	result, err := suite.controller.Login(context.Background(), rc, request)

	suite.Require().NoError(err)
	response := result.(*common.StepResponse)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)
	assert.False(suite.T(), response.MobileTokenEnabled)
	assert.Equal(suite.T(), "u1", rc.State.UserID)
	assert.Equal(suite.T(), "SME", rc.State.OrganizationID)
	assert.NotEmpty(suite.T(), rc.State.ClientCertificate)
}

func (suite *LoginScaTestSuite) TestCertificateRejected() {
	suite.userLookup.On("LookupUser", mock.Anything, mock.Anything).Return(&customization.UserLookupResponse{
		UserID:               "u1",
		AuthenticationResult: customization.AuthenticationSucceeded,
	}).Once()
	remaining := 2
	suite.authentication.On("AuthenticateWithCertificate", mock.Anything, mock.Anything).
		Return(&customization.VerificationResponse{
			AuthenticationResult:  customization.AuthenticationFailed,
			RemainingAttempts:     &remaining,
			ShowRemainingAttempts: true,
		}).Once()

	rc, request := suite.certificateRequest()
	result, err := suite.controller.Login(context.Background(), rc, request)

	suite.Require().NoError(err)
	response := result.(*common.StepResponse)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), customization.MessageCertificateFailed, response.Message)
	assert.Equal(suite.T(), 2, *response.RemainingAttempts)
	assert.Empty(suite.T(), rc.State.UserID)
	assert.Empty(suite.T(), rc.State.ClientCertificate)
}
