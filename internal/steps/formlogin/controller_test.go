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

package formlogin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wacul/ptr"

	"github.com/wultra/powerauth-webflow-sub005/internal/cancellation"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/customizationmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/steptest"
)

type FormLoginTestSuite struct {
	suite.Suite
	env            *steptest.Env
	authentication *customizationmock.AuthenticationServiceInterfaceMock
	controller     *Controller
}

func TestFormLoginSuite(t *testing.T) {
	suite.Run(t, new(FormLoginTestSuite))
}

func (suite *FormLoginTestSuite) SetupTest() {
	suite.env = steptest.NewEnv(suite.T())
	suite.authentication = customizationmock.NewAuthenticationServiceInterfaceMock(suite.T())
	suite.controller = NewController(suite.env.Controller, suite.authentication, suite.env.Afs)
	suite.env.Bind(nil)
}

func (suite *FormLoginTestSuite) TestLoginContinuesWithNextStep() {
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodUsernamePassword)
	})
	suite.authentication.On("AuthenticateWithCredential", mock.Anything,
		mock.MatchedBy(func(req customization.CredentialRequest) bool {
			return req.Username == "alice" && req.Password == "secret" && req.OrganizationID == "RETAIL" &&
				req.OperationContext.ID == steptest.OperationID
		})).Return(&customization.CredentialAuthResponse{
		UserID:               "u1",
		OrganizationID:       "RETAIL",
		AuthenticationResult: customization.AuthenticationSucceeded,
		AccountStatus:        model.AccountStatusActive,
		UserIdentityStatus:   customization.UserIdentityActive,
	}).Once()
	suite.env.Afs.On("ExecuteAuthAction", mock.Anything, steptest.OperationID, model.AuthMethodUsernamePassword,
		"u1").Return().Once()
	suite.env.NextStep.On("UpdateOperation", mock.Anything,
		mock.MatchedBy(func(req nextstep.UpdateOperationRequest) bool {
			return req.UserID == "u1" && req.AuthStepResult == model.AuthStepResultConfirmed &&
				len(req.AuthInstruments) == 1 && req.AuthInstruments[0] == model.AuthInstrumentCredential
		})).Return(&nextstep.UpdateOperationResponse{
		OperationID: steptest.OperationID,
		Result:      model.AuthResultContinue,
		Steps:       []model.AuthStep{{AuthMethod: model.AuthMethodSMSKey}},
	}, nil).Once()

	recorder := suite.env.Post(suite.controller, "/form/authenticate",
		`{"username":"alice","password":"secret"}`)

	suite.Require().Equal(http.StatusOK, recorder.Code)
	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)
	assert.Equal(suite.T(), []model.AuthStep{{AuthMethod: model.AuthMethodSMSKey}}, response.Next)

	state := suite.env.State()
	assert.Equal(suite.T(), "u1", state.UserID)
	assert.Equal(suite.T(), "alice", state.Username)
}

func (suite *FormLoginTestSuite) TestFailedLoginReportsRemainingAttempts() {
	suite.env.ServeOperation(func() *model.OperationDetail {
		op := suite.env.Operation(model.AuthMethodUsernamePassword)
		op.RemainingAttempts = ptr.Int(4)
		return op
	})
	suite.authentication.On("AuthenticateWithCredential", mock.Anything, mock.Anything).
		Return(&customization.CredentialAuthResponse{
			AuthenticationResult:  customization.AuthenticationFailed,
			AccountStatus:         model.AccountStatusActive,
			UserIdentityStatus:    customization.UserIdentityActive,
			RemainingAttempts:     ptr.Int(2),
			ShowRemainingAttempts: true,
			ErrorMessage:          customization.MessageAuthenticationFailed,
		}).Once()
	suite.env.NextStep.On("UpdateOperation", mock.Anything,
		mock.MatchedBy(func(req nextstep.UpdateOperationRequest) bool {
			return req.AuthStepResult == model.AuthStepResultAuthFailed
		})).Return(&nextstep.UpdateOperationResponse{
		OperationID: steptest.OperationID,
		Result:      model.AuthResultContinue,
		Steps:       []model.AuthStep{{AuthMethod: model.AuthMethodUsernamePassword}},
	}, nil).Once()

	recorder := suite.env.Post(suite.controller, "/form/authenticate",
		`{"username":"alice","password":"wrong"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), customization.MessageAuthenticationFailed, response.Message)
	suite.Require().NotNil(response.RemainingAttempts)
	assert.Equal(suite.T(), 2, *response.RemainingAttempts)
	assert.Empty(suite.T(), suite.env.State().UserID)
}

func (suite *FormLoginTestSuite) TestBlockedIdentityIsNotAuthorized() {
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodUsernamePassword)
	})
	suite.authentication.On("AuthenticateWithCredential", mock.Anything, mock.Anything).
		Return(&customization.CredentialAuthResponse{
			UserID:               "u1",
			AuthenticationResult: customization.AuthenticationSucceeded,
			AccountStatus:        model.AccountStatusBlocked,
			UserIdentityStatus:   customization.UserIdentityBlocked,
		}).Once()
	suite.env.NextStep.On("UpdateOperation", mock.Anything,
		mock.MatchedBy(func(req nextstep.UpdateOperationRequest) bool {
			return req.AuthStepResult == model.AuthStepResultAuthFailed
		})).Return(&nextstep.UpdateOperationResponse{
		OperationID: steptest.OperationID,
		Result:      model.AuthResultContinue,
		Steps:       []model.AuthStep{{AuthMethod: model.AuthMethodUsernamePassword}},
	}, nil).Once()

	recorder := suite.env.Post(suite.controller, "/form/authenticate", `{"username":"alice","password":"secret"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), model.AccountStatusBlocked, response.AccountStatus)
}

func (suite *FormLoginTestSuite) TestMissingPasswordIsBadRequest() {
	recorder := suite.env.Post(suite.controller, "/form/authenticate", `{"username":"alice"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *FormLoginTestSuite) TestCancel() {
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodUsernamePassword)
	})
	suite.env.Cancellation.On("CancelOperation", mock.Anything,
		mock.MatchedBy(func(req cancellation.CancelRequest) bool {
			return req.OperationID == steptest.OperationID && req.Reason == model.CancelReasonIncorrectData &&
				req.AuthMethod == model.AuthMethodUsernamePassword && req.CancelRemote
		})).Return(&nextstep.UpdateOperationResponse{
		OperationID: steptest.OperationID,
		Result:      model.AuthResultFailed,
	}, nil).Once()

	recorder := suite.env.Post(suite.controller, "/form/cancel", `{"reason":"INCORRECT_DATA"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultCanceled, response.Result)
	assert.Equal(suite.T(), common.MessageOperationCanceled, response.Message)
}
