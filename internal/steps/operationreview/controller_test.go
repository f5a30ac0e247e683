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

package operationreview

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/nextstepmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/steptest"
)

type OperationReviewTestSuite struct {
	suite.Suite
	env           *steptest.Env
	organizations *nextstepmock.OrganizationServiceInterfaceMock
	controller    *Controller
}

func TestOperationReviewSuite(t *testing.T) {
	suite.Run(t, new(OperationReviewTestSuite))
}

func (suite *OperationReviewTestSuite) SetupTest() {
	suite.env = steptest.NewEnv(suite.T())
	suite.organizations = nextstepmock.NewOrganizationServiceInterfaceMock(suite.T())
	suite.organizations.On("GetOrganization", mock.Anything, "RETAIL").Return(&nextstep.OrganizationDetail{
		OrganizationID: "RETAIL",
		DisplayNameKey: "organization.retail",
		IsDefault:      true,
	}, nil).Maybe()
	suite.controller = NewController(suite.env.Controller, suite.env.NextStep, suite.organizations)
}

func (suite *OperationReviewTestSuite) TestInitCreatesOperation() {
	suite.env.NextStep.On("CreateOperation", mock.Anything,
		mock.MatchedBy(func(req nextstep.CreateOperationRequest) bool {
			return req.OperationName == "login" && req.OrganizationID == "RETAIL"
		})).Return(&nextstep.CreateOperationResponse{
		OperationID: "op-new",
		Result:      model.AuthResultContinue,
		Steps:       []model.AuthStep{{AuthMethod: model.AuthMethodUsernamePassword}},
	}, nil).Once()

	recorder := suite.env.Post(suite.controller, "/init", `{"operationName":"login","organizationId":"RETAIL"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)
	assert.Equal(suite.T(), []model.AuthStep{{AuthMethod: model.AuthMethodUsernamePassword}}, response.Next)
	assert.Equal(suite.T(), "op-new", suite.env.State().PendingOperationID)

	entry, err := suite.env.Sessions.GetOperationSession(context.Background(), "op-new")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), suite.env.SessionID, entry.HTTPSessionID)
}

func (suite *OperationReviewTestSuite) TestInitRequiresName() {
	recorder := suite.env.Post(suite.controller, "/init", `{"operationData":"A1"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *OperationReviewTestSuite) TestInitCreateFails() {
	suite.env.NextStep.On("CreateOperation", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	recorder := suite.env.Post(suite.controller, "/init", `{"operationName":"login"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), authmethod.ErrCommunicationFailed.MessageKey, response.Message)
	assert.Empty(suite.T(), suite.env.State().PendingOperationID)
}

func (suite *OperationReviewTestSuite) TestInitResumesOperation() {
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey)
	})

	recorder := suite.env.Post(suite.controller, "/init", `{"operationId":"op-1"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)
	assert.Equal(suite.T(), []model.AuthStep{{AuthMethod: model.AuthMethodSMSKey}}, response.Next)
	assert.Equal(suite.T(), steptest.OperationID, suite.env.State().PendingOperationID)
}

func (suite *OperationReviewTestSuite) TestDetail() {
	suite.env.Bind(nil)
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey)
	})

	recorder := suite.env.Post(suite.controller, "/operation/detail", ``)

	response := steptest.Decode[DetailResponse](suite.T(), recorder)
	assert.Equal(suite.T(), steptest.OperationID, response.OperationID)
	assert.Equal(suite.T(), "authorize_payment", response.OperationName)
	assert.Equal(suite.T(), model.AuthResultContinue, response.Result)
	assert.Nil(suite.T(), response.FormData)
	assert.Equal(suite.T(), session.GenerateOperationHash(suite.env.Operation(model.AuthMethodSMSKey)),
		response.OperationHash)
	suite.Require().NotNil(response.Organization)
	assert.Equal(suite.T(), "organization.retail", response.Organization.DisplayNameKey)
}

func (suite *OperationReviewTestSuite) TestDetailDecoratedForKnownUser() {
	suite.env.Bind(func(state *session.State) { state.UserID = "u1" })
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey)
	})
	suite.env.Operations.On("DecorateFormData", mock.Anything, mock.Anything, "u1",
		model.AuthMethodShowOperationDetail).
		Return(&model.OperationFormData{Title: model.Message{ID: "operation.title", Value: "Payment"}}).Once()

	recorder := suite.env.Post(suite.controller, "/operation/detail", ``)

	response := steptest.Decode[DetailResponse](suite.T(), recorder)
	suite.Require().NotNil(response.FormData)
	assert.Equal(suite.T(), "Payment", response.FormData.Title.Value)
}

func (suite *OperationReviewTestSuite) TestDetailRejectsStaleHash() {
	suite.env.Bind(nil)
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey)
	})

	recorder := suite.env.Post(suite.controller, "/operation/detail", ``,
		map[string]string{steptest.HashHeader: "stale"})

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), authmethod.ErrOperationInterrupted.MessageKey, response.Message)
}

func (suite *OperationReviewTestSuite) TestChosenMethod() {
	suite.env.Bind(func(state *session.State) { state.UserID = "u1" })
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey, model.AuthMethodLoginSCA)
	})
	suite.env.NextStep.On("UpdateChosenAuthMethod", mock.Anything, steptest.OperationID, model.AuthMethodSMSKey).
		Return(nil).Once()

	recorder := suite.env.Post(suite.controller, "/operation/chosenAuthMethod", `{"chosenAuthMethod":"SMS_KEY"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)

	chosen := suite.env.Operation(model.AuthMethodSMSKey, model.AuthMethodLoginSCA)
	method := model.AuthMethodSMSKey
	chosen.ChosenAuthMethod = &method
	assert.Equal(suite.T(), session.GenerateOperationHash(chosen), response.OperationHash)
}

func (suite *OperationReviewTestSuite) TestChosenMethodNotOffered() {
	suite.env.Bind(nil)
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey)
	})

	recorder := suite.env.Post(suite.controller, "/operation/chosenAuthMethod",
		`{"chosenAuthMethod":"LOGIN_SCA"}`)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultAuthFailed, response.Result)
	assert.Equal(suite.T(), authmethod.ErrInvalidChosenMethod.MessageKey, response.Message)
}

func (suite *OperationReviewTestSuite) TestAuthenticateRequiresUser() {
	suite.env.Bind(nil)

	recorder := suite.env.Post(suite.controller, "/operation/authenticate", ``)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), authmethod.ErrInvalidRequest.MessageKey, response.Message)
}

func (suite *OperationReviewTestSuite) TestAuthenticateContinues() {
	suite.env.Bind(func(state *session.State) { state.UserID = "u1" })
	suite.env.ServeOperation(func() *model.OperationDetail {
		return suite.env.Operation(model.AuthMethodSMSKey)
	})
	suite.env.NextStep.On("UpdateOperation", mock.Anything,
		mock.MatchedBy(func(req nextstep.UpdateOperationRequest) bool {
			return req.AuthMethod == model.AuthMethodShowOperationDetail && req.UserID == "u1"
		})).Return(&nextstep.UpdateOperationResponse{
		OperationID: steptest.OperationID,
		Result:      model.AuthResultContinue,
		Steps:       []model.AuthStep{{AuthMethod: model.AuthMethodSMSKey}},
	}, nil).Once()

	recorder := suite.env.Post(suite.controller, "/operation/authenticate", ``)

	response := steptest.Decode[common.StepResponse](suite.T(), recorder)
	assert.Equal(suite.T(), model.AuthStepResultConfirmed, response.Result)
	assert.Equal(suite.T(), []model.AuthStep{{AuthMethod: model.AuthMethodSMSKey}}, response.Next)
}
