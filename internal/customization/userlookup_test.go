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

	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/dataadaptermock"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/nextstepmock"
)

type UserLookupServiceTestSuite struct {
	suite.Suite
	nextStep    *nextstepmock.ClientInterfaceMock
	dataAdapter *dataadaptermock.ClientInterfaceMock
	service     *UserLookupService
}

func TestUserLookupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserLookupServiceTestSuite))
}

func (suite *UserLookupServiceTestSuite) SetupTest() {
	suite.nextStep = nextstepmock.NewClientInterfaceMock(suite.T())
	suite.dataAdapter = dataadaptermock.NewClientInterfaceMock(suite.T())
	suite.service = NewUserLookupService(suite.nextStep, suite.dataAdapter)
}

func (suite *UserLookupServiceTestSuite) TestLookupUserFromNextStep() {
	suite.nextStep.On("LookupUser", mock.Anything, nextstep.LookupUserRequest{
		Username: "jan", CredentialName: "RETAIL_CREDENTIAL", OperationID: "op-1",
	}).Return(&nextstep.LookupUserResponse{
		User: &nextstep.UserIdentity{UserID: "u1", Status: nextstep.UserIdentityStatusBlocked},
	}, nil)

	resp := suite.service.LookupUser(context.Background(), UserLookupRequest{
		Username: "jan", OrganizationID: "RETAIL", CredentialName: "RETAIL_CREDENTIAL",
		OperationContext: model.OperationContext{ID: "op-1"}})
	assert.Equal(suite.T(), AuthenticationSucceeded, resp.AuthenticationResult)
	assert.Equal(suite.T(), "u1", resp.UserID)
	assert.Equal(suite.T(), model.AccountStatusBlocked, resp.AccountStatus)
	suite.dataAdapter.AssertNotCalled(suite.T(), "LookupUser", mock.Anything, mock.Anything)
}

func (suite *UserLookupServiceTestSuite) TestLookupUserFallsBackToDataAdapter() {
	suite.nextStep.On("LookupUser", mock.Anything, mock.Anything).Return(nil, errors.New("not found"))
	suite.dataAdapter.On("LookupUser", mock.Anything, mock.Anything).Return(&dataadapter.UserDetail{
		ID: "u2", AccountStatus: model.AccountStatusActive}, nil)

	resp := suite.service.LookupUser(context.Background(), UserLookupRequest{
		Username: "jan", OrganizationID: "RETAIL", CredentialName: "RETAIL_CREDENTIAL"})
	assert.Equal(suite.T(), AuthenticationSucceeded, resp.AuthenticationResult)
	assert.Equal(suite.T(), "u2", resp.UserID)
	assert.Equal(suite.T(), "RETAIL", resp.OrganizationID)
}

func (suite *UserLookupServiceTestSuite) TestLookupUserByCertificateSkipsNextStep() {
	suite.dataAdapter.On("LookupUser", mock.Anything, mock.MatchedBy(func(req dataadapter.LookupUserRequest) bool {
		return req.ClientCertificate == "cert"
	})).Return(&dataadapter.UserDetail{ID: "u3", OrganizationID: "SME"}, nil)

	resp := suite.service.LookupUser(context.Background(), UserLookupRequest{
		CredentialName: "RETAIL_CREDENTIAL", ClientCertificate: "cert", OrganizationID: "RETAIL"})
	assert.Equal(suite.T(), "u3", resp.UserID)
	assert.Equal(suite.T(), "SME", resp.OrganizationID)
	suite.nextStep.AssertNotCalled(suite.T(), "LookupUser", mock.Anything, mock.Anything)
}

func (suite *UserLookupServiceTestSuite) TestLookupUserRemoteFailure() {
	suite.dataAdapter.On("LookupUser", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	resp := suite.service.LookupUser(context.Background(), UserLookupRequest{Username: "jan", OrganizationID: "RETAIL"})
	suite.Require().NotNil(resp)
	assert.Equal(suite.T(), AuthenticationFailed, resp.AuthenticationResult)
	assert.Empty(suite.T(), resp.UserID)
	assert.Equal(suite.T(), MessageUserNotFound, resp.ErrorMessage)
}
