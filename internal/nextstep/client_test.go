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

package nextstep

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	httpclient "github.com/wultra/powerauth-webflow-sub005/internal/system/http"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

const testBaseURL = "http://nextstep.test"

type NextStepClientTestSuite struct {
	suite.Suite
	httpClient *http.Client
	client     ClientInterface
}

func TestNextStepClientTestSuite(t *testing.T) {
	suite.Run(t, new(NextStepClientTestSuite))
}

func (suite *NextStepClientTestSuite) SetupTest() {
	suite.httpClient = &http.Client{}
	httpmock.ActivateNonDefault(suite.httpClient)
	rest := restclient.NewClient(testBaseURL, ServiceName, httpclient.NewHTTPClientWithConfig(suite.httpClient), 1).
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} })
	suite.client = NewClient(rest)
}

func (suite *NextStepClientTestSuite) TearDownTest() {
	httpmock.DeactivateAndReset()
}

func (suite *NextStepClientTestSuite) TestGetOperationDetail() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":{
			"operationId":"op-1","operationName":"login","result":"CONTINUE",
			"steps":[{"authMethod":"USERNAME_PASSWORD_AUTH"}],
			"history":[{"requestAuthMethod":"INIT","requestAuthStepResult":"CONFIRMED","responseResult":"CONTINUE"}],
			"remainingAttempts":3}}`))

	detail, err := suite.client.GetOperationDetail(context.Background(), "op-1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "op-1", detail.OperationID)
	assert.Equal(suite.T(), model.AuthResultContinue, detail.Result)
	assert.True(suite.T(), detail.HasStep(model.AuthMethodUsernamePassword))
	suite.Require().NotNil(detail.RemainingAttempts)
	assert.Equal(suite.T(), 3, *detail.RemainingAttempts)
	assert.Len(suite.T(), detail.History, 1)
	assert.True(suite.T(), detail.TimestampExpires.IsZero())
	assert.False(suite.T(), detail.IsExpired(time.Now()))
}

func (suite *NextStepClientTestSuite) TestGetOperationDetailUnixMillisTimestamps() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":{
			"operationId":"op-1","operationName":"login","result":"CONTINUE",
			"timestampCreated":1767268800000,"timestampExpires":1767269100000,
			"steps":[{"authMethod":"USERNAME_PASSWORD_AUTH"}],
			"history":[{"requestAuthMethod":"INIT","requestAuthStepResult":"CONFIRMED","responseResult":"CONTINUE"}]}}`))

	detail, err := suite.client.GetOperationDetail(context.Background(), "op-1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1767268800000), detail.TimestampCreated.UnixMilli())
	assert.Equal(suite.T(), int64(1767269100000), detail.TimestampExpires.UnixMilli())
	assert.False(suite.T(), detail.IsExpired(time.UnixMilli(1767269000000)))
	assert.True(suite.T(), detail.IsExpired(time.UnixMilli(1767269100001)))
}

func (suite *NextStepClientTestSuite) TestUpdateOperationSendsStepResult() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/update",
		func(req *http.Request) (*http.Response, error) {
			var envelope struct {
				RequestObject UpdateOperationRequest `json:"requestObject"`
			}
			suite.Require().NoError(json.NewDecoder(req.Body).Decode(&envelope))
			suite.Equal("op-1", envelope.RequestObject.OperationID)
			suite.Equal(model.AuthStepResultConfirmed, envelope.RequestObject.AuthStepResult)
			suite.Equal(model.AuthMethodUsernamePassword, envelope.RequestObject.AuthMethod)
			return httpmock.NewStringResponse(200,
				`{"status":"OK","responseObject":{"operationId":"op-1","result":"DONE",
				"timestampExpires":1767269100000,"steps":[]}}`), nil
		})

	resp, err := suite.client.UpdateOperation(context.Background(), UpdateOperationRequest{
		OperationID:    "op-1",
		UserID:         "u1",
		AuthMethod:     model.AuthMethodUsernamePassword,
		AuthStepResult: model.AuthStepResultConfirmed,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), model.AuthResultDone, resp.Result)
	assert.Empty(suite.T(), resp.Steps)
	assert.Equal(suite.T(), int64(1767269100000), resp.TimestampExpires.UnixMilli())
}

func (suite *NextStepClientTestSuite) TestUpdateOperationAlreadyFinished() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/update",
		httpmock.NewStringResponder(400,
			`{"status":"ERROR","responseObject":{"code":"OPERATION_ALREADY_FINISHED","message":"finished"}}`))

	_, err := suite.client.UpdateOperation(context.Background(), UpdateOperationRequest{OperationID: "op-1"})
	suite.Require().Error(err)
	assert.True(suite.T(), restclient.HasRemoteCode(err, ErrorCodeOperationAlreadyFinished))
	restErr, ok := restclient.AsError(err)
	suite.Require().True(ok)
	assert.Equal(suite.T(), "NEXT_STEP_CLIENT_ERROR", restErr.Code)
}

func (suite *NextStepClientTestSuite) TestUpdateOperationIsNotRetried() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/update",
		httpmock.NewErrorResponder(assert.AnError))

	_, err := suite.client.UpdateOperation(context.Background(), UpdateOperationRequest{OperationID: "op-1"})
	suite.Require().Error(err)
	assert.Equal(suite.T(), 1, httpmock.GetTotalCallCount())
}

func (suite *NextStepClientTestSuite) TestGetOperationDetailIsRetried() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		httpmock.NewErrorResponder(assert.AnError))

	_, err := suite.client.GetOperationDetail(context.Background(), "op-1")
	suite.Require().Error(err)
	assert.Equal(suite.T(), 2, httpmock.GetTotalCallCount())
}

func (suite *NextStepClientTestSuite) TestCreateOperation() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":{
			"operationId":"op-2","operationName":"authorize_payment","organizationId":"RETAIL",
			"result":"CONTINUE","steps":[{"authMethod":"USERNAME_PASSWORD_AUTH"}]}}`))

	resp, err := suite.client.CreateOperation(context.Background(), CreateOperationRequest{
		OperationName: "authorize_payment",
		OperationData: "A1*A100CZK*Q238400856/0300**D20170629*NUtility Bill Payment - 05/2017",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "op-2", resp.OperationID)
	assert.Equal(suite.T(), "RETAIL", resp.OrganizationID)
	assert.Len(suite.T(), resp.Steps, 1)
}

func (suite *NextStepClientTestSuite) TestUpdateChosenAuthMethod() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/chosenAuthMethod/update",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":null}`))

	err := suite.client.UpdateChosenAuthMethod(context.Background(), "op-1", model.AuthMethodSMSKey)
	assert.NoError(suite.T(), err)
}

func (suite *NextStepClientTestSuite) TestLookupUser() {
	httpmock.RegisterResponder("POST", testBaseURL+"/user/lookup/single",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":{
			"user":{"userId":"u1","userIdentityStatus":"ACTIVE"},
			"credentials":[{"credentialName":"RETAIL_CREDENTIAL","username":"jan","credentialStatus":"ACTIVE"}]}}`))

	resp, err := suite.client.LookupUser(context.Background(), LookupUserRequest{
		Username: "jan", CredentialName: "RETAIL_CREDENTIAL", OperationID: "op-1"})
	suite.Require().NoError(err)
	suite.Require().NotNil(resp.User)
	assert.Equal(suite.T(), "u1", resp.User.UserID)
	assert.Equal(suite.T(), UserIdentityStatusActive, resp.User.Status)
	assert.Len(suite.T(), resp.Credentials, 1)
}

func (suite *NextStepClientTestSuite) TestGetAuthMethodsEnabledForUser() {
	httpmock.RegisterResponder("POST", testBaseURL+"/user/auth-method/list",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":{"userAuthMethods":[
			{"userId":"u1","authMethod":"POWERAUTH_TOKEN"}]}}`))

	methods, err := suite.client.GetAuthMethodsEnabledForUser(context.Background(), "u1")
	suite.Require().NoError(err)
	suite.Require().Len(methods, 1)
	assert.Equal(suite.T(), model.AuthMethodPowerAuthToken, methods[0].AuthMethod)
}
