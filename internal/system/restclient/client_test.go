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

package restclient

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"

	httpclient "github.com/wultra/powerauth-webflow-sub005/internal/system/http"
)

const testBaseURL = "http://nextstep.test/powerauth-nextstep"

type testRequest struct {
	OperationID string `json:"operationId"`
}

type testResponse struct {
	OperationID string `json:"operationId"`
	Result      string `json:"result"`
}

type RestClientTestSuite struct {
	suite.Suite
	httpClient *http.Client
	client     *Client
}

func TestRestClientTestSuite(t *testing.T) {
	suite.Run(t, new(RestClientTestSuite))
}

func (suite *RestClientTestSuite) SetupTest() {
	suite.httpClient = &http.Client{}
	httpmock.ActivateNonDefault(suite.httpClient)
	suite.client = NewClient(testBaseURL+"/", "NEXT_STEP",
		httpclient.NewHTTPClientWithConfig(suite.httpClient), 2).
		WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} })
}

func (suite *RestClientTestSuite) TearDownTest() {
	httpmock.DeactivateAndReset()
}

func (suite *RestClientTestSuite) TestPostSuccess() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		func(req *http.Request) (*http.Response, error) {
			var envelope struct {
				RequestObject testRequest `json:"requestObject"`
			}
			suite.Require().NoError(decodeBody(req, &envelope))
			suite.Equal("op-1", envelope.RequestObject.OperationID)
			return httpmock.NewStringResponse(200,
				`{"status":"OK","responseObject":{"operationId":"op-1","result":"CONTINUE"}}`), nil
		})

	var resp testResponse
	err := suite.client.Post(context.Background(), "/operation/detail", testRequest{OperationID: "op-1"}, &resp)
	suite.NoError(err)
	suite.Equal("op-1", resp.OperationID)
	suite.Equal("CONTINUE", resp.Result)
}

func (suite *RestClientTestSuite) TestPostNilResponse() {
	httpmock.RegisterResponder("POST", testBaseURL+"/notify",
		httpmock.NewStringResponder(200, `{"status":"OK","responseObject":null}`))

	err := suite.client.Post(context.Background(), "/notify", testRequest{}, nil)
	suite.NoError(err)
}

func (suite *RestClientTestSuite) TestPostErrorCodesByStatusClass() {
	tests := []struct {
		name               string
		status             int
		body               string
		expectedCode       string
		expectedRemoteCode string
	}{
		{"ClientError", 400,
			`{"status":"ERROR","responseObject":{"code":"OPERATION_ALREADY_FINISHED","message":"finished"}}`,
			"NEXT_STEP_CLIENT_ERROR", "OPERATION_ALREADY_FINISHED"},
		{"ServerError", 500, `{"status":"ERROR","responseObject":{"code":"ERROR_GENERIC"}}`,
			ErrorCodeRemote, "ERROR_GENERIC"},
		{"ServerErrorPlainBody", 503, `unavailable`, ErrorCodeRemote, ""},
		{"Redirect", 302, ``, ErrorCodeGeneric, ""},
		{"InvalidEnvelope", 200, `not json`, ErrorCodeGeneric, ""},
		{"ErrorEnvelopeWithOKStatus", 200, `{"status":"ERROR","responseObject":{"code":"X"}}`,
			ErrorCodeGeneric, "X"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			httpmock.Reset()
			httpmock.RegisterResponder("POST", testBaseURL+"/operation/update",
				httpmock.NewStringResponder(tc.status, tc.body))

			err := suite.client.Post(context.Background(), "/operation/update", testRequest{}, &testResponse{})
			restErr, ok := AsError(err)
			suite.Require().True(ok)
			suite.Equal(tc.expectedCode, restErr.Code)
			suite.Equal(tc.expectedRemoteCode, restErr.RemoteCode)
			suite.Equal(tc.status, restErr.StatusCode)
		})
	}
}

func (suite *RestClientTestSuite) TestPostErrorCarriesRemainingAttempts() {
	httpmock.RegisterResponder("POST", testBaseURL+"/auth",
		httpmock.NewStringResponder(400, `{"status":"ERROR","responseObject":{"code":"AUTHENTICATION_FAILED",`+
			`"message":"login.authenticationFailed","remainingAttempts":2,"accountStatus":"ACTIVE"}}`))

	err := suite.client.Post(context.Background(), "/auth", testRequest{}, nil)
	restErr, ok := AsError(err)
	suite.Require().True(ok)
	suite.True(restErr.IsClientError())
	suite.Require().NotNil(restErr.RemainingAttempts)
	suite.Equal(2, *restErr.RemainingAttempts)
	suite.Equal("ACTIVE", restErr.AccountStatus)
	suite.Equal("login.authenticationFailed", restErr.Message)
	suite.True(HasRemoteCode(err, "AUTHENTICATION_FAILED"))
}

func (suite *RestClientTestSuite) TestTransportFailureWithoutRetry() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/update",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	err := suite.client.Post(context.Background(), "/operation/update", testRequest{}, nil)
	restErr, ok := AsError(err)
	suite.Require().True(ok)
	suite.Equal(ErrorCodeCommunication, restErr.Code)
	suite.Equal(0, restErr.StatusCode)
	suite.Equal(1, httpmock.GetTotalCallCount())
}

func (suite *RestClientTestSuite) TestTransportFailureWithRetry() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	err := suite.client.Post(context.Background(), "/operation/detail", testRequest{}, nil, WithRetry())
	restErr, ok := AsError(err)
	suite.Require().True(ok)
	suite.Equal(ErrorCodeCommunication, restErr.Code)
	suite.Equal(3, httpmock.GetTotalCallCount())
}

func (suite *RestClientTestSuite) TestRetryRecoversAfterTransportFailure() {
	calls := 0
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection reset")
			}
			return httpmock.NewStringResponse(200, `{"status":"OK","responseObject":{"operationId":"op-2"}}`), nil
		})

	var resp testResponse
	err := suite.client.Post(context.Background(), "/operation/detail", testRequest{}, &resp, WithRetry())
	suite.NoError(err)
	suite.Equal("op-2", resp.OperationID)
	suite.Equal(2, calls)
}

func (suite *RestClientTestSuite) TestHTTPErrorsAreNotRetried() {
	httpmock.RegisterResponder("POST", testBaseURL+"/operation/detail",
		httpmock.NewStringResponder(500, `{}`))

	err := suite.client.Post(context.Background(), "/operation/detail", testRequest{}, nil, WithRetry())
	suite.Error(err)
	suite.Equal(1, httpmock.GetTotalCallCount())
}
