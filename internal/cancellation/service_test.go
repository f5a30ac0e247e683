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

package cancellation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/customizationmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/nextstepmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/powerauthmock"
)

type ServiceTestSuite struct {
	suite.Suite
	nextStep  *nextstepmock.ClientInterfaceMock
	powerAuth *powerauthmock.ClientInterfaceMock
	operation *customizationmock.OperationServiceInterfaceMock
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.nextStep = nextstepmock.NewClientInterfaceMock(suite.T())
	suite.powerAuth = powerauthmock.NewClientInterfaceMock(suite.T())
	suite.operation = customizationmock.NewOperationServiceInterfaceMock(suite.T())
	suite.service = NewService(suite.nextStep, suite.powerAuth, suite.operation)
}

func (suite *ServiceTestSuite) operationDetail(paOperationID string) *model.OperationDetail {
	return &model.OperationDetail{
		OperationID:    "op-1",
		UserID:         "u1",
		OrganizationID: "RETAIL",
		Result:         model.AuthResultContinue,
		PAOperationID:  paOperationID,
		History: []model.OperationHistory{
			{RequestAuthMethod: model.AuthMethodInit, RequestAuthStepResult: model.AuthStepResultConfirmed},
		},
	}
}

func (suite *ServiceTestSuite) expectCancel() {
	suite.nextStep.On("UpdateOperation", mock.Anything, mock.MatchedBy(func(req nextstep.UpdateOperationRequest) bool {
		return req.OperationID == "op-1" && req.AuthStepResult == model.AuthStepResultCanceled &&
			req.AuthStepResultDescription == "INTERRUPTED_OPERATION" && req.UserID == "u1" &&
			req.OrganizationID == "RETAIL"
	})).Return(&nextstep.UpdateOperationResponse{OperationID: "op-1", Result: model.AuthResultFailed}, nil).Once()
}

func (suite *ServiceTestSuite) TestCancelOperationNotifiesCanceledChange() {
	suite.nextStep.On("GetOperationDetail", mock.Anything, "op-1").Return(suite.operationDetail(""), nil)
	suite.expectCancel()
	suite.operation.On("NotifyOperationChange", mock.Anything, mock.MatchedBy(func(op *model.OperationDetail) bool {
		return op.Result == model.AuthResultFailed && op.IsCanceled() && len(op.History) == 2
	})).Return(nil).Once()

	resp, err := suite.service.CancelOperation(context.Background(), CancelRequest{
		OperationID: "op-1",
		AuthMethod:  model.AuthMethodUsernamePassword,
		Reason:      model.CancelReasonInterruptedOperation,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), model.AuthResultFailed, resp.Result)
	suite.powerAuth.AssertNotCalled(suite.T(), "CancelOperation", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestCancelRemoteOperation() {
	suite.nextStep.On("GetOperationDetail", mock.Anything, "op-1").Return(suite.operationDetail("pa-1"), nil)
	suite.expectCancel()
	suite.powerAuth.On("CancelOperation", mock.Anything, "pa-1").Return(nil, nil).Once()
	suite.operation.On("NotifyOperationChange", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.CancelOperation(context.Background(), CancelRequest{
		OperationID:  "op-1",
		AuthMethod:   model.AuthMethodPowerAuthToken,
		Reason:       model.CancelReasonInterruptedOperation,
		CancelRemote: true,
	})
	suite.Require().NoError(err)
}

func (suite *ServiceTestSuite) TestRemoteFailureDoesNotBlockCancellation() {
	suite.nextStep.On("GetOperationDetail", mock.Anything, "op-1").Return(suite.operationDetail("pa-1"), nil)
	suite.expectCancel()
	suite.powerAuth.On("CancelOperation", mock.Anything, "pa-1").Return(nil, errors.New("unreachable")).Once()
	suite.operation.On("NotifyOperationChange", mock.Anything, mock.Anything).Return(nil)

	resp, err := suite.service.CancelOperation(context.Background(), CancelRequest{
		OperationID:  "op-1",
		AuthMethod:   model.AuthMethodPowerAuthToken,
		Reason:       model.CancelReasonInterruptedOperation,
		CancelRemote: true,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), model.AuthResultFailed, resp.Result)
}

func (suite *ServiceTestSuite) TestNextStepFailureIsReturned() {
	suite.nextStep.On("GetOperationDetail", mock.Anything, "op-1").Return(suite.operationDetail(""), nil)
	suite.nextStep.On("UpdateOperation", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	_, err := suite.service.CancelOperation(context.Background(), CancelRequest{
		OperationID: "op-1",
		Reason:      model.CancelReasonTimedOutOperation,
	})
	assert.Error(suite.T(), err)
	suite.operation.AssertNotCalled(suite.T(), "NotifyOperationChange", mock.Anything, mock.Anything)
}
