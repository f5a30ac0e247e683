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

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

type ServiceTestSuite struct {
	suite.Suite
	service ServiceInterface
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.service = NewService(NewMemoryStore())
}

func newOperation() *model.OperationDetail {
	return &model.OperationDetail{
		OperationID: "op-1",
		Result:      model.AuthResultContinue,
		History: []model.OperationHistory{{
			RequestAuthMethod:     model.AuthMethodInit,
			RequestAuthStepResult: model.AuthStepResultConfirmed,
			ResponseResult:        model.AuthResultContinue,
		}},
		Steps: []model.AuthStep{{AuthMethod: model.AuthMethodUsernamePassword}},
	}
}

func (suite *ServiceTestSuite) TestRegisterAndCancel() {
	ctx := context.Background()

	registered, err := suite.service.RegisterHTTPSession(ctx, "op-1", "s-1", model.AuthResultContinue)
	suite.Require().NoError(err)
	assert.True(suite.T(), registered)

	registered, err = suite.service.RegisterHTTPSession(ctx, "op-1", "s-2", model.AuthResultContinue)
	suite.Require().NoError(err)
	assert.False(suite.T(), registered)

	canceled, err := suite.service.CancelOperationsInHTTPSession(ctx, "s-1")
	suite.Require().NoError(err)
	suite.Require().Len(canceled, 1)
	assert.Equal(suite.T(), "op-1", canceled[0].OperationID)

	stored, err := suite.service.GetOperationSession(ctx, "op-1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), model.AuthResultFailed, stored.Result)
}

func (suite *ServiceTestSuite) TestUpdateOperationResult() {
	ctx := context.Background()
	_, err := suite.service.RegisterHTTPSession(ctx, "op-1", "s-1", model.AuthResultContinue)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.UpdateOperationResult(ctx, "op-1", model.AuthResultDone))
	stored, err := suite.service.GetOperationSession(ctx, "op-1")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), model.AuthResultDone, stored.Result)
}

func (suite *ServiceTestSuite) TestOperationHashIsDeterministic() {
	assert.Equal(suite.T(), suite.service.GenerateOperationHash(newOperation()),
		suite.service.GenerateOperationHash(newOperation()))
	assert.Empty(suite.T(), suite.service.GenerateOperationHash(nil))
}

func (suite *ServiceTestSuite) TestOperationHashTracksMutableState() {
	original := suite.service.GenerateOperationHash(newOperation())

	mutations := map[string]func(op *model.OperationDetail){
		"result": func(op *model.OperationDetail) { op.Result = model.AuthResultDone },
		"chosen method": func(op *model.OperationDetail) {
			method := model.AuthMethodSMSKey
			op.ChosenAuthMethod = &method
		},
		"history": func(op *model.OperationDetail) {
			op.History = append(op.History, model.OperationHistory{
				RequestAuthMethod:     model.AuthMethodUsernamePassword,
				RequestAuthStepResult: model.AuthStepResultAuthFailed,
				ResponseResult:        model.AuthResultContinue,
			})
		},
		"steps": func(op *model.OperationDetail) {
			op.Steps = append(op.Steps, model.AuthStep{AuthMethod: model.AuthMethodSMSKey})
		},
	}
	for name, mutate := range mutations {
		op := newOperation()
		mutate(op)
		assert.NotEqual(suite.T(), original, suite.service.GenerateOperationHash(op), name)
	}
}

func (suite *ServiceTestSuite) TestOperationHashIgnoresDisplayData() {
	op := newOperation()
	original := suite.service.GenerateOperationHash(op)

	op.FormData = &model.OperationFormData{Title: model.Message{ID: "operation.title"}}
	assert.Equal(suite.T(), original, suite.service.GenerateOperationHash(op))
}
