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

// Package steptest provides the environment shared by the step controller tests: a real
// orchestration controller over mocked remote services and in-memory session stores.
package steptest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/i18n"
	"github.com/wultra/powerauth-webflow-sub005/internal/methodquery"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/afsmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/cancellationmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/customizationmock"
	"github.com/wultra/powerauth-webflow-sub005/tests/mocks/nextstepmock"
)

// OperationID is the ID of the operation bound by Bind.
const OperationID = "op-1"

// HashHeader is the operation hash header used by the environment.
const HashHeader = "X-OPERATION-HASH"

// Env is a step controller test environment.
type Env struct {
	t            *testing.T
	NextStep     *nextstepmock.ClientInterfaceMock
	Cancellation *cancellationmock.ServiceInterfaceMock
	Afs          *afsmock.NotifierInterfaceMock
	Operations   *customizationmock.OperationServiceInterfaceMock
	Sessions     session.ServiceInterface
	States       session.StateStoreInterface
	Methods      methodquery.ServiceInterface
	Controller   *authmethod.Controller
	SessionID    string
	Now          time.Time
}

// NewEnv creates an environment whose mocks are asserted when the test ends.
func NewEnv(t *testing.T) *Env {
	e := &Env{
		t:            t,
		NextStep:     nextstepmock.NewClientInterfaceMock(t),
		Cancellation: cancellationmock.NewServiceInterfaceMock(t),
		Afs:          afsmock.NewNotifierInterfaceMock(t),
		Operations:   customizationmock.NewOperationServiceInterfaceMock(t),
		Sessions:     session.NewService(session.NewMemoryStore()),
		States:       session.NewMemoryStateStore(time.Hour),
		SessionID:    uuid.NewString(),
		Now:          time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	e.Methods = methodquery.NewService(e.NextStep, nil)
	e.Controller = authmethod.NewController(authmethod.Dependencies{
		NextStep:     e.NextStep,
		Sessions:     e.Sessions,
		Cancellation: e.Cancellation,
		Methods:      e.Methods,
		Afs:          e.Afs,
		Operations:   e.Operations,
		Resolver:     authmethod.ChosenMethodResolver{},
		Translator:   i18n.NewBundle("en"),
		Clock:        func() time.Time { return e.Now },
	})
	return e
}

// Bind makes OperationID the pending operation of the session. The state may be adjusted before
// it is saved.
func (e *Env) Bind(adjust func(state *session.State)) {
	ctx := context.Background()
	registered, err := e.Sessions.RegisterHTTPSession(ctx, OperationID, e.SessionID, model.AuthResultContinue)
	require.NoError(e.t, err)
	require.True(e.t, registered)

	state := &session.State{SessionID: e.SessionID, PendingOperationID: OperationID}
	if adjust != nil {
		adjust(state)
	}
	require.NoError(e.t, e.States.Save(ctx, state))
}

// State returns the saved state of the session.
func (e *Env) State() *session.State {
	state, err := e.States.Load(context.Background(), e.SessionID)
	require.NoError(e.t, err)
	return state
}

// Operation returns a new operation in progress offering the steps.
func (e *Env) Operation(steps ...model.AuthMethod) *model.OperationDetail {
	op := &model.OperationDetail{
		OperationID:      OperationID,
		OperationName:    "authorize_payment",
		OperationData:    "A1*A100CZK*Q238400856/0300**D20260101",
		OrganizationID:   "RETAIL",
		Result:           model.AuthResultContinue,
		TimestampCreated: model.NewTimestamp(e.Now.Add(-time.Minute)),
		TimestampExpires: model.NewTimestamp(e.Now.Add(5 * time.Minute)),
		History: []model.OperationHistory{{
			RequestAuthMethod:     model.AuthMethodInit,
			RequestAuthStepResult: model.AuthStepResultConfirmed,
			ResponseResult:        model.AuthResultContinue,
		}},
	}
	for _, method := range steps {
		op.Steps = append(op.Steps, model.AuthStep{AuthMethod: method})
	}
	return op
}

// ServeOperation answers every operation detail call with a new operation built by build.
func (e *Env) ServeOperation(build func() *model.OperationDetail) {
	e.NextStep.On("GetOperationDetail", mock.Anything, OperationID).
		Return(func(context.Context, string) (*model.OperationDetail, error) {
			return build(), nil
		}).Maybe()
}

// Post sends a request with the session cookie to the route of the controller.
func (e *Env) Post(controller common.Registrar, path, body string,
	headers ...map[string]string) *httptest.ResponseRecorder {
	handler := common.NewHandler(common.NewSessionManager(e.States, false), HashHeader)
	router := common.NewRouter(handler, controller)

	request := httptest.NewRequest(http.MethodPost, "/api/auth"+path, strings.NewReader(body))
	request.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: e.SessionID})
	for _, header := range headers {
		for key, value := range header {
			request.Header.Set(key, value)
		}
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// Decode decodes the body of the response.
func Decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	var value T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &value))
	return value
}
