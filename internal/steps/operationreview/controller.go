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

// Package operationreview serves the bootstrap of an operation and its review by the user.
package operationreview

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const maxOperationDataLength = 256

// InitRequest starts a new operation by name or resumes an existing one by ID.
type InitRequest struct {
	OperationID           string                    `json:"operationId"`
	OperationName         string                    `json:"operationName"`
	OperationData         string                    `json:"operationData"`
	OrganizationID        string                    `json:"organizationId"`
	ExternalTransactionID string                    `json:"externalTransactionId"`
	FormData              *model.OperationFormData  `json:"formData"`
	ApplicationContext    *model.ApplicationContext `json:"applicationContext"`
}

// Validate validates the init request.
func (i *InitRequest) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.OperationName, validation.When(i.OperationID == "", validation.Required)),
		validation.Field(&i.OperationData, validation.Length(0, maxOperationDataLength)),
	)
}

// ChosenMethodRequest selects the method the user wants to authorize the operation with.
type ChosenMethodRequest struct {
	ChosenAuthMethod model.AuthMethod `json:"chosenAuthMethod"`
}

// Validate validates the chosen method request.
func (c *ChosenMethodRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ChosenAuthMethod, validation.Required, validation.In(
			model.AuthMethodSMSKey, model.AuthMethodPowerAuthToken, model.AuthMethodLoginSCA,
			model.AuthMethodApprovalSCA)),
	)
}

// DetailResponse describes the pending operation to the user.
type DetailResponse struct {
	OperationID      string                   `json:"operationId"`
	OperationName    string                   `json:"operationName"`
	OperationData    string                   `json:"operationData"`
	Result           model.AuthResult         `json:"result"`
	ChosenAuthMethod *model.AuthMethod        `json:"chosenAuthMethod,omitempty"`
	FormData         *model.OperationFormData `json:"formData,omitempty"`
	Steps            []model.AuthStep         `json:"steps,omitempty"`
	ExpiresAt        model.Timestamp          `json:"expiresAt"`
	OperationHash    string                   `json:"operationHash"`

	Organization *nextstep.OrganizationDetail `json:"organization,omitempty"`
}

// Controller serves the operation bootstrap and review endpoints.
type Controller struct {
	auth          *authmethod.Controller
	nextStep      nextstep.ClientInterface
	organizations nextstep.OrganizationServiceInterface
	logger        *log.Logger
}

// NewController creates the operation review controller.
func NewController(auth *authmethod.Controller, nextStep nextstep.ClientInterface,
	organizations nextstep.OrganizationServiceInterface) *Controller {
	return &Controller{
		auth:          auth,
		nextStep:      nextStep,
		organizations: organizations,
		logger:        log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationReviewController")),
	}
}

// RegisterRoutes registers the operation review routes.
func (c *Controller) RegisterRoutes(router *mux.Router, handler *common.Handler) {
	router.HandleFunc("/init", handler.Step(c.Init)).Methods(http.MethodPost)
	router.HandleFunc("/operation/detail", handler.Step(c.Detail)).Methods(http.MethodPost)
	router.HandleFunc("/operation/authenticate", handler.Step(c.Authenticate)).Methods(http.MethodPost)
	router.HandleFunc("/operation/chosenAuthMethod", handler.Step(c.UpdateChosenAuthMethod)).
		Methods(http.MethodPost)
	router.HandleFunc("/operation/cancel",
		handler.Step(common.CancelStep(c.auth, model.AuthMethodShowOperationDetail))).Methods(http.MethodPost)
}

// Init creates the operation of the request, or resumes it when the request carries its ID.
func (c *Controller) Init(ctx context.Context, rc *authmethod.RequestContext, r *http.Request) (interface{}, error) {
	var request InitRequest
	if err := common.DecodeRequest(r, &request); err != nil {
		return nil, err
	}

	if request.OperationID != "" {
		return authmethod.ContinueOperationWithID[*common.StepResponse](ctx, c.auth, rc, request.OperationID,
			common.ResponseProvider{})
	}
	return authmethod.InitiateOperationWithName[*common.StepResponse](ctx, c.auth, rc, authmethod.InitRequest{
		OperationName:         request.OperationName,
		OperationData:         request.OperationData,
		OrganizationID:        request.OrganizationID,
		ExternalTransactionID: request.ExternalTransactionID,
		FormData:              request.FormData,
		ApplicationContext:    request.ApplicationContext,
	}, common.ResponseProvider{})
}

// Detail returns the pending operation with the hash the client presents in later requests. The
// form data is decorated by the bank once the user is known. The organization of the operation is
// left out when it cannot be resolved.
func (c *Controller) Detail(ctx context.Context, rc *authmethod.RequestContext, _ *http.Request) (interface{}, error) {
	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodInit, true)
	if err != nil {
		return nil, err
	}

	userID, _ := common.UserOf(op, rc)
	if userID != "" && op.Result == model.AuthResultContinue && c.auth.Operations() != nil {
		op.FormData = c.auth.Operations().DecorateFormData(ctx, op, userID, model.AuthMethodShowOperationDetail)
	}
	response := &DetailResponse{
		OperationID:      op.OperationID,
		OperationName:    op.OperationName,
		OperationData:    op.OperationData,
		Result:           op.Result,
		ChosenAuthMethod: op.ChosenAuthMethod,
		FormData:         op.FormData,
		Steps:            op.Steps,
		ExpiresAt:        op.TimestampExpires,
		OperationHash:    c.auth.OperationHash(op),
	}
	if op.OrganizationID != "" {
		organization, err := c.organizations.GetOrganization(ctx, op.OrganizationID)
		if err != nil {
			c.logger.Warn("Failed to resolve organization of operation",
				log.String(log.LoggerKeyOperationID, op.OperationID), log.Error(err))
		} else {
			response.Organization = organization
		}
	}
	return response, nil
}

// Authenticate confirms that the user reviewed the operation.
func (c *Controller) Authenticate(ctx context.Context, rc *authmethod.RequestContext,
	_ *http.Request) (interface{}, error) {
	return authmethod.BuildAuthorizationResponse[struct{}, *common.StepResponse](ctx, c.auth, rc,
		reviewAuthenticator{}, struct{}{}, common.ResponseProvider{})
}

// UpdateChosenAuthMethod records the method chosen by the user among the steps of the operation.
func (c *Controller) UpdateChosenAuthMethod(ctx context.Context, rc *authmethod.RequestContext,
	r *http.Request) (interface{}, error) {
	var request ChosenMethodRequest
	if err := common.DecodeRequest(r, &request); err != nil {
		return nil, err
	}

	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodShowOperationDetail, true)
	if err != nil {
		return nil, err
	}
	if op.Result != model.AuthResultContinue {
		return nil, authmethod.ErrOperationAlreadyFinished
	}
	if !op.HasStep(request.ChosenAuthMethod) {
		return nil, authmethod.ErrInvalidChosenMethod
	}

	if err := c.nextStep.UpdateChosenAuthMethod(ctx, op.OperationID, request.ChosenAuthMethod); err != nil {
		c.logger.Error("Failed to update chosen authentication method",
			log.String(log.LoggerKeyOperationID, op.OperationID), log.Error(err))
		return nil, authmethod.RemoteError(err)
	}

	chosen := request.ChosenAuthMethod
	op.ChosenAuthMethod = &chosen
	return &common.StepResponse{
		Result:        model.AuthStepResultConfirmed,
		Message:       common.MessageAuthenticationSuccess,
		OperationHash: c.auth.OperationHash(op),
		Next:          op.Steps,
	}, nil
}

// reviewAuthenticator confirms the review for the user authenticated in the session.
type reviewAuthenticator struct{}

func (reviewAuthenticator) AuthMethod() model.AuthMethod {
	return model.AuthMethodShowOperationDetail
}

func (reviewAuthenticator) Authenticate(_ context.Context, rc *authmethod.RequestContext,
	_ struct{}) (*authmethod.AuthResultDetail, error) {
	if rc.State.UserID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("user is not authenticated"))
	}
	return &authmethod.AuthResultDetail{
		UserID:         rc.State.UserID,
		OrganizationID: rc.State.OrganizationID,
	}, nil
}
