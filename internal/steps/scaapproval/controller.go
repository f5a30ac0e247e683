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

// Package scaapproval serves the SCA approval step: the user approves the operation with the
// mobile token or with the client certificate presented at login. The SMS OTP path of the step is
// served by the smsauth package.
package scaapproval

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/methodquery"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const (
	configOperationName = "operationName"
	configOperationData = "operationData"
)

// stepMethods are the steps approved by this controller, in order of preference.
var stepMethods = []model.AuthMethod{model.AuthMethodApprovalSCA, model.AuthMethodLoginSCA,
	model.AuthMethodPowerAuthToken}

// AuthenticateRequest selects how the operation is approved.
type AuthenticateRequest struct {
	AuthMethod model.AuthMethod `json:"authMethod"`
}

// Validate validates the authenticate request.
func (a *AuthenticateRequest) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.AuthMethod, validation.Required,
			validation.In(model.AuthMethodPowerAuthToken, model.AuthMethodClientCertificate)),
	)
}

// Controller serves the SCA approval step.
type Controller struct {
	auth           *authmethod.Controller
	authentication customization.AuthenticationServiceInterface
	methods        methodquery.ServiceInterface
	logger         *log.Logger
}

// NewController creates the SCA approval controller.
func NewController(auth *authmethod.Controller, authentication customization.AuthenticationServiceInterface,
	methods methodquery.ServiceInterface) *Controller {
	return &Controller{
		auth:           auth,
		authentication: authentication,
		methods:        methods,
		logger:         log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ApprovalScaController")),
	}
}

// RegisterRoutes registers the SCA approval routes.
func (c *Controller) RegisterRoutes(router *mux.Router, handler *common.Handler) {
	router.HandleFunc("/approval-sca/init", handler.Step(c.Init)).Methods(http.MethodPost)
	router.HandleFunc("/approval-sca/authenticate", handler.Step(c.Authenticate)).Methods(http.MethodPost)
	router.HandleFunc("/approval-sca/cancel",
		handler.Step(common.CancelStep(c.auth, model.AuthMethodApprovalSCA))).Methods(http.MethodPost)
}

// Init prepares the approval. When the user has the mobile token enabled the response carries
// the operation as displayed by the mobile application and the method configuration of the bank.
func (c *Controller) Init(ctx context.Context, rc *authmethod.RequestContext, _ *http.Request) (interface{}, error) {
	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodApprovalSCA, true)
	if err != nil {
		return nil, err
	}
	userID, organizationID := common.UserOf(op, rc)
	if userID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("user is not authenticated"))
	}

	method := common.NominalMethod(op, stepMethods...)
	mobileTokenEnabled := c.methods.IsAuthMethodEnabled(ctx, model.AuthMethodPowerAuthToken, userID, op.OperationID)
	rc.State.MobileTokenEnabled = mobileTokenEnabled

	config := map[string]string{}
	if mobileTokenEnabled {
		if mapping := c.auth.Operations().GetPAOperationMapping(ctx, op, userID, method); mapping != nil {
			config[configOperationName] = mapping.OperationName
			config[configOperationData] = mapping.OperationData
		}
		for key, value := range c.authentication.InitAuthMethod(ctx, model.AuthMethodPowerAuthToken, userID,
			organizationID, model.NewOperationContext(op)) {
			config[key] = value
		}
	}

	return &common.StepResponse{
		Result:             model.AuthStepResultConfirmed,
		Message:            common.MessageAuthenticationSuccess,
		OperationHash:      c.auth.OperationHash(op),
		MobileTokenEnabled: mobileTokenEnabled,
		Next:               op.Steps,
		Config:             config,
	}, nil
}

// Authenticate approves the operation. The mobile token approves the operation directly at Next
// Step, so the request only maps the current state of the operation.
func (c *Controller) Authenticate(ctx context.Context, rc *authmethod.RequestContext,
	r *http.Request) (interface{}, error) {
	var request AuthenticateRequest
	if err := common.DecodeRequest(r, &request); err != nil {
		return nil, err
	}

	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodApprovalSCA, true)
	if err != nil {
		return nil, err
	}
	authenticator := &approvalAuthenticator{
		controller: c,
		method:     common.NominalMethod(op, stepMethods...),
		op:         op,
	}
	return authmethod.BuildAuthorizationResponse[AuthenticateRequest, *common.StepResponse](ctx, c.auth, rc,
		authenticator, request, common.ResponseProvider{})
}

type approvalAuthenticator struct {
	controller *Controller
	method     model.AuthMethod
	op         *model.OperationDetail
}

func (a *approvalAuthenticator) AuthMethod() model.AuthMethod {
	return a.method
}

func (a *approvalAuthenticator) Authenticate(ctx context.Context, rc *authmethod.RequestContext,
	request AuthenticateRequest) (*authmethod.AuthResultDetail, error) {
	userID, organizationID := common.UserOf(a.op, rc)
	if userID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("user is not authenticated"))
	}

	if request.AuthMethod == model.AuthMethodPowerAuthToken {
		if !rc.State.MobileTokenEnabled {
			return nil, authmethod.ErrAuthMethodNotAvailable
		}
		return &authmethod.AuthResultDetail{
			UserID:                  userID,
			OrganizationID:          organizationID,
			OperationAlreadyUpdated: true,
		}, nil
	}

	if rc.State.ClientCertificate == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("no client certificate in session"))
	}
	resp := a.controller.authentication.AuthenticateWithCertificate(ctx, customization.CertificateRequest{
		Certificate:      rc.State.ClientCertificate,
		AuthMethod:       a.method,
		UserID:           userID,
		OrganizationID:   organizationID,
		AccountStatus:    a.op.AccountStatus,
		OperationContext: model.NewOperationContext(a.op),
	})
	if resp.AuthenticationResult == customization.AuthenticationSucceeded {
		return &authmethod.AuthResultDetail{
			UserID:          userID,
			OrganizationID:  organizationID,
			AuthInstruments: []model.AuthInstrument{model.AuthInstrumentClientCertificate},
		}, nil
	}

	a.controller.logger.Debug("Client certificate approval failed",
		log.String(log.LoggerKeyOperationID, a.op.OperationID))
	message := resp.ErrorMessage
	if message == "" {
		message = customization.MessageCertificateFailed
	}
	detail := &authmethod.AuthResultDetail{AccountStatus: resp.AccountStatus, MessageKey: message}
	if resp.ShowRemainingAttempts {
		detail.RemainingAttempts = resp.RemainingAttempts
	}
	return detail, nil
}
