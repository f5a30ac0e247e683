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

// Package formlogin serves the username and password authentication step.
package formlogin

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"

	"github.com/wultra/powerauth-webflow-sub005/internal/afs"
	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// LoginRequest carries the credentials of the user.
type LoginRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	OrganizationID string `json:"organizationId"`
}

// Validate validates the login request.
func (l *LoginRequest) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Username, validation.Required, validation.Length(1, 256)),
		validation.Field(&l.Password, validation.Required, validation.Length(1, 128)),
		validation.Field(&l.OrganizationID, validation.Length(0, 256)),
	)
}

// Controller serves the username and password step.
type Controller struct {
	auth           *authmethod.Controller
	authentication customization.AuthenticationServiceInterface
	afs            afs.NotifierInterface
	logger         *log.Logger
}

// NewController creates the form login controller.
func NewController(auth *authmethod.Controller, authentication customization.AuthenticationServiceInterface,
	notifier afs.NotifierInterface) *Controller {
	return &Controller{
		auth:           auth,
		authentication: authentication,
		afs:            notifier,
		logger:         log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FormLoginController")),
	}
}

// RegisterRoutes registers the form login routes.
func (c *Controller) RegisterRoutes(router *mux.Router, handler *common.Handler) {
	router.HandleFunc("/form/authenticate", handler.Step(c.Login)).Methods(http.MethodPost)
	router.HandleFunc("/form/cancel",
		handler.Step(common.CancelStep(c.auth, model.AuthMethodUsernamePassword))).Methods(http.MethodPost)
}

// Login verifies the credentials and authorizes the step.
func (c *Controller) Login(ctx context.Context, rc *authmethod.RequestContext, r *http.Request) (interface{}, error) {
	var request LoginRequest
	if err := common.DecodeRequest(r, &request); err != nil {
		return nil, err
	}
	return authmethod.BuildAuthorizationResponse[LoginRequest, *common.StepResponse](ctx, c.auth, rc, c, request,
		common.ResponseProvider{})
}

// AuthMethod returns USERNAME_PASSWORD_AUTH.
func (c *Controller) AuthMethod() model.AuthMethod {
	return model.AuthMethodUsernamePassword
}

// Authenticate verifies the credentials with the bank. Remaining attempts are reported only when
// the bank allows showing them.
func (c *Controller) Authenticate(ctx context.Context, rc *authmethod.RequestContext,
	request LoginRequest) (*authmethod.AuthResultDetail, error) {
	op, err := c.auth.GetOperation(ctx, rc, c.AuthMethod(), true)
	if err != nil {
		return nil, err
	}
	organizationID := request.OrganizationID
	if organizationID == "" {
		organizationID = op.OrganizationID
	}
	rc.State.Username = request.Username

	resp := c.authentication.AuthenticateWithCredential(ctx, customization.CredentialRequest{
		Username:         request.Username,
		Password:         request.Password,
		OrganizationID:   organizationID,
		OperationContext: model.NewOperationContext(op),
	})
	if resp.AuthenticationResult == customization.AuthenticationSucceeded &&
		resp.UserIdentityStatus == customization.UserIdentityActive && resp.UserID != "" {
		c.afs.ExecuteAuthAction(ctx, op.OperationID, c.AuthMethod(), resp.UserID)
		return &authmethod.AuthResultDetail{
			UserID:          resp.UserID,
			OrganizationID:  resp.OrganizationID,
			AuthInstruments: []model.AuthInstrument{model.AuthInstrumentCredential},
		}, nil
	}

	c.logger.Debug("Credential verification failed", log.String(log.LoggerKeyOperationID, op.OperationID),
		log.String("username", log.MaskString(request.Username)))
	detail := &authmethod.AuthResultDetail{
		AccountStatus: resp.AccountStatus,
		MessageKey:    resp.ErrorMessage,
	}
	if resp.ShowRemainingAttempts {
		detail.RemainingAttempts = resp.RemainingAttempts
	}
	return detail, nil
}
