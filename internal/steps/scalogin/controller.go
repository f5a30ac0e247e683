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

// Package scalogin serves the first step of the SCA login: the user is identified by username or
// by a TLS client certificate before the second factor is chosen.
package scalogin

import (
	"context"
	"encoding/pem"
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

// LoginRequest identifies the user. ClientCertificate selects the certificate of the TLS
// connection instead of the username.
type LoginRequest struct {
	Username          string `json:"username"`
	OrganizationID    string `json:"organizationId"`
	ClientCertificate bool   `json:"clientCertificate"`
}

// Validate validates the login request.
func (l *LoginRequest) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Username, validation.When(!l.ClientCertificate, validation.Required),
			validation.Length(0, 256)),
		validation.Field(&l.OrganizationID, validation.Length(0, 256)),
	)
}

// Controller serves the SCA login step.
type Controller struct {
	auth           *authmethod.Controller
	userLookup     customization.UserLookupServiceInterface
	authentication customization.AuthenticationServiceInterface
	methods        methodquery.ServiceInterface
	logger         *log.Logger
}

// NewController creates the SCA login controller.
func NewController(auth *authmethod.Controller, userLookup customization.UserLookupServiceInterface,
	authentication customization.AuthenticationServiceInterface, methods methodquery.ServiceInterface) *Controller {
	return &Controller{
		auth:           auth,
		userLookup:     userLookup,
		authentication: authentication,
		methods:        methods,
		logger:         log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginScaController")),
	}
}

// RegisterRoutes registers the SCA login routes.
func (c *Controller) RegisterRoutes(router *mux.Router, handler *common.Handler) {
	router.HandleFunc("/login-sca/authenticate", handler.Step(c.Login)).Methods(http.MethodPost)
	router.HandleFunc("/login-sca/cancel",
		handler.Step(common.CancelStep(c.auth, model.AuthMethodLoginSCA))).Methods(http.MethodPost)
}

// Login identifies the user of the operation and stores it in the session. The operation itself
// is authorized by the second factor step.
func (c *Controller) Login(ctx context.Context, rc *authmethod.RequestContext, r *http.Request) (interface{}, error) {
	var request LoginRequest
	if err := common.DecodeRequest(r, &request); err != nil {
		return nil, err
	}
	certificate := ""
	if request.ClientCertificate {
		certificate = clientCertificate(r)
		if certificate == "" {
			return nil, errors.Join(common.ErrInvalidRequestBody, errors.New("no client certificate presented"))
		}
	}

	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodLoginSCA, true)
	if err != nil {
		return nil, err
	}
	organizationID := request.OrganizationID
	if organizationID == "" {
		organizationID = op.OrganizationID
	}
	opContext := model.NewOperationContext(op)
	logger := c.logger.With(log.String(log.LoggerKeyOperationID, op.OperationID))

	lookup := c.userLookup.LookupUser(ctx, customization.UserLookupRequest{
		Username:          request.Username,
		OrganizationID:    organizationID,
		ClientCertificate: certificate,
		OperationContext:  opContext,
	})
	if lookup.AuthenticationResult != customization.AuthenticationSucceeded || lookup.UserID == "" {
		logger.Debug("User lookup failed")
		return failed(lookup.ErrorMessage, customization.MessageUserNotFound), nil
	}
	if lookup.OrganizationID != "" {
		organizationID = lookup.OrganizationID
	}

	if certificate != "" {
		verification := c.authentication.AuthenticateWithCertificate(ctx, customization.CertificateRequest{
			Certificate:      certificate,
			AuthMethod:       model.AuthMethodLoginSCA,
			UserID:           lookup.UserID,
			OrganizationID:   organizationID,
			AccountStatus:    lookup.AccountStatus,
			OperationContext: opContext,
		})
		if verification.AuthenticationResult != customization.AuthenticationSucceeded {
			logger.Debug("Client certificate verification failed")
			response := failed(verification.ErrorMessage, customization.MessageCertificateFailed)
			response.AccountStatus = verification.AccountStatus
			if verification.ShowRemainingAttempts {
				response.RemainingAttempts = verification.RemainingAttempts
			}
			return response, nil
		}
		rc.State.ClientCertificate = certificate
	}

	rc.State.Username = request.Username
	rc.State.UserID = lookup.UserID
	rc.State.OrganizationID = organizationID
	rc.State.MobileTokenEnabled = c.methods.IsAuthMethodEnabled(ctx, model.AuthMethodPowerAuthToken,
		lookup.UserID, op.OperationID)

	return &common.StepResponse{
		Result:             model.AuthStepResultConfirmed,
		Message:            common.MessageAuthenticationSuccess,
		MobileTokenEnabled: rc.State.MobileTokenEnabled,
		Next:               op.Steps,
	}, nil
}

func failed(message, fallback string) *common.StepResponse {
	if message == "" {
		message = fallback
	}
	return &common.StepResponse{Result: model.AuthStepResultAuthFailed, Message: message}
}

// clientCertificate returns the PEM encoded leaf certificate of the TLS connection.
func clientCertificate(r *http.Request) string {
	if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return ""
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: r.TLS.PeerCertificates[0].Raw}))
}
