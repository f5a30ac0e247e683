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

// Package smsauth serves the SMS OTP authorization step, alone or combined with the user password.
package smsauth

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const (
	messageSMSSent      = "smsAuthorization.sent"
	configPasswordField = "passwordRequired"
)

// stepMethods are the steps served by the SMS OTP, in order of preference.
var stepMethods = []model.AuthMethod{model.AuthMethodSMSKey, model.AuthMethodLoginSCA, model.AuthMethodApprovalSCA}

// AuthenticateRequest carries the OTP and, for the combined step, the user password.
type AuthenticateRequest struct {
	AuthCode string `json:"authCode"`
	Password string `json:"password"`
}

// Validate validates the authenticate request.
func (a *AuthenticateRequest) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.AuthCode, validation.Required, validation.Length(1, 32)),
		validation.Field(&a.Password, validation.Length(0, 128)),
	)
}

// Controller serves the SMS OTP step.
type Controller struct {
	auth             *authmethod.Controller
	authentication   customization.AuthenticationServiceInterface
	otp              customization.OtpServiceInterface
	passwordRequired bool
	logger           *log.Logger
}

// NewController creates the SMS OTP controller. When passwordRequired is set the OTP must be
// combined with the user password.
func NewController(auth *authmethod.Controller, authentication customization.AuthenticationServiceInterface,
	otp customization.OtpServiceInterface, passwordRequired bool) *Controller {
	return &Controller{
		auth:             auth,
		authentication:   authentication,
		otp:              otp,
		passwordRequired: passwordRequired,
		logger:           log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SMSAuthorizationController")),
	}
}

// RegisterRoutes registers the SMS OTP routes.
func (c *Controller) RegisterRoutes(router *mux.Router, handler *common.Handler) {
	router.HandleFunc("/sms/init", handler.Step(c.Init)).Methods(http.MethodPost)
	router.HandleFunc("/sms/resend", handler.Step(c.Resend)).Methods(http.MethodPost)
	router.HandleFunc("/sms/authenticate", handler.Step(c.Authenticate)).Methods(http.MethodPost)
	router.HandleFunc("/sms/cancel",
		handler.Step(common.CancelStep(c.auth, model.AuthMethodSMSKey))).Methods(http.MethodPost)
}

// Init creates an OTP and sends it to the user of the operation.
func (c *Controller) Init(ctx context.Context, rc *authmethod.RequestContext, _ *http.Request) (interface{}, error) {
	return c.deliver(ctx, rc, func(request customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse {
		return c.otp.CreateAndSendOtp(ctx, request)
	})
}

// Resend sends the OTP created by Init again.
func (c *Controller) Resend(ctx context.Context, rc *authmethod.RequestContext, _ *http.Request) (interface{}, error) {
	messageID := rc.State.SMSAuthorizationID
	if messageID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("no SMS authorization in progress"))
	}
	return c.deliver(ctx, rc, func(request customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse {
		return c.otp.SendOtp(ctx, messageID, request)
	})
}

func (c *Controller) deliver(ctx context.Context, rc *authmethod.RequestContext,
	send func(customization.OtpDeliveryRequest) *customization.OtpDeliveryResponse) (interface{}, error) {
	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodSMSKey, true)
	if err != nil {
		return nil, err
	}
	userID, organizationID := common.UserOf(op, rc)
	if userID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("user is not authenticated"))
	}

	resp := send(customization.OtpDeliveryRequest{
		UserID:           userID,
		OrganizationID:   organizationID,
		AccountStatus:    op.AccountStatus,
		AuthMethod:       common.NominalMethod(op, stepMethods...),
		Lang:             rc.Locale,
		OperationContext: model.NewOperationContext(op),
	})
	if !resp.Delivered {
		message := resp.ErrorMessage
		if message == "" {
			message = customization.MessageSMSDeliveryFailed
		}
		return &common.StepResponse{Result: model.AuthStepResultAuthFailed, Message: message}, nil
	}

	rc.State.SMSAuthorizationID = resp.MessageID
	return &common.StepResponse{
		Result:  model.AuthStepResultConfirmed,
		Message: messageSMSSent,
		Config:  map[string]string{configPasswordField: strconv.FormatBool(c.passwordRequired)},
	}, nil
}

// Authenticate verifies the OTP and authorizes the step.
func (c *Controller) Authenticate(ctx context.Context, rc *authmethod.RequestContext,
	r *http.Request) (interface{}, error) {
	var request AuthenticateRequest
	if err := common.DecodeRequest(r, &request); err != nil {
		return nil, err
	}
	if c.passwordRequired && request.Password == "" {
		return nil, errors.Join(common.ErrInvalidRequestBody, errors.New("password is required"))
	}

	op, err := c.auth.GetOperation(ctx, rc, model.AuthMethodSMSKey, true)
	if err != nil {
		return nil, err
	}
	authenticator := &otpAuthenticator{
		controller: c,
		method:     common.NominalMethod(op, stepMethods...),
		op:         op,
	}
	return authmethod.BuildAuthorizationResponse[AuthenticateRequest, *common.StepResponse](ctx, c.auth, rc,
		authenticator, request, common.ResponseProvider{})
}

// otpAuthenticator verifies the OTP of an operation on behalf of the step it serves.
type otpAuthenticator struct {
	controller *Controller
	method     model.AuthMethod
	op         *model.OperationDetail
}

func (a *otpAuthenticator) AuthMethod() model.AuthMethod {
	return a.method
}

func (a *otpAuthenticator) Authenticate(ctx context.Context, rc *authmethod.RequestContext,
	request AuthenticateRequest) (*authmethod.AuthResultDetail, error) {
	messageID := rc.State.SMSAuthorizationID
	if messageID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("no SMS authorization in progress"))
	}
	userID, organizationID := common.UserOf(a.op, rc)
	if userID == "" {
		return nil, errors.Join(authmethod.ErrInvalidRequest, errors.New("user is not authenticated"))
	}

	otpRequest := customization.OtpRequest{
		MessageID:         messageID,
		AuthorizationCode: request.AuthCode,
		UserID:            userID,
		OrganizationID:    organizationID,
		AccountStatus:     a.op.AccountStatus,
		OperationContext:  model.NewOperationContext(a.op),
	}

	var (
		succeeded     bool
		instruments   []model.AuthInstrument
		remaining     *int
		showRemaining bool
		accountStatus model.AccountStatus
		message       string
	)
	if request.Password != "" {
		resp := a.controller.authentication.AuthenticateCombined(ctx, customization.CombinedRequest{
			OtpRequest: otpRequest,
			Password:   request.Password,
		})
		succeeded = resp.AuthenticationResult == customization.AuthenticationSucceeded
		instruments = []model.AuthInstrument{model.AuthInstrumentOTPKey, model.AuthInstrumentCredential}
		remaining, showRemaining = resp.RemainingAttempts, resp.ShowRemainingAttempts
		accountStatus, message = resp.AccountStatus, resp.ErrorMessage
	} else {
		resp := a.controller.authentication.AuthenticateWithOtp(ctx, otpRequest)
		succeeded = resp.AuthenticationResult == customization.AuthenticationSucceeded
		instruments = []model.AuthInstrument{model.AuthInstrumentOTPKey}
		remaining, showRemaining = resp.RemainingAttempts, resp.ShowRemainingAttempts
		accountStatus, message = resp.AccountStatus, resp.ErrorMessage
	}

	if succeeded {
		rc.State.SMSAuthorizationID = ""
		return &authmethod.AuthResultDetail{
			UserID:          userID,
			OrganizationID:  organizationID,
			AuthInstruments: instruments,
		}, nil
	}

	a.controller.logger.Debug("SMS authorization failed", log.String(log.LoggerKeyOperationID, a.op.OperationID))
	if message == "" {
		message = customization.MessageSMSAuthorizationFailed
	}
	detail := &authmethod.AuthResultDetail{AccountStatus: accountStatus, MessageKey: message}
	if showRemaining {
		detail.RemainingAttempts = remaining
	}
	return detail, nil
}
