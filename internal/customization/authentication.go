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

package customization

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// AuthenticationServiceInterface defines the credential, OTP and certificate verifications.
type AuthenticationServiceInterface interface {
	AuthenticateWithCredential(ctx context.Context, request CredentialRequest) *CredentialAuthResponse
	AuthenticateWithOtp(ctx context.Context, request OtpRequest) *VerificationResponse
	AuthenticateCombined(ctx context.Context, request CombinedRequest) *CombinedAuthResponse
	AuthenticateWithCertificate(ctx context.Context, request CertificateRequest) *VerificationResponse
	InitAuthMethod(ctx context.Context, method model.AuthMethod, userID, organizationID string,
		opContext model.OperationContext) map[string]string
}

// AuthenticationService is the implementation of AuthenticationServiceInterface.
type AuthenticationService struct {
	dataAdapter dataadapter.ClientInterface
	logger      *log.Logger
}

// NewAuthenticationService creates an authentication customization service.
func NewAuthenticationService(dataAdapter dataadapter.ClientInterface) *AuthenticationService {
	return &AuthenticationService{
		dataAdapter: dataAdapter,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthenticationService")),
	}
}

// AuthenticateWithCredential verifies a username and password. A non-active account marks the
// user identity BLOCKED even when the credential itself was accepted.
func (s *AuthenticationService) AuthenticateWithCredential(ctx context.Context,
	request CredentialRequest) *CredentialAuthResponse {
	return callResilient(ctx, s.logger, "authenticateUser",
		func(ctx context.Context) (*CredentialAuthResponse, error) {
			resp, err := s.dataAdapter.AuthenticateUser(ctx, dataadapter.AuthenticateUserRequest{
				UserID:           request.UserID,
				Username:         request.Username,
				Password:         request.Password,
				OrganizationID:   request.OrganizationID,
				OperationContext: request.OperationContext,
			})
			if err != nil {
				return nil, err
			}

			result := &CredentialAuthResponse{
				OrganizationID:        request.OrganizationID,
				AuthenticationResult:  resultOf(resp.AuthenticationResult.IsSuccess()),
				AccountStatus:         resp.AccountStatus,
				UserIdentityStatus:    UserIdentityActive,
				RemainingAttempts:     resp.RemainingAttempts,
				ShowRemainingAttempts: resp.ShowRemainingAttempts,
				ErrorMessage:          resp.ErrorMessage,
			}
			if resp.UserDetail != nil {
				result.UserID = resp.UserDetail.ID
				if resp.UserDetail.OrganizationID != "" {
					result.OrganizationID = resp.UserDetail.OrganizationID
				}
				if result.AccountStatus == "" {
					result.AccountStatus = resp.UserDetail.AccountStatus
				}
			}
			if result.AccountStatus != "" && result.AccountStatus != model.AccountStatusActive {
				result.UserIdentityStatus = UserIdentityBlocked
			}
			return result, nil
		},
		func(err error) *CredentialAuthResponse {
			remaining, accountStatus := remoteHints(err)
			return &CredentialAuthResponse{
				OrganizationID:       request.OrganizationID,
				AuthenticationResult: AuthenticationFailed,
				AccountStatus:        model.AccountStatus(accountStatus),
				UserIdentityStatus:   UserIdentityActive,
				RemainingAttempts:    remaining,
				ErrorMessage:         MessageAuthenticationFailed,
			}
		})
}

// AuthenticateWithOtp verifies an SMS OTP.
func (s *AuthenticationService) AuthenticateWithOtp(ctx context.Context, request OtpRequest) *VerificationResponse {
	return callResilient(ctx, s.logger, "verifySms",
		func(ctx context.Context) (*VerificationResponse, error) {
			resp, err := s.dataAdapter.VerifySMS(ctx, dataadapter.VerifySMSRequest{
				MessageID:         request.MessageID,
				AuthorizationCode: request.AuthorizationCode,
				UserID:            request.UserID,
				OrganizationID:    request.OrganizationID,
				AccountStatus:     request.AccountStatus,
				OperationContext:  request.OperationContext,
			})
			if err != nil {
				return nil, err
			}
			return &VerificationResponse{
				AuthenticationResult:  resultOf(resp.SMSAuthorizationResult.IsSuccess()),
				AccountStatus:         resp.AccountStatus,
				RemainingAttempts:     resp.RemainingAttempts,
				ShowRemainingAttempts: resp.ShowRemainingAttempts,
				ErrorMessage:          resp.ErrorMessage,
			}, nil
		},
		verificationFallback(MessageSMSAuthorizationFailed))
}

// AuthenticateCombined verifies an SMS OTP together with the user password. The aggregate result
// succeeds only when both the credential and the OTP succeed.
func (s *AuthenticationService) AuthenticateCombined(ctx context.Context,
	request CombinedRequest) *CombinedAuthResponse {
	return callResilient(ctx, s.logger, "verifySmsAndPassword",
		func(ctx context.Context) (*CombinedAuthResponse, error) {
			resp, err := s.dataAdapter.VerifySMSAndPassword(ctx, dataadapter.VerifySMSAndPasswordRequest{
				MessageID:         request.MessageID,
				AuthorizationCode: request.AuthorizationCode,
				UserID:            request.UserID,
				OrganizationID:    request.OrganizationID,
				AccountStatus:     request.AccountStatus,
				Password:          request.Password,
				OperationContext:  request.OperationContext,
			})
			if err != nil {
				return nil, err
			}
			credentialOK := resp.UserAuthResult.IsSuccess()
			otpOK := resp.SMSAuthorizationResult.IsSuccess()
			return &CombinedAuthResponse{
				CredentialResult:      resultOf(credentialOK),
				OtpResult:             resultOf(otpOK),
				AuthenticationResult:  resultOf(credentialOK && otpOK),
				AccountStatus:         resp.AccountStatus,
				RemainingAttempts:     resp.RemainingAttempts,
				ShowRemainingAttempts: resp.ShowRemainingAttempts,
				ErrorMessage:          resp.ErrorMessage,
			}, nil
		},
		func(err error) *CombinedAuthResponse {
			remaining, accountStatus := remoteHints(err)
			return &CombinedAuthResponse{
				CredentialResult:     AuthenticationFailed,
				OtpResult:            AuthenticationFailed,
				AuthenticationResult: AuthenticationFailed,
				AccountStatus:        model.AccountStatus(accountStatus),
				RemainingAttempts:    remaining,
				ErrorMessage:         MessageSMSAuthorizationFailed,
			}
		})
}

// AuthenticateWithCertificate verifies a TLS client certificate.
func (s *AuthenticationService) AuthenticateWithCertificate(ctx context.Context,
	request CertificateRequest) *VerificationResponse {
	return callResilient(ctx, s.logger, "verifyCertificate",
		func(ctx context.Context) (*VerificationResponse, error) {
			resp, err := s.dataAdapter.VerifyCertificate(ctx, dataadapter.VerifyCertificateRequest{
				Certificate:      request.Certificate,
				AuthMethod:       request.AuthMethod,
				UserID:           request.UserID,
				OrganizationID:   request.OrganizationID,
				AccountStatus:    request.AccountStatus,
				OperationContext: request.OperationContext,
			})
			if err != nil {
				return nil, err
			}
			return &VerificationResponse{
				AuthenticationResult:  resultOf(resp.VerificationResult.IsSuccess()),
				AccountStatus:         resp.AccountStatus,
				RemainingAttempts:     resp.RemainingAttempts,
				ShowRemainingAttempts: resp.ShowRemainingAttempts,
				ErrorMessage:          resp.ErrorMessage,
			}, nil
		},
		verificationFallback(MessageCertificateFailed))
}

// InitAuthMethod lets the bank prepare the method and returns its configuration, or nil when
// the bank could not be reached.
func (s *AuthenticationService) InitAuthMethod(ctx context.Context, method model.AuthMethod, userID,
	organizationID string, opContext model.OperationContext) map[string]string {
	return callResilient(ctx, s.logger, "initAuthMethod",
		func(ctx context.Context) (map[string]string, error) {
			resp, err := s.dataAdapter.InitAuthMethod(ctx, dataadapter.InitAuthMethodRequest{
				UserID:           userID,
				OrganizationID:   organizationID,
				AuthMethod:       method,
				OperationContext: opContext,
			})
			if err != nil {
				return nil, err
			}
			return resp.Config, nil
		},
		func(error) map[string]string { return nil })
}

func verificationFallback(message string) func(error) *VerificationResponse {
	return func(err error) *VerificationResponse {
		remaining, accountStatus := remoteHints(err)
		return &VerificationResponse{
			AuthenticationResult: AuthenticationFailed,
			AccountStatus:        model.AccountStatus(accountStatus),
			RemainingAttempts:    remaining,
			ErrorMessage:         message,
		}
	}
}
