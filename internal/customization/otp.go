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
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// OtpServiceInterface defines the SMS OTP deliveries.
type OtpServiceInterface interface {
	CreateAndSendOtp(ctx context.Context, request OtpDeliveryRequest) *OtpDeliveryResponse
	SendOtp(ctx context.Context, messageID string, request OtpDeliveryRequest) *OtpDeliveryResponse
}

// OtpService is the implementation of OtpServiceInterface.
type OtpService struct {
	dataAdapter dataadapter.ClientInterface
	logger      *log.Logger
}

// NewOtpService creates an OTP customization service.
func NewOtpService(dataAdapter dataadapter.ClientInterface) *OtpService {
	return &OtpService{
		dataAdapter: dataAdapter,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OtpService")),
	}
}

// CreateAndSendOtp creates a new SMS OTP and sends it to the user.
func (s *OtpService) CreateAndSendOtp(ctx context.Context, request OtpDeliveryRequest) *OtpDeliveryResponse {
	return callResilient(ctx, s.logger, "createAndSendSms",
		func(ctx context.Context) (*OtpDeliveryResponse, error) {
			resp, err := s.dataAdapter.CreateAndSendSMS(ctx, dataadapter.CreateSMSRequest{
				UserID:           request.UserID,
				OrganizationID:   request.OrganizationID,
				AccountStatus:    request.AccountStatus,
				AuthMethod:       request.AuthMethod,
				Lang:             request.Lang,
				OperationContext: request.OperationContext,
			})
			if err != nil {
				return nil, err
			}
			return deliveryResponse(resp), nil
		},
		deliveryFallback(""))
}

// SendOtp resends an already created SMS OTP.
func (s *OtpService) SendOtp(ctx context.Context, messageID string, request OtpDeliveryRequest) *OtpDeliveryResponse {
	return callResilient(ctx, s.logger, "sendSms",
		func(ctx context.Context) (*OtpDeliveryResponse, error) {
			resp, err := s.dataAdapter.SendSMS(ctx, dataadapter.SendSMSRequest{
				MessageID:        messageID,
				UserID:           request.UserID,
				OrganizationID:   request.OrganizationID,
				AccountStatus:    request.AccountStatus,
				AuthMethod:       request.AuthMethod,
				Lang:             request.Lang,
				OperationContext: request.OperationContext,
			})
			if err != nil {
				return nil, err
			}
			result := deliveryResponse(resp)
			if result.MessageID == "" {
				result.MessageID = messageID
			}
			return result, nil
		},
		deliveryFallback(messageID))
}

func deliveryResponse(resp *dataadapter.SMSDeliveryResponse) *OtpDeliveryResponse {
	result := &OtpDeliveryResponse{
		MessageID: resp.MessageID,
		Delivered: resp.DeliveryResult.IsSuccess(),
	}
	if !result.Delivered {
		result.ErrorMessage = resp.ErrorMessage
		if result.ErrorMessage == "" {
			result.ErrorMessage = MessageSMSDeliveryFailed
		}
	}
	return result
}

func deliveryFallback(messageID string) func(error) *OtpDeliveryResponse {
	return func(error) *OtpDeliveryResponse {
		return &OtpDeliveryResponse{
			MessageID:    messageID,
			Delivered:    false,
			ErrorMessage: MessageSMSDeliveryFailed,
		}
	}
}
