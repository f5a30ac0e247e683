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

// Package afs notifies the anti-fraud system about authentication progress through the Data Adapter.
package afs

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const loggerComponentName = "AfsNotifier"

// logoutReasonParam is the extra parameter carrying the logout reason.
const logoutReasonParam = "logoutReason"

// NotifierInterface defines the anti-fraud notifications. Notifications are best-effort and never
// fail the caller.
type NotifierInterface interface {
	ExecuteLogoutAction(ctx context.Context, operationID string, reason model.OperationTerminationReason)
	ExecuteAuthAction(ctx context.Context, operationID string, method model.AuthMethod, userID string)
}

// Notifier is the implementation of NotifierInterface.
type Notifier struct {
	enabled     bool
	nextStep    nextstep.ClientInterface
	dataAdapter dataadapter.ClientInterface
}

// NewNotifier creates an anti-fraud notifier. A disabled notifier does nothing.
func NewNotifier(enabled bool, nextStep nextstep.ClientInterface,
	dataAdapter dataadapter.ClientInterface) *Notifier {
	return &Notifier{enabled: enabled, nextStep: nextStep, dataAdapter: dataAdapter}
}

// ExecuteLogoutAction reports the end of the authentication with the given reason.
func (n *Notifier) ExecuteLogoutAction(ctx context.Context, operationID string,
	reason model.OperationTerminationReason) {
	n.execute(ctx, operationID, dataadapter.AfsActionLogout, "", "",
		map[string]string{logoutReasonParam: string(reason)})
}

// ExecuteAuthAction reports an authentication step of the user.
func (n *Notifier) ExecuteAuthAction(ctx context.Context, operationID string, method model.AuthMethod,
	userID string) {
	action := dataadapter.AfsActionLoginAuth
	if method == model.AuthMethodApprovalSCA {
		action = dataadapter.AfsActionApprovalAuth
	}
	n.execute(ctx, operationID, action, method, userID, nil)
}

func (n *Notifier) execute(ctx context.Context, operationID string, action dataadapter.AfsAction,
	method model.AuthMethod, userID string, extras map[string]string) {
	if !n.enabled {
		return
	}
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyOperationID, operationID), log.String("afsAction", string(action)))

	op, err := n.nextStep.GetOperationDetail(ctx, operationID)
	if err != nil {
		logger.Warn("Anti-fraud action skipped, operation is not available", log.Error(err))
		return
	}
	if userID == "" {
		userID = op.UserID
	}

	resp, err := n.dataAdapter.ExecuteAfsAction(ctx, dataadapter.AfsRequest{
		UserID:           userID,
		OrganizationID:   op.OrganizationID,
		Action:           action,
		AuthMethod:       method,
		StepIndex:        len(op.History),
		ExtraParameters:  extras,
		OperationContext: model.NewOperationContext(op),
	})
	if err != nil {
		logger.Warn("Anti-fraud action failed", log.Error(err))
		return
	}
	logger.Debug("Anti-fraud action executed", log.Bool("afsResponseApplied", resp.AfsResponseApplied),
		log.String("afsLabel", resp.AfsLabel))
}
