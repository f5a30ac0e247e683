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

// Package session keeps track of the HTTP sessions operations are bound to and of the per-session
// authentication state.
package session

import (
	"errors"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
)

// ErrOperationSessionNotFound is returned when no session is mapped to an operation.
var ErrOperationSessionNotFound = errors.New("operation session not found")

// OperationSession maps an operation to the HTTP session it was started or resumed in, together
// with the last known operation result.
type OperationSession struct {
	OperationID      string           `json:"operationId"`
	HTTPSessionID    string           `json:"httpSessionId"`
	Result           model.AuthResult `json:"result"`
	TimestampCreated time.Time        `json:"timestampCreated"`
}
