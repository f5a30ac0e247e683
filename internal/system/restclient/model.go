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

package restclient

import "encoding/json"

const (
	// ResponseStatusOK marks a successful response envelope.
	ResponseStatusOK = "OK"
	// ResponseStatusError marks an error response envelope.
	ResponseStatusError = "ERROR"
)

// ObjectRequest is the request envelope used by the PowerAuth services.
type ObjectRequest struct {
	RequestObject interface{} `json:"requestObject"`
}

// objectResponse is the response envelope used by the PowerAuth services.
type objectResponse struct {
	Status         string          `json:"status"`
	ResponseObject json.RawMessage `json:"responseObject"`
}

// ErrorModel is the error payload carried in an error response envelope.
type ErrorModel struct {
	Code              string `json:"code"`
	Message           string `json:"message"`
	RemainingAttempts *int   `json:"remainingAttempts,omitempty"`
	AccountStatus     string `json:"accountStatus,omitempty"`
}
