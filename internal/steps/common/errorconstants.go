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

package common

import "github.com/wultra/powerauth-webflow-sub005/internal/system/error/serviceerror"

var (
	// ErrorInvalidRequest is the error body of a request which cannot be decoded or validated.
	ErrorInvalidRequest = serviceerror.ServiceError{
		Code:             "INVALID_REQUEST",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request",
		ErrorDescription: "The request body is malformed or contains invalid values",
	}
	// ErrorSessionUnavailable is the error body returned when the session state cannot be loaded.
	ErrorSessionUnavailable = serviceerror.ServiceError{
		Code:             "SESSION_ERROR",
		Type:             serviceerror.ServerErrorType,
		Error:            "Session is not available",
		ErrorDescription: "The session state could not be loaded",
	}
)
