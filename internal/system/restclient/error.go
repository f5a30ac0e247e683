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

import (
	"errors"
	"fmt"
)

const (
	// ErrorCodeGeneric is used when the response could not be interpreted.
	ErrorCodeGeneric = "ERROR_GENERIC"
	// ErrorCodeRemote is used for 5xx responses.
	ErrorCodeRemote = "REMOTE_ERROR"
	// ErrorCodeCommunication is used when no response was received.
	ErrorCodeCommunication = "COMMUNICATION_ERROR"
	// clientErrorSuffix is appended to the service name for 4xx responses.
	clientErrorSuffix = "_CLIENT_ERROR"
)

// Error is returned by the REST client for every failed call. Code is derived from the
// response status class only; RemoteCode carries the structured error code sent by the
// remote service, if any.
type Error struct {
	StatusCode        int
	Code              string
	RemoteCode        string
	Message           string
	RemainingAttempts *int
	AccountStatus     string
	cause             error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.RemoteCode != "" {
		return fmt.Sprintf("%s (status %d, remote code %s): %s", e.Code, e.StatusCode, e.RemoteCode, e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s (status %d): %s: %v", e.Code, e.StatusCode, e.Message, e.cause)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Code, e.StatusCode, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsClientError reports whether the remote service rejected the request with a 4xx status.
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// AsError extracts a REST client error from the error chain.
func AsError(err error) (*Error, bool) {
	var restErr *Error
	if errors.As(err, &restErr) {
		return restErr, true
	}
	return nil, false
}

// HasRemoteCode reports whether the error chain carries a REST client error with the given
// remote error code.
func HasRemoteCode(err error, code string) bool {
	restErr, ok := AsError(err)
	return ok && restErr.RemoteCode == code
}

// errorCodeForStatus derives the error code from the response status class.
func errorCodeForStatus(serviceName string, statusCode int) string {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return serviceName + clientErrorSuffix
	case statusCode >= 500 && statusCode < 600:
		return ErrorCodeRemote
	default:
		return ErrorCodeGeneric
	}
}
