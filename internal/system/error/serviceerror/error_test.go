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

package serviceerror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testClientError = ServiceError{
	Code:             "TEST-1",
	Type:             ClientErrorType,
	Error:            "Bad input",
	ErrorDescription: "The input is not valid",
}

func TestCustomServiceErrorOverridesDescription(t *testing.T) {
	err := CustomServiceError(testClientError, "name is required")
	assert.Equal(t, "TEST-1", err.Code)
	assert.Equal(t, "name is required", err.ErrorDescription)
	assert.Equal(t, "The input is not valid", testClientError.ErrorDescription)
}

func TestCustomServiceErrorKeepsDescription(t *testing.T) {
	err := CustomServiceError(testClientError, "")
	assert.Equal(t, "The input is not valid", err.ErrorDescription)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, (&testClientError).StatusCode())
	serverErr := &ServiceError{Code: "TEST-2", Type: ServerErrorType, Error: "Failure"}
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode())
	assert.Equal(t, "TEST-2: Failure", serverErr.String())
	assert.Equal(t, "TEST-1: Bad input (The input is not valid)", testClientError.String())
}
