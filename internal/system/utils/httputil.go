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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/error/serviceerror"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// WriteJSON writes the given value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
	}
}

// WriteJSONError writes the service error as a JSON response with the status of its type.
func WriteJSONError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	log.GetLogger().Debug("Error in HTTP response", log.String("error", svcErr.String()))
	WriteJSON(w, svcErr.StatusCode(), svcErr)
}

// DecodeJSONBody decodes the request body into the given value.
func DecodeJSONBody(r *http.Request, value interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(value)
}
