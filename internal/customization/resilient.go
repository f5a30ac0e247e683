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

// Package customization maps the bank specific Data Adapter and Next Step responses into the
// authentication results consumed by the step controllers. Remote failures never escape this
// package: every call yields a well formed result, degraded to FAILED when the remote call fails.
package customization

import (
	"context"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

// callResilient runs call and returns its result. When call fails, the error is logged and the
// result built by fallback is returned instead.
func callResilient[T any](ctx context.Context, logger *log.Logger, operation string,
	call func(ctx context.Context) (T, error), fallback func(err error) T) T {
	result, err := call(ctx)
	if err == nil {
		return result
	}

	fields := []log.Field{log.String("call", operation), log.Error(err)}
	if restErr, ok := restclient.AsError(err); ok {
		fields = append(fields, log.String("errorCode", restErr.Code), log.String("remoteCode", restErr.RemoteCode))
	}
	logger.Warn("Remote call failed, using fallback result", fields...)
	return fallback(err)
}

// remoteHints extracts the remaining attempts and account status carried by a remote error.
func remoteHints(err error) (*int, string) {
	restErr, ok := restclient.AsError(err)
	if !ok {
		return nil, ""
	}
	return restErr.RemainingAttempts, restErr.AccountStatus
}
