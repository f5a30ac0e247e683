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

package log

const (
	// LogLevelEnvironmentVariable is the environment variable holding the log level.
	LogLevelEnvironmentVariable = "LOG_LEVEL"
	// LogFormatEnvironmentVariable is the environment variable selecting the output format.
	LogFormatEnvironmentVariable = "LOG_FORMAT"
	// DefaultLogLevel is used when no log level is configured.
	DefaultLogLevel = "info"
	// FormatConsole writes tab separated text lines.
	FormatConsole = "console"
	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"
)

const (
	// LoggerKeyComponentName is the key used to identify the component name in the logger.
	LoggerKeyComponentName = "component"
	// LoggerKeyOperationID is the key used to identify the Next Step operation ID in the logger.
	LoggerKeyOperationID = "operationId"
	// LoggerKeyAuthMethod is the key used to identify the authentication method in the logger.
	LoggerKeyAuthMethod = "authMethod"
	// LoggerKeySessionID is the key used to identify the HTTP session in the logger.
	LoggerKeySessionID = "sessionId"
)
