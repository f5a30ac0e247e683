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

package model

// OperationContext is the operation description sent to the Data Adapter along with every call.
type OperationContext struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	Data                  string              `json:"data"`
	ExternalTransactionID string              `json:"externalTransactionId,omitempty"`
	FormData              *OperationFormData  `json:"formData,omitempty"`
	ApplicationContext    *ApplicationContext `json:"applicationContext,omitempty"`
}

// NewOperationContext builds the context of the given operation.
func NewOperationContext(op *OperationDetail) OperationContext {
	return OperationContext{
		ID:                    op.OperationID,
		Name:                  op.OperationName,
		Data:                  op.OperationData,
		ExternalTransactionID: op.ExternalTransactionID,
		FormData:              op.FormData,
		ApplicationContext:    op.ApplicationContext,
	}
}
