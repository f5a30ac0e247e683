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

import "github.com/shopspring/decimal"

// FormAttributeType is the type of a displayed operation attribute.
type FormAttributeType string

const (
	FormAttributeAmount            FormAttributeType = "AMOUNT"
	FormAttributeKeyValue          FormAttributeType = "KEY_VALUE"
	FormAttributeNote              FormAttributeType = "NOTE"
	FormAttributeBankAccountChoice FormAttributeType = "BANK_ACCOUNT_CHOICE"
	FormAttributeHeading           FormAttributeType = "HEADING"
)

// Message is a translatable text. ID is the message key, Value the resolved text.
type Message struct {
	ID    string `json:"id"`
	Value string `json:"value,omitempty"`
}

// FormAttribute is a single displayed attribute of an operation.
type FormAttribute struct {
	ID       string            `json:"id"`
	Type     FormAttributeType `json:"type"`
	Label    Message           `json:"label"`
	Value    string            `json:"value,omitempty"`
	Amount   *decimal.Decimal  `json:"amount,omitempty"`
	Currency string            `json:"currency,omitempty"`
	Accounts []BankAccount     `json:"accounts,omitempty"`
}

// BankAccount is a selectable account of a BANK_ACCOUNT_CHOICE attribute.
type BankAccount struct {
	Number           string           `json:"number"`
	Name             string           `json:"name,omitempty"`
	Balance          *decimal.Decimal `json:"balance,omitempty"`
	Currency         string           `json:"currency,omitempty"`
	UsableForPayment bool             `json:"usableForPayment"`
}

// OperationFormData is the structured display data of an operation.
type OperationFormData struct {
	Title      Message           `json:"title"`
	Greeting   Message           `json:"greeting"`
	Summary    Message           `json:"summary"`
	Parameters []FormAttribute   `json:"parameters,omitempty"`
	UserInput  map[string]string `json:"userInput,omitempty"`
}

// Clone returns a deep copy of the form data.
func (f *OperationFormData) Clone() *OperationFormData {
	if f == nil {
		return nil
	}
	clone := *f
	if f.Parameters != nil {
		clone.Parameters = make([]FormAttribute, len(f.Parameters))
		for i, p := range f.Parameters {
			clone.Parameters[i] = p
			if p.Accounts != nil {
				clone.Parameters[i].Accounts = append([]BankAccount(nil), p.Accounts...)
			}
		}
	}
	if f.UserInput != nil {
		clone.UserInput = make(map[string]string, len(f.UserInput))
		for k, v := range f.UserInput {
			clone.UserInput[k] = v
		}
	}
	return &clone
}

// AddAmount appends an AMOUNT attribute.
func (f *OperationFormData) AddAmount(id string, label string, amount decimal.Decimal, currency string) {
	f.Parameters = append(f.Parameters, FormAttribute{
		ID:       id,
		Type:     FormAttributeAmount,
		Label:    Message{ID: label},
		Amount:   &amount,
		Currency: currency,
	})
}

// AddKeyValue appends a KEY_VALUE attribute.
func (f *OperationFormData) AddKeyValue(id string, label string, value string) {
	f.Parameters = append(f.Parameters, FormAttribute{
		ID:    id,
		Type:  FormAttributeKeyValue,
		Label: Message{ID: label},
		Value: value,
	})
}
