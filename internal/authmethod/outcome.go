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

package authmethod

import "github.com/wultra/powerauth-webflow-sub005/internal/operation/model"

// OperationOutcome is the result of validating the state of an operation. It is one of
// ContinueOutcome, DoneOutcome, FailedOutcome or AlreadyTerminalOutcome.
type OperationOutcome interface {
	outcome()
}

// ContinueOutcome is an operation which can proceed with one of the steps.
type ContinueOutcome struct {
	Steps []model.AuthStep
}

// DoneOutcome is a successfully finished operation.
type DoneOutcome struct {
	UserID string
}

// FailedOutcome is an operation which must not be used. Reason is an *AuthStepError.
type FailedOutcome struct {
	Reason error
}

// TerminalKind tells how an operation ended.
type TerminalKind string

const (
	TerminalFinished TerminalKind = "FINISHED"
	TerminalCanceled TerminalKind = "CANCELED"
	TerminalFailed   TerminalKind = "FAILED"
)

// AlreadyTerminalOutcome is an operation which ended before the request.
type AlreadyTerminalOutcome struct {
	Kind TerminalKind
}

func (ContinueOutcome) outcome()        {}
func (DoneOutcome) outcome()            {}
func (FailedOutcome) outcome()          {}
func (AlreadyTerminalOutcome) outcome() {}

// Err returns the error matching the terminal kind.
func (o AlreadyTerminalOutcome) Err() error {
	switch o.Kind {
	case TerminalFinished:
		return ErrOperationAlreadyFinished
	case TerminalCanceled:
		return ErrOperationAlreadyCanceled
	default:
		return ErrOperationAlreadyFailed
	}
}

// terminalOutcomeOf returns the terminal outcome of an operation which is no longer CONTINUE.
func terminalOutcomeOf(op *model.OperationDetail) (AlreadyTerminalOutcome, bool) {
	switch {
	case op.Result == model.AuthResultDone:
		return AlreadyTerminalOutcome{Kind: TerminalFinished}, true
	case op.IsCanceled():
		return AlreadyTerminalOutcome{Kind: TerminalCanceled}, true
	case op.Result == model.AuthResultFailed:
		return AlreadyTerminalOutcome{Kind: TerminalFailed}, true
	default:
		return AlreadyTerminalOutcome{}, false
	}
}
