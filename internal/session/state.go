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

package session

import (
	"strconv"
)

// SessionKey names a value of the per-session authentication state.
type SessionKey string

const (
	KeyPendingOperationID      SessionKey = "pendingOperationId"
	KeyUsername                SessionKey = "username"
	KeyUserID                  SessionKey = "userId"
	KeyOrganizationID          SessionKey = "organizationId"
	KeyClientCertificate       SessionKey = "clientCertificate"
	KeyMobileTokenEnabled      SessionKey = "mobileTokenEnabled"
	KeySMSAuthorizationID      SessionKey = "smsAuthorizationId"
	KeyRemoteRemainingAttempts SessionKey = "remoteRemainingAttempts"
)

// State is the authentication state of one HTTP session. It is loaded at the start of a request,
// threaded through the step handlers and saved when the request ends.
type State struct {
	SessionID               string
	PendingOperationID      string
	Username                string
	UserID                  string
	OrganizationID          string
	ClientCertificate       string
	MobileTokenEnabled      bool
	SMSAuthorizationID      string
	RemoteRemainingAttempts *int
}

// NewState returns an empty state of the given session.
func NewState(sessionID string) *State {
	return &State{SessionID: sessionID}
}

// ResetAuthentication clears everything learned about the user while keeping the session.
func (s *State) ResetAuthentication() {
	*s = State{SessionID: s.SessionID, PendingOperationID: s.PendingOperationID}
}

// Values returns the non-empty values of the state keyed by their session key.
func (s *State) Values() map[SessionKey]string {
	values := map[SessionKey]string{}
	put := func(key SessionKey, value string) {
		if value != "" {
			values[key] = value
		}
	}
	put(KeyPendingOperationID, s.PendingOperationID)
	put(KeyUsername, s.Username)
	put(KeyUserID, s.UserID)
	put(KeyOrganizationID, s.OrganizationID)
	put(KeyClientCertificate, s.ClientCertificate)
	if s.MobileTokenEnabled {
		values[KeyMobileTokenEnabled] = strconv.FormatBool(true)
	}
	put(KeySMSAuthorizationID, s.SMSAuthorizationID)
	if s.RemoteRemainingAttempts != nil {
		values[KeyRemoteRemainingAttempts] = strconv.Itoa(*s.RemoteRemainingAttempts)
	}
	return values
}

// stateFromValues rebuilds a state from values produced by Values. Unknown keys are ignored.
func stateFromValues(sessionID string, values map[SessionKey]string) *State {
	state := NewState(sessionID)
	state.PendingOperationID = values[KeyPendingOperationID]
	state.Username = values[KeyUsername]
	state.UserID = values[KeyUserID]
	state.OrganizationID = values[KeyOrganizationID]
	state.ClientCertificate = values[KeyClientCertificate]
	state.MobileTokenEnabled, _ = strconv.ParseBool(values[KeyMobileTokenEnabled])
	state.SMSAuthorizationID = values[KeySMSAuthorizationID]
	if raw, ok := values[KeyRemoteRemainingAttempts]; ok {
		if remaining, err := strconv.Atoi(raw); err == nil {
			state.RemoteRemainingAttempts = &remaining
		}
	}
	return state
}
