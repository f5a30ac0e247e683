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

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/wultra/powerauth-webflow-sub005/internal/session"
)

// SessionCookieName is the cookie carrying the HTTP session identifier.
const SessionCookieName = "WEBFLOW_SESSION"

// SessionManager binds requests to their session state.
type SessionManager struct {
	store  session.StateStoreInterface
	secure bool
}

// NewSessionManager creates a session manager over the state store. Secure marks the session
// cookie for HTTPS only.
func NewSessionManager(store session.StateStoreInterface, secure bool) *SessionManager {
	return &SessionManager{store: store, secure: secure}
}

// Load returns the state of the caller's session. A new session is started, and its cookie set,
// when the request carries no valid session cookie.
func (m *SessionManager) Load(w http.ResponseWriter, r *http.Request) (*session.State, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return m.store.Load(r.Context(), cookie.Value)
		}
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return session.NewState(sessionID), nil
}

// Save stores the state at the end of a request.
func (m *SessionManager) Save(ctx context.Context, state *session.State) error {
	return m.store.Save(ctx, state)
}
