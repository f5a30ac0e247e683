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
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/i18n"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/error/serviceerror"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
	sysutils "github.com/wultra/powerauth-webflow-sub005/internal/system/utils"
)

const (
	headerAcceptLanguage = "Accept-Language"
	headerRequestID      = "X-Request-ID"
	apiPathPrefix        = "/api/auth"
)

// ErrInvalidRequestBody is returned for a request body which cannot be decoded or validated.
var ErrInvalidRequestBody = errors.New("invalid request body")

// StepFunc handles one step request and returns the response body. The state of rc is saved after
// the call returns.
type StepFunc func(ctx context.Context, rc *authmethod.RequestContext, r *http.Request) (interface{}, error)

// Registrar registers the routes of a step controller. Paths are relative to /api/auth.
type Registrar interface {
	RegisterRoutes(router *mux.Router, handler *Handler)
}

// Handler adapts step functions to HTTP handlers.
type Handler struct {
	sessions   *SessionManager
	hashHeader string
	logger     *log.Logger
}

// NewHandler creates a handler. hashHeader is the request header carrying the operation hash.
func NewHandler(sessions *SessionManager, hashHeader string) *Handler {
	return &Handler{
		sessions:   sessions,
		hashHeader: hashHeader,
		logger:     log.GetLogger().With(log.String(log.LoggerKeyComponentName, "StepHandler")),
	}
}

// Step returns the HTTP handler of a step function.
func (h *Handler) Step(fn StepFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := h.sessions.Load(w, r)
		if err != nil {
			h.logger.Error("Failed to load session state", log.Error(err))
			sysutils.WriteJSONError(w, &ErrorSessionUnavailable)
			return
		}
		rc := &authmethod.RequestContext{
			State:         state,
			OperationHash: r.Header.Get(h.hashHeader),
			Locale:        i18n.ParseAcceptLanguage(r.Header.Get(headerAcceptLanguage)),
		}

		resp, err := fn(r.Context(), rc, r)
		if errors.Is(err, ErrInvalidRequestBody) {
			sysutils.WriteJSONError(w, serviceerror.CustomServiceError(ErrorInvalidRequest, err.Error()))
			return
		}
		if err != nil {
			h.logger.Debug("Step failed", log.String(log.LoggerKeySessionID, state.SessionID), log.Error(err))
			resp = ErrorResponse(err)
		}

		if err := h.sessions.Save(r.Context(), state); err != nil {
			h.logger.Error("Failed to save session state", log.String(log.LoggerKeySessionID, state.SessionID),
				log.Error(err))
		}
		sysutils.WriteJSON(w, http.StatusOK, resp)
	}
}

// DecodeRequest decodes a JSON body into the request and validates it. An empty body leaves the
// request zero valued.
func DecodeRequest(r *http.Request, request validation.Validatable) error {
	if err := sysutils.DecodeJSONBody(r, request); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(ErrInvalidRequestBody, err)
	}
	if err := request.Validate(); err != nil {
		return errors.Join(ErrInvalidRequestBody, err)
	}
	return nil
}

// NewRouter creates the router of the step controllers under /api/auth, with the liveness
// endpoint at /health.
func NewRouter(handler *Handler, controllers ...Registrar) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		sysutils.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
	}).Methods(http.MethodGet)

	// Not a subrouter: routes of a subrouter share its prefix matcher and answer 404 to a wrong method.
	api := mux.NewRouter()
	for _, controller := range controllers {
		controller.RegisterRoutes(api, handler)
	}
	router.PathPrefix(apiPathPrefix + "/").Handler(http.StripPrefix(apiPathPrefix, api))
	return router
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, requestID)
		next.ServeHTTP(w, r)
	})
}
