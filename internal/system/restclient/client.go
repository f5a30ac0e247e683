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

// Package restclient provides a synchronous client for the JSON envelope based REST APIs of
// Next Step, Data Adapter and the PowerAuth server.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	httpclient "github.com/wultra/powerauth-webflow-sub005/internal/system/http"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const loggerComponentName = "RestClient"

// ClientInterface defines the REST client operations.
type ClientInterface interface {
	// Post sends the request wrapped in a request envelope and decodes the response object into
	// response. Response may be nil when the caller is not interested in the payload.
	Post(ctx context.Context, path string, request interface{}, response interface{}, opts ...CallOption) error
}

// CallOption customizes a single call.
type CallOption func(*callOptions)

type callOptions struct {
	retry bool
}

// WithRetry marks the call as safe to repeat. Transport failures of such calls are retried
// with exponential backoff up to the configured number of retries.
func WithRetry() CallOption {
	return func(o *callOptions) {
		o.retry = true
	}
}

// Client is the default implementation of ClientInterface.
type Client struct {
	baseURL     string
	serviceName string
	httpClient  httpclient.HTTPClientInterface
	maxRetries  int
	newBackOff  func() backoff.BackOff
}

// NewClient creates a REST client for the service located at baseURL. The service name is used
// to build client error codes, for example NEXT_STEP_CLIENT_ERROR.
func NewClient(baseURL, serviceName string, httpClient httpclient.HTTPClientInterface,
	maxRetries int) *Client {
	if httpClient == nil {
		httpClient = httpclient.GetHTTPClient()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		serviceName: serviceName,
		httpClient:  httpClient,
		maxRetries:  maxRetries,
		newBackOff:  defaultBackOff,
	}
}

// WithBackOff replaces the backoff policy used for retries.
func (c *Client) WithBackOff(newBackOff func() backoff.BackOff) *Client {
	c.newBackOff = newBackOff
	return c
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second
	return b
}

// Post sends the request wrapped in a request envelope and decodes the response object.
func (c *Client) Post(ctx context.Context, path string, request interface{}, response interface{},
	opts ...CallOption) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("service", c.serviceName), log.String("path", path))

	options := callOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	body, err := json.Marshal(ObjectRequest{RequestObject: request})
	if err != nil {
		return &Error{Code: ErrorCodeGeneric, Message: "failed to encode request",
			cause: errors.Wrap(err, "marshal request envelope")}
	}

	url := c.baseURL + path
	var httpResp *http.Response
	send := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if reqErr != nil {
			return backoff.Permanent(reqErr)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			logger.Debug("Request failed", log.Error(doErr))
			return doErr
		}
		httpResp = resp
		return nil
	}

	retries := 0
	if options.retry {
		retries = c.maxRetries
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(retries)), ctx)
	if err := backoff.Retry(send, policy); err != nil {
		logger.Warn("Remote service is unreachable", log.Error(err))
		return &Error{Code: ErrorCodeCommunication, Message: "remote service is unreachable",
			cause: errors.Wrapf(err, "POST %s", url)}
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil {
			logger.Error("Error closing response body", log.Error(closeErr))
		}
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &Error{StatusCode: httpResp.StatusCode, Code: ErrorCodeCommunication,
			Message: "failed to read response", cause: errors.Wrap(err, "read response body")}
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return c.decodeSuccess(httpResp.StatusCode, respBody, response, logger)
	}
	return c.decodeFailure(httpResp.StatusCode, respBody, logger)
}

// decodeSuccess decodes a 2xx response envelope into the response object.
func (c *Client) decodeSuccess(statusCode int, body []byte, response interface{}, logger *log.Logger) error {
	var envelope objectResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.Warn("Invalid response envelope", log.Error(err))
		return &Error{StatusCode: statusCode, Code: ErrorCodeGeneric, Message: "invalid response envelope",
			cause: errors.Wrap(err, "unmarshal response envelope")}
	}
	if envelope.Status != "" && envelope.Status != ResponseStatusOK {
		return c.errorFromEnvelope(statusCode, ErrorCodeGeneric, envelope)
	}
	if response == nil || len(envelope.ResponseObject) == 0 || string(envelope.ResponseObject) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.ResponseObject, response); err != nil {
		logger.Warn("Invalid response object", log.Error(err))
		return &Error{StatusCode: statusCode, Code: ErrorCodeGeneric, Message: "invalid response object",
			cause: errors.Wrap(err, "unmarshal response object")}
	}
	return nil
}

// decodeFailure builds the error for a non 2xx response, keeping the remote error details when
// the body carries an error envelope.
func (c *Client) decodeFailure(statusCode int, body []byte, logger *log.Logger) error {
	code := errorCodeForStatus(c.serviceName, statusCode)
	logger.Warn("Remote service returned an error", log.Int("statusCode", statusCode), log.String("code", code))

	var envelope objectResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &Error{StatusCode: statusCode, Code: code, Message: http.StatusText(statusCode)}
	}
	return c.errorFromEnvelope(statusCode, code, envelope)
}

func (c *Client) errorFromEnvelope(statusCode int, code string, envelope objectResponse) error {
	restErr := &Error{StatusCode: statusCode, Code: code, Message: http.StatusText(statusCode)}
	var model ErrorModel
	if len(envelope.ResponseObject) > 0 && json.Unmarshal(envelope.ResponseObject, &model) == nil {
		restErr.RemoteCode = model.Code
		if model.Message != "" {
			restErr.Message = model.Message
		}
		restErr.RemainingAttempts = model.RemainingAttempts
		restErr.AccountStatus = model.AccountStatus
	}
	return restErr
}
