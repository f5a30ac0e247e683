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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wultra/powerauth-webflow-sub005/internal/cert"
	"github.com/wultra/powerauth-webflow-sub005/internal/managers"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(app *webFlowInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Web Flow server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.serve(ctx)
		},
	}
}

// serve registers the services and runs the server until the context is done.
func (app *webFlowInstance) serve(ctx context.Context) error {
	logger := log.GetLogger()
	serviceManager := managers.NewServiceManager(app.config, app.home)
	defer func() {
		if err := serviceManager.Close(); err != nil {
			logger.Warn("Failed to release service connections", log.Error(err))
		}
	}()

	handler, err := serviceManager.RegisterServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to register the services: %w", err)
	}

	serverAddr := fmt.Sprintf("%s:%d", app.config.Server.Hostname, app.config.Server.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if !app.config.Server.HTTPOnly {
		tlsConfig, err := cert.GetTLSConfig(app.config, app.home)
		if err != nil {
			return fmt.Errorf("failed to load TLS configuration: %w", err)
		}
		server.TLSConfig = tlsConfig
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting PowerAuth Web Flow...", log.String("address", serverAddr),
			log.Bool("httpOnly", app.config.Server.HTTPOnly))
		if app.config.Server.HTTPOnly {
			errCh <- server.ListenAndServe()
		} else {
			errCh <- server.ListenAndServeTLS("", "")
		}
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down PowerAuth Web Flow")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
