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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/config"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/database/provider"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

func migrateCommand(app *webFlowInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the operation session schema migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.migrate()
		},
	}
}

// migrate applies the pending migrations of the operation session table.
func (app *webFlowInstance) migrate() error {
	if app.config.Session.Store != config.SessionStoreSQL {
		return errors.New("migrations apply to the sql session store only")
	}
	db, dbType, err := provider.OpenDatabase(app.config.Database, app.home)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.GetLogger().Warn("Failed to close database", log.Error(err))
		}
	}()

	if err := session.ApplyMigrations(db, dbType); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.GetLogger().Info("Operation session schema is up to date", log.String("databaseType", dbType))
	return nil
}
