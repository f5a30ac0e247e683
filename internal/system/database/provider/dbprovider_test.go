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

package provider

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/config"
)

func TestOpenDatabaseSQLite(t *testing.T) {
	dir := t.TempDir()
	db, dbType, err := OpenDatabase(config.DataSource{Type: DataSourceTypeSQLite, Path: "webflow.db"}, dir)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	assert.Equal(t, DataSourceTypeSQLite, dbType)
	assert.FileExists(t, filepath.Join(dir, "webflow.db"))
}

func TestOpenDatabaseUnsupportedType(t *testing.T) {
	db, _, err := OpenDatabase(config.DataSource{Type: "oracle"}, "")
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestGetDBClientUsesRuntimeConfig(t *testing.T) {
	config.ResetWebFlowRuntime()
	defer config.ResetWebFlowRuntime()
	instance = nil

	dir := t.TempDir()
	cfg := &config.Config{Database: config.DataSource{Type: DataSourceTypeSQLite, Path: "runtime.db"}}
	require.NoError(t, config.InitializeWebFlowRuntime(dir, cfg))

	dbProvider := &DBProvider{}
	dbClient, err := dbProvider.GetDBClient()
	require.NoError(t, err)
	assert.Equal(t, DataSourceTypeSQLite, dbClient.DBType())

	same, err := dbProvider.GetDBClient()
	require.NoError(t, err)
	assert.Same(t, dbClient, same)
	assert.NoError(t, dbProvider.Close())
	assert.NoError(t, dbProvider.Close())
}
