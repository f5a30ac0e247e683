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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/config"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/database/client"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/database/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const (
	// DataSourceTypePostgres is the PostgreSQL data source type.
	DataSourceTypePostgres = "postgres"
	// DataSourceTypeSQLite is the SQLite data source type.
	DataSourceTypeSQLite = "sqlite"
)

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	dbClient client.DBClientInterface
	mutex    sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns the database client of the configured data source, connecting lazily.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {
	d.mutex.RLock()
	if d.dbClient != nil {
		dbClient := d.dbClient
		d.mutex.RUnlock()
		return dbClient, nil
	}
	d.mutex.RUnlock()

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.dbClient != nil {
		return d.dbClient, nil
	}

	runtime := config.GetWebFlowRuntime()
	db, dbType, err := OpenDatabase(runtime.Config.Database, runtime.WebFlowHome)
	if err != nil {
		return nil, err
	}
	d.dbClient = client.NewDBClient(model.NewDB(db), dbType)
	return d.dbClient, nil
}

// Close closes the database connection, if one was opened.
func (d *DBProvider) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.dbClient == nil {
		return nil
	}
	err := d.dbClient.Close()
	d.dbClient = nil
	if err != nil {
		return fmt.Errorf("failed to close database client: %w", err)
	}
	log.GetLogger().Debug("Database connections closed successfully")
	return nil
}

// OpenDatabase opens and pings a connection pool for the given data source. Relative SQLite
// paths are resolved against the home directory.
func OpenDatabase(dataSource config.DataSource, home string) (*sql.DB, string, error) {
	var driverName, dsn string
	switch dataSource.Type {
	case DataSourceTypePostgres:
		driverName = DataSourceTypePostgres
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
	case DataSourceTypeSQLite:
		driverName = DataSourceTypeSQLite
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbPath := dataSource.Path
		if !path.IsAbs(dbPath) {
			dbPath = path.Join(home, dbPath)
		}
		dsn = dbPath + options
	default:
		return nil, "", fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to database %s: %w", dataSource.Name, err)
	}

	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, "", fmt.Errorf("failed to ping database %s: %w (close error: %w)",
				dataSource.Name, err, closeErr)
		}
		return nil, "", fmt.Errorf("failed to ping database %s: %w", dataSource.Name, err)
	}
	return db, driverName, nil
}
