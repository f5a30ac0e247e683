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
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/operation/model"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/database/provider"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// sqlStore keeps operation sessions in the operation_session table.
type sqlStore struct {
	dbProvider provider.DBProviderInterface
}

// NewSQLStore creates an operation session store backed by the configured database.
func NewSQLStore(dbProvider provider.DBProviderInterface) OperationSessionStoreInterface {
	return &sqlStore{dbProvider: dbProvider}
}

func (s *sqlStore) RegisterIfAbsent(ctx context.Context, session OperationSession) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationSessionSQLStore"))

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	if session.TimestampCreated.IsZero() {
		session.TimestampCreated = time.Now()
	}
	rows, err := dbClient.Execute(ctx, QueryRegisterOperationSession, session.OperationID, session.HTTPSessionID,
		string(session.Result), session.TimestampCreated.UnixMilli())
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	return rows == 1, nil
}

func (s *sqlStore) Get(ctx context.Context, operationID string) (*OperationSession, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationSessionSQLStore"))

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, QueryGetOperationSession, operationID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrOperationSessionNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	session, err := buildOperationSessionFromResultRow(results[0])
	if err != nil {
		logger.Error("Failed to build operation session from result row", log.Error(err))
		return nil, err
	}
	return &session, nil
}

func (s *sqlStore) CancelAllForSession(ctx context.Context, httpSessionID string) ([]OperationSession, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationSessionSQLStore"))

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, QueryCancelOperationSessions, string(model.AuthResultFailed), httpSessionID,
		string(model.AuthResultContinue))
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	canceled := make([]OperationSession, 0, len(results))
	for _, row := range results {
		row["result"] = string(model.AuthResultContinue)
		session, err := buildOperationSessionFromResultRow(row)
		if err != nil {
			logger.Error("Failed to build operation session from result row", log.Error(err))
			return nil, err
		}
		canceled = append(canceled, session)
	}
	sort.Slice(canceled, func(i, j int) bool {
		return canceled[i].TimestampCreated.Before(canceled[j].TimestampCreated)
	})
	return canceled, nil
}

func (s *sqlStore) UpdateResult(ctx context.Context, operationID string, result model.AuthResult) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OperationSessionSQLStore"))

	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rows, err := dbClient.Execute(ctx, QueryUpdateOperationResult, string(result), operationID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rows == 0 {
		return ErrOperationSessionNotFound
	}
	return nil
}

func buildOperationSessionFromResultRow(row map[string]interface{}) (OperationSession, error) {
	operationID, err := columnString(row, "operation_id")
	if err != nil {
		return OperationSession{}, err
	}
	httpSessionID, err := columnString(row, "http_session_id")
	if err != nil {
		return OperationSession{}, err
	}
	result, err := columnString(row, "result")
	if err != nil {
		return OperationSession{}, err
	}

	var created int64
	switch v := row["timestamp_created"].(type) {
	case int64:
		created = v
	case int:
		created = int64(v)
	case float64:
		created = int64(v)
	default:
		return OperationSession{}, fmt.Errorf("failed to parse timestamp_created as integer")
	}

	return OperationSession{
		OperationID:      operationID,
		HTTPSessionID:    httpSessionID,
		Result:           model.AuthResult(result),
		TimestampCreated: time.UnixMilli(created),
	}, nil
}

func columnString(row map[string]interface{}, column string) (string, error) {
	switch v := row[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}
