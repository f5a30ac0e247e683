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

package client

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mock   sqlmock.Sqlmock
	client DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	suite.Require().NoError(err)
	suite.mock = mock
	suite.client = NewDBClient(model.NewDB(db), "postgres")
}

func (suite *DBClientTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryNormalizesColumnNames() {
	query := model.DBQuery{ID: "Q-1", Query: "SELECT OPERATION_ID, RESULT FROM T WHERE ID = $1"}
	suite.mock.ExpectQuery(regexp.QuoteMeta(query.Query)).WithArgs("op-1").
		WillReturnRows(sqlmock.NewRows([]string{"OPERATION_ID", "RESULT"}).AddRow("op-1", "CONTINUE"))

	results, err := suite.client.Query(context.Background(), query, "op-1")
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	assert.Equal(suite.T(), "op-1", results[0]["operation_id"])
	assert.Equal(suite.T(), "CONTINUE", results[0]["result"])
}

func (suite *DBClientTestSuite) TestQueryUsesDatabaseSpecificSQL() {
	query := model.DBQuery{ID: "Q-2", Query: "SELECT 1", PostgresQuery: "SELECT 2"}
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT 2")).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(2))

	results, err := suite.client.Query(context.Background(), query)
	suite.Require().NoError(err)
	assert.Len(suite.T(), results, 1)
}

func (suite *DBClientTestSuite) TestQueryError() {
	query := model.DBQuery{ID: "Q-3", Query: "SELECT 3"}
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT 3")).WillReturnError(errors.New("boom"))

	results, err := suite.client.Query(context.Background(), query)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestExecuteReturnsRowsAffected() {
	query := model.DBQuery{ID: "Q-4", Query: "UPDATE T SET RESULT = $1"}
	suite.mock.ExpectExec(regexp.QuoteMeta(query.Query)).WithArgs("DONE").
		WillReturnResult(sqlmock.NewResult(0, 3))

	rows, err := suite.client.Execute(context.Background(), query, "DONE")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(3), rows)
}

func (suite *DBClientTestSuite) TestQueryWithoutRows() {
	query := model.DBQuery{ID: "Q-5", Query: "SELECT 5"}
	suite.mock.ExpectQuery(regexp.QuoteMeta("SELECT 5")).WillReturnRows(sqlmock.NewRows([]string{"value"}))

	results, err := suite.client.Query(context.Background(), query)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestPing() {
	suite.mock.ExpectPing()
	assert.NoError(suite.T(), suite.client.Ping(context.Background()))
}

func (suite *DBClientTestSuite) TestDBType() {
	assert.Equal(suite.T(), "postgres", suite.client.DBType())
}

func TestDBQueryGetQuery(t *testing.T) {
	query := model.DBQuery{ID: "Q", Query: "default", SQLiteQuery: "sqlite"}
	assert.Equal(t, "sqlite", query.GetQuery("sqlite"))
	assert.Equal(t, "default", query.GetQuery("postgres"))
	assert.Equal(t, "Q", query.GetID())
}
