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

import dbmodel "github.com/wultra/powerauth-webflow-sub005/internal/system/database/model"

const (
	redisOperationKeyPrefix = "webflow:operation:"
	redisSessionKeyPrefix   = "webflow:session:operations:"
	redisStateKeyPrefix     = "webflow:session:state:"
	redisMaxRetries         = 4
)

var (
	// QueryRegisterOperationSession inserts a mapping unless the operation is already mapped.
	QueryRegisterOperationSession = dbmodel.DBQuery{
		ID: "WFQ-SESSION-01",
		Query: "INSERT INTO operation_session (operation_id, http_session_id, result, timestamp_created) " +
			"VALUES ($1, $2, $3, $4) ON CONFLICT (operation_id) DO NOTHING",
	}
	// QueryGetOperationSession fetches the mapping of an operation.
	QueryGetOperationSession = dbmodel.DBQuery{
		ID: "WFQ-SESSION-02",
		Query: "SELECT operation_id, http_session_id, result, timestamp_created FROM operation_session " +
			"WHERE operation_id = $1",
	}
	// QueryCancelOperationSessions fails the active operations of an HTTP session.
	QueryCancelOperationSessions = dbmodel.DBQuery{
		ID: "WFQ-SESSION-03",
		Query: "UPDATE operation_session SET result = $1 WHERE http_session_id = $2 AND result = $3 " +
			"RETURNING operation_id, http_session_id, timestamp_created",
	}
	// QueryUpdateOperationResult stores the latest result of an operation.
	QueryUpdateOperationResult = dbmodel.DBQuery{
		ID:    "WFQ-SESSION-04",
		Query: "UPDATE operation_session SET result = $1 WHERE operation_id = $2",
	}
)
