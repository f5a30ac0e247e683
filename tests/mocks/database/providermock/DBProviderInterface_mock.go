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

// Package providermock provides testify mocks of the database provider interfaces.
package providermock

import (
	client "github.com/wultra/powerauth-webflow-sub005/internal/system/database/client"

	mock "github.com/stretchr/testify/mock"
)

// DBProviderInterfaceMock is an autogenerated mock type for the DBProviderInterface type
type DBProviderInterfaceMock struct {
	mock.Mock
}

// GetDBClient provides a mock function with given fields:
func (_m *DBProviderInterfaceMock) GetDBClient() (client.DBClientInterface, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetDBClient")
	}

	var r0 client.DBClientInterface
	var r1 error
	if rf, ok := ret.Get(0).(func() (client.DBClientInterface, error)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() client.DBClientInterface); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(client.DBClientInterface)
		}
	}

	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Close provides a mock function with given fields:
func (_m *DBProviderInterfaceMock) Close() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Close")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewDBProviderInterfaceMock creates a new instance of DBProviderInterfaceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDBProviderInterfaceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DBProviderInterfaceMock {
	m := &DBProviderInterfaceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
