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

package nextstep

import (
	"context"
	"time"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/cache"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

const organizationCacheKeyPrefix = "nextstep:organization:"

// OrganizationServiceInterface defines the organization lookups.
type OrganizationServiceInterface interface {
	GetOrganization(ctx context.Context, organizationID string) (*OrganizationDetail, error)
}

// OrganizationService resolves organizations through Next Step, caching the results.
type OrganizationService struct {
	client ClientInterface
	cache  cache.CacheInterface
	ttl    time.Duration
}

// NewOrganizationService creates an organization service caching entries for ttl.
func NewOrganizationService(client ClientInterface, cache cache.CacheInterface,
	ttl time.Duration) *OrganizationService {
	return &OrganizationService{client: client, cache: cache, ttl: ttl}
}

// GetOrganization returns the organization detail, fetching it from Next Step on a cache miss.
func (s *OrganizationService) GetOrganization(ctx context.Context,
	organizationID string) (*OrganizationDetail, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "OrganizationService"))

	var detail OrganizationDetail
	err := s.cache.GetOrLoad(ctx, organizationCacheKeyPrefix+organizationID, &detail, s.ttl,
		func() (interface{}, error) {
			logger.Debug("Loading organization from Next Step", log.String("organizationId", organizationID))
			return s.client.GetOrganizationDetail(ctx, organizationID)
		})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
