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

// Package managers assembles the Web Flow services and registers their routes.
package managers

import (
	"context"
	"errors"
	"net/http"
	"path"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wultra/powerauth-webflow-sub005/internal/afs"
	"github.com/wultra/powerauth-webflow-sub005/internal/authmethod"
	"github.com/wultra/powerauth-webflow-sub005/internal/cancellation"
	"github.com/wultra/powerauth-webflow-sub005/internal/customization"
	"github.com/wultra/powerauth-webflow-sub005/internal/dataadapter"
	"github.com/wultra/powerauth-webflow-sub005/internal/i18n"
	"github.com/wultra/powerauth-webflow-sub005/internal/methodquery"
	"github.com/wultra/powerauth-webflow-sub005/internal/nextstep"
	"github.com/wultra/powerauth-webflow-sub005/internal/powerauth"
	"github.com/wultra/powerauth-webflow-sub005/internal/session"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/common"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/formlogin"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/operationreview"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/scaapproval"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/scalogin"
	"github.com/wultra/powerauth-webflow-sub005/internal/steps/smsauth"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/cache"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/config"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/database/provider"
	httpclient "github.com/wultra/powerauth-webflow-sub005/internal/system/http"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
	"github.com/wultra/powerauth-webflow-sub005/internal/system/restclient"
)

// ServiceManagerInterface builds the HTTP handler serving the authentication steps.
type ServiceManagerInterface interface {
	RegisterServices(ctx context.Context) (http.Handler, error)
	Close() error
}

// ServiceManager is the implementation of ServiceManagerInterface.
type ServiceManager struct {
	config      *config.Config
	home        string
	redisClient *redis.Client
	logger      *log.Logger
}

// NewServiceManager creates a new instance of ServiceManager. Relative file paths of the
// configuration are resolved against home.
func NewServiceManager(cfg *config.Config, home string) ServiceManagerInterface {
	return &ServiceManager{
		config: cfg,
		home:   home,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager")),
	}
}

// RegisterServices creates the remote clients, the stores and the step controllers, and returns
// the router serving them.
func (sm *ServiceManager) RegisterServices(ctx context.Context) (http.Handler, error) {
	cfg := sm.config
	if cfg.Redis.Address != "" {
		sm.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := sm.redisClient.Ping(ctx).Err(); err != nil {
			return nil, errors.Join(errors.New("failed to connect to redis"), err)
		}
	}

	httpClient := httpclient.NewHTTPClient(cfg.RestClient)
	nextStepClient := nextstep.NewClient(restclient.NewClient(cfg.NextStep.URL, nextstep.ServiceName,
		httpClient, cfg.RestClient.MaxRetries))
	dataAdapterClient := dataadapter.NewClient(restclient.NewClient(cfg.DataAdapter.URL, dataadapter.ServiceName,
		httpClient, cfg.RestClient.MaxRetries))
	var powerAuthClient powerauth.ClientInterface
	if cfg.PowerAuth.URL != "" {
		powerAuthClient = powerauth.NewClient(restclient.NewClient(cfg.PowerAuth.URL, powerauth.ServiceName,
			httpClient, cfg.RestClient.MaxRetries))
	} else {
		sm.logger.Info("PowerAuth server is not configured, mobile token operations are not canceled remotely")
	}

	operationSessions, err := sm.operationSessionStore()
	if err != nil {
		return nil, err
	}
	states := sm.stateStore()

	translator := i18n.NewBundle(cfg.I18n.DefaultLocale)
	if cfg.I18n.BundleFile != "" {
		translator, err = i18n.LoadBundle(sm.resolve(cfg.I18n.BundleFile), cfg.I18n.DefaultLocale)
		if err != nil {
			return nil, err
		}
	}

	organizationTTL := time.Duration(cfg.Cache.OrganizationTTL) * time.Second
	var organizationCache cache.CacheInterface = cache.NewLocalCache(cfg.Cache.OrganizationSize, organizationTTL)
	if sm.redisClient != nil {
		organizationCache = cache.NewRedisCache(sm.redisClient, cfg.Cache.OrganizationSize, organizationTTL)
	}
	organizations := nextstep.NewOrganizationService(nextStepClient, organizationCache, organizationTTL)

	operations := customization.NewOperationService(dataAdapterClient)
	authentication := customization.NewAuthenticationService(dataAdapterClient)
	methods := methodquery.NewService(nextStepClient, cfg.AuthMethods.Disabled)
	notifier := afs.NewNotifier(cfg.AFS.Enabled, nextStepClient, dataAdapterClient)

	auth := authmethod.NewController(authmethod.Dependencies{
		NextStep:     nextStepClient,
		Sessions:     session.NewService(operationSessions),
		Cancellation: cancellation.NewService(nextStepClient, powerAuthClient, operations),
		Methods:      methods,
		Afs:          notifier,
		Operations:   operations,
		Resolver:     authmethod.ChosenMethodResolver{},
		Translator:   translator,
	})

	handler := common.NewHandler(common.NewSessionManager(states, !cfg.Server.HTTPOnly),
		cfg.Server.OperationHashHeader)
	router := common.NewRouter(handler,
		operationreview.NewController(auth, nextStepClient, organizations),
		formlogin.NewController(auth, authentication, notifier),
		smsauth.NewController(auth, authentication, customization.NewOtpService(dataAdapterClient),
			cfg.AuthMethods.SMSPasswordRequired),
		scalogin.NewController(auth, customization.NewUserLookupService(nextStepClient, dataAdapterClient),
			authentication, methods),
		scaapproval.NewController(auth, authentication, methods),
	)

	sm.logger.Info("Services registered", log.String("sessionStore", cfg.Session.Store),
		log.Bool("afsEnabled", cfg.AFS.Enabled))
	return router, nil
}

// Close releases the connections opened by RegisterServices.
func (sm *ServiceManager) Close() error {
	var errs []error
	if sm.redisClient != nil {
		errs = append(errs, sm.redisClient.Close())
	}
	if sm.config.Session.Store == config.SessionStoreSQL {
		errs = append(errs, provider.GetDBProvider().Close())
	}
	return errors.Join(errs...)
}

func (sm *ServiceManager) operationSessionStore() (session.OperationSessionStoreInterface, error) {
	ttl := time.Duration(sm.config.Session.TTL) * time.Second
	switch sm.config.Session.Store {
	case config.SessionStoreRedis:
		if sm.redisClient == nil {
			return nil, errors.New("redis session store requires a redis address")
		}
		return session.NewRedisStore(sm.redisClient, ttl), nil
	case config.SessionStoreSQL:
		db, dbType, err := provider.OpenDatabase(sm.config.Database, sm.home)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := db.Close(); err != nil {
				sm.logger.Warn("Failed to close migration connection", log.Error(err))
			}
		}()
		if err := session.ApplyMigrations(db, dbType); err != nil {
			return nil, errors.Join(errors.New("failed to migrate operation session schema"), err)
		}
		return session.NewSQLStore(provider.GetDBProvider()), nil
	default:
		return session.NewMemoryStore(), nil
	}
}

// stateStore keeps the HTTP session states in Redis when it is configured, in memory otherwise.
func (sm *ServiceManager) stateStore() session.StateStoreInterface {
	ttl := time.Duration(sm.config.Session.TTL) * time.Second
	if sm.redisClient != nil {
		return session.NewRedisStateStore(sm.redisClient, ttl)
	}
	return session.NewMemoryStateStore(ttl)
}

func (sm *ServiceManager) resolve(file string) string {
	if path.IsAbs(file) {
		return file
	}
	return path.Join(sm.home, file)
}
