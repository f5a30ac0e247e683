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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/kelseyhightower/envconfig"
	yaml "gopkg.in/yaml.v3"

	"github.com/wultra/powerauth-webflow-sub005/internal/system/log"
)

// EnvironmentPrefix is the prefix of environment variables overriding file configuration,
// for example WEBFLOW_SERVER_PORT or WEBFLOW_NEXT_STEP_URL.
const EnvironmentPrefix = "webflow"

const (
	// SessionStoreMemory keeps operation sessions in process memory.
	SessionStoreMemory = "memory"
	// SessionStoreSQL keeps operation sessions in the configured SQL database.
	SessionStoreSQL = "sql"
	// SessionStoreRedis keeps operation sessions in Redis.
	SessionStoreRedis = "redis"
)

const (
	defaultRestClientTimeout     = 30
	defaultRestClientIdleConns   = 10
	defaultRestClientIdleTimeout = 90
	defaultRestClientRetries     = 2
	defaultSessionTTL            = 1800
	defaultOrganizationTTL       = 300
	defaultOrganizationSize      = 1000
	defaultLocale                = "en"
	defaultMaxOpenConns          = 10
	defaultMaxIdleConns          = 5
	defaultConnMaxLifetime       = 3600
	defaultOperationHashHeader   = "X-OPERATION-HASH"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname            string `yaml:"hostname"`
	Port                int    `yaml:"port"`
	HTTPOnly            bool   `yaml:"http_only" split_words:"true"`
	CertFile            string `yaml:"cert_file" split_words:"true"`
	KeyFile             string `yaml:"key_file" split_words:"true"`
	OperationHashHeader string `yaml:"operation_hash_header" split_words:"true"`
}

// Validate validates the server configuration.
func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.CertFile, validation.When(!s.HTTPOnly, validation.Required)),
		validation.Field(&s.KeyFile, validation.When(!s.HTTPOnly, validation.Required)),
	)
}

// ServiceEndpoint holds the location of a remote REST service.
type ServiceEndpoint struct {
	URL string `yaml:"url"`
}

// Validate validates the service endpoint.
func (e ServiceEndpoint) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.URL, validation.Required, is.URL),
	)
}

// RestClientConfig holds the outbound REST client settings. Timeouts are in seconds.
type RestClientConfig struct {
	Timeout             int  `yaml:"timeout"`
	MaxRetries          int  `yaml:"max_retries" split_words:"true"`
	MaxIdleConnsPerHost int  `yaml:"max_idle_conns_per_host" split_words:"true"`
	IdleConnTimeout     int  `yaml:"idle_conn_timeout" split_words:"true"`
	InsecureSkipVerify  bool `yaml:"insecure_skip_verify" split_words:"true"`
}

// DataSource holds the database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `yaml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" split_words:"true"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SessionConfig holds the operation session store settings. TTL is in seconds.
type SessionConfig struct {
	Store string `yaml:"store"`
	TTL   int    `yaml:"ttl"`
}

// CacheConfig holds the local cache settings. OrganizationTTL is in seconds.
type CacheConfig struct {
	OrganizationTTL  int `yaml:"organization_ttl" split_words:"true"`
	OrganizationSize int `yaml:"organization_size" split_words:"true"`
}

// AFSConfig holds the anti-fraud system integration settings.
type AFSConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AuthMethodsConfig holds the authentication method settings.
type AuthMethodsConfig struct {
	Disabled            []string `yaml:"disabled"`
	SMSPasswordRequired bool     `yaml:"sms_password_required" split_words:"true"`
}

// I18nConfig holds the message bundle settings.
type I18nConfig struct {
	BundleFile    string `yaml:"bundle_file" split_words:"true"`
	DefaultLocale string `yaml:"default_locale" split_words:"true"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	NextStep    ServiceEndpoint   `yaml:"next_step" split_words:"true"`
	DataAdapter ServiceEndpoint   `yaml:"data_adapter" split_words:"true"`
	PowerAuth   ServiceEndpoint   `yaml:"powerauth"`
	RestClient  RestClientConfig  `yaml:"rest_client" split_words:"true"`
	Database    DataSource        `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	Session     SessionConfig     `yaml:"session"`
	Cache       CacheConfig       `yaml:"cache"`
	AFS         AFSConfig         `yaml:"afs"`
	AuthMethods AuthMethodsConfig `yaml:"auth_methods" split_words:"true"`
	I18n        I18nConfig        `yaml:"i18n"`
}

// Validate validates the complete configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server),
		validation.Field(&c.NextStep),
		validation.Field(&c.DataAdapter),
		validation.Field(&c.PowerAuth, validation.Skip.When(c.PowerAuth.URL == "")),
		validation.Field(&c.Session, validation.By(func(value interface{}) error {
			s := value.(SessionConfig)
			return validation.Validate(s.Store,
				validation.In(SessionStoreMemory, SessionStoreSQL, SessionStoreRedis))
		})),
		validation.Field(&c.Database, validation.When(c.Session.Store == SessionStoreSQL,
			validation.By(func(value interface{}) error {
				ds := value.(DataSource)
				return validation.Validate(ds.Type, validation.Required, validation.In("postgres", "sqlite"))
			}))),
		validation.Field(&c.Redis, validation.When(c.Session.Store == SessionStoreRedis,
			validation.By(func(value interface{}) error {
				return validation.Validate(value.(RedisConfig).Address, validation.Required)
			}))),
	)
}

// applyDefaults fills in defaults for values left empty.
func (c *Config) applyDefaults() {
	if c.RestClient.Timeout <= 0 {
		c.RestClient.Timeout = defaultRestClientTimeout
	}
	if c.RestClient.MaxIdleConnsPerHost <= 0 {
		c.RestClient.MaxIdleConnsPerHost = defaultRestClientIdleConns
	}
	if c.RestClient.IdleConnTimeout <= 0 {
		c.RestClient.IdleConnTimeout = defaultRestClientIdleTimeout
	}
	if c.RestClient.MaxRetries < 0 {
		c.RestClient.MaxRetries = defaultRestClientRetries
	}
	if c.Session.Store == "" {
		c.Session.Store = SessionStoreMemory
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = defaultSessionTTL
	}
	if c.Cache.OrganizationTTL <= 0 {
		c.Cache.OrganizationTTL = defaultOrganizationTTL
	}
	if c.Cache.OrganizationSize <= 0 {
		c.Cache.OrganizationSize = defaultOrganizationSize
	}
	if c.I18n.DefaultLocale == "" {
		c.I18n.DefaultLocale = defaultLocale
	}
	if c.Server.OperationHashHeader == "" {
		c.Server.OperationHashHeader = defaultOperationHashHeader
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = defaultMaxOpenConns
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = defaultMaxIdleConns
	}
	if c.Database.ConnMaxLifetime <= 0 {
		c.Database.ConnMaxLifetime = defaultConnMaxLifetime
	}
}

// LoadConfig loads the configurations from the specified YAML file, applies environment
// overrides and defaults, and validates the result.
func LoadConfig(path string) (*Config, error) {
	cfg := Config{
		RestClient: RestClientConfig{MaxRetries: -1},
	}
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvironmentPrefix, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
