package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "LOYALTY"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Console ConsoleConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LOYALTY_APP_ENV" required:"true"`
	Port         string `envconfig:"LOYALTY_APP_PORT" default:"8081"`
	LogLevel     string `envconfig:"LOYALTY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOYALTY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig locates the remote loyalty API. The base URL is read once at
// process start; a relative default keeps parity with proxied deployments.
type APIConfig struct {
	BaseURL string `envconfig:"LOYALTY_API_BASE_URL" default:"/api"`
}

type ConsoleConfig struct {
	// DemoCustomerID backs the customer dashboard when no customer is
	// selected, matching the walkthrough account the program seeds.
	DemoCustomerID int64 `envconfig:"LOYALTY_DEMO_CUSTOMER_ID" default:"1"`
	RecentLimit    int   `envconfig:"LOYALTY_RECENT_LIMIT" default:"10"`
	PageSize       int   `envconfig:"LOYALTY_PAGE_SIZE" default:"20"`
}
