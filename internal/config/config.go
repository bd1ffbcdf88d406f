package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/repoworks/process-repo-action/internal/logger"
	"github.com/repoworks/process-repo-action/internal/validator"
)

type LoggingConfig struct {
	Level   int  `mapstructure:"level"`
	UseOTLP bool `mapstructure:"use_otlp"`
}

type GithubConfig struct {
	// Overrides the API base URL resolved from the workflow context.
	// Mostly useful for pointing a local run at cmd/mock_github.
	APIURL      string `mapstructure:"api_url"      validate:"omitempty,url"`
	TimeoutSecs int64  `mapstructure:"timeout_secs" validate:"required,min=1"`
}

type AuditConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type MockGithubConfig struct {
	ListenAddress string `mapstructure:"listen_address" validate:"required"`
	// Path to a fixture file describing the repositories the mock serves.
	// Empty means the built-in fixture.
	FixturePath string `mapstructure:"fixture_path"`
}

// See processaction.yaml for an example config; every key can also be set
// through the PROCESSACTION_* environment.
type Config struct {
	Logging              *LoggingConfig    `mapstructure:"logging"                validate:"required"`
	Github               *GithubConfig     `mapstructure:"github"                 validate:"required"`
	Audit                *AuditConfig      `mapstructure:"audit"                  validate:"required"`
	MockGithub           *MockGithubConfig `mapstructure:"mock_github"            validate:"required"`
	GracefulShutdownSecs int64             `mapstructure:"graceful_shutdown_secs" validate:"required,min=1"`
}

const (
	AppLogLevel             string = "logging.level"
	UseOTLP                 string = "logging.use_otlp"
	GithubAPIURL            string = "github.api_url"
	GithubTimeoutSecs       string = "github.timeout_secs"
	AuditEnabled            string = "audit.enabled"
	MockGithubListenAddress string = "mock_github.listen_address"
	MockGithubFixturePath   string = "mock_github.fixture_path"
	ShutdownSecs            string = "graceful_shutdown_secs"
	EnvPrefix               string = "processaction"
)

var configReady = false
var config Config

func GetConfig() (*Config, error) {
	if configReady {
		logger.Logger.Debug("returning already-loaded config")
		return &config, nil
	}
	logger.Logger.Info("loading config")

	v := viper.New()

	v.SetConfigName("processaction")

	v.AddConfigPath("/etc/processaction/")
	v.AddConfigPath(".")

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.AutomaticEnv()

	// workaround for https://github.com/spf13/viper/issues/761
	// bind env vars explicitly so they unmarshal into the nested struct
	for _, key := range []string{GithubAPIURL, MockGithubFixturePath} {
		err := v.BindEnv(key)
		if err != nil {
			return nil, err
		}
	}

	v.SetDefault(AppLogLevel, int(slog.LevelInfo))
	v.SetDefault(UseOTLP, false)
	v.SetDefault(GithubTimeoutSecs, 30)
	v.SetDefault(AuditEnabled, true)
	v.SetDefault(MockGithubListenAddress, ":8323")
	v.SetDefault(ShutdownSecs, 10)

	err := v.ReadInConfig()
	if err != nil {
		// ignore config file not found to allow pure env config
		if _, ok := err.(*viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	valid := validator.Create()
	err = valid.Validate(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	configReady = true
	return &config, nil
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Github.TimeoutSecs) * time.Second
}

func (c *Config) GracefulShutdown() time.Duration {
	return time.Duration(c.GracefulShutdownSecs) * time.Second
}
