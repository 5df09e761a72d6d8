package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"ELASTIC_DB_TYPE" default:"sqlite"`
	Hostname string `envconfig:"ELASTIC_DB_HOST" default:"localhost"`
	Port     string `envconfig:"ELASTIC_DB_PORT" default:"5432"`
	Name     string `envconfig:"ELASTIC_DB_NAME" default:"elastic.db"`
	User     string `envconfig:"ELASTIC_DB_USER" default:"admin"`
	Password string `envconfig:"ELASTIC_DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	LogLevel string `envconfig:"ELASTIC_LOG_LEVEL" default:"info"`
	// MetricsFile is the textfile-collector target; empty disables the dump.
	MetricsFile string `envconfig:"ELASTIC_METRICS_FILE" default:""`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// Load processes the environment without touching the cached instance.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
