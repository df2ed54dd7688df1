package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	SQL    SQLConfig    `mapstructure:"sql"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type SQLConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.ecommerce-benchmark/")
	v.AddConfigPath("/etc/ecommerce-benchmark/")

	// Enable environment variable override with BENCH_ prefix
	v.SetEnvPrefix("BENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults keep the tool runnable against local docker containers
	// without any config file at all.
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("sql.dsn", "root:benchmark@tcp(localhost:3306)/benchmark?parseTime=true")
	v.SetDefault("sql.maxOpenConns", 16)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "benchmark")

	// Read config file if present; defaults and env cover the rest.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
