// Package config loads and validates the daemon configuration
package config

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Queue      QueueConfig      `mapstructure:"queue"`
	Indexer    IndexerConfig    `mapstructure:"indexer"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains local HTTP API settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" default:"127.0.0.1"`
	Port            int           `mapstructure:"port" default:"8545" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains the embedded store settings
type DatabaseConfig struct {
	// Path is the SQLite file holding all local state. ":memory:" is
	// accepted for throwaway runs.
	Path string `mapstructure:"path" validate:"required"`
}

// EthereumConfig contains Ethereum client settings
type EthereumConfig struct {
	RPCURL         string `mapstructure:"rpc_url" validate:"required,url"`
	ChainID        int64  `mapstructure:"chain_id" default:"1" validate:"gt=0"`
	NationContract string `mapstructure:"nation_contract" validate:"required"`
	PrivateKey     string `mapstructure:"private_key" validate:"required"`
	GasLimit       uint64 `mapstructure:"gas_limit" default:"4000000"`
	MaxGasPrice    string `mapstructure:"max_gas_price"`
}

// QueueConfig contains transaction queue settings
type QueueConfig struct {
	// ProcessingInterval is the fixed delay between receipt-polling cycles
	ProcessingInterval time.Duration `mapstructure:"processing_interval" default:"60s" validate:"gt=0"`
}

// IndexerConfig contains chain indexing settings
type IndexerConfig struct {
	// CallDelay is the pause between consecutive contract calls while
	// walking the NationCreated logs, to respect RPC rate limits
	CallDelay  time.Duration `mapstructure:"call_delay" default:"200ms"`
	StartBlock int64         `mapstructure:"start_block" default:"0" validate:"gte=0"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"console" validate:"oneof=console json"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// Load reads configuration from a YAML file, fills in defaults and validates
// the result
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks a configuration against the struct-level rules
func Validate(config *Config) error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(config)
}
