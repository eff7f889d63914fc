package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Static   StaticConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig names the two fully isolated stores. Devices and bottles
// never share a database file.
type DatabaseConfig struct {
	Devices SQLiteConfig `mapstructure:"devices"`
	Bottles SQLiteConfig `mapstructure:"bottles"`
}

type SQLiteConfig struct {
	Path        string `mapstructure:"path"`
	BusyTimeout int    `mapstructure:"busy_timeout"`
	WALMode     bool   `mapstructure:"wal_mode"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("GARTENTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.devices.path", "./data/devices.db")
	viper.SetDefault("database.devices.busy_timeout", 5)
	viper.SetDefault("database.devices.wal_mode", true)
	viper.SetDefault("database.bottles.path", "./data/bottles.db")
	viper.SetDefault("database.bottles.busy_timeout", 5)
	viper.SetDefault("database.bottles.wal_mode", true)

	// Static frontend defaults
	viper.SetDefault("static.dir", "./static")
}

func validateConfig(config *Config) error {
	if config.Database.Devices.Path == "" {
		return fmt.Errorf("devices database path is required")
	}
	if config.Database.Bottles.Path == "" {
		return fmt.Errorf("bottles database path is required")
	}
	if config.Database.Devices.Path == config.Database.Bottles.Path {
		return fmt.Errorf("devices and bottles must use separate database files")
	}
	return nil
}
