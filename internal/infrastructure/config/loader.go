package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix("RW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate ensures the loaded configuration names at least one shard and that
// every shard's credential variable is populated
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if len(c.Shards) == 0 {
		missing = append(missing, "shards")
	}
	for _, shard := range c.Shards {
		if shard.ID == "" {
			missing = append(missing, "shards[].id")
			continue
		}
		if shard.CredentialsEnv == "" {
			missing = append(missing, fmt.Sprintf("shards[%s].credentialsEnv", shard.ID))
			continue
		}
		if c.Environment == Production && os.Getenv(shard.CredentialsEnv) == "" {
			missing = append(missing, fmt.Sprintf("environment variable %s for shard %s", shard.CredentialsEnv, shard.ID))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}

// ShardCredentials reads the serialized service-account credential for one shard
func (c *Config) ShardCredentials(shard ShardConfig) []byte {
	return []byte(os.Getenv(shard.CredentialsEnv))
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Reward amounts default to the production values
	v.SetDefault("rewards.referralFastPathBonus", 500)
	v.SetDefault("rewards.sweepReferredBonus", 5000)
	v.SetDefault("rewards.sweepReferrerBonus", 10000)
	v.SetDefault("rewards.freeSpinsPerDay", 3)
	v.SetDefault("rewards.syncWindow", 12)      // hours
	v.SetDefault("rewards.codeMaxAttempts", 10)
	v.SetDefault("rewards.codeRetryBackoff", 50) // milliseconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
}

// getEnvironment determines the environment to use based on RW_ENV
func getEnvironment() string {
	env := os.Getenv("RW_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	if serverHost := os.Getenv("RW_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := os.Getenv("RW_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}
	if logLevel := os.Getenv("RW_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	if maxAttempts := getEnvInt("RW_CODE_MAX_ATTEMPTS", 0); maxAttempts > 0 {
		v.Set("rewards.codeMaxAttempts", maxAttempts)
	}
	if syncWindow := getEnvInt("RW_SYNC_WINDOW_HOURS", 0); syncWindow > 0 {
		v.Set("rewards.syncWindow", syncWindow)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Rewards.SyncWindow = time.Duration(config.Rewards.SyncWindow) * time.Hour
	config.Rewards.CodeRetryBackoff = time.Duration(config.Rewards.CodeRetryBackoff) * time.Millisecond
}
