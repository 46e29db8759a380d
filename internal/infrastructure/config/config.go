package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Shards      []ShardConfig `mapstructure:"shards"`
	Rewards     RewardsConfig `mapstructure:"rewards"`
	Logger      LoggerConfig  `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// ShardConfig names one shard and the environment variable holding its
// serialized service-account credential. Credentials never appear in the
// config file itself.
type ShardConfig struct {
	ID             string `mapstructure:"id"`
	CredentialsEnv string `mapstructure:"credentialsEnv"`
}

// RewardsConfig contains reward amounts and issuance settings
type RewardsConfig struct {
	ReferralFastPathBonus int64         `mapstructure:"referralFastPathBonus"`
	SweepReferredBonus    int64         `mapstructure:"sweepReferredBonus"`
	SweepReferrerBonus    int64         `mapstructure:"sweepReferrerBonus"`
	FreeSpinsPerDay       int           `mapstructure:"freeSpinsPerDay"`
	SyncWindow            time.Duration `mapstructure:"syncWindow"`         // hours
	CodeMaxAttempts       int           `mapstructure:"codeMaxAttempts"`
	CodeRetryBackoff      time.Duration `mapstructure:"codeRetryBackoff"` // milliseconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}
