// Package config loads the service configuration from the environment, with
// an optional Vault overlay applied in main.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment selects how the server runs.
type Environment string

const (
	// EnvDevelopment binds to localhost and logs at debug level.
	EnvDevelopment Environment = "development"
	// EnvProduction binds to all interfaces with the production logger.
	EnvProduction Environment = "production"
	// EnvJSON turns the gateway endpoint into an envelope pretty-printer:
	// useful for capturing what a new gateway firmware actually sends.
	EnvJSON Environment = "json"
)

// Config is the full runtime configuration.
type Config struct {
	DatabaseURL string
	HTTPPort    int
	Env         Environment
	// JWTSecret signs operator API tokens.
	JWTSecret string
	// NATSURL enables presence event publishing when non-empty.
	NATSURL string

	// BatteryMaxMillivolts is the voltage reported by a full tag battery.
	// Deployed tag hardware disagrees on this value, so it is configuration.
	BatteryMaxMillivolts int
	// AutoRegisterTags creates tag rows on first sighting instead of
	// dropping packets from unknown MACs.
	AutoRegisterTags bool
	// CloseLogOnReentry closes any open permanence interval before opening
	// a new one when an entering crossing finds one already open. The
	// default keeps the historical behavior of recording a second open row.
	CloseLogOnReentry bool
}

// Load reads configuration from the environment. DATABASE_URL and
// JWT_SECRET_KEY are required.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET_KEY"),
		NATSURL:              os.Getenv("NATS_URL"),
		HTTPPort:             8080,
		Env:                  EnvDevelopment,
		BatteryMaxMillivolts: 3600,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL environment variable needed")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY environment variable needed")
	}

	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("HTTP_PORT is not a valid port: %q", v)
		}
		cfg.HTTPPort = port
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		switch Environment(v) {
		case EnvDevelopment, EnvProduction, EnvJSON:
			cfg.Env = Environment(v)
		default:
			return Config{}, fmt.Errorf("APP_ENV not recognized: %q", v)
		}
	}

	if v := os.Getenv("BATTERY_MAX_MILLIVOLTS"); v != "" {
		mv, err := strconv.Atoi(v)
		if err != nil || mv <= 0 {
			return Config{}, fmt.Errorf("BATTERY_MAX_MILLIVOLTS is not a positive integer: %q", v)
		}
		cfg.BatteryMaxMillivolts = mv
	}

	cfg.AutoRegisterTags = boolEnv("AUTO_REGISTER_TAGS")
	cfg.CloseLogOnReentry = boolEnv("CLOSE_LOG_ON_REENTRY")

	return cfg, nil
}

func boolEnv(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
