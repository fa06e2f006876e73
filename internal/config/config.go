// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers accepted in [Storage.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverFile     = "file"
	DriverMemory   = "memory"
)

// StructuredConfig is the top-level configuration of keeper-reveal. It is
// merged from environment variables, command-line flags, an optional JSON
// file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the reveal protocol settings and commissioner credentials.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the shared store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Broker configures change broadcasting between processes.
	Broker Broker `envPrefix:"BROKER_"`

	// Workers holds background loop settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the terminal client's connection to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds reveal protocol settings. Durations are configuration, not
// protocol constants.
type App struct {
	// SystemKey encodes every team password so the mass reveal can recover
	// it without asking anyone. It is not a secret from the operator.
	// Env: APP_SYSTEM_KEY
	SystemKey string `env:"SYSTEM_KEY"`

	// CommissionerPassword is the plain commissioner password. It is hashed
	// with bcrypt at startup and not kept afterwards.
	// Env: APP_COMMISSIONER_PASSWORD
	CommissionerPassword string `env:"COMMISSIONER_PASSWORD"`

	// CommissionerPasswordHash is a bcrypt hash used instead of
	// CommissionerPassword when set.
	// Env: APP_COMMISSIONER_PASSWORD_HASH
	CommissionerPasswordHash string `env:"COMMISSIONER_PASSWORD_HASH"`

	// TokenSignKey signs commissioner JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of commissioner JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a commissioner JWT stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// MaxKeepers and MinKeepers bound the number of keepers per team.
	// Env: APP_MAX_KEEPERS, APP_MIN_KEEPERS
	MaxKeepers int `env:"MAX_KEEPERS"`
	MinKeepers int `env:"MIN_KEEPERS"`

	// TeamBudget caps the summed keeper cost of a team.
	// Env: APP_TEAM_BUDGET
	TeamBudget int `env:"TEAM_BUDGET"`

	// MinPasswordLength is the shortest accepted team password.
	// Env: APP_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`

	// CountdownDuration is the length of the shared reveal countdown.
	// Env: APP_COUNTDOWN_DURATION
	CountdownDuration time.Duration `env:"COUNTDOWN_DURATION"`

	// CountdownStaleThreshold is the age after which an observed countdown
	// is treated as abandoned and cleared.
	// Env: APP_COUNTDOWN_STALE_THRESHOLD
	CountdownStaleThreshold time.Duration `env:"COUNTDOWN_STALE_THRESHOLD"`

	// AutoStartWindow is how long after the deadline a countdown still starts
	// on its own. Older deadlines are only shown as expired.
	// Env: APP_AUTO_START_WINDOW
	AutoStartWindow time.Duration `env:"AUTO_START_WINDOW"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage selects the shared store backend.
type Storage struct {
	// Driver is one of postgres, sqlite, file or memory.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the SQL connection settings for postgres and sqlite.
	DB DB `envPrefix:"DB_"`

	// File holds the snapshot path for the file driver.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is a PostgreSQL URL or a SQLite file name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Timeout bounds every single store round trip.
	// Env: STORAGE_DB_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// File holds the JSON snapshot settings of the file driver.
type File struct {
	// Path is the snapshot file; it is created on first write.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists CORS origins, comma separated in the env var.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Broker configures how store changes reach other processes.
type Broker struct {
	// NATSURL enables the NATS bus. Empty keeps broadcasts in-process.
	// Env: BROKER_NATS_URL
	NATSURL string `env:"NATS_URL"`

	// Subject is the NATS subject change events are published on.
	// Env: BROKER_SUBJECT
	Subject string `env:"SUBJECT"`
}

// Workers holds background loop settings.
type Workers struct {
	// TickInterval is the deadline timer and countdown tick.
	// Env: WORKERS_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`
}

// Adapter holds the terminal client's view of the server.
type Adapter struct {
	// HTTPAddress is the server base address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile receives the client's log; stdout belongs to the UI.
	// Env: ADAPTER_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
//
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetClientConfig loads the same sources as [GetStructuredConfig] but only
// validates what the terminal client needs.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validateClient(); err != nil {
		return nil, err
	}

	return cfg, nil
}
