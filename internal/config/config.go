// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-deed-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the payload encryption
	// key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the property registry backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the deed extraction service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionKeyBase64 is the base64-encoded 256-bit AES key used to seal
	// deed payloads. Must decode to exactly 32 bytes.
	// Env: APP_ENCRYPTION_KEY_BASE64
	EncryptionKeyBase64 string `env:"ENCRYPTION_KEY_BASE64"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Integrity checks are off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ReservationTTL is how long a generated identifier stays reserved
	// without being confirmed before the sweeper releases it.
	// Env: APP_RESERVATION_TTL
	ReservationTTL time.Duration `env:"RESERVATION_TTL"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the registry backends. DB takes
// precedence over Files when both are set.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the flat-file registry settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form:
	//   - "postgres://…" or "postgresql://…": PostgreSQL via pgx;
	//   - "sqlite://path", "file:…" or a path ending in ".db": SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the PostgreSQL pool. SQLite always uses one
	// connection.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// ConnMaxLifetime recycles pooled PostgreSQL connections.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// Files holds settings for the JSON flat-file registry.
type Files struct {
	// RegistryFile is the path of the JSON registry (e.g. "data/id.json").
	// Env: STORAGE_FILES_REGISTRY_FILE
	RegistryFile string `env:"REGISTRY_FILE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for the Gemini deed extractor. Document
// uploads are rejected when GeminiAPIKey is empty.
type Adapter struct {
	// GeminiAPIKey authenticates requests to the Gemini API.
	// Env: ADAPTER_GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the model used for extraction (e.g. "gemini-1.5-flash").
	// Env: ADAPTER_GEMINI_MODEL
	GeminiModel string `env:"GEMINI_MODEL"`

	// GeminiBaseURL is the API root.
	// Env: ADAPTER_GEMINI_BASE_URL
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	// RequestTimeout bounds a single extraction call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often expired reservations are released.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}
