// Copyright (c) 2026 WebBooks. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. In development a local
'.env' file is merged into the process environment first (via 'joho/godotenv').

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, paging) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the WebBooks API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath overrides the embedded SQL migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value store (Redis) backing visitor sessions
	RedisURL   string        `env:"REDIS_URL,required,notEmpty"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"336h"`

	// Cryptographic keys for identity signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required,notEmpty"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required,notEmpty"`

	// Catalog paging
	Paging Paging

	// Loan status codes
	Statuses Statuses

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// Paging holds the page sizes of the paginated listings.
type Paging struct {
	BookPageSize     int `env:"BOOK_PAGE_SIZE"     envDefault:"3"`
	AuthorPageSize   int `env:"AUTHOR_PAGE_SIZE"   envDefault:"4"`
	BorrowedPageSize int `env:"BORROWED_PAGE_SIZE" envDefault:"10"`
}

// Statuses maps the semantic instance states onto status row ids.
//
// Both default to 2: the index counts status 2 as available and the
// borrowed-books listing treats status 2 as on loan.
type Statuses struct {
	AvailableID int `env:"AVAILABLE_STATUS_ID" envDefault:"2"`
	OnLoanID    int `env:"ON_LOAN_STATUS_ID"   envDefault:"2"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// Fails when a 'required' field is missing or a 'notEmpty' one is blank.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings that parse but make no sense.
func (c *Config) validate() error {
	if c.Paging.BookPageSize < 1 || c.Paging.AuthorPageSize < 1 || c.Paging.BorrowedPageSize < 1 {
		return errors.New("config: page sizes must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("config: SESSION_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the comma separated EXTRA_ORIGINS as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
