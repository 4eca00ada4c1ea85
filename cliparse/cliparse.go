// Copyright (c) 2026 Jamie Harlow.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jharlow/conveyor/models"
)

// DefaultSQLiteURL keeps foreign keys on so child rows follow their parent
// on delete.
const DefaultSQLiteURL = "file:conveyor.db?_pragma=foreign_keys(1)"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminToken   string
	ServiceName  string
}

// ParseFlags validates flags, falling back to environment variables.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("conveyor", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AdminToken, "admin-token", "", "Admin token gating DELETE routes (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = models.DBTypeSQLite
		}
	}
	if cfg.DatabaseType != models.DBTypeSQLite && cfg.DatabaseType != models.DBTypePostgres {
		return Config{}, fmt.Errorf("unknown database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == models.DBTypePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	// Optional; DELETE routes are open when unset.
	if cfg.AdminToken == "" {
		cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	}

	cfg.ServiceName = "conveyor"

	return cfg, nil
}
