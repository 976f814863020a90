// Package config loads environment-driven configuration for the bookit API.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config captures environment-driven configuration values.
type Config struct {
	HTTPPort  int
	SQLiteDSN string
}

// Load parses configuration from the current process environment, applying
// defaults for optional fields and reporting invalid values.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:  8080,
		SQLiteDSN: "file:bookit.db?_foreign_keys=on",
	}

	var invalid []string

	if portValue := strings.TrimSpace(os.Getenv("BOOKIT_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "BOOKIT_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("BOOKIT_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
