package database

import (
	"fmt"
	"strings"

	"financetracker/backend/config"
)

// ConnectionString builds a PostgreSQL connection string. DATABASE_URL, when
// configured, is used as is.
func ConnectionString(cfg config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode,
	)
}

// MaskPassword masks the password in a connection string for logging
func MaskPassword(connStr string) string {
	schemeEnd := strings.Index(connStr, "://")
	if schemeEnd < 0 {
		return connStr
	}
	rest := connStr[schemeEnd+3:]

	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return connStr
	}
	userInfo := rest[:at]

	colon := strings.Index(userInfo, ":")
	if colon < 0 {
		return connStr
	}

	masked := userInfo[:colon+1] + strings.Repeat("*", len(userInfo)-colon-1)
	return connStr[:schemeEnd+3] + masked + rest[at:]
}
