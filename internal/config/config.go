package config

import (
	"os"
	"strings"
)

// Driver names match what sql.Open expects.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const defaultSQLitePath = "./local_database.db"

type Config struct {
	Driver string
	DSN    string
}

// Load reads DATABASE_URL. When unset the service falls back to a local
// sqlite file, so the backend runs with zero setup.
func Load() *Config {
	return Parse(os.Getenv("DATABASE_URL"))
}

func Parse(raw string) *Config {
	raw = strings.TrimSpace(raw)

	// Hosting platforms still hand out the legacy postgres:// alias.
	if strings.HasPrefix(raw, "postgres://") {
		raw = "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}

	switch {
	case raw == "":
		return &Config{Driver: DriverSQLite, DSN: defaultSQLitePath}
	case strings.HasPrefix(raw, "postgresql://"):
		return &Config{Driver: DriverPostgres, DSN: raw}
	case strings.HasPrefix(raw, "mysql://"):
		// The rest is a native go-sql-driver DSN: user:pass@tcp(host:3306)/db
		return &Config{Driver: DriverMySQL, DSN: strings.TrimPrefix(raw, "mysql://")}
	case strings.HasPrefix(raw, "sqlite:///"):
		return &Config{Driver: DriverSQLite, DSN: strings.TrimPrefix(raw, "sqlite:///")}
	case strings.HasPrefix(raw, "sqlite://"):
		return &Config{Driver: DriverSQLite, DSN: strings.TrimPrefix(raw, "sqlite://")}
	default:
		// Bare paths are treated as sqlite files.
		return &Config{Driver: DriverSQLite, DSN: raw}
	}
}
