package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The database values point at the Postgres
// instance backing the dashboard (Supabase in production); the JWT secret
// is shared with the identity provider that issues access tokens.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	DBSSLMode     string // Postgres sslmode (default "disable" for local dev)
	JWTSecret     string // secret used to verify bearer access tokens
	MigrationsDir string // directory holding SQL migrations (default "migrations")
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),                        // environment (dev/test/prod)
		Port:          must("APP_PORT"),                       // port to bind the HTTP server
		DBUser:        must("DB_USER"),                        // database user
		DBPass:        os.Getenv("DB_PASS"),                   // database password (empty allowed)
		DBHost:        must("DB_HOST"),                        // database host
		DBPort:        must("DB_PORT"),                        // database port
		DBName:        must("DB_NAME"),                        // database name
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),        // sslmode passed to lib/pq
		JWTSecret:     must("JWT_SECRET"),                     // secret used to verify JWTs
		MigrationsDir: getenv("MIGRATIONS_DIR", "migrations"), // schema migrations location
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
