package config // package config loads application configuration from environment variables

import (
	"log"           // log is used to report configuration errors and halt execution
	"os"            // os provides access to environment variables
	"strconv"       // strconv converts strings to other types
	"time"          // time provides the duration type for intervals
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs, a duration for the autosave cadence.
type Config struct {
	Env              string        // application environment (e.g. "dev", "prod")
	Port             string        // HTTP port to listen on
	JWTSecret        string        // secret used to sign JWTs
	AccessTTLMin     int           // access token time-to-live in minutes
	RefreshTTLDays   int           // refresh token time-to-live in days
	BcryptCost       int           // bcrypt cost for password hashing
	DataFile         string        // path of the JSON snapshot file
	AutosaveInterval time.Duration // how often the snapshot is written
	SeedDemo         bool          // seed demo rooms/residents when the store is empty
	AuditEvents      bool          // publish audit entries to the message broker
	AuditArchive     bool          // run the consumer that archives audit events into MySQL
	ArchiveDBUser    string        // archive database username
	ArchiveDBPass    string        // archive database password (optional)
	ArchiveDBHost    string        // archive database host address
	ArchiveDBPort    string        // archive database port number
	ArchiveDBName    string        // archive database name
}

// Load reads configuration values from environment variables and returns a
// Config.  Only the JWT secret is strictly required; everything else falls
// back to a sensible development default.  The archive database variables
// are read only when AUDIT_ARCHIVE_ENABLED is on.
func Load() Config {
	cfg := Config{
		Env:              getenv("APP_ENV", "dev"),                       // environment (dev/test/prod)
		Port:             getenv("APP_PORT", "8080"),                     // port to bind the HTTP server
		JWTSecret:        must("JWT_SECRET"),                             // secret used for signing JWTs
		AccessTTLMin:     envInt("ACCESS_TOKEN_TTL_MIN", 15),             // TTL for access tokens in minutes
		RefreshTTLDays:   envInt("REFRESH_TOKEN_TTL_DAYS", 7),            // TTL for refresh tokens in days
		BcryptCost:       envInt("BCRYPT_COST", 10),                      // bcrypt cost factor
		DataFile:         getenv("DATA_FILE", "data/hostel.json"),        // snapshot file location
		AutosaveInterval: envDur("AUTOSAVE_INTERVAL", 4*time.Second),     // autosave cadence
		SeedDemo:         envBool("SEED_DEMO", true),                     // seed defaults on first boot
		AuditEvents:      envBool("AUDIT_EVENTS_ENABLED", false),         // broker fan-out of audit entries
		AuditArchive:     envBool("AUDIT_ARCHIVE_ENABLED", false),        // MySQL archive consumer
	}
	if cfg.AuditArchive {
		cfg.ArchiveDBUser = must("DB_USER") // archive database user
		cfg.ArchiveDBPass = os.Getenv("DB_PASS") // archive database password (empty allowed)
		cfg.ArchiveDBHost = must("DB_HOST") // archive database host
		cfg.ArchiveDBPort = must("DB_PORT") // archive database port
		cfg.ArchiveDBName = must("DB_NAME") // archive database name
	}
	return cfg
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

// getenv returns the value of an environment variable or a default when it
// is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" { return d }
	switch v {
	case "1","true","TRUE","True","yes","YES","on","ON": return true
	case "0","false","FALSE","False","no","NO","off","OFF": return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k); if v == "" { return d }
	if n, err := strconv.Atoi(v); err == nil { return n }
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k); if v == "" { return d }
	if dur, err := time.ParseDuration(v); err == nil { return dur }
	return d
}
