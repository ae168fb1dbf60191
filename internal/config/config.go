package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// UpdatePolicy decides, per entity, whether PUT on a missing id creates
// the document (upsert) or answers 404. The upstream data set is served
// both ways depending on the entity, so this is configuration rather
// than hard-coded behavior.
type UpdatePolicy struct {
	Airlines  bool
	Airports  bool
	Hotels    bool
	Routes    bool
	Users     bool
	Posts     bool
	Documents bool
}

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Addr string

	MongoURI string
	MongoDB  string

	LogFile  string
	LogLevel string

	UpdateCreatesIfMissing UpdatePolicy
}

// Load reads .env (if present) and assembles the configuration with
// defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return &Config{
		Addr: getEnv("ADDR", "0.0.0.0:8080"),

		MongoURI: getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGODB_DB", "travel"),

		LogFile:  getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		UpdateCreatesIfMissing: UpdatePolicy{
			Airlines:  getEnvBool("UPDATE_CREATES_AIRLINES", true),
			Airports:  getEnvBool("UPDATE_CREATES_AIRPORTS", true),
			Hotels:    getEnvBool("UPDATE_CREATES_HOTELS", true),
			Routes:    getEnvBool("UPDATE_CREATES_ROUTES", false),
			Users:     getEnvBool("UPDATE_CREATES_USERS", false),
			Posts:     getEnvBool("UPDATE_CREATES_POSTS", false),
			Documents: getEnvBool("UPDATE_CREATES_DOCUMENTS", false),
		},
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
