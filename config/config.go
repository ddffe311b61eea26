package config

import (
	"os"
	"path/filepath"
)

// Remote API Config
const CHRONOS_API_BASE = "http://192.168.100.30:8080"

// Redis Config
const REDIS_DB_ADDRESS = "localhost:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Local HTTP server
const SERVER_LISTEN_ADDRESS = ":8081"

// Refresher config
const REFRESH_CRON_SPEC = "@hourly"

// Agenda config
const DEFAULT_AGENDA_HORIZON_DAYS = 7
const MAX_AGENDA_HORIZON_DAYS = 31

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const EVENTS_RESOURCE = "events.json"
const SCHEDULES_RESOURCE = "schedules.json"
const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"
const CITY_RESOURCE = "city.json"

// APIBase returns the remote API base URL, honoring the
// CHRONOS_API_BASE environment override.
func APIBase() string {
	if base := os.Getenv("CHRONOS_API_BASE"); base != "" {
		return base
	}
	return CHRONOS_API_BASE
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

// SessionPath returns where the per-user session file lives, honoring
// the CHRONOS_SESSION environment override.
func SessionPath() string {
	if path := os.Getenv("CHRONOS_SESSION"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(BaseDir(), "session.yaml")
	}
	return filepath.Join(home, ".chronos", "session.yaml")
}
