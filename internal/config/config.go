// Package config handles loading of application settings from
// environment variables (populated from the .env file in main).
package config

import "os"

// Config holds all configuration for the application.
type Config struct {
	DataDir string
	LogFile string
}

// LoadConfig loads application settings from environment variables.
// DBCHECK_DATA_DIR defaults to "data"; DBCHECK_LOG_FILE is optional
// and enables file logging when set.
func LoadConfig() (*Config, error) {
	dataDir := os.Getenv("DBCHECK_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return &Config{
		DataDir: dataDir,
		LogFile: os.Getenv("DBCHECK_LOG_FILE"),
	}, nil
}
