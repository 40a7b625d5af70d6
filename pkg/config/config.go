// Package config resolves default data locations for the CLI and servers.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses ./.data.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ".data"
	}
	return filepath.Join(cwd, ".data")
}

// GetTemplatePath returns the folder used by the local template backend.
// It checks for RESPOND_TEMPLATE_PATH, otherwise uses $DATA_PATH/templates.
func GetTemplatePath() string {
	if path := os.Getenv("RESPOND_TEMPLATE_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "templates")
}

// GetDatabasePath returns the SQLite file used by the sqlite backend.
// It checks for RESPOND_DB_PATH, otherwise uses $DATA_PATH/plat-respond.db.
func GetDatabasePath() string {
	if path := os.Getenv("RESPOND_DB_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "plat-respond.db")
}
