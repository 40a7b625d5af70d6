package config

import (
	"time"

	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Store backends.
const (
	BackendDrive  = "drive"
	BackendLocal  = "local"
	BackendSQLite = "sqlite"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI    UIConfig    `json:",optional"`
	API   APIConfig   `json:",optional"`
	Store StoreConfig `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// StoreConfig selects and configures the template store backend.
type StoreConfig struct {
	Backend  string        `json:",default=local,options=drive|local|sqlite"`
	CacheTTL time.Duration `json:",default=30s"`

	Drive  DriveConfig  `json:",optional"`
	Local  LocalConfig  `json:",optional"`
	SQLite SQLiteConfig `json:",optional"`
}

// DriveConfig holds Google Drive folder settings.
type DriveConfig struct {
	FolderID        string  `json:",optional,env=RESPOND_DRIVE_FOLDER_ID"`
	CredentialsFile string  `json:",optional,env=GOOGLE_APPLICATION_CREDENTIALS"`
	RateLimit       float64 `json:",default=10"`
	Burst           int     `json:",default=5"`
}

// LocalConfig holds local directory settings.
type LocalConfig struct {
	Dir string `json:",default=./.data/templates"`
}

// SQLiteConfig holds database settings.
type SQLiteConfig struct {
	Path string `json:",default=./.data/plat-respond.db"`
}
