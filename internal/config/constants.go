package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the SQLite database
	DefaultDatabasePath = "./english-hub.db"

	// DefaultBackupDir is where JSON snapshots are written
	DefaultBackupDir = "./backups"

	// DefaultAllowedOrigin is the dev server of the web client
	DefaultAllowedOrigin = "http://localhost:5173"
)
