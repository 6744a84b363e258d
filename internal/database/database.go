package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/english-hub/internal/entities"
)

// Supported values for Options.Driver.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// MemoryPath opens an ephemeral SQLite store that lives as long as the connection.
const MemoryPath = ":memory:"

type Options struct {
	Driver   string
	Path     string // SQLite file path or MemoryPath
	DSN      string // MySQL DSN
	LogLevel logger.LogLevel
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to the configured store and creates the
// words, sentences and dialogues tables if they are absent.
func NewDatabase(opts Options) (*Database, error) {
	dialector, err := openDialector(opts)
	if err != nil {
		return nil, err
	}

	level := opts.LogLevel
	if level == 0 {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Each new connection to :memory: is a fresh empty database.
	if opts.Path == MemoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Database initialized successfully (%s)", describe(opts))

	return &Database{DB: db}, nil
}

// Migrate creates missing tables and indexes. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entities.Word{},
		&entities.Sentence{},
		&entities.Dialogue{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func openDialector(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case "", DriverSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("database path is required for sqlite")
		}
		return sqlite.Open(opts.Path), nil
	case DriverMySQL:
		if opts.DSN == "" {
			return nil, fmt.Errorf("database dsn is required for mysql")
		}
		return mysql.Open(opts.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func describe(opts Options) string {
	if opts.Driver == DriverMySQL {
		return "mysql"
	}
	return "sqlite at " + opts.Path
}

// Ping checks that the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
