// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"

	"navhub/internal/config"
	"navhub/internal/db/migrations"
	"navhub/internal/logging"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/pressly/goose/v3"
)

// Repository provides access to the sqlite store holding sites, categories
// and settings.
type Repository struct {
	DB      *sql.DB
	Builder sq.StatementBuilderType
}

// NewRepository opens (or creates) the sqlite database at the configured path.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Database.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database.Path, err)
	}

	return &Repository{
		DB:      db,
		Builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Close closes the underlying database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// Migrate runs a goose migration command ("up", "down" or "status") against
// the embedded migration files. Schema changes happen here, under deployment
// control, never inside request handlers.
func (s *Repository) Migrate(command string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// The migration directory is embedded, so "." addresses its root.
	dir := "."

	logging.Log.Infof("Running migration command: %s", command)

	var gooseErr error
	switch command {
	case "up":
		gooseErr = goose.Up(s.DB, dir)
	case "down":
		gooseErr = goose.Down(s.DB, dir)
	case "status":
		gooseErr = goose.Status(s.DB, dir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}

	if gooseErr != nil {
		return fmt.Errorf("migration failed: %w", gooseErr)
	}
	return nil
}
