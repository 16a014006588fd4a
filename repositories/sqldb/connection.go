package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/olegamobile/lets-play/config"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// DB wraps the sql.DB connection pool together with the SQL dialect in use
type DB struct {
	*sql.DB
	driver string
	logger *zap.Logger
}

// NewDB opens a connection pool for the configured driver and verifies it
func NewDB(cfg config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	driverName, err := sqlDriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		if err := ensureSQLiteDir(cfg.SQLitePath); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	if cfg.Driver == config.DriverSQLite {
		// a single writer connection; also keeps a ":memory:" database alive
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	logger.Info("database connection established",
		zap.String("driver", cfg.Driver),
		zap.String("connection", cfg.LogString()))

	return &DB{
		DB:     db,
		driver: cfg.Driver,
		logger: logger,
	}, nil
}

// ensureSQLiteDir creates the parent directory of a file backed database
func ensureSQLiteDir(path string) error {
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create sqlite directory: %w", err)
	}
	return nil
}

// NewDBFromConn wraps an already opened pool (used by tests with sqlmock)
func NewDBFromConn(db *sql.DB, driver string, logger *zap.Logger) *DB {
	return &DB{
		DB:     db,
		driver: driver,
		logger: logger,
	}
}

func sqlDriverName(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// Driver returns the configured driver name
func (db *DB) Driver() string {
	return db.driver
}

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// Rebind rewrites postgres style $N placeholders for the active dialect.
// Queries are written once in postgres form; SQLite receives ?N.
func (db *DB) Rebind(query string) string {
	if db.driver != config.DriverSQLite {
		return query
	}
	return placeholderPattern.ReplaceAllString(query, "?$1")
}

// Close closes the database connection pool
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	// Check if we can query
	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database query check failed: %w", err)
	}

	return nil
}

// schemaStatements is kept to types both postgres and sqlite accept
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_user_id ON products(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at)`,
}

// InitSchema initializes the database schema
func (db *DB) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	db.logger.Info("database schema initialized successfully", zap.String("driver", db.driver))
	return nil
}
