// Package database opens the Postgres connection, runs embedded
// migrations, and exposes the ent client plus the raw *sql.DB for the
// paths ent does not cover (pg_notify, health, partial indexes).
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/triggerflow/triggerflow/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Config holds the connection and pool settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN renders the pgx keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Client is the ent client plus the shared *sql.DB it runs on.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the underlying connection for health checks, raw SQL, and
// pg_notify publishing.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open ent client. Tests use this to
// share the harness connection.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the database, applies pending migrations, and returns
// a ready client. The ent driver shares the pooled *sql.DB rather than
// opening its own connection.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := migrateUp(ctx, db, cfg.Database, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// migrateUp applies pending embedded migrations, then the partial
// indexes that plain schema DDL cannot express. Migration SQL is
// generated from ent/schema changes and committed under
// pkg/database/migrations, so the binary always carries the DDL it
// needs.
func migrateUp(ctx context.Context, db *stdsql.DB, dbName string, drv *entsql.Driver) error {
	if err := ensureEmbeddedMigrations(); err != nil {
		return err
	}

	pgDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("creating postgres migrate driver: %w", err)
	}
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("opening embedded migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, pgDriver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	// m.Close() would close the shared *sql.DB out from under the ent
	// client; only the source needs closing.
	if err := source.Close(); err != nil {
		return fmt.Errorf("closing migration source: %w", err)
	}

	return CreatePartialIndexes(ctx, drv)
}

// ensureEmbeddedMigrations fails fast when the binary was built without
// the migration files.
func ensureEmbeddedMigrations() error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.New("no embedded migrations in binary")
		}
		return fmt.Errorf("reading embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return nil
		}
	}
	return errors.New("no embedded migrations in binary")
}
