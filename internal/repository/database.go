package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"trailpack/internal/config"
)

// ExtHandle is satisfied by both *sqlx.DB and *sqlx.Tx, so every repository
// can run inside a caller-owned transaction.
type ExtHandle interface {
	sqlx.Ext
}

type Database struct {
	db *sqlx.DB
}

// New opens the configured backend. The repositories are written against
// sqlx with driver-neutral SQL, so PostgreSQL and SQLite are interchangeable.
func New(cfg *config.Config) (*Database, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err = sqlx.Connect("sqlite3", sqliteDSN(cfg.Database.Path))
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db.SetMaxOpenConns(1)
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
		)

		driverName, rerr := otelsql.Register("postgres",
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithSpanOptions(otelsql.SpanOptions{
				DisableErrSkip: true,
			}),
		)
		if rerr != nil {
			return nil, fmt.Errorf("register otelsql driver: %w", rerr)
		}

		db, err = sqlx.Connect(driverName, dsn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}

		db.SetMaxIdleConns(2)
		db.SetMaxOpenConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db}, nil
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_timefmt=sqlite&_pragma=foreign_keys(1)"
	}
	return path + "?_timefmt=sqlite&_pragma=foreign_keys(1)"
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) DB() *sqlx.DB {
	return d.db
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
