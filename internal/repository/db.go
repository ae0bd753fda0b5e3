package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// sqlitePragmas are applied to every pooled SQLite connection.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
	"_pragma=journal_mode(WAL)",
	"_txlock=immediate",
	"_time_format=sqlite",
}

// NewDB opens a connection pool for driver and verifies it with a ping.
func NewDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch driver {
	case DriverMySQL:
		db, err = openMySQL(dsn)
	case DriverSQLite:
		db, err = openSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s: %w", driver, err)
	}

	return db, nil
}

func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	db, err := sql.Open(DriverMySQL, cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func openSQLite(dsn string) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	db, err := sql.Open(DriverSQLite, dsn+sep+strings.Join(sqlitePragmas, "&"))
	if err != nil {
		return nil, err
	}

	// SQLite has a single writer; a small pool keeps lock waits short.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	return db, nil
}

// Connector lazily opens the process-wide connection pool exactly once.
// A failed first attempt is remembered; later calls return the same error
// instead of reconnecting.
type Connector struct {
	driver string
	dsn    string

	once sync.Once
	db   *sql.DB
	err  error
}

// NewConnector creates a Connector for driver and dsn.
func NewConnector(driver, dsn string) *Connector {
	return &Connector{driver: driver, dsn: dsn}
}

// DB returns the shared pool, opening it on first use.
func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.once.Do(func() {
		c.db, c.err = NewDB(ctx, c.driver, c.dsn)
	})
	return c.db, c.err
}

// Driver returns the configured driver name.
func (c *Connector) Driver() string {
	return c.driver
}
