package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

var (
	// ErrNotConfigured means DATABASE_URL was never set.
	ErrNotConfigured = errors.New("DATABASE_URL environment variable not set")
	// ErrUnavailable means the store could not be reached or authenticated to.
	ErrUnavailable = errors.New("database unavailable")
)

// Connector hands out a dedicated connection per operation. There is no
// pooling: every Acquire opens a fresh connection and the caller closes it.
type Connector struct {
	dsn string
}

func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn}
}

func (c *Connector) Acquire(ctx context.Context) (*sql.DB, error) {
	if c.dsn == "" {
		return nil, ErrNotConfigured
	}

	db, err := sql.Open("postgres", c.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// One physical connection, no reuse across requests
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return db, nil
}
