package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"guesthouse/config"
)

const (
	// SQLite serializes writers; a single open connection keeps the
	// submission transaction from contending with itself.
	maxOpenConnections = 1
	maxIdleConnections = 1
)

// Connection is the process-wide storage handle, opened once at startup and
// held for the process lifetime.
type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: open(config),
	}
}

func (c *Connection) Close() error {
	if err := c.DB.Close(); err != nil {
		return fmt.Errorf("closing sqlite database: %w", err)
	}

	return nil
}

func open(config *config.Config) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"file:%s?_busy_timeout=%d&_foreign_keys=on",
		config.DB.SQLite.Path,
		config.DB.SQLite.BusyTimeoutMS,
	)

	db, err := sqlx.Connect("sqlite3", descriptor)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("path", config.DB.SQLite.Path).
			Msg("Failed to open database")
	}

	db.SetMaxOpenConns(maxOpenConnections)
	db.SetMaxIdleConns(maxIdleConnections)

	log.Info().
		Str("path", config.DB.SQLite.Path).
		Msg("Connected to database")

	return db
}
