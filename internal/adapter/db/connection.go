package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"tasktracker/internal/config"
)

// Store owns the database handle shared by every repository. It is built once
// at start-up and closed on shutdown.
type Store struct {
	DB     *sqlx.DB
	Driver string

	txOptions *sql.TxOptions
	now       func() time.Time
}

func ConnectDB(conf *config.Config) (*Store, error) {
	switch conf.DbDriver {
	case config.DriverSQLite:
		return OpenSQLite(conf.SqlitePath)
	default:
		return OpenMySQL(conf)
	}
}

func OpenMySQL(conf *config.Config) (*Store, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(10 * time.Second)

	return NewStore(db, config.DriverMySQL), nil
}

func OpenSQLite(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serialises writers; SQLite has no row locks to offer.
	db.SetMaxOpenConns(1)

	return NewStore(db, config.DriverSQLite), nil
}

func NewStore(db *sqlx.DB, driver string) *Store {
	store := &Store{
		DB:     db,
		Driver: driver,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Second)
		},
	}
	if driver == config.DriverMySQL {
		store.txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	return store
}

func (s *Store) Close() error {
	return s.DB.Close()
}
