package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/GustavoCaso/zerobudget/internal/config"
	"github.com/GustavoCaso/zerobudget/internal/storage"
)

type sqliteStorage struct {
	db *sql.DB
}

func New(dbConfig config.DBConfig) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dbConfig.Source)
	if err != nil {
		return nil, err
	}

	// One process, one connection. This also keeps ":memory:" databases alive
	// across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if dbConfig.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)
	}

	ctx := context.Background()

	if dbConfig.JournalMode != "" {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA journal_mode = %s", dbConfig.JournalMode))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set journal_mode: %w", err)
		}
	}

	if dbConfig.Synchronous != "" {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA synchronous = %s", dbConfig.Synchronous))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set synchronous: %w", err)
		}
	}

	if dbConfig.BusyTimeout > 0 {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", dbConfig.BusyTimeout))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
		}
	}

	return &sqliteStorage{db: db}, nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
