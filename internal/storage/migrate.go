package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp brings the state database up to the current schema. The
// kv_records table is the only schema ddtd has; migrations run in
// lexical order and every statement must be idempotent
// (CREATE TABLE IF NOT EXISTS), since there is no version table.
func MigrateUp(db *sql.DB) error {
	return runMigrations(db, ".up.sql")
}

// MigrateDown drops the schema again. Only tests use this.
func MigrateDown(db *sql.DB) error {
	return runMigrations(db, ".down.sql")
}

func runMigrations(db *sql.DB, suffix string) error {
	names, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("storage: glob migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("storage: read migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(stmt)); execErr != nil {
			return fmt.Errorf("storage: apply migration %s: %w", name, execErr)
		}
	}
	return nil
}
