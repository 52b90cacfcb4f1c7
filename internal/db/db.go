package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var DB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS periods (
    id TEXT PRIMARY KEY,
    start_time INTEGER NOT NULL,
    end_time INTEGER
);
`

// GetDataDir resolves the tracc data directory. $XDG_DATA_HOME takes
// precedence; otherwise ~/.local/share is used.
func GetDataDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "tracc"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", "tracc"), nil
}

// Init opens the database, creating the data directory and schema when they
// do not exist yet. A missing database file is an empty period sequence.
func Init() error {
	dataDir, err := GetDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, "db.sqlite")
	DB, err = sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	_, err = DB.Exec(schema)
	return err
}

func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
