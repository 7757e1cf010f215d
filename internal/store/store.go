package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed persistence layer. It holds generated
// questions, learner responses, feedback and the LLM request log.
type Store struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the database at path and runs
// the schema migration.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Single writer; WAL keeps readers unblocked during inserts.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DefaultDBPath resolves the database location: QUIZFORGE_DB if set,
// else XDG_DATA_HOME, else ~/.local/share/quizforge/quizforge.db.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZFORGE_DB"); p != "" {
		return p, nil
	}
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "quizforge", "quizforge.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "quizforge", "quizforge.db"), nil
}

func (s *Store) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			source_name TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			question TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_option INTEGER NOT NULL,
			explanation TEXT NOT NULL,
			quality_score REAL NOT NULL,
			issues TEXT,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question_id TEXT NOT NULL,
			selected_option INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			answered_at DATETIME NOT NULL,
			FOREIGN KEY (question_id) REFERENCES questions(id)
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			question_id TEXT,
			difficulty_rating INTEGER,
			relevance_rating INTEGER,
			quality_rating INTEGER,
			comment TEXT,
			created_at DATETIME NOT NULL,
			FOREIGN KEY (question_id) REFERENCES questions(id)
		)`,
		`CREATE TABLE IF NOT EXISTS depth_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			level REAL NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			latency_ms INTEGER NOT NULL,
			success INTEGER NOT NULL,
			error_message TEXT,
			request_body TEXT,
			response_body TEXT,
			created_at DATETIME NOT NULL
		)`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
