package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store keeps an audit trail of every generated or updated configuration:
// which workspace, which template, and the reasoning text handed back to
// the caller.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

type Record struct {
	ID        string    `json:"id"`
	Workspace string    `json:"workspace"`
	Action    string    `json:"action"`
	Template  string    `json:"template,omitempty"`
	Reasoning string    `json:"reasoning"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ActionGenerate = "generate"
	ActionUpdate   = "update"
)

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		workspace TEXT NOT NULL,
		action TEXT NOT NULL,
		template TEXT,
		reasoning TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_generations_workspace ON generations(workspace)
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Append(workspace, action, template, reasoning string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &Record{
		ID:        uuid.NewString(),
		Workspace: workspace,
		Action:    action,
		Template:  template,
		Reasoning: reasoning,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO generations (id, workspace, action, template, reasoning, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		record.ID, record.Workspace, record.Action, record.Template, record.Reasoning, record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append history record: %w", err)
	}

	return record, nil
}

// List returns the most recent records, newest first. An empty workspace
// returns records for every workspace.
func (s *Store) List(workspace string, limit int) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}

	query := "SELECT id, workspace, action, template, reasoning, created_at FROM generations"
	var args []interface{}

	if workspace != "" {
		query += " WHERE workspace = ?"
		args = append(args, workspace)
	}

	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record

	for rows.Next() {
		record := &Record{}
		var template sql.NullString

		err := rows.Scan(
			&record.ID, &record.Workspace, &record.Action, &template,
			&record.Reasoning, &record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if template.Valid {
			record.Template = template.String
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
