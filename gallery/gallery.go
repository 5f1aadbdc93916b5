// Package gallery provides SQLite-backed persistence for a library of
// saved L-system models and the history of renders produced from them.
package gallery

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sameer/lsys/parser"
	"github.com/sameer/lsys/svg"
)

// ErrNotFound is returned when a named grammar does not exist.
var ErrNotFound = errors.New("grammar not found")

// Store handles SQLite database operations for the grammar library.
type Store struct {
	db *sql.DB
}

// Grammar is a saved model record.
type Grammar struct {
	ID        string
	Name      string
	Model     *parser.Model
	CreatedAt time.Time
}

// Render is one recorded render of a saved grammar.
type Render struct {
	ID        string
	GrammarID string
	Width     float64
	Height    float64
	Unit      string
	Size      int64
	CreatedAt time.Time
}

// New opens (or creates) a store at the given database path. Pass
// ":memory:" for an ephemeral store.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS grammars (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		model TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS renders (
		id TEXT PRIMARY KEY,
		grammar_id TEXT NOT NULL,
		width REAL NOT NULL,
		height REAL NOT NULL,
		unit TEXT NOT NULL DEFAULT '',
		size INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (grammar_id) REFERENCES grammars(id)
	);

	CREATE INDEX IF NOT EXISTS idx_renders_grammar ON renders(grammar_id);
	CREATE INDEX IF NOT EXISTS idx_grammars_name ON grammars(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGrammar stores a model under its name and returns the record ID.
// Saving an existing name replaces the stored model and keeps its ID.
func (s *Store) SaveGrammar(m *parser.Model) (string, error) {
	if m.Name == "" {
		return "", fmt.Errorf("model must have a name to be saved")
	}
	doc, err := parser.ToJSON(m)
	if err != nil {
		return "", fmt.Errorf("encode model: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO grammars (id, name, model) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET model = excluded.model`,
		id, m.Name, string(doc))
	if err != nil {
		return "", fmt.Errorf("save grammar: %w", err)
	}

	// On replacement the original row keeps its ID; read it back.
	var storedID string
	if err := s.db.QueryRow(`SELECT id FROM grammars WHERE name = ?`, m.Name).Scan(&storedID); err != nil {
		return "", fmt.Errorf("save grammar: %w", err)
	}
	return storedID, nil
}

// GetGrammar retrieves a saved grammar by name.
func (s *Store) GetGrammar(name string) (*Grammar, error) {
	row := s.db.QueryRow(`SELECT id, name, model, created_at FROM grammars WHERE name = ?`, name)

	var g Grammar
	var doc string
	if err := row.Scan(&g.ID, &g.Name, &doc, &g.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("get grammar: %w", err)
	}

	model, err := parser.FromJSON([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("stored model is invalid: %w", err)
	}
	g.Model = model
	return &g, nil
}

// ListGrammars returns all saved grammars ordered by name.
func (s *Store) ListGrammars() ([]*Grammar, error) {
	rows, err := s.db.Query(`SELECT id, name, model, created_at FROM grammars ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list grammars: %w", err)
	}
	defer rows.Close()

	var grammars []*Grammar
	for rows.Next() {
		var g Grammar
		var doc string
		if err := rows.Scan(&g.ID, &g.Name, &doc, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("list grammars: %w", err)
		}
		model, err := parser.FromJSON([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("stored model %s is invalid: %w", g.Name, err)
		}
		g.Model = model
		grammars = append(grammars, &g)
	}
	return grammars, rows.Err()
}

// DeleteGrammar removes a saved grammar and its render history.
func (s *Store) DeleteGrammar(name string) error {
	g, err := s.GetGrammar(name)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM renders WHERE grammar_id = ?`, g.ID); err != nil {
		return fmt.Errorf("delete renders: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM grammars WHERE id = ?`, g.ID); err != nil {
		return fmt.Errorf("delete grammar: %w", err)
	}
	return nil
}

// RecordRender logs one completed render of a saved grammar and returns
// the record ID. size is the document length in bytes.
func (s *Store) RecordRender(grammarID string, opts svg.Options, size int64) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`
		INSERT INTO renders (id, grammar_id, width, height, unit, size) VALUES (?, ?, ?, ?, ?, ?)`,
		id, grammarID, opts.Width, opts.Height, opts.Unit.String(), size)
	if err != nil {
		return "", fmt.Errorf("record render: %w", err)
	}
	return id, nil
}

// ListRenders returns the render history for a grammar, newest first.
func (s *Store) ListRenders(grammarID string) ([]*Render, error) {
	rows, err := s.db.Query(`
		SELECT id, grammar_id, width, height, unit, size, created_at
		FROM renders WHERE grammar_id = ?
		ORDER BY created_at DESC, id`, grammarID)
	if err != nil {
		return nil, fmt.Errorf("list renders: %w", err)
	}
	defer rows.Close()

	var renders []*Render
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.GrammarID, &r.Width, &r.Height, &r.Unit, &r.Size, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("list renders: %w", err)
		}
		renders = append(renders, &r)
	}
	return renders, rows.Err()
}
