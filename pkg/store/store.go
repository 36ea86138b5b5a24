package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harun/toolshed/pkg/inventory"
	gonanoid "github.com/matoous/go-nanoid/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when no tool has the requested ID
var ErrNotFound = errors.New("tool not found")

// Config holds store configuration
type Config struct {
	Path   string
	Logger zerolog.Logger
}

// Entry is a stored tool together with its store metadata
type Entry struct {
	ID        string
	CreatedAt time.Time
	Tool      *inventory.Tool
}

// Store is a SQLite-backed tool store
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) the database at cfg.Path
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("database path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{
		db:     db,
		logger: cfg.Logger.With().Str("component", "tool-store").Logger(),
	}

	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	s.logger.Debug().Str("path", cfg.Path).Msg("Tool store opened")
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS tools (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS reservations (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			tool_id TEXT NOT NULL,
			borrower TEXT NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (tool_id) REFERENCES tools(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_reservations_tool ON reservations(tool_id);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Add stores a tool at the end of the sequence and returns its ID
func (s *Store) Add(ctx context.Context, tool *inventory.Tool) (string, error) {
	if tool == nil {
		return "", errors.New("tool is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := insertTool(ctx, tx, tool, time.Now())
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit tool: %w", err)
	}

	s.logger.Info().
		Str("toolId", id).
		Str("name", tool.Name).
		Int("quantity", tool.Quantity).
		Msg("Tool added")

	return id, nil
}

func insertTool(ctx context.Context, ex execer, tool *inventory.Tool, now time.Time) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate tool ID: %w", err)
	}

	if _, err := ex.ExecContext(ctx,
		"INSERT INTO tools (id, name, quantity, created_at) VALUES (?, ?, ?, ?)",
		id, tool.Name, tool.Quantity, now.Unix(),
	); err != nil {
		return "", fmt.Errorf("failed to insert tool: %w", err)
	}

	for _, r := range tool.Reservations {
		rid := r.ID
		if rid == "" {
			rid = uuid.New().String()
		}
		if _, err := ex.ExecContext(ctx,
			"INSERT INTO reservations (id, tool_id, borrower, created_at) VALUES (?, ?, ?, ?)",
			rid, id, r.Borrower, r.CreatedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return "", fmt.Errorf("failed to insert reservation: %w", err)
		}
	}

	return id, nil
}

// Get returns the tool stored under id
func (s *Store) Get(ctx context.Context, id string) (*inventory.Tool, error) {
	var (
		name     string
		quantity int
	)
	err := s.db.QueryRowContext(ctx, "SELECT name, quantity FROM tools WHERE id = ?", id).Scan(&name, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tool: %w", err)
	}

	reservations, err := s.reservations(ctx, "WHERE tool_id = ?", id)
	if err != nil {
		return nil, err
	}

	return inventory.NewTool(name, quantity, reservations[id]), nil
}

// List returns all stored tools in insertion order
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, quantity, created_at FROM tools ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query tools: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			name      string
			quantity  int
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &name, &quantity, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		e.Tool = inventory.NewTool(name, quantity, nil)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tools: %w", err)
	}

	reservations, err := s.reservations(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if r, ok := reservations[e.ID]; ok {
			e.Tool.Reservations = r
		}
	}

	return entries, nil
}

// Tools returns the stored tools in insertion order
func (s *Store) Tools(ctx context.Context) ([]*inventory.Tool, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	tools := make([]*inventory.Tool, len(entries))
	for i, e := range entries {
		tools[i] = e.Tool
	}
	return tools, nil
}

// Library wraps the stored tools in a ToolLibrary
func (s *Store) Library(ctx context.Context) (*inventory.ToolLibrary, error) {
	tools, err := s.Tools(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.NewToolLibrary(tools), nil
}

// reservations loads reservation rows grouped by tool ID
func (s *Store) reservations(ctx context.Context, where string, args ...any) (map[string][]inventory.Reservation, error) {
	query := "SELECT id, tool_id, borrower, created_at FROM reservations " + where + " ORDER BY seq"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]inventory.Reservation)
	for rows.Next() {
		var (
			r         inventory.Reservation
			toolID    string
			createdAt string
		)
		if err := rows.Scan(&r.ID, &toolID, &r.Borrower, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid reservation timestamp %q: %w", createdAt, err)
		}
		out[toolID] = append(out[toolID], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return out, nil
}

// Remove deletes a tool and its reservations
func (s *Store) Remove(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reservations WHERE tool_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete reservations: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM tools WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	s.logger.Info().Str("toolId", id).Msg("Tool removed")
	return nil
}

// Replace swaps the stored sequence for tools and returns the new IDs in order.
// Either every tool is stored or none is.
func (s *Store) Replace(ctx context.Context, tools []*inventory.Tool) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reservations"); err != nil {
		return nil, fmt.Errorf("failed to clear reservations: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tools"); err != nil {
		return nil, fmt.Errorf("failed to clear tools: %w", err)
	}

	now := time.Now()
	ids := make([]string, 0, len(tools))
	for i, tool := range tools {
		if tool == nil {
			return nil, fmt.Errorf("tool %d is nil", i)
		}
		id, err := insertTool(ctx, tx, tool, now)
		if err != nil {
			return nil, fmt.Errorf("tool %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit replace: %w", err)
	}

	s.logger.Info().Int("tools", len(ids)).Msg("Tool sequence replaced")
	return ids, nil
}
