// Package contacts persists display names for participant identifiers.
//
// Names are scoped: an identifier can carry one name in regular
// conversations and another inside open groups. Identifiers are stored
// lowercase so lookups are case-insensitive.
package contacts

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/kessym/ripple/internal/mention"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is the sqlite-backed contact name store. Lookup satisfies
// mention.NameStore: a database error degrades to a miss and is logged,
// never surfaced to the mention engine.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open contacts db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA temp_store = MEMORY;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("contacts db pragma: %w", err)
		}
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("contacts db dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("contacts db migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scopeName(scope mention.Scope) string {
	if scope == mention.ScopeOpenGroup {
		return "open_group"
	}
	return "regular"
}

// Put records or replaces the display name of an identifier in a scope.
func (s *Store) Put(id string, scope mention.Scope, name string) error {
	_, err := s.db.Exec(`
		INSERT INTO contacts (id, scope, name) VALUES (?, ?, ?)
		ON CONFLICT (id, scope) DO UPDATE SET name = excluded.name`,
		strings.ToLower(id), scopeName(scope), name,
	)
	if err != nil {
		return fmt.Errorf("put contact: %w", err)
	}
	return nil
}

// Delete removes an identifier's name from a scope. Deleting an unknown
// contact is not an error.
func (s *Store) Delete(id string, scope mention.Scope) error {
	_, err := s.db.Exec(
		`DELETE FROM contacts WHERE id = ? AND scope = ?`,
		strings.ToLower(id), scopeName(scope),
	)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func (s *Store) Lookup(id string, scope mention.Scope) (string, bool) {
	var name string
	err := s.db.QueryRow(
		`SELECT name FROM contacts WHERE id = ? AND scope = ?`,
		strings.ToLower(id), scopeName(scope),
	).Scan(&name)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Error("contact lookup failed", "id", id, "scope", scopeName(scope), "error", err)
		return "", false
	}
	return name, true
}
