// Package store persists screen catalogs in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devsync/internal/model"

	_ "modernc.org/sqlite"
)

// ErrScreenNotFound is returned by LoadCatalog when a screen was never saved.
var ErrScreenNotFound = errors.New("screen not found")

// SQLiteStore keeps one ordered catalog per screen.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at the given path and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS screens (
	name       TEXT PRIMARY KEY,
	saved_unix INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS items (
	screen      TEXT    NOT NULL REFERENCES screens(name) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	kind        TEXT    NOT NULL,
	id          TEXT    NOT NULL,
	name        TEXT    NOT NULL DEFAULT '',
	recency     INTEGER NOT NULL DEFAULT 0,
	unread      INTEGER NOT NULL DEFAULT 0,
	external    INTEGER NOT NULL DEFAULT 0,
	online      INTEGER NOT NULL DEFAULT 0,
	preview     TEXT    NOT NULL DEFAULT '',
	topic       TEXT    NOT NULL DEFAULT '',
	category    TEXT    NOT NULL DEFAULT '',
	subtitle    TEXT    NOT NULL DEFAULT '',
	channel     TEXT    NOT NULL DEFAULT '',
	actor       TEXT    NOT NULL DEFAULT '',
	status      TEXT    NOT NULL DEFAULT '',
	priority    TEXT    NOT NULL DEFAULT '',
	due_date    TEXT    NOT NULL DEFAULT '',
	list_title  TEXT    NOT NULL DEFAULT '',
	assigned_by TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (screen, position)
);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	for _, col := range addedColumns {
		if err := addColumn(db, "items", col); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}

// addedColumns were introduced after the items table was first released.
var addedColumns = []string{
	"starred     INTEGER NOT NULL DEFAULT 0",
	"template    INTEGER NOT NULL DEFAULT 0",
	"created_by  TEXT    NOT NULL DEFAULT ''",
	"description TEXT    NOT NULL DEFAULT ''",
	"domain      TEXT    NOT NULL DEFAULT ''",
	"invite      INTEGER NOT NULL DEFAULT 0",
	"message     TEXT    NOT NULL DEFAULT ''",
}

// addColumn adds def to table unless a column of that name exists.
func addColumn(db *sql.DB, table, def string) error {
	name := strings.Fields(def)[0]
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cid, notNull, pk int
			colName, colType string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return err
		}
		if colName == name {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()
	_, err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, def))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveCatalog replaces everything stored for c.Screen with c's items.
func (s *SQLiteStore) SaveCatalog(ctx context.Context, c *model.Catalog) error {
	if c == nil || c.Screen == "" {
		return errors.New("save catalog: screen name required")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE screen = ?", c.Screen); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO screens (name, saved_unix) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET saved_unix = excluded.saved_unix
	`, c.Screen, time.Now().Unix()); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (screen, position, kind, id, name, recency, unread, external, online,
			preview, topic, category, subtitle, channel, actor, status, priority, due_date, list_title, assigned_by,
			starred, template, created_by, description, domain, invite, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, it := range c.Items() {
		r := toRow(it)
		_, err := stmt.ExecContext(ctx, c.Screen, i, r.kind, r.id, r.name, r.recency, r.unread, r.external, r.online,
			r.preview, r.topic, r.category, r.subtitle, r.channel, r.actor, r.status, r.priority, r.dueDate, r.listTitle, r.assignedBy,
			r.starred, r.template, r.createdBy, r.description, r.domain, r.invite, r.message)
		if err != nil {
			return fmt.Errorf("insert %s item %s: %w", it.Kind(), it.ItemID(), err)
		}
	}
	return tx.Commit()
}

// LoadCatalog returns the stored catalog for screen in saved order.
func (s *SQLiteStore) LoadCatalog(ctx context.Context, screen string) (*model.Catalog, error) {
	var name string
	err := s.db.QueryRowContext(ctx, "SELECT name FROM screens WHERE name = ?", screen).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrScreenNotFound, screen)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, id, name, recency, unread, external, online, preview, topic, category, subtitle,
			channel, actor, status, priority, due_date, list_title, assigned_by,
			starred, template, created_by, description, domain, invite, message
		FROM items WHERE screen = ? ORDER BY position`, screen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.kind, &r.id, &r.name, &r.recency, &r.unread, &r.external, &r.online,
			&r.preview, &r.topic, &r.category, &r.subtitle, &r.channel, &r.actor, &r.status, &r.priority,
			&r.dueDate, &r.listTitle, &r.assignedBy,
			&r.starred, &r.template, &r.createdBy, &r.description, &r.domain, &r.invite, &r.message); err != nil {
			return nil, err
		}
		it, err := r.item()
		if err != nil {
			return nil, fmt.Errorf("screen %s item %s: %w", screen, r.id, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return model.NewCatalog(screen, items...)
}

// Screens lists saved screen names alphabetically.
func (s *SQLiteStore) Screens(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM screens ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// CountItems counts the items stored for screen.
func (s *SQLiteStore) CountItems(ctx context.Context, screen string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items WHERE screen = ?", screen).Scan(&count)
	return count, err
}

// DeleteScreen drops a screen and its items. Deleting an unknown screen is a no-op.
func (s *SQLiteStore) DeleteScreen(ctx context.Context, screen string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE screen = ?", screen); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM screens WHERE name = ?", screen); err != nil {
		return err
	}
	return tx.Commit()
}
