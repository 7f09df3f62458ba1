package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/folio-sh/folio/content"
)

// Aggregate field keys in the local store. Values are JSON-encoded.
const (
	keyProfile  = "profile"
	keySkills   = "skills"
	keyProjects = "projects"
	keyTimeline = "timeline"
	keyPosts    = "posts"
)

// Plain-string preference keys stored alongside the aggregate fields.
const (
	KeyTheme    = "theme"
	KeyAuthFlag = "session-auth-flag"
)

// LocalGateway backs the document contract with per-key SQLite storage: one
// row per aggregate field. Load reads each field independently, so a row that
// fails to parse is simply absent from the result and gets defaulted by the
// caller; the other fields still load.
type LocalGateway struct {
	db *sql.DB
}

// NewLocalGateway opens (or creates) the SQLite store at path, ensures the
// data directory exists, and bootstraps the schema.
func NewLocalGateway(path string) (*LocalGateway, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL so reads do not block the debounced writer; busy_timeout so a
	// concurrent writer waits instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	g := &LocalGateway{db: db}
	if err := g.ensureSchema(); err != nil {
		return nil, err
	}
	return g, nil
}

// Close closes the underlying database connection.
func (g *LocalGateway) Close() error {
	return g.db.Close()
}

func (g *LocalGateway) ensureSchema() error {
	_, err := g.db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// Load reads every aggregate field independently. Each field is parsed on its
// own and dropped from the document on parse failure. Returns ErrEmpty when
// no aggregate field is present at all.
func (g *LocalGateway) Load(ctx context.Context) (*Document, error) {
	var doc Document
	if raw, ok, err := g.get(ctx, keyProfile); err != nil {
		return nil, err
	} else if ok {
		var p content.Profile
		if json.Unmarshal([]byte(raw), &p) == nil {
			doc.Profile = &p
		}
	}
	if err := loadField(ctx, g, keySkills, &doc.Skills); err != nil {
		return nil, err
	}
	if err := loadField(ctx, g, keyProjects, &doc.Projects); err != nil {
		return nil, err
	}
	if err := loadField(ctx, g, keyTimeline, &doc.Timeline); err != nil {
		return nil, err
	}
	if err := loadField(ctx, g, keyPosts, &doc.Posts); err != nil {
		return nil, err
	}
	if doc.Empty() {
		return nil, ErrEmpty
	}
	return &doc, nil
}

// loadField reads one JSON list field into dst, leaving *dst nil when the key
// is missing or its value does not parse.
func loadField[T any](ctx context.Context, g *LocalGateway, key string, dst **[]T) error {
	raw, ok, err := g.get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var vals []T
	if json.Unmarshal([]byte(raw), &vals) != nil {
		return nil
	}
	if vals == nil {
		vals = []T{}
	}
	*dst = &vals
	return nil
}

// Save writes all five aggregate fields in a single transaction so a partial
// aggregate is never persisted.
func (g *LocalGateway) Save(ctx context.Context, a *content.Aggregate) error {
	fields := []struct {
		key string
		val any
	}{
		{keyProfile, a.Profile},
		{keySkills, a.Skills},
		{keyProjects, a.Projects},
		{keyTimeline, a.Timeline},
		{keyPosts, a.Posts},
	}
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("gateway: begin save: %w", err)
	}
	defer tx.Rollback()
	for _, f := range fields {
		payload, err := json.Marshal(f.val)
		if err != nil {
			return fmt.Errorf("gateway: encode %s: %w", f.key, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, f.key, string(payload)); err != nil {
			return fmt.Errorf("gateway: write %s: %w", f.key, err)
		}
	}
	return tx.Commit()
}

// GetValue reads a plain-string preference such as the theme. Returns "" when
// the key is unset.
func (g *LocalGateway) GetValue(ctx context.Context, key string) (string, error) {
	raw, ok, err := g.get(ctx, key)
	if err != nil || !ok {
		return "", err
	}
	return raw, nil
}

// SetValue stores a plain-string preference.
func (g *LocalGateway) SetValue(ctx context.Context, key, value string) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, value)
	return err
}

// DeleteValue removes a preference key. Missing keys are a no-op.
func (g *LocalGateway) DeleteValue(ctx context.Context, key string) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (g *LocalGateway) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := g.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("gateway: read %s: %w", key, err)
	}
	return value, true, nil
}
