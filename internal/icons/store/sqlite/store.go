// Package sqlite persists user-supplied icons in SQLite and exposes them as
// a read-only provider snapshot.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/iconkit/internal/icons/catalog"
	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	"github.com/louisbranch/iconkit/internal/icons/store/sqlite/migrations"
	"github.com/louisbranch/iconkit/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// ErrNotFound reports a missing stored icon.
var ErrNotFound = errors.New("stored icon not found")

// Icon is one stored icon.
type Icon struct {
	Name      string
	Nodes     []node.Node
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists icons in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite icon store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// OpenFile opens the store at path like Open, creating missing parent
// directories first.
func OpenFile(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if dir := filepath.Dir(filepath.Clean(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	return Open(path)
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutIcon inserts or replaces the icon stored under the canonical form of
// iconName.
func (s *Store) PutIcon(ctx context.Context, iconName string, nodes []node.Node) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	canonical, payload, err := encodeIcon(iconName, nodes)
	if err != nil {
		return err
	}
	now := toMillis(s.now())
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO icons (name, nodes_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   nodes_json = excluded.nodes_json,
		   updated_at = excluded.updated_at`,
		canonical, payload, now, now,
	)
	if err != nil {
		return fmt.Errorf("put icon %s: %w", canonical, err)
	}
	return nil
}

// GetIcon loads one stored icon.
func (s *Store) GetIcon(ctx context.Context, iconName string) (Icon, error) {
	if err := s.ready(ctx); err != nil {
		return Icon{}, err
	}
	canonical := name.Canonical(iconName)
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT name, nodes_json, created_at, updated_at FROM icons WHERE name = ?`,
		canonical,
	)
	icon, err := scanIcon(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Icon{}, fmt.Errorf("get icon %s: %w", canonical, ErrNotFound)
	}
	if err != nil {
		return Icon{}, fmt.Errorf("get icon %s: %w", canonical, err)
	}
	return icon, nil
}

// DeleteIcon removes a stored icon.
func (s *Store) DeleteIcon(ctx context.Context, iconName string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	canonical := name.Canonical(iconName)
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM icons WHERE name = ?`, canonical)
	if err != nil {
		return fmt.Errorf("delete icon %s: %w", canonical, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete icon %s: %w", canonical, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete icon %s: %w", canonical, ErrNotFound)
	}
	return nil
}

// ListNames returns stored icon names in sorted order.
func (s *Store) ListNames(ctx context.Context) ([]string, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT name FROM icons ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list icons: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan icon name: %w", err)
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list icons: %w", err)
	}
	return names, nil
}

// ImportCatalog stores every icon of c in a single transaction and returns
// the number of icons written.
func (s *Store) ImportCatalog(ctx context.Context, c catalog.Catalog) (int, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	now := toMillis(s.now())
	count := 0
	for _, iconName := range catalog.Names(c) {
		canonical, payload, err := encodeIcon(iconName, c[iconName])
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO icons (name, nodes_json, created_at, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET
			   nodes_json = excluded.nodes_json,
			   updated_at = excluded.updated_at`,
			canonical, payload, now, now,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("import icon %s: %w", canonical, err)
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return count, nil
}

// Catalog loads every stored icon.
func (s *Store) Catalog(ctx context.Context) (catalog.Catalog, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, nodes_json, created_at, updated_at FROM icons ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("load icons: %w", err)
	}
	defer rows.Close()

	out := make(catalog.Catalog)
	for rows.Next() {
		icon, err := scanIcon(rows)
		if err != nil {
			return nil, fmt.Errorf("load icons: %w", err)
		}
		out[icon.Name] = icon.Nodes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load icons: %w", err)
	}
	return out, nil
}

// Provider snapshots the stored icons into a read-only provider. Later writes
// do not affect the snapshot.
func (s *Store) Provider(ctx context.Context) (*provider.CatalogProvider, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return provider.NewCatalogProvider(c), nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIcon(row rowScanner) (Icon, error) {
	var (
		icon      Icon
		payload   string
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&icon.Name, &payload, &createdAt, &updatedAt); err != nil {
		return Icon{}, err
	}
	nodes, err := catalog.DecodeNodes([]byte(payload))
	if err != nil {
		return Icon{}, fmt.Errorf("decode icon %s: %w", icon.Name, err)
	}
	icon.Nodes = nodes
	icon.CreatedAt = fromMillis(createdAt)
	icon.UpdatedAt = fromMillis(updatedAt)
	return icon, nil
}

func encodeIcon(iconName string, nodes []node.Node) (string, string, error) {
	canonical := name.Canonical(iconName)
	if canonical == "" {
		return "", "", fmt.Errorf("icon name is required")
	}
	if len(nodes) == 0 {
		return "", "", fmt.Errorf("icon %s: at least one node is required", canonical)
	}
	if err := node.Validate(nodes); err != nil {
		return "", "", fmt.Errorf("icon %s: %w", canonical, err)
	}
	payload, err := catalog.EncodeNodes(nodes)
	if err != nil {
		return "", "", fmt.Errorf("icon %s: %w", canonical, err)
	}
	return canonical, string(payload), nil
}
