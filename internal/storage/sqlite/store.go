// Package sqlite provides a SQLite-backed stock ledger.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/herb-market/internal/market"
	sqlitemigrate "github.com/louisbranch/herb-market/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/herb-market/internal/storage"
	"github.com/louisbranch/herb-market/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists stock runs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.LedgerStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite ledger and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun stores run and its entries in one transaction and returns the
// new run ID.
func (s *Store) RecordRun(ctx context.Context, run storage.StockRun) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	generatedAt := run.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin record run: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO stock_runs (seed, config_path, generated_at) VALUES (?, ?, ?)`,
		run.Seed,
		run.ConfigPath,
		toMillis(generatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert stock run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("stock run id: %w", err)
	}

	for i, entry := range run.Entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stock_entries (
			   run_id,
			   position,
			   herb_name,
			   declared_rarity,
			   effective_rarity,
			   quantity,
			   price
			 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id,
			i,
			entry.Herb.Name,
			entry.Herb.Rarity.String(),
			entry.Rarity.String(),
			entry.Quantity,
			entry.Price,
		); err != nil {
			return 0, fmt.Errorf("insert stock entry %q: %w", entry.Herb.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit stock run: %w", err)
	}
	return id, nil
}

// GetRun returns one run by ID.
func (s *Store) GetRun(ctx context.Context, id int64) (storage.StockRun, error) {
	return s.getRun(ctx, `SELECT id, seed, config_path, generated_at FROM stock_runs WHERE id = ?`, id)
}

// LatestRun returns the most recently recorded run.
func (s *Store) LatestRun(ctx context.Context) (storage.StockRun, error) {
	return s.getRun(ctx, `SELECT id, seed, config_path, generated_at FROM stock_runs ORDER BY id DESC LIMIT 1`)
}

func (s *Store) getRun(ctx context.Context, query string, args ...any) (storage.StockRun, error) {
	if err := ctx.Err(); err != nil {
		return storage.StockRun{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.StockRun{}, fmt.Errorf("storage is not configured")
	}

	var (
		run         storage.StockRun
		generatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx, query, args...).Scan(&run.ID, &run.Seed, &run.ConfigPath, &generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.StockRun{}, storage.ErrNotFound
		}
		return storage.StockRun{}, fmt.Errorf("get stock run: %w", err)
	}
	run.GeneratedAt = fromMillis(generatedAt)

	entries, err := s.listEntries(ctx, run.ID)
	if err != nil {
		return storage.StockRun{}, err
	}
	run.Entries = entries
	return run, nil
}

func (s *Store) listEntries(ctx context.Context, runID int64) ([]market.StockEntry, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT herb_name, declared_rarity, effective_rarity, quantity, price
		   FROM stock_entries
		  WHERE run_id = ?
		  ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()

	var entries []market.StockEntry
	for rows.Next() {
		var (
			name, declared, effective string
			entry                     market.StockEntry
		)
		if err := rows.Scan(&name, &declared, &effective, &entry.Quantity, &entry.Price); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		declaredRarity, err := market.ParseRarity(declared)
		if err != nil {
			return nil, fmt.Errorf("stock entry %q: %w", name, err)
		}
		effectiveRarity, err := market.ParseRarity(effective)
		if err != nil {
			return nil, fmt.Errorf("stock entry %q: %w", name, err)
		}
		entry.Herb = market.Herb{Name: name, Rarity: declaredRarity}
		entry.Rarity = effectiveRarity
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock entries: %w", err)
	}
	return entries, nil
}
