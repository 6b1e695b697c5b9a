package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/herb-market/internal/market"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// StockRun is one generated stock as recorded in the ledger.
type StockRun struct {
	ID          int64
	Seed        int64
	ConfigPath  string
	GeneratedAt time.Time
	// Entries are kept in the order they were recorded. Herbs carry only
	// their name and declared rarity.
	Entries []market.StockEntry
}

// LedgerStore persists generated stock runs.
type LedgerStore interface {
	RecordRun(ctx context.Context, run StockRun) (int64, error)
	GetRun(ctx context.Context, id int64) (StockRun, error)
	LatestRun(ctx context.Context) (StockRun, error)
}
