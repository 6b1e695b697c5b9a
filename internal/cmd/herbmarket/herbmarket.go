// Package herbmarket implements the herb-market command: roll a shop's herb
// stock from a TOML market definition and print it as a table.
package herbmarket

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/herb-market/internal/market"
	marketconfig "github.com/louisbranch/herb-market/internal/market/config"
	platformcmd "github.com/louisbranch/herb-market/internal/platform/cmd"
	"github.com/louisbranch/herb-market/internal/platform/console"
	"github.com/louisbranch/herb-market/internal/random"
	"github.com/louisbranch/herb-market/internal/render"
	"github.com/louisbranch/herb-market/internal/storage"
	"github.com/louisbranch/herb-market/internal/storage/sqlite"
)

// Config holds herb-market command configuration. Environment variables are
// read with the HERB_MARKET_ prefix; flags override them.
type Config struct {
	ConfigPath string `env:"CONFIG"  envDefault:"herb-market.config.toml"`
	Seed       int64  `env:"SEED"`
	Locale     string `env:"LOCALE"`
	LedgerPath string `env:"LEDGER"`
	Pause      bool   `env:"PAUSE"`
	Verbose    bool   `env:"VERBOSE"`
	// Last re-renders the newest ledger run instead of rolling new stock.
	Last bool
	// RunID re-renders a specific ledger run.
	RunID int64
}

// ParseConfig parses env and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Pause: console.PauseByDefault()}
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "path to the market definition (TOML)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for a reproducible roll (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "BCP 47 locale used to format numbers (empty = plain digits)")
	fs.StringVar(&cfg.LedgerPath, "ledger", cfg.LedgerPath, "SQLite ledger recording each roll (empty = disabled)")
	fs.BoolVar(&cfg.Last, "last", false, "print the most recent ledger roll instead of rolling")
	fs.Int64Var(&cfg.RunID, "run", 0, "print the ledger roll with this id instead of rolling")
	fs.BoolVar(&cfg.Pause, "pause", cfg.Pause, "wait for a keypress before exiting")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log diagnostics to stderr")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	if cfg.Last && cfg.LedgerPath == "" {
		return Config{}, errors.New("-last requires -ledger")
	}
	if cfg.RunID != 0 && cfg.LedgerPath == "" {
		return Config{}, errors.New("-run requires -ledger")
	}
	if cfg.Last && cfg.RunID != 0 {
		return Config{}, errors.New("-last and -run are mutually exclusive")
	}
	return cfg, nil
}

// Run rolls (or replays) the stock and writes the table to out. Diagnostics
// go to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	locale, err := render.ParseLocale(cfg.Locale)
	if err != nil {
		return err
	}

	logger := log.New(errOut, "", 0)
	verbosef := func(format string, args ...any) {
		if cfg.Verbose {
			logger.Printf(format, args...)
		}
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceHerbMarket, func(ctx context.Context) error {
		var ledger storage.LedgerStore
		if cfg.LedgerPath != "" {
			store, err := sqlite.Open(cfg.LedgerPath)
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer store.Close()
			ledger = store
		}

		var stock []market.StockEntry
		switch {
		case cfg.Last:
			stock, err = replay(ctx, ledger, "ledger.latest", verbosef, func(ctx context.Context) (storage.StockRun, error) {
				return ledger.LatestRun(ctx)
			})
		case cfg.RunID != 0:
			stock, err = replay(ctx, ledger, "ledger.get", verbosef, func(ctx context.Context) (storage.StockRun, error) {
				return ledger.GetRun(ctx, cfg.RunID)
			})
		default:
			stock, err = rollStock(ctx, cfg, ledger, verbosef)
		}
		if err != nil {
			return err
		}

		return traced(ctx, "stock.render", func(context.Context) error {
			return render.Table(out, stock, locale)
		})
	})
}

func rollStock(ctx context.Context, cfg Config, ledger storage.LedgerStore, verbosef func(string, ...any)) ([]market.StockEntry, error) {
	var doc marketconfig.Document
	err := traced(ctx, "config.load", func(context.Context) error {
		var err error
		doc, err = marketconfig.Load(cfg.ConfigPath)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, key := range doc.Ignored {
		verbosef("ignoring unknown config key %s", key)
	}
	verbosef("loaded %d herbs from %s", len(doc.Config.Herbs), cfg.ConfigPath)

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return nil, err
	}
	verbosef("using seed %d", seed)

	var stock []market.StockEntry
	err = traced(ctx, "stock.generate", func(ctx context.Context) error {
		stock = market.GenerateStock(doc.Config, random.New(seed))
		market.SortByName(stock)
		annotate(ctx,
			attribute.Int64("herb_market.seed", seed),
			attribute.Int("herb_market.catalog_size", len(doc.Config.Herbs)),
			attribute.Int("herb_market.stocked", len(stock)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ledger == nil {
		return stock, nil
	}
	err = traced(ctx, "ledger.record", func(ctx context.Context) error {
		id, err := ledger.RecordRun(ctx, storage.StockRun{
			Seed:       seed,
			ConfigPath: cfg.ConfigPath,
			Entries:    stock,
		})
		if err != nil {
			return fmt.Errorf("record stock: %w", err)
		}
		verbosef("recorded run %d", id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func replay(ctx context.Context, ledger storage.LedgerStore, span string, verbosef func(string, ...any), fetch func(context.Context) (storage.StockRun, error)) ([]market.StockEntry, error) {
	if ledger == nil {
		return nil, errors.New("ledger is not configured")
	}
	var run storage.StockRun
	err := traced(ctx, span, func(ctx context.Context) error {
		var err error
		run, err = fetch(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no recorded stock: %w", err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	verbosef("replaying run %d (seed %d, %s)", run.ID, run.Seed, run.GeneratedAt.Format("2006-01-02 15:04"))

	stock := run.Entries
	market.SortByName(stock)
	return stock, nil
}
