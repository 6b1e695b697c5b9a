// Package main provides a CLI that rolls a tabletop shop's herb stock.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/herb-market/internal/cmd/herbmarket"
	"github.com/louisbranch/herb-market/internal/platform/config"
	"github.com/louisbranch/herb-market/internal/platform/console"
)

func main() {
	cfg, err := herbmarket.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitAfterf(console.PauseHook(console.PauseByDefault()), "Error: %v", err)
	}

	pause := console.PauseHook(cfg.Pause)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = herbmarket.Run(ctx, cfg, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		config.ExitAfterf(pause, "Error: %v", err)
	}
	pause()
}
