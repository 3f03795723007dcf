package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/selkit/internal/browser"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	columns := flag.Int("columns", 0, "grid column count (optional, 1 = list)")
	debugLog := flag.String("debug", "", "write debug log to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := browser.Options{
		ConfigPath: *configPath,
		Columns:    *columns,
		DebugLog:   *debugLog,
	}

	if err := browser.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "selkit: %v\n", err)
		return 1
	}
	return 0
}
