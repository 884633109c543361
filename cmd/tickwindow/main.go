package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/defistate/whirlpool-tickwindow-go/cmd/tickwindow/config"
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool"
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool/indexer"
	"github.com/defistate/whirlpool-tickwindow-go/protocols/whirlpool/tickarray"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	close := func() {
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		close()
	}

	level, _ := cfg.Level()
	rootLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if !whirlpool.IsSupportedTickSpacing(cfg.TickSpacing) {
		rootLogger.Warn("Tick spacing is not enabled by the default pool config", "tick_spacing", cfg.TickSpacing)
	}

	arrays, err := loadTickArrays(cfg.TickArraysFile)
	if err != nil {
		rootLogger.Error("Failed to load tick arrays", "file", cfg.TickArraysFile, "error", err)
		close()
	}

	ix, err := indexer.New(&indexer.Config{
		Logger:   rootLogger.With("component", "tick-array-indexer"),
		Registry: prometheus.DefaultRegisterer,
	})
	if err != nil {
		rootLogger.Error("Failed to initialize indexer", "error", err)
		close()
	}

	window, err := ix.Index(arrays).Window(cfg.CurrentTick, cfg.TickSpacing, cfg.AToB)
	if err != nil {
		rootLogger.Error("Failed to build tick window", "error", err)
		close()
	}
	rootLogger.Info("Tick window ready",
		"start_index", window.StartIndex(),
		"end_index", window.EndIndex(),
		"initialized_ticks", window.InitializedCount(),
	)

	for _, q := range cfg.Queries {
		runQuery(rootLogger, window, q)
	}
}

func runQuery(logger *slog.Logger, window *tickarray.Window, q config.Query) {
	var (
		tick  *whirlpool.Tick
		index = q.Index
		err   error
	)
	switch q.Op {
	case config.OpTick:
		tick, err = window.Tick(q.Index)
	case config.OpNext:
		tick, index, err = window.NextInitializedTick(q.Index)
	case config.OpPrev:
		tick, index, err = window.PrevInitializedTick(q.Index)
	}

	if err != nil {
		if errors.Is(err, tickarray.ErrIndexOutOfWindow) {
			logger.Warn("Query left the window, a shifted window is needed", "op", q.Op, "index", q.Index, "error", err)
			return
		}
		logger.Error("Query failed", "op", q.Op, "index", q.Index, "error", err)
		return
	}

	logger.Info("Query result",
		"op", q.Op,
		"from", q.Index,
		"tick_index", index,
		"initialized", tick.Initialized,
		"liquidity_net", tick.LiquidityNet,
	)
}

func loadConfig() (*config.Config, error) {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file.")
	flag.Parse()
	log.Printf("Loading configuration from: %s", *configPath)
	return config.LoadConfig(*configPath)
}
