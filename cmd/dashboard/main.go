package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NickelSentinel/internal/collector"
	"NickelSentinel/internal/config"
	"NickelSentinel/internal/notifier"
	"NickelSentinel/internal/recorder"
	"NickelSentinel/internal/scheduler"
	"NickelSentinel/internal/server"
	"NickelSentinel/internal/store"
	"NickelSentinel/internal/synthetic"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] NickelSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Synthetic generator: wall-clock seed unless pinned in config
	seed := cfg.Synthetic.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := synthetic.NewGenerator(seed)

	// Fetcher chain: remote with synthetic fallback, or synthetic-only
	var primary collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		primary = collector.NewRemoteFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}
	fetcher := collector.NewFallbackFetcher(primary, gen)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher)
	st := store.New()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier when enabled
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.Enabled {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, st, rec, tn)
	if cfg.AutoRefresh() {
		if err := sched.RegisterAutoRefresh(cfg.Refresh.IntervalMinutes); err != nil {
			log.Fatalf("[FATAL] register auto refresh: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("[INFO] auto refresh every %d minutes", cfg.Refresh.IntervalMinutes)
	}

	// First refresh so the API has data as soon as possible
	go sched.RunRefreshNow()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Start HTTP server
	srv := server.NewServer(cfg, st, sched)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe(ctx, cfg.Server.ListenAddr)
	}()

	log.Println("[INFO] NickelSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-serverErr:
		if err != nil {
			log.Printf("[ERROR] HTTP server: %v", err)
		}
	}
	cancel()
	log.Println("[INFO] NickelSentinel stopped")
}
