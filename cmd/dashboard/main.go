package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockScope/internal/collector"
	"StockScope/internal/config"
	"StockScope/internal/recorder"
	"StockScope/internal/scheduler"
	"StockScope/internal/server"
	"StockScope/internal/watch"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScope starting...")

	cfgPath := flag.String("config", "configs/config.yaml", "path to config file")
	watchMode := flag.Bool("watch", false, "run the blocking watch loop instead of the HTTP server")
	flag.Parse()

	if v := os.Getenv("CONFIG_PATH"); v != "" {
		*cfgPath = v
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher)

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if *watchMode {
		req := cfg.DefaultRequest()
		req.Live = true
		loop := watch.NewLoop(col, rec, req, cfg.Watch.OutputPath)
		log.Printf("[INFO] watch mode: %s every %ds -> %s", req.Ticker, req.RefreshSeconds, cfg.Watch.OutputPath)

		go func() {
			<-sigCh
			log.Println("[INFO] shutdown signal received, stopping...")
			cancel()
		}()

		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("[FATAL] watch loop: %v", err)
		}
		log.Println("[INFO] StockScope stopped")
		return
	}

	// Init scheduler for periodic snapshots
	sched := scheduler.NewScheduler(col, rec, cfg.DefaultRequest())
	if err := sched.Register(cfg.Snapshot.Cron); err != nil {
		log.Fatalf("[FATAL] register snapshot task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, recording snapshot now")
		go sched.RunNow()
	}

	// Init HTTP server
	handler := server.NewHandler(col, rec, cfg.DefaultRequest())
	srv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: server.SetupRoutes(handler),
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] StockScope is running. Press Ctrl+C to stop.")

	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] StockScope stopped")
}
