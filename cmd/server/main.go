package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campus-match/internal/app"
	"campus-match/internal/config"
	"campus-match/internal/database/migration"
	"campus-match/internal/logger"
)

func main() {
	migrationsDir := flag.String("migrations", "", "directory with versioned .sql files (default: <exe dir>/migrations)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = zl.Sync()
	}()

	container, err := app.NewContainer(cfg, zl)
	if err != nil {
		log.Fatalf("failed to wire dependencies: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 60*time.Second)
	runner := migration.Runner{Dir: *migrationsDir}
	if err := runner.Run(migCtx, container.DB.SQLDB()); err != nil {
		migCancel()
		log.Fatalf("migrations failed: %v", err)
	}
	migCancel()

	server := app.New(container)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
