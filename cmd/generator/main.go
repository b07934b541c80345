package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campus-match/internal/app"
	"campus-match/internal/config"
	"campus-match/internal/logger"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent generation passes")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall batch deadline")
	usersOnly := flag.Bool("users-only", false, "skip the organization pass")
	orgsOnly := flag.Bool("orgs-only", false, "skip the user pass")
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if !*orgsOnly {
		if err := runUserPass(ctx, container, *workers); err != nil {
			log.Fatalf("user pass failed: %v", err)
		}
	}
	if !*usersOnly {
		if err := runOrganizationPass(ctx, container, *workers); err != nil {
			log.Fatalf("organization pass failed: %v", err)
		}
	}
}

func runUserPass(ctx context.Context, c *app.Container, workers int) error {
	userIDs, err := c.Repos.UserFeatures.ListUserIDs(ctx)
	if err != nil {
		return err
	}
	c.Log.Info("starting user generation pass", zap.Int("users", len(userIDs)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range userIDs {
		g.Go(func() error {
			_, err := c.Generation.GenerateForUser(ctx, id)
			return err
		})
	}
	return g.Wait()
}

func runOrganizationPass(ctx context.Context, c *app.Container, workers int) error {
	orgIDs, err := c.Repos.Jobs.ListOrganizationIDsWithOpenJobs(ctx)
	if err != nil {
		return err
	}
	c.Log.Info("starting organization generation pass", zap.Int("organizations", len(orgIDs)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range orgIDs {
		g.Go(func() error {
			_, err := c.Generation.GenerateForOrganization(ctx, id)
			return err
		})
	}
	return g.Wait()
}
