package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/pinehollow/storefront/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting storefront service",
		"addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev)

	mongoDB, err := bootstrap.ConnectMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		return err
	}
	if mongoDB != nil {
		defer func() {
			if cerr := mongoDB.Client().Disconnect(context.Background()); cerr != nil {
				logger.Error("disconnect mongodb failed", "error", cerr)
			}
		}()
	}

	redisClient, err := bootstrap.ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("close redis failed", "error", cerr)
			}
		}()
	}

	services, err := bootstrap.BuildServices(ctx, bootstrap.ServiceDeps{
		Config: cfg,
		Mongo:  mongoDB,
		Redis:  redisClient,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	server := bootstrap.StartHTTPServer(cfg, services, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return bootstrap.ShutdownHTTPServer(context.Background(), server, logger)
	})

	return g.Wait()
}
