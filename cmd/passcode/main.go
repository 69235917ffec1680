package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dropDatabas3/passcode/internal/app"
	"github.com/dropDatabas3/passcode/internal/config"
	httpx "github.com/dropDatabas3/passcode/internal/http"
	"github.com/dropDatabas3/passcode/internal/http/router"
	"github.com/dropDatabas3/passcode/internal/observability/logger"
	"github.com/dropDatabas3/passcode/internal/store/mongodb"
)

func main() {
	// .env es opcional; en prod las vars vienen del entorno.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			cfgPath = "config.yaml"
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "passcode",
	})
	defer func() { _ = logger.Sync() }()
	zlog := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := mongodb.Connect(connectCtx, cfg.Storage.Mongo.URI, cfg.Storage.Mongo.Database)
	cancel()
	if err != nil {
		zlog.Fatal("mongo connect failed", logger.Err(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			zlog.Warn("mongo close failed", logger.Err(err))
		}
	}()

	metricsHandler, err := httpx.RegisterMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		zlog.Fatal("metrics registration failed", logger.Err(err))
	}

	container := app.New(cfg, store)
	handler := router.New(container, metricsHandler)

	zlog.Info("server starting",
		logger.String("addr", cfg.Server.Addr),
		logger.String("env", cfg.App.Env),
	)

	if err := httpx.Run(ctx, cfg.Server.Addr, handler); err != nil {
		zlog.Fatal("server error", logger.Err(err))
	}

	zlog.Info("server stopped")
}
