package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-ru/mcp-wealth-go/internal/config"
	"github.com/cloud-ru/mcp-wealth-go/internal/handler"
	"github.com/cloud-ru/mcp-wealth-go/internal/logging"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/store"
	"github.com/cloud-ru/mcp-wealth-go/internal/tools"
	"github.com/cloud-ru/mcp-wealth-go/internal/tracing"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		logger.Fatalf("Failed to init tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	backend, closeBackend, err := openBackend(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open storage: %v", err)
	}
	defer closeBackend()

	snap, err := backend.Load(ctx)
	if err != nil {
		logger.Fatalf("Failed to load snapshot: %v", err)
	}
	rs := rules.Restore(snap.Rules)

	registry := tools.Registry(cfg, tracer, rs, backend, logger)
	h := handler.NewHandler(registry, rs, backend, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      h.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.WithFields(logrus.Fields{
		"addr":  addr,
		"tools": tools.Names(registry),
		"rules": len(rs.List()),
	}).Info("Starting server")
	// хранилище закрывается отложенно, только после того как Serve дождался активных запросов
	if err := handler.Serve(ctx, server, nil, 5*time.Second); err != nil {
		logger.Errorf("Server failed: %v", err)
		return
	}
	logger.Info("Server stopped")
}

// openBackend выбирает SQLite, если задан путь к базе, иначе YAML файл
func openBackend(cfg *config.Config, logger *logrus.Logger) (store.Backend, func() error, error) {
	if cfg.SQLitePath == "" {
		logger.WithField("path", cfg.DataFile).Info("using YAML snapshot")
		return store.YAMLFile{Path: cfg.DataFile}, func() error { return nil }, nil
	}
	db, err := store.OpenSQLite(cfg.SQLitePath, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}
