package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rdc-blueprint/internal/client"
	"rdc-blueprint/internal/config"
	"rdc-blueprint/internal/service/blueprint"
	demand_import "rdc-blueprint/internal/service/demand-import"
	generate_chart "rdc-blueprint/internal/service/generate-chart"
	generate_excel "rdc-blueprint/internal/service/generate-excel"
	"rdc-blueprint/internal/service/store"
	"rdc-blueprint/internal/storage/badger"
	"rdc-blueprint/internal/storage/memory"
	"rdc-blueprint/internal/storage/mysql"
	"rdc-blueprint/internal/storage/redis"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type snapshotBackend interface {
	store.SnapshotStore
	Close() error
}

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env)

	snapshots, err := openSnapshots(cfg.Snapshot)
	if err != nil {
		log.Error("failed to open snapshot storage", slog.String("backend", cfg.Snapshot.Backend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer snapshots.Close()

	api := client.New(cfg.APIURL, cfg.APITimeout)

	var source store.DemandSource = api
	if cfg.DemandSource == "excel" {
		source = demand_import.NewFileSource(cfg.DemandFile)
	}

	blueprints := store.New(log, source, snapshots, store.Options{
		Key:             cfg.Snapshot.Key,
		Canvas:          blueprint.Canvas{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		SimulationDelay: cfg.SimulationDelay,
		Rand:            blueprint.NewRand(cfg.Seed),
	})

	if err := blueprints.Rehydrate(context.Background()); err != nil {
		log.Warn("starting from defaults", slog.String("error", err.Error()))
	}

	if cfg.SimulationDelay >= cfg.HTTPServer.Timeout {
		log.Warn("simulation delay exceeds the server timeout",
			slog.Duration("simulation_delay", cfg.SimulationDelay),
			slog.Duration("timeout", cfg.HTTPServer.Timeout),
		)
	}

	if cfg.APITimeout > cfg.HTTPServer.Timeout {
		log.Warn("api timeout exceeds the server timeout, backend calls are capped",
			slog.Duration("api_timeout", cfg.APITimeout),
			slog.Duration("timeout", cfg.HTTPServer.Timeout),
		)
	}

	excelService := generate_excel.NewGenerateService(blueprints)
	chartService := generate_chart.NewGenerateService(blueprints)

	log.Info("server started",
		slog.String("address", cfg.Address),
		slog.String("snapshot_backend", cfg.Snapshot.Backend),
		slog.String("demand_source", cfg.DemandSource),
	)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, blueprints, api, excelService, chartService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

func openSnapshots(cfg config.Snapshot) (snapshotBackend, error) {
	switch cfg.Backend {
	case "memory":
		return memory.New(), nil
	case "badger":
		return badger.New(cfg.BadgerPath)
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "mysql":
		st, err := mysql.New(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Init(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Backend)
	}
}

// dualHandler writes every record to stdout and mirrors errors to errors.log.
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
		if err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		// file errors are ignored, stdout already has the record
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case envLocal, envProd:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile("errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("Cannot open error log file", "error", err)
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}
