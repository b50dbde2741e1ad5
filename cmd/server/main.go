package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nulzo/model-registry-api/cmd"
	"github.com/nulzo/model-registry-api/internal/cli"
	"github.com/nulzo/model-registry-api/internal/config"
	"github.com/nulzo/model-registry-api/internal/discovery"
	"github.com/nulzo/model-registry-api/internal/platform/logger"
	"github.com/nulzo/model-registry-api/internal/platform/otel"
	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/server"
	"github.com/nulzo/model-registry-api/internal/store"
	"github.com/nulzo/model-registry-api/internal/store/file"
	"github.com/nulzo/model-registry-api/internal/store/memory"
	"github.com/nulzo/model-registry-api/internal/store/redisstore"
	"github.com/nulzo/model-registry-api/internal/store/sqlite"

	// Import vendors to trigger init() registration
	_ "github.com/nulzo/model-registry-api/internal/vendors/ollama"
	_ "github.com/nulzo/model-registry-api/internal/vendors/openai"
)

func main() {
	printBanner()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed to load config: %v\n", cli.CrossMark(), err)
		os.Exit(1)
	}
	cmd.CheckForUpdates(cfg.Server.Env)

	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()
	log := logger.Get()

	shutdownTracer, err := otel.InitTracer(otel.Config{
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	}, log, os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	st, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	defer st.Close()

	reg := registry.New()
	restoreState(log, reg, st, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saver := store.NewAutosaver(log, reg, st, cfg.Registry.AutosaveDebounce())
	saverDone := make(chan struct{})
	go func() {
		saver.Run(ctx)
		close(saverDone)
	}()

	disc := discovery.NewService(log, reg)
	srv := server.New(cfg, log, reg, disc)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	go func() {
		log.Info("Server listening",
			zap.String("port", cfg.Server.Port),
			zap.String("env", cfg.Server.Env),
			zap.String("store", cfg.Store.Backend),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	// stop the autosaver after the server so the final flush sees the
	// last mutations
	cancel()
	<-saverDone

	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Error("Tracer shutdown failed", zap.Error(err))
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "file":
		return file.NewFileStore(cfg.Store.File.Path), nil
	case "sqlite":
		return sqlite.NewSQLiteStore(cfg.Store.SQLite.DSN)
	case "redis":
		connectCtx, cancelConnect := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelConnect()
		return redisstore.NewRedisStore(connectCtx, redisstore.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
	case "memory":
		return memory.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

func restoreState(log *zap.Logger, reg *registry.Registry, st store.Store, cfg *config.Config) {
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelLoad()

	state, err := st.Load(loadCtx)
	if err != nil {
		log.Fatal("Failed to load registry state", zap.Error(err))
	}
	if state == nil {
		log.Info("No persisted state, starting empty")
		return
	}

	reg.Restore(*state, registry.RestoreOptions{
		PruneOrphans: cfg.Registry.PruneOrphansOnLoad,
	})
	log.Info("Registry state restored",
		zap.Int("sources", len(state.Sources)),
		zap.Int("models", len(state.Models)),
		zap.Bool("prune_orphans", cfg.Registry.PruneOrphansOnLoad),
	)
}

func printBanner() {
	name := "model-registry"
	out := ""
	for i, r := range name {
		progress := float64(i) / float64(len(name)-1)
		out += cli.Gradient(string(r), cli.BrandBlue, cli.BrandPurple, progress)
	}
	fmt.Printf("%s %s %s\n", cli.Arrow(), cli.Style(cmd.AppVersion, cli.Dim), out)
}
