package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"marketcrown/backend-go/internal/config"
	internalhttp "marketcrown/backend-go/internal/http"
	"marketcrown/backend-go/internal/logging"
	"marketcrown/backend-go/internal/services"
	"marketcrown/backend-go/internal/storage"
	"marketcrown/backend-go/internal/storage/memory"
	"marketcrown/backend-go/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load(
		".env",
		".env.local",
	)
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	regions, err := config.LoadRegions(cfg.RegionsFile)
	if err != nil {
		log.WithError(err).Fatal("load regions")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store := openStore(ctx, cfg, log)
	if err := store.Seed(ctx, time.Now().UTC().Format("2006-01-02")); err != nil {
		log.WithError(err).Error("seed store")
	}
	cancel()

	cache := services.NewCache(cfg, log)
	svc := services.Wire(cfg, regions, cache, store, log)
	h := internalhttp.NewRouter(cfg, cache, svc, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":  srv.Addr,
			"cache": cache.Backend(),
			"store": store.Backend(),
		}).Info("marketcrown backend listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
}

func openStore(ctx context.Context, cfg config.Config, log logrus.FieldLogger) storage.Store {
	if cfg.DatabaseURL == "" {
		return memory.New()
	}
	pg, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Warn("postgres unavailable, using in-memory store")
		return memory.New()
	}
	return pg
}
