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

	"playstore/cerror"
	"playstore/config"
	"playstore/server"
	"playstore/store"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func newSource(cfg *config.Config) store.Source {
	if cfg.DatabaseURL != "" {
		return store.PostgresSource{URL: cfg.DatabaseURL}
	}
	return store.JSONSource{Path: cfg.DataFile}
}

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer logger.Sync()
	cerror.SetLogger(logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	catalog, err := store.NewCatalog(ctx, newSource(cfg))
	cancel()
	if err != nil {
		logger.Fatal("Ошибка загрузки данных", zap.Error(err))
	}
	logger.Info("Данные загружены", zap.Int("apps", catalog.Len()))

	metrics := server.NewMetrics()
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: server.NewRouter(catalog, server.Options{
			Logger:      logger,
			Metrics:     metrics,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		go func() {
			logger.Info("Метрики доступны", zap.String("addr", cfg.MetricsAddr))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("Ошибка сервера метрик", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("Сервер запущен на http://localhost:" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка сервера", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
}
