package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statuscheck/internal/config"
	"github.com/hamed0406/statuscheck/internal/httpapi"
	"github.com/hamed0406/statuscheck/internal/logging"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewLogger(cfg.LogDir, "statusbin", cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.StatusbinAddr,
		Handler:           httpapi.NewServer(logger.Logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("statusbin_shutdown_error", zap.Error(err))
		}
	}()

	logger.Info("statusbin_listen", zap.String("addr", cfg.StatusbinAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("statusbin_listen_error", zap.Error(err))
		_ = logger.Close()
		log.Fatal(err)
	}
	logger.Info("statusbin_stopped")
}
