package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/hamed0406/statuscheck/internal/config"
	"github.com/hamed0406/statuscheck/internal/logging"
	"github.com/hamed0406/statuscheck/internal/probe"
	"github.com/hamed0406/statuscheck/internal/statuscheck"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A broken log setup must not cost us the one request, so fall back to a no-op logger.
	logger := logging.Nop()
	if cfg, err := config.FromEnv(); err == nil {
		if l, err := logging.NewLogger(cfg.LogDir, "statuscheck", cfg.LogLevel); err == nil {
			logger = l
		}
	}
	defer logger.Close()

	checker := probe.NewHTTPChecker(logger.Logger)
	outcome := statuscheck.New(logger.Logger, checker, os.Stdout).Run(context.Background())

	logger.Debug("exit", zap.Int("code", outcome.ExitCode()))
	return outcome.ExitCode()
}
