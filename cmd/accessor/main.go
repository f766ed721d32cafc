package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"multi_accessor/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// SIGINT is a trigger here, so only SIGTERM cancels the context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	// stdout is reserved for report lines.
	gin.DefaultWriter = os.Stderr

	app, err := InitializeApp()
	if err != nil {
		log.Printf("init app: %v", err)
		return 1
	}
	logger := app.Logger()
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := telemetry.Init(ctx, app.Config())
	if err != nil {
		logger.Error("telemetry init failed", zap.Error(err))
		return 1
	}

	runErr := app.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", zap.Error(err))
	}
	app.Close()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("app stopped", zap.Error(runErr))
		return 1
	}
	return 0
}
