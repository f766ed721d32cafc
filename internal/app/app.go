package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"multi_accessor/internal/config"
	"multi_accessor/internal/dispatch"
	"multi_accessor/internal/domain"
	"multi_accessor/internal/service/accessor"
	"multi_accessor/internal/trigger"
)

type App struct {
	cfg        *config.Config
	svc        *accessor.Service[string]
	dispatcher *dispatch.Dispatcher[string]
	listener   *trigger.Listener
	table      trigger.Table
	out        *dispatch.Printer
	server     *http.Server
	logger     *zap.Logger
	wg         sync.WaitGroup
}

func NewApp(
	cfg *config.Config,
	svc *accessor.Service[string],
	dispatcher *dispatch.Dispatcher[string],
	listener *trigger.Listener,
	table trigger.Table,
	out *dispatch.Printer,
	router *gin.Engine,
	logger *zap.Logger,
) *App {
	a := &App{
		cfg:        cfg,
		svc:        svc,
		dispatcher: dispatcher,
		listener:   listener,
		table:      table,
		out:        out,
		logger:     logger,
	}
	if cfg.AdminAddr != "" {
		a.server = &http.Server{
			Addr:    cfg.AdminAddr,
			Handler: router,
		}
	}
	return a
}

// Run seeds the registry, installs the signal handlers and blocks in the
// dispatch loop. It returns nil once the terminal trigger has been handled.
// Handlers stay installed until Close so late triggers are buffered, not fatal.
func (a *App) Run(ctx context.Context) error {
	if err := a.svc.Seed(ctx, domain.DefaultInstances()); err != nil {
		return fmt.Errorf("seed registry: %w", err)
	}

	signals := a.listener.Start()

	a.out.Banner(os.Getpid(), a.table.Names())

	if a.server != nil {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			a.logger.Info("admin server listening", zap.String("addr", a.cfg.AdminAddr))
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("admin server stopped", zap.Error(err))
			}
		}()
	}

	return a.dispatcher.Run(ctx, signals)
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("graceful shutdown started")
	var shutdownErr error
	if a.server != nil {
		shutdownErr = a.server.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("graceful shutdown completed")
		return shutdownErr
	case <-ctx.Done():
		if shutdownErr != nil {
			return shutdownErr
		}
		return ctx.Err()
	}
}

// Close restores default signal behavior. Call it after Shutdown and any
// other flushing, right before the process exits.
func (a *App) Close() {
	a.listener.Stop()
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}
