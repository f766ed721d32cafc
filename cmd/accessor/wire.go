//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"multi_accessor/internal/app"
	"multi_accessor/internal/config"
	"multi_accessor/internal/dispatch"
	"multi_accessor/internal/http"
	"multi_accessor/internal/http/controller"
	"multi_accessor/internal/logging"
	"multi_accessor/internal/metrics"
	"multi_accessor/internal/queue/rabbitmq"
	"multi_accessor/internal/service/accessor"
	"multi_accessor/internal/store"
	"multi_accessor/internal/trigger"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		metrics.New,
		store.NewRegistry,
		accessor.NewService[string],
		trigger.DefaultTable,
		trigger.NewListener,
		dispatch.NewPrinter,
		rabbitmq.NewPublisher,
		dispatch.NewDispatcher[string],
		controller.NewHandler,
		http.NewRouter,
		app.NewApp,
	)
	return &app.App{}, nil
}
