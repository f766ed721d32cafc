package store

import (
	"go.uber.org/zap"
	"multi_accessor/internal/config"
	"multi_accessor/internal/repository"
	"multi_accessor/internal/store/memory"
)

func NewRegistry(cfg *config.Config, logger *zap.Logger) repository.InstanceRepository[string] {
	return memory.New[string](logger,
		memory.WithInitialCapacity(cfg.RegistryInitialCapacity),
		memory.WithMaxRecords(cfg.RegistryMaxRecords),
	)
}
