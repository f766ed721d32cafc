package accessor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"multi_accessor/internal/metrics"
	"multi_accessor/internal/model"
	"multi_accessor/internal/repository"
)

type Service[T any] struct {
	store   repository.InstanceRepository[T]
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewService[T any](store repository.InstanceRepository[T], m *metrics.Metrics, logger *zap.Logger) *Service[T] {
	return &Service[T]{store: store, metrics: m, log: logger}
}

func (s *Service[T]) Register(ctx context.Context, instance *model.Instance[T]) error {
	if err := s.store.Register(ctx, instance); err != nil {
		fields := []zap.Field{zap.Int("records", s.store.Len()), zap.Error(err)}
		if instance != nil {
			fields = append(fields, zap.Int("id", instance.ID))
		}
		s.log.Error("store register instance failed", fields...)
		return err
	}
	s.metrics.SetRecords(s.store.Len())
	return nil
}

// Seed registers instances in order and stops at the first failure.
func (s *Service[T]) Seed(ctx context.Context, instances []*model.Instance[T]) error {
	for i, instance := range instances {
		if err := s.Register(ctx, instance); err != nil {
			return fmt.Errorf("seed instance %d: %w", i, err)
		}
	}
	s.log.Info("registry seeded", zap.Int("records", s.store.Len()))
	return nil
}

func (s *Service[T]) Lookup(ctx context.Context, id int) (*model.Instance[T], bool) {
	instance, ok := s.store.FindFirst(ctx, id)
	s.metrics.ObserveLookup(ok)
	return instance, ok
}
