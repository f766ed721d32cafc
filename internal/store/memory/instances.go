package memory

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"multi_accessor/internal/domain"
	"multi_accessor/internal/model"
)

func (s *Store[T]) Register(_ context.Context, instance *model.Instance[T]) error {
	if instance == nil {
		return domain.ErrNilInstance
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == cap(s.records) {
		if err := s.grow(); err != nil {
			return err
		}
	}
	s.records = append(s.records, instance)
	return nil
}

// grow doubles capacity, or allocates the initial block on first use.
// Caller holds s.mu.
func (s *Store[T]) grow() error {
	current := cap(s.records)
	next := s.opts.initialCapacity
	if s.records != nil {
		next = current * 2
	}
	if limit := s.opts.maxRecords; limit > 0 && next > limit {
		if len(s.records) >= limit {
			return fmt.Errorf("grow past %d records: %w", limit, domain.ErrCapacityExceeded)
		}
		next = limit
	}

	grown := make([]*model.Instance[T], len(s.records), next)
	copy(grown, s.records)
	if s.records != nil {
		s.log.Debug("registry grown", zap.Int("from", current), zap.Int("to", next))
	}
	s.records = grown
	return nil
}

// FindFirst returns the earliest registered instance with the given id.
func (s *Store[T]) FindFirst(_ context.Context, id int) (*model.Instance[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if record.ID == id {
			return record, true
		}
	}
	return nil, false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cap(s.records)
}
