package repository

import (
	"context"

	"multi_accessor/internal/model"
)

type InstanceRepository[T any] interface {
	Register(ctx context.Context, instance *model.Instance[T]) error
	FindFirst(ctx context.Context, id int) (*model.Instance[T], bool)
	Len() int
}
