package domain

import (
	"errors"

	"multi_accessor/internal/model"
)

const (
	ID1 = 1
	ID2 = 2
	ID3 = 3
	ID4 = 4
)

var (
	ErrNilInstance      = errors.New("nil instance")
	ErrCapacityExceeded = errors.New("registry capacity exceeded")
)

// DefaultInstances returns the fixed startup set in registration order.
func DefaultInstances() []*model.Instance[string] {
	return []*model.Instance[string]{
		{ID: ID1, Data: "Hello from ID1"},
		{ID: ID2, Data: "Hello from ID2"},
		{ID: ID3, Data: "Goodbye from ID3"},
		{ID: ID4, Data: "Exit triggered by ID4"},
	}
}
