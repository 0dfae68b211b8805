package btree

import (
	"fmt"

	"github.com/treelab/forest"
)

const (
	// DefaultOrder is the fan-out used when Config.Order is left zero.
	DefaultOrder = 32
	// MinOrder is the smallest fan-out for which split and merge are defined.
	MinOrder = 3
)

// Config configures a B-tree set.
type Config[K any] struct {
	// Order is the maximum number of children per internal node. Each node
	// then holds at most Order-1 keys, and every non-root node at least
	// Order/2-1. Zero selects DefaultOrder.
	Order int
	// Less is the strict weak order arranging the keys.
	Less forest.Less[K]
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order must be >= %d", ErrInvalidConfig, MinOrder)
	}
	return nil
}
