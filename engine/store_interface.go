package engine

import (
	"github.com/lixenwraith/vi-invaders/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}

// QueryableStore extends AnyStore with the entity listing needed by Query
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
