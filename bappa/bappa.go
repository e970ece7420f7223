// Package bappa wires a roster index to warehouse-backed storages, so group
// membership follows entity lifetime without the host threading handles by
// hand.
package bappa

import (
	"fmt"

	"github.com/TheBitDrifter/roster"
	"github.com/TheBitDrifter/warehouse"
)

// EntityFor resolves the roster handle for a warehouse entity.
func EntityFor(en warehouse.Entity) roster.Entity {
	return roster.Entity(en.ID())
}

// Assign adds the entity to each of the given groups.
func Assign(idx roster.Index, en warehouse.Entity, groups ...string) {
	for _, group := range groups {
		idx.Add(EntityFor(en), group)
	}
}

// Destroy removes the entities from storage and fires the index's
// destruction hook for each, keeping both in step. The hook runs only after
// storage destruction succeeds, so a locked storage leaves memberships
// intact.
func Destroy(idx roster.Index, sto warehouse.Storage, entities ...warehouse.Entity) error {
	// Resolve handles up front: destruction may recycle the underlying IDs.
	handles := make([]roster.Entity, 0, len(entities))
	for _, en := range entities {
		if en == nil {
			continue
		}
		handles = append(handles, EntityFor(en))
	}
	if err := sto.DestroyEntities(entities...); err != nil {
		return fmt.Errorf("failed to destroy entities: %w", err)
	}
	for _, handle := range handles {
		idx.EntityDestroyed(handle)
	}
	return nil
}
