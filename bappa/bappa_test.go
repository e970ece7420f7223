package bappa_test

import (
	"testing"

	"github.com/TheBitDrifter/roster"
	"github.com/TheBitDrifter/roster/bappa"
	"github.com/TheBitDrifter/table"
	"github.com/TheBitDrifter/warehouse"
)

// Test component type
type Position struct {
	X, Y float64
}

// TestAssignAndDestroy tests group assignment against a live warehouse
// storage and teardown through Destroy
func TestAssignAndDestroy(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := warehouse.Factory.NewStorage(schema)
	posComp := warehouse.FactoryNewComponent[Position]()

	entities, err := storage.NewEntities(3, posComp)
	if err != nil {
		t.Fatalf("Failed to create entities: %v", err)
	}

	idx := roster.Factory.NewIndex()
	bappa.Assign(idx, entities[0], "units")
	bappa.Assign(idx, entities[1], "units", "armored")
	bappa.Assign(idx, entities[2], "effects")

	if got := idx.Size("units"); got != 2 {
		t.Errorf("Size(\"units\") = %d, want 2", got)
	}
	if !idx.InGroup(bappa.EntityFor(entities[1]), "armored") {
		t.Errorf("assigned entity missing from its group")
	}

	// Resolve before destruction: the storage may recycle the ID
	armored := bappa.EntityFor(entities[1])

	if err := bappa.Destroy(idx, storage, entities[1]); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if idx.InGroup(armored, "units") || idx.InGroup(armored, "armored") {
		t.Errorf("destroyed entity still reports membership")
	}
	if !idx.InAnyGroup(armored) {
		t.Errorf("InAnyGroup after Destroy = false, want true (empty collection persists)")
	}
	if got := idx.Size("units"); got != 1 {
		t.Errorf("Size(\"units\") after Destroy = %d, want 1", got)
	}
}

// TestDestroySkipsNil tests that nil entities pass through harmlessly
func TestDestroySkipsNil(t *testing.T) {
	schema := table.Factory.NewSchema()
	storage := warehouse.Factory.NewStorage(schema)

	idx := roster.Factory.NewIndex()
	if err := bappa.Destroy(idx, storage, nil); err != nil {
		t.Errorf("Destroy with nil entity = %v, want nil", err)
	}
}
