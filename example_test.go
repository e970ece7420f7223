package roster_test

import (
	"fmt"

	"github.com/TheBitDrifter/roster"
)

// Example shows basic roster usage with tagging, queries, and teardown
func Example_basic() {
	idx := roster.Factory.NewIndex()

	const (
		player roster.Entity = iota + 1
		tank
		explosion
	)

	// Tag entities
	idx.Add(player, "units")
	idx.Add(tank, "units")
	idx.Add(tank, "armored")
	idx.Add(explosion, "effects")

	fmt.Println("units:", idx.EntitiesSnapshot("units"))
	fmt.Println("tank armored:", idx.InGroup(tank, "armored"))

	// Composite queries over memberships
	query := roster.Factory.NewQuery()
	armoredUnits := query.And("units", "armored")
	for e := range idx.EachMatching(armoredUnits) {
		fmt.Println("armored unit:", e)
	}

	// Host lifecycle hook clears every membership but keeps groups known
	idx.EntityDestroyed(tank)
	fmt.Println("units after destroy:", idx.EntitiesSnapshot("units"))
	fmt.Println("groups:", idx.Groups())

	// Output:
	// units: [1 2]
	// tank armored: true
	// armored unit: 2
	// units after destroy: [1]
	// groups: [armored effects units]
}
