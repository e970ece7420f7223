/*
Package roster provides named entity groups for games and simulations.

Roster maintains a bidirectional index between opaque entity handles and
group labels, so gameplay code can tag entities ("units", "effects") and
batch-query them in either direction without scanning component storage.

Core Concepts:

  - Entity: An opaque handle supplied by the host storage.
  - Group: A label that exists implicitly once an entity is added to it.
  - Index: The dual-indexed membership structure (group -> entities and
    entity -> groups, kept mutually consistent).
  - Query: A composite And/Or/Not filter over an entity's group memberships.

Basic Usage:

	idx := roster.Factory.NewIndex()

	// Tag entities
	idx.Add(player, "units")
	idx.Add(tank, "units")
	idx.Add(explosion, "effects")

	// Query either direction
	for e := range idx.EntitiesIn("units") {
		// ...
	}
	if idx.InGroup(tank, "units") {
		// ...
	}

	// Composite queries over memberships
	query := roster.Factory.NewQuery()
	burning := query.And("units", "on-fire")
	for e := range idx.EachMatching(burning) {
		// ...
	}

	// Host lifecycle hook: clears all memberships when an entity dies
	idx.EntityDestroyed(tank)

The index assumes exclusive sequential access by a single owner (e.g. one
simulation-tick goroutine). It is not safe for concurrent mutation. Lock and
Unlock guard against mutation during iteration: while locked, mutating calls
are queued and applied on Unlock.

Roster is the grouping layer for the Bappa Framework (see the bappa
subpackage for warehouse storage integration) but also works standalone.
*/
package roster
