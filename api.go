package roster

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque handle supplied by the host storage. The index never
// creates, validates, or destroys entities; it only tracks their memberships.
type Entity int

// Index is a bidirectional mapping between entities and named groups.
//
// The mutating operations (Add, Remove, RemoveFromAllGroups, EntityDestroyed)
// never fail: while the index is locked they are queued and applied on
// Unlock. The Checked variants apply immediately and report LockedIndexError
// instead of queueing.
type Index interface {
	// Add inserts the (entity, group) membership edge, lazily creating
	// either side's collection. It does not deduplicate: adding the same
	// edge twice records it twice on both sides. An empty group label is
	// ignored.
	Add(e Entity, group string)

	// AddChecked is Add without queueing: it returns LockedIndexError when
	// the index is locked, and GroupLimitError when the group is new but no
	// query bit remains (the edge is still inserted in that case, it just
	// stays invisible to mask queries).
	AddChecked(e Entity, group string) error

	// Remove removes one occurrence of the edge from both sides. It is a
	// no-op if either side does not hold the edge, and never deletes an
	// emptied collection.
	Remove(e Entity, group string)

	// RemoveChecked is Remove without queueing.
	RemoveChecked(e Entity, group string) error

	// RemoveFromAllGroups removes the entity from every group it belongs to
	// and clears (but keeps) the entity's own group collection.
	RemoveFromAllGroups(e Entity)

	// EntityDestroyed is the host lifecycle hook, invoked once per entity
	// destruction before the handle may be reused. It delegates to
	// RemoveFromAllGroups.
	EntityDestroyed(e Entity)

	// EntitiesIn returns a live read-only view of the group's entities.
	// Unknown groups are materialized as empty: after the call the group
	// enumerates as known. Iteration order is insertion order, except that
	// removals swap the last element into the vacated slot.
	EntitiesIn(group string) iter.Seq[Entity]

	// EntitiesSnapshot is the copying alternative to EntitiesIn, with the
	// same materialization side effect.
	EntitiesSnapshot(group string) []Entity

	// GroupsOf returns a live view of the entity's groups, or ok=false if
	// the entity was never added to any group. Unlike EntitiesIn it does
	// not materialize an entry.
	GroupsOf(e Entity) (groups iter.Seq[string], ok bool)

	// InAnyGroup reports whether the entity has a group collection at all,
	// even an empty one: it stays true after every membership is removed.
	InAnyGroup(e Entity) bool

	// InGroup reports whether the entity's collection contains the group.
	// Always false for the empty label.
	InGroup(e Entity, group string) bool

	// Groups returns all known group names in sorted order, including
	// groups that are currently empty or were only materialized by a read.
	Groups() []string

	GroupCount() int

	// Size returns the group's current entity count (duplicates included)
	// without materializing unknown groups.
	Size(group string) int

	// BitFor returns the query bit assigned to the group, if it has one.
	BitFor(group string) (uint32, bool)

	// MaskOf returns the entity's membership mask, or ok=false if the
	// entity has no group collection.
	MaskOf(e Entity) (m mask.Mask, ok bool)

	// EachMatching iterates, in ascending entity order, the entities whose
	// membership mask satisfies the query node. Duplicate edges do not
	// yield duplicate entities.
	EachMatching(node QueryNode) iter.Seq[Entity]

	Locked() bool
	Lock()
	Unlock()
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(m mask.Mask, idx Index) bool
}
