package roster

import (
	"iter"
	"slices"

	"github.com/TheBitDrifter/mask"
)

var _ Index = &groupIndex{}

// memberRecord is the reverse side of the index for one entity: the groups
// it belongs to (duplicates included) and the corresponding membership mask.
type memberRecord struct {
	groups bag[string]
	mask   mask.Mask
}

type groupIndex struct {
	strict          bool
	locked          bool
	entitiesByGroup map[string]*bag[Entity]
	groupsByEntity  map[Entity]*memberRecord
	registry        groupRegistry
	opQueue         opQueue
}

func newGroupIndex(strict bool) *groupIndex {
	return &groupIndex{
		strict:          strict,
		entitiesByGroup: make(map[string]*bag[Entity]),
		groupsByEntity:  make(map[Entity]*memberRecord),
		registry:        newGroupRegistry(MaxGroups),
		opQueue:         newOpQueue(),
	}
}

func (gi *groupIndex) Add(e Entity, group string) {
	if group == "" {
		return
	}
	if gi.locked {
		gi.opQueue.enqueue(operation{typ: opAdd, entity: e, group: group})
		return
	}
	gi.addNow(e, group)
}

func (gi *groupIndex) AddChecked(e Entity, group string) error {
	if group == "" {
		return nil
	}
	if gi.locked {
		return LockedIndexError{}
	}
	return gi.addNow(e, group)
}

func (gi *groupIndex) addNow(e Entity, group string) error {
	if gi.strict && gi.InGroup(e, group) {
		return nil
	}
	entities, found := gi.entitiesByGroup[group]
	if !found {
		entities = &bag[Entity]{}
		gi.entitiesByGroup[group] = entities
	}
	entities.add(e)

	rec, found := gi.groupsByEntity[e]
	if !found {
		rec = &memberRecord{}
		gi.groupsByEntity[e] = rec
	}
	rec.groups.add(group)

	bit, err := gi.registry.register(group)
	if err != nil {
		// Edge stays indexed either way; past the bit limit the group is
		// simply unreachable through mask queries.
		return err
	}
	rec.mask.Mark(bit)
	return nil
}

func (gi *groupIndex) Remove(e Entity, group string) {
	if gi.locked {
		gi.opQueue.enqueue(operation{typ: opRemove, entity: e, group: group})
		return
	}
	gi.removeNow(e, group)
}

func (gi *groupIndex) RemoveChecked(e Entity, group string) error {
	if gi.locked {
		return LockedIndexError{}
	}
	gi.removeNow(e, group)
	return nil
}

func (gi *groupIndex) removeNow(e Entity, group string) {
	if entities, found := gi.entitiesByGroup[group]; found {
		entities.removeFirst(e)
	}
	if rec, found := gi.groupsByEntity[e]; found {
		rec.groups.removeFirst(group)
		gi.refreshMask(rec)
	}
}

func (gi *groupIndex) RemoveFromAllGroups(e Entity) {
	if gi.locked {
		gi.opQueue.enqueue(operation{typ: opRemoveAll, entity: e})
		return
	}
	gi.removeFromAllNow(e)
}

func (gi *groupIndex) removeFromAllNow(e Entity) {
	rec, found := gi.groupsByEntity[e]
	if !found {
		return
	}
	// One removal per recorded edge: a duplicated group appears duplicated
	// here too, so every occurrence on the forward side gets cleared.
	for i := 0; i < rec.groups.size(); i++ {
		if entities, found := gi.entitiesByGroup[rec.groups.get(i)]; found {
			entities.removeFirst(e)
		}
	}
	rec.groups.clear()
	rec.mask = mask.Mask{}
}

func (gi *groupIndex) EntityDestroyed(e Entity) {
	gi.RemoveFromAllGroups(e)
}

// refreshMask rebuilds the membership mask from the surviving group bag.
// Unmarking on removal would be wrong when a duplicate edge survives.
func (gi *groupIndex) refreshMask(rec *memberRecord) {
	var m mask.Mask
	for i := 0; i < rec.groups.size(); i++ {
		if bit, ok := gi.registry.bitFor(rec.groups.get(i)); ok {
			m.Mark(bit)
		}
	}
	rec.mask = m
}

func (gi *groupIndex) EntitiesIn(group string) iter.Seq[Entity] {
	return gi.readOrCreate(group).each()
}

func (gi *groupIndex) EntitiesSnapshot(group string) []Entity {
	return gi.readOrCreate(group).snapshot()
}

// readOrCreate materializes unknown groups: callers depend on a queried
// group subsequently enumerating as known, even while empty.
func (gi *groupIndex) readOrCreate(group string) *bag[Entity] {
	entities, found := gi.entitiesByGroup[group]
	if !found {
		entities = &bag[Entity]{}
		gi.entitiesByGroup[group] = entities
	}
	return entities
}

func (gi *groupIndex) GroupsOf(e Entity) (iter.Seq[string], bool) {
	rec, found := gi.groupsByEntity[e]
	if !found {
		return nil, false
	}
	return rec.groups.each(), true
}

func (gi *groupIndex) InAnyGroup(e Entity) bool {
	_, found := gi.groupsByEntity[e]
	return found
}

func (gi *groupIndex) InGroup(e Entity, group string) bool {
	if group == "" {
		return false
	}
	rec, found := gi.groupsByEntity[e]
	if !found {
		return false
	}
	return rec.groups.contains(group)
}

func (gi *groupIndex) Groups() []string {
	names := make([]string, 0, len(gi.entitiesByGroup))
	for name := range gi.entitiesByGroup {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (gi *groupIndex) GroupCount() int {
	return len(gi.entitiesByGroup)
}

func (gi *groupIndex) Size(group string) int {
	if entities, found := gi.entitiesByGroup[group]; found {
		return entities.size()
	}
	return 0
}

func (gi *groupIndex) BitFor(group string) (uint32, bool) {
	return gi.registry.bitFor(group)
}

func (gi *groupIndex) MaskOf(e Entity) (mask.Mask, bool) {
	rec, found := gi.groupsByEntity[e]
	if !found {
		return mask.Mask{}, false
	}
	return rec.mask, true
}

func (gi *groupIndex) EachMatching(node QueryNode) iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		if node == nil {
			return
		}
		ids := make([]Entity, 0, len(gi.groupsByEntity))
		for e := range gi.groupsByEntity {
			ids = append(ids, e)
		}
		slices.Sort(ids)
		for _, e := range ids {
			if !node.Evaluate(gi.groupsByEntity[e].mask, gi) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (gi *groupIndex) Locked() bool {
	return gi.locked
}

func (gi *groupIndex) Lock() {
	gi.locked = true
}

func (gi *groupIndex) Unlock() {
	gi.locked = false
	gi.processOperationQueue()
}
