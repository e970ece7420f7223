package roster

// MaxGroups is the number of distinct groups that can hold a query bit (one
// mask word). Groups past the limit still index normally; they are just
// invisible to mask queries.
const MaxGroups = 64

type groupRegistry struct {
	bitIndices  map[string]uint32
	names       []string
	maxCapacity int
}

func newGroupRegistry(cap int) groupRegistry {
	return groupRegistry{
		bitIndices:  make(map[string]uint32),
		maxCapacity: cap,
	}
}

func (r *groupRegistry) bitFor(name string) (uint32, bool) {
	bit, ok := r.bitIndices[name]
	return bit, ok
}

// register returns the group's bit, assigning the next free one for a new
// name. Materialized-but-empty groups never pass through here, so bits are
// only spent on groups that hold at least one edge.
func (r *groupRegistry) register(name string) (uint32, error) {
	if bit, ok := r.bitIndices[name]; ok {
		return bit, nil
	}
	if len(r.names) >= r.maxCapacity {
		return 0, GroupLimitError{Group: name}
	}
	bit := uint32(len(r.names))
	r.bitIndices[name] = bit
	r.names = append(r.names, name)
	return bit, nil
}
