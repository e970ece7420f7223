package roster

type factory struct{}

var Factory factory

// NewIndex returns an index with duplicate-preserving membership semantics:
// repeated Add calls for the same edge record it repeatedly, and each Remove
// clears one occurrence.
func (f factory) NewIndex() Index {
	return newGroupIndex(false)
}

// NewStrictIndex returns an index that deduplicates on Add, so a single
// Remove always clears the whole membership.
func (f factory) NewStrictIndex() Index {
	return newGroupIndex(true)
}

func (f factory) NewQuery() Query {
	return newQuery()
}
