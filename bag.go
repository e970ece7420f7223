package roster

import "iter"

// bag is an append-only-ordered collection that permits duplicates. Removal
// matches the first equal element and swaps the last element into the hole,
// so order is only stable between removals.
type bag[T comparable] struct {
	items []T
}

func (b *bag[T]) add(item T) {
	b.items = append(b.items, item)
}

func (b *bag[T]) removeFirst(item T) bool {
	for i, current := range b.items {
		if current == item {
			last := len(b.items) - 1
			b.items[i] = b.items[last]
			var zero T
			b.items[last] = zero
			b.items = b.items[:last]
			return true
		}
	}
	return false
}

// clear empties the bag but keeps its capacity and identity.
func (b *bag[T]) clear() {
	clear(b.items)
	b.items = b.items[:0]
}

func (b *bag[T]) contains(item T) bool {
	for _, current := range b.items {
		if current == item {
			return true
		}
	}
	return false
}

func (b *bag[T]) size() int {
	return len(b.items)
}

func (b *bag[T]) get(i int) T {
	return b.items[i]
}

// each returns a live view: iteration reads the bag as it is at yield time.
func (b *bag[T]) each() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(b.items); i++ {
			if !yield(b.items[i]) {
				return
			}
		}
	}
}

func (b *bag[T]) snapshot() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}
