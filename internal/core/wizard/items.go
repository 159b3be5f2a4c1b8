package wizard

import "github.com/rekanban/rekanban/pkg/randid"

const itemIDLength = 12

// item is implemented by entities an ItemStore can hold.
type item[T any] interface {
	id() string
	withID(string) T
	normalize() T
}

// ItemStore is an ordered in-memory collection addressed by item ID.
// All operations are total: unknown IDs are no-ops, and nothing here
// performs I/O or validation. Validity is evaluated continuously
// downstream by the step evaluator, not enforced at storage time.
type ItemStore[T item[T]] struct {
	items []T
}

// NewItemStore creates an empty store.
func NewItemStore[T item[T]]() *ItemStore[T] {
	return &ItemStore[T]{}
}

// Add normalizes the candidate, assigns it a fresh identifier, appends it,
// and returns the stored copy.
func (s *ItemStore[T]) Add(candidate T) T {
	stored := candidate.normalize().withID(randid.Generate(itemIDLength))
	s.items = append(s.items, stored)
	return stored
}

// Update applies fn to the item matching id and stores the normalized
// result. The identifier is preserved regardless of what fn returns.
// No-op if id is not present.
func (s *ItemStore[T]) Update(id string, fn func(T) T) {
	for i, it := range s.items {
		if it.id() == id {
			s.items[i] = fn(it).normalize().withID(id)
			return
		}
	}
}

// Remove deletes the item matching id, preserving the order of the rest.
// No-op if id is not present.
func (s *ItemStore[T]) Remove(id string) {
	for i, it := range s.items {
		if it.id() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Get returns the item matching id.
func (s *ItemStore[T]) Get(id string) (T, bool) {
	for _, it := range s.items {
		if it.id() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Items returns the collection in insertion order. The returned slice is
// a copy; mutating it does not affect the store.
func (s *ItemStore[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored items.
func (s *ItemStore[T]) Len() int {
	return len(s.items)
}
