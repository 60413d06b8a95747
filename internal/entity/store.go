package entity

import "go-grid-defense/internal/types"

// Store holds one component type keyed by entity. Unlike a bare map it keeps
// insertion order, so every scan visits entities oldest first and tie-breaks
// that depend on iteration order are reproducible.
type Store[T any] struct {
	index map[types.EntityID]int
	ids   []types.EntityID
	items []*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{index: make(map[types.EntityID]int)}
}

// Set adds or replaces the component of id. Replacing keeps the original slot.
func (s *Store[T]) Set(id types.EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.items[i] = c
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.items = append(s.items, c)
}

func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove deletes id and keeps the order of the rest.
func (s *Store[T]) Remove(id types.EntityID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	copy(s.ids[i:], s.ids[i+1:])
	copy(s.items[i:], s.items[i+1:])
	last := len(s.ids) - 1
	s.items[last] = nil
	s.ids = s.ids[:last]
	s.items = s.items[:last]
	for j := i; j < last; j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

func (s *Store[T]) Len() int {
	return len(s.ids)
}

// IDs returns a snapshot of the ids in insertion order.
func (s *Store[T]) IDs() []types.EntityID {
	return append([]types.EntityID(nil), s.ids...)
}

// Each visits entries in insertion order until fn returns false.
// fn must not add or remove entries; use ECS.MarkForRemoval instead.
func (s *Store[T]) Each(fn func(id types.EntityID, c *T) bool) {
	for i, id := range s.ids {
		if !fn(id, s.items[i]) {
			return
		}
	}
}

// Clear drops every entry.
func (s *Store[T]) Clear() {
	s.index = make(map[types.EntityID]int)
	s.ids = nil
	s.items = nil
}
