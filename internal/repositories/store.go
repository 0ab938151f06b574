package repositories

import (
	"fmt"

	"goflix/internal/models"
)

// Entity is anything the generic store can hold: it must expose its integer
// id and accept the one assigned on save.
type Entity interface {
	GetID() int
	SetID(id int)
}

// Store is an in-memory collection with sequential id assignment. Ids start
// at 1, grow monotonically and are never reused, even after deletes.
// Uniqueness of anything other than the id (emails for instance) is the
// owning service's responsibility.
type Store[T Entity] struct {
	items  []T
	nextID int
}

// NewStore creates an empty store.
func NewStore[T Entity]() *Store[T] {
	return &Store[T]{nextID: 1}
}

// Save assigns the next id and appends the entity.
func (s *Store[T]) Save(entity T) T {
	entity.SetID(s.nextID)
	s.nextID++
	s.items = append(s.items, entity)
	return entity
}

// FindByID scans for the entity with the given id. Absence is reported via
// the bool, never as an error.
func (s *Store[T]) FindByID(id int) (T, bool) {
	for _, item := range s.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns a copy of the backing slice so callers cannot bypass the
// store by mutating its internals.
func (s *Store[T]) FindAll() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Update replaces the stored entity sharing the id. It fails with
// ErrNotFound, leaving the store untouched, when no such entity exists.
func (s *Store[T]) Update(entity T) error {
	for i, item := range s.items {
		if item.GetID() == entity.GetID() {
			s.items[i] = entity
			return nil
		}
	}
	return fmt.Errorf("update id %d: %w", entity.GetID(), models.ErrNotFound)
}

// Delete removes the entity with the given id, failing with ErrNotFound
// when it is absent.
func (s *Store[T]) Delete(id int) error {
	for i, item := range s.items {
		if item.GetID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete id %d: %w", id, models.ErrNotFound)
}
