// Package memstore provides the in-memory record store that backs every repository.
package memstore

import (
	"errors"
	"sync"
)

var ErrDuplicateID = errors.New("record with this id already exists")

// Store is a concurrency-safe map of records that remembers insertion order,
// so listings are stable between calls.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func New[T any]() *Store[T] {
	return &Store[T]{items: make(map[string]T)}
}

func (s *Store[T]) Insert(id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return ErrDuplicateID
	}
	s.items[id] = v
	s.order = append(s.order, id)
	return nil
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	return v, ok
}

// Find returns the first record, in insertion order, for which match is true.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if v := s.items[id]; match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns all records for which match is true, in insertion order.
// A nil match returns everything.
func (s *Store[T]) Filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []T
	for _, id := range s.order {
		v := s.items[id]
		if match == nil || match(v) {
			result = append(result, v)
		}
	}
	return result
}

// Paginate cuts one page out of items and returns it with the total count.
// Page and pageSize below 1 fall back to 1 and 20.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total := len(items)
	// Checked against the page count since (page-1)*pageSize can overflow.
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	if page > pages {
		return nil, total
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], total
}
