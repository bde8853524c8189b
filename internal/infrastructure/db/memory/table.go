// Package memory provides process-local implementations of the record stores.
// It is the default store driver and backs most unit tests.
package memory

import (
	"fmt"
	"math"
	"sync"

	"github.com/thejurists/site-api/internal/core/domain"
)

// maxID is the largest id a table hands out or accepts. It matches the signed
// 64-bit ids the mongo driver stores.
const maxID = math.MaxInt64

// table is an insertion-ordered collection keyed by an auto-incrementing id.
// Ids are never reissued: the sequence always stays above the largest id
// ever stored, including ids chosen by the caller.
type table[T any] struct {
	mu     sync.RWMutex
	rows   []T
	index  map[uint64]int
	lastID uint64
	clone  func(T) T
}

func newTable[T any](clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &table[T]{index: make(map[uint64]int), clone: clone}
}

// insert stores v under the next id. assign writes that id into the row.
func (t *table[T]) insert(v T, assign func(*T, uint64)) (uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastID >= maxID {
		return 0, fmt.Errorf("id sequence exhausted")
	}
	t.lastID++
	id := t.lastID
	row := t.clone(v)
	assign(&row, id)
	t.push(id, row)
	return id, nil
}

// put replaces the row stored under id, or appends it. It reports whether a
// new row was added.
func (t *table[T]) put(id uint64, v T) (bool, error) {
	if id == 0 || id > maxID {
		return false, fmt.Errorf("%w: id %d out of range", domain.ErrInvalidInput, id)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if i, ok := t.index[id]; ok {
		t.rows[i] = t.clone(v)
		return false, nil
	}
	t.push(id, t.clone(v))
	if id > t.lastID {
		t.lastID = id
	}
	return true, nil
}

func (t *table[T]) get(id uint64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(t.rows[i]), true
}

// update applies fn to the row stored under id in place.
func (t *table[T]) update(id uint64, fn func(*T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.index[id]
	if !ok {
		return false
	}
	fn(&t.rows[i])
	return true
}

// filter returns copies of the rows matching keep, in insertion order.
func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		if keep == nil || keep(r) {
			out = append(out, t.clone(r))
		}
	}
	return out
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *table[T]) push(id uint64, row T) {
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
}
