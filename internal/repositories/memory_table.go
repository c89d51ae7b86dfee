package repositories

import (
	"iter"
	"slices"
)

// table holds the rows of one entity type keyed by a monotonically increasing
// id. Iteration follows insertion order, which is also ascending id order.
type table[T any] struct {
	seq  uint
	rows map[uint]*T
	ids  []uint
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]*T)}
}

func (t *table[T]) nextID() uint {
	t.seq++
	return t.seq
}

func (t *table[T]) put(id uint, row *T) {
	if _, ok := t.rows[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = row
}

func (t *table[T]) get(id uint) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) delete(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	if i, found := slices.BinarySearch(t.ids, id); found {
		t.ids = slices.Delete(t.ids, i, i+1)
	}
	return true
}

func (t *table[T]) all() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, id := range t.ids {
			if !yield(t.rows[id]) {
				return
			}
		}
	}
}

// find returns the first row, in insertion order, for which match is true.
func (t *table[T]) find(match func(*T) bool) (*T, bool) {
	for row := range t.all() {
		if match(row) {
			return row, true
		}
	}
	return nil, false
}

func (t *table[T]) count() int {
	return len(t.ids)
}
