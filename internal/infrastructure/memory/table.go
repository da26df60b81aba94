package memory

// table is one keyed collection with its own identifier sequence.
// It is not safe for concurrent use; Store serializes access.
type table[T any] struct {
	nextID int64
	rows   map[int64]T
	order  []int64
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[int64]T)}
}

// insert assigns the next identifier and stores the row built for it.
func (t *table[T]) insert(build func(id int64) T) T {
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// find returns the first row in insertion order that matches.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) len() int { return len(t.rows) }
