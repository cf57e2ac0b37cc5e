package entity

// table is a sparse set of components keyed by entity ID.
// Values are packed densely so iteration skips empty slots.
type table[T any] struct {
	ids    []ID
	values []T
	sparse []int // ID-1 -> index into ids/values, -1 when absent
}

func (t *table[T]) has(id ID) bool {
	if id <= 0 || int(id)-1 >= len(t.sparse) {
		return false
	}
	idx := t.sparse[id-1]
	return idx >= 0 && idx < len(t.ids) && t.ids[idx] == id
}

func (t *table[T]) get(id ID) (T, bool) {
	if !t.has(id) {
		var zero T
		return zero, false
	}
	return t.values[t.sparse[id-1]], true
}

func (t *table[T]) set(id ID, v T) {
	if id <= 0 {
		return
	}
	for int(id)-1 >= len(t.sparse) {
		t.sparse = append(t.sparse, -1)
	}
	if t.has(id) {
		t.values[t.sparse[id-1]] = v
		return
	}
	t.ids = append(t.ids, id)
	t.values = append(t.values, v)
	t.sparse[id-1] = len(t.ids) - 1
}

func (t *table[T]) remove(id ID) {
	if !t.has(id) {
		return
	}
	idx := t.sparse[id-1]
	last := len(t.ids) - 1
	lastID := t.ids[last]

	t.ids[idx] = t.ids[last]
	t.values[idx] = t.values[last]
	t.sparse[lastID-1] = idx

	t.ids = t.ids[:last]
	t.values = t.values[:last]
	t.sparse[id-1] = -1
}

func (t *table[T]) len() int {
	return len(t.ids)
}
