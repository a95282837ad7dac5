package object

// arena stores entities of one kind. Removal is O(1) and leaves a hole
// that compact squeezes out; iteration order is insertion order.
type arena[T any] struct {
	entries []arenaEntry[T]
	index   map[ID]int
	live    int
}

type arenaEntry[T any] struct {
	id  ID
	val *T
}

func newArena[T any]() arena[T] {
	return arena[T]{index: make(map[ID]int)}
}

func (a *arena[T]) add(id ID, v *T) {
	a.index[id] = len(a.entries)
	a.entries = append(a.entries, arenaEntry[T]{id: id, val: v})
	a.live++
}

func (a *arena[T]) get(id ID) (*T, bool) {
	i, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return a.entries[i].val, true
}

func (a *arena[T]) remove(id ID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	delete(a.index, id)
	a.entries[i].val = nil
	a.live--
	return true
}

func (a *arena[T]) each(fn func(ID, *T)) {
	// Entries added during iteration are not visited.
	n := len(a.entries)
	for i := 0; i < n; i++ {
		if e := a.entries[i]; e.val != nil {
			fn(e.id, e.val)
		}
	}
}

func (a *arena[T]) len() int {
	return a.live
}

func (a *arena[T]) compact() {
	if a.live == len(a.entries) {
		return
	}
	kept := a.entries[:0]
	for _, e := range a.entries {
		if e.val != nil {
			a.index[e.id] = len(kept)
			kept = append(kept, e)
		}
	}
	clear(a.entries[len(kept):])
	a.entries = kept
}

func (a *arena[T]) clear() {
	clear(a.entries)
	a.entries = a.entries[:0]
	clear(a.index)
	a.live = 0
}
