package entity

// World owns every entity of a level, keyed by ID. Entities may be destroyed while the
// world is being iterated; they are skipped from then on.
type World struct {
	next  ID
	items map[ID]Entity
	order []ID
}

func NewWorld() *World {
	return &World{items: make(map[ID]Entity)}
}

// Spawn adds e and assigns its ID. IDs are never reused.
func (w *World) Spawn(e Entity) ID {
	w.next++
	e.bind(w.next)
	w.items[w.next] = e
	w.order = append(w.order, w.next)
	return w.next
}

// Destroy removes the entity; it reports false if it was already gone.
func (w *World) Destroy(id ID) bool {
	if _, ok := w.items[id]; !ok {
		return false
	}
	delete(w.items, id)
	return true
}

// DestroyAll empties the world.
func (w *World) DestroyAll() {
	w.items = make(map[ID]Entity)
	w.order = nil
}

func (w *World) Get(id ID) (Entity, bool) {
	e, ok := w.items[id]
	return e, ok
}

func (w *World) Alive(id ID) bool {
	_, ok := w.items[id]
	return ok
}

func (w *World) Len() int {
	return len(w.items)
}

// Count returns how many live entities have the given kind.
func (w *World) Count(k Kind) int {
	n := 0
	for _, e := range w.items {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Each calls fn for live entities in spawn order. Entities spawned during the walk are
// not visited; destroyed ones are skipped.
func (w *World) Each(fn func(Entity)) {
	ids := w.order
	n := len(ids)
	for i := 0; i < n && i < len(ids); i++ {
		if e, ok := w.items[ids[i]]; ok {
			fn(e)
		}
	}
	w.compact()
}

func (w *World) compact() {
	if len(w.order) == len(w.items) {
		return
	}
	live := w.order[:0]
	for _, id := range w.order {
		if _, ok := w.items[id]; ok {
			live = append(live, id)
		}
	}
	w.order = live
}
