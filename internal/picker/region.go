package picker

// RegionRegistry tracks the open/close state of pointer regions.
// A pointer event collapses every registered region except the one it landed in.
type RegionRegistry struct {
	order    []string
	collapse map[string]func()
}

func NewRegionRegistry() *RegionRegistry {
	return &RegionRegistry{collapse: make(map[string]func())}
}

// Register adds a region; re-registering an ID replaces its collapse func.
func (r *RegionRegistry) Register(id string, collapse func()) {
	if _, ok := r.collapse[id]; !ok {
		r.order = append(r.order, id)
	}
	r.collapse[id] = collapse
}

func (r *RegionRegistry) Unregister(id string) {
	if _, ok := r.collapse[id]; !ok {
		return
	}
	delete(r.collapse, id)

	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}
}

// PointerDown collapses every region other than target.
// An empty or unknown target collapses them all.
func (r *RegionRegistry) PointerDown(target string) {
	for _, id := range r.order {
		if id != target {
			r.collapse[id]()
		}
	}
}

// Regions lists the registered region IDs in registration order.
func (r *RegionRegistry) Regions() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}
