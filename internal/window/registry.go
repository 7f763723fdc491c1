package window

import "sync"

// Registry is the set of live windows owned by a Platform. It is the only
// structure in this package that may be touched from more than one goroutine.
type Registry struct {
	mu      sync.Mutex
	windows map[*Window]struct{}
	order   []*Window
}

func NewRegistry() *Registry {
	return &Registry{windows: make(map[*Window]struct{})}
}

func (r *Registry) Add(w *Window) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.windows[w]; ok {
		return
	}
	r.windows[w] = struct{}{}
	r.order = append(r.order, w)
}

// Remove drops w and reports whether it was registered.
func (r *Registry) Remove(w *Window) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.windows[w]; !ok {
		return false
	}
	delete(r.windows, w)
	for i, o := range r.order {
		if o == w {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Contains(w *Window) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.windows[w]
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.windows)
}

// Windows returns a snapshot in registration order.
func (r *Registry) Windows() []*Window {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*Window(nil), r.order...)
}
