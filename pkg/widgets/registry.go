package widgets

import (
	"fmt"
	"slices"
)

// Widget is one dashboard tile. ID is assigned by the Registry and never
// changes; Data is replaced or mutated by refreshes.
type Widget struct {
	ID    string `yaml:"id" json:"id"`
	Kind  Kind   `yaml:"type" json:"type"`
	Title string `yaml:"title" json:"title"`
	Data  Data   `yaml:"data" json:"data"`
}

// Registry is the ordered collection of live widgets. Iteration order is
// insertion order and drives layout order.
//
// A Registry is owned by a single goroutine (the dashboard event loop) and
// is not safe for concurrent use.
type Registry struct {
	next  int
	order []*Widget
}

// NewRegistry returns an empty registry whose first widget id is widget-0.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a new widget of the given kind carrying data and returns it.
// Ids come from a monotonic counter and are never reused, even after
// removal.
func (r *Registry) Add(kind Kind, data Data) *Widget {
	w := &Widget{
		ID:    fmt.Sprintf("widget-%d", r.next),
		Kind:  kind,
		Title: kind.Title(),
		Data:  data,
	}
	r.next++
	r.order = append(r.order, w)
	return w
}

// Find returns the widget with the given id, or false if it is not live.
func (r *Registry) Find(id string) (*Widget, bool) {
	if i := r.index(id); i >= 0 {
		return r.order[i], true
	}
	return nil, false
}

// Remove drops the widget with the given id. It reports whether a widget
// was removed; removing an unknown id is a no-op.
func (r *Registry) Remove(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	r.order = slices.Delete(r.order, i, i+1)
	return true
}

// List returns the live widgets in insertion order. The slice is a copy;
// the widgets are shared.
func (r *Registry) List() []*Widget {
	out := make([]*Widget, len(r.order))
	copy(out, r.order)
	return out
}

// IDs returns the live widget ids in insertion order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	for i, w := range r.order {
		ids[i] = w.ID
	}
	return ids
}

// Count returns the number of live widgets.
func (r *Registry) Count() int {
	return len(r.order)
}

// TotalDataPoints sums Data.Len over all live widgets.
func (r *Registry) TotalDataPoints() int {
	total := 0
	for _, w := range r.order {
		if w.Data != nil {
			total += w.Data.Len()
		}
	}
	return total
}

func (r *Registry) index(id string) int {
	return slices.IndexFunc(r.order, func(w *Widget) bool { return w.ID == id })
}
