package registry

import (
	"fmt"
	"sort"
	"strings"

	"watchlist/internal/domain"
)

// Registry maps list names to their watch lists. No two entries share a name.
type Registry struct {
	lists map[string]*domain.WatchList
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{lists: make(map[string]*domain.WatchList)}
}

// FromLists builds a Registry from name → items pairs. Item slices are copied.
func FromLists(m map[string][]domain.Item) *Registry {
	r := New()
	for name, items := range m {
		r.lists[name] = &domain.WatchList{Name: name, Items: append([]domain.Item{}, items...)}
	}
	return r
}

// Create inserts an empty list called name.
func (r *Registry) Create(name string) (*domain.WatchList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: list name must not be empty", domain.ErrInvalidArgument)
	}
	if _, ok := r.lists[name]; ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrListAlreadyExists, name)
	}
	wl := &domain.WatchList{Name: name, Items: []domain.Item{}}
	r.lists[name] = wl
	return wl, nil
}

// Get returns the list called name. The returned list is owned by the
// Registry; callers mutate it in place.
func (r *Registry) Get(name string) (*domain.WatchList, error) {
	wl, ok := r.lists[name]
	if !ok {
		return nil, &domain.ListNotFoundError{Name: name}
	}
	return wl, nil
}

// Delete removes the list called name.
func (r *Registry) Delete(name string) error {
	if _, ok := r.lists[name]; !ok {
		return &domain.ListNotFoundError{Name: name}
	}
	delete(r.lists, name)
	return nil
}

// Len reports the number of lists.
func (r *Registry) Len() int { return len(r.lists) }

// Names returns all list names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.lists))
	for name := range r.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NonEmpty returns copies of the lists that hold at least one item, ordered
// by name.
func (r *Registry) NonEmpty() []domain.WatchList {
	var out []domain.WatchList
	for _, name := range r.Names() {
		if wl := r.lists[name]; !wl.Empty() {
			out = append(out, wl.Clone())
		}
	}
	return out
}

// Lists returns a deep copy of the registry as name → items. Every slice is
// non-nil, so empty lists survive serialisation as empty arrays.
func (r *Registry) Lists() map[string][]domain.Item {
	out := make(map[string][]domain.Item, len(r.lists))
	for name, wl := range r.lists {
		out[name] = wl.Clone().Items
	}
	return out
}
