package session

import "sort"

// Favorites is a set of catalog identifiers.
type Favorites struct {
	ids map[int]struct{}
}

// NewFavorites creates an empty set.
func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[int]struct{})}
}

// Toggle adds id if absent and removes it if present. It returns whether id
// is a favorite afterwards.
func (f *Favorites) Toggle(id int) bool {
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// Contains reports whether id is a favorite.
func (f *Favorites) Contains(id int) bool {
	_, ok := f.ids[id]
	return ok
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	return len(f.ids)
}

// List returns the favorites in ascending order.
func (f *Favorites) List() []int {
	out := make([]int, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
