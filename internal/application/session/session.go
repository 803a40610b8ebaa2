// Package session holds the per-process view state shared by every screen:
// the favorites set, the theme flag and the request tracker.
// Nothing here is persisted.
package session

// State bundles the shared view state. Create one per process and pass it
// by pointer.
type State struct {
	Favorites *Favorites
	Theme     *Theme
	Tracker   *Tracker
}

// New creates a State with an empty favorites set and the given theme.
func New(dark bool) *State {
	return &State{
		Favorites: NewFavorites(),
		Theme:     NewTheme(dark),
		Tracker:   NewTracker(),
	}
}
