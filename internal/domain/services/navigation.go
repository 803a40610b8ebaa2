package services

// Navigator moves between adjacent identifiers inside [Min, Max].
type Navigator struct {
	Min int
	Max int
}

// NewNavigator creates a Navigator for a catalog of limit entries.
func NewNavigator(limit int) Navigator {
	return Navigator{Min: 1, Max: limit}
}

// Contains reports whether id is inside the bounds.
func (n Navigator) Contains(id int) bool {
	return id >= n.Min && id <= n.Max
}

// Prev returns id-1, or id unchanged and false at the lower bound.
func (n Navigator) Prev(id int) (int, bool) {
	if id <= n.Min {
		return id, false
	}
	return id - 1, true
}

// Next returns id+1, or id unchanged and false at the upper bound.
func (n Navigator) Next(id int) (int, bool) {
	if id >= n.Max {
		return id, false
	}
	return id + 1, true
}
