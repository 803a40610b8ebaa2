package session

import "github.com/google/uuid"

// Ticket identifies one detail request: the route identifier it was issued
// for and a unique token.
type Ticket struct {
	ID    int
	Token string
}

// Tracker remembers the most recent request so late responses for a route
// the user already left can be discarded.
type Tracker struct {
	current Ticket
}

// NewTracker creates a Tracker with no outstanding request.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin issues a ticket for id and makes it the only current one.
func (t *Tracker) Begin(id int) Ticket {
	t.current = Ticket{ID: id, Token: uuid.New().String()}
	return t.current
}

// Current reports whether ticket is the latest one issued.
func (t *Tracker) Current(ticket Ticket) bool {
	return ticket.Token != "" && ticket == t.current
}

// Reset forgets the outstanding request, e.g. when leaving the detail route.
func (t *Tracker) Reset() {
	t.current = Ticket{}
}
