package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// Listing defaults.
const (
	DefaultPageSize   = 50
	DefaultScrollStep = 20
	// NearBottomThreshold is how many rows from the end of the visible list
	// the cursor must reach before the list grows.
	NearBottomThreshold = 3
	// MaxSuggestions caps the "did you mean" list.
	MaxSuggestions = 3
)

// ListingQuery describes one filtered view of the catalog.
type ListingQuery struct {
	// Term matches a case-insensitive name substring or an identifier substring.
	Term string
	// Type is a type tag, or entities.TypeAll / "" for no type filter.
	Type string
	// Visible caps the result length. Zero or negative means no cap.
	Visible int
	// Include, when set, must also accept the entry's identifier.
	Include func(id int) bool
}

// MatchEntries returns every entry accepted by the query, in catalog order.
// Visible is ignored.
func MatchEntries(entries []entities.CatalogEntry, q ListingQuery) []entities.CatalogEntry {
	term := strings.TrimSpace(q.Term)
	lowerTerm := strings.ToLower(term)

	matched := make([]entities.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesTerm(e, term, lowerTerm) {
			continue
		}
		if q.Type != "" && q.Type != entities.TypeAll && !e.HasType(q.Type) {
			continue
		}
		if q.Include != nil && !q.Include(e.ID) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// FilterEntries returns the first q.Visible entries accepted by the query
// along with how many entries matched before the cutoff.
func FilterEntries(entries []entities.CatalogEntry, q ListingQuery) ([]entities.CatalogEntry, int) {
	matched := MatchEntries(entries, q)
	count := len(matched)
	if q.Visible > 0 && count > q.Visible {
		matched = matched[:q.Visible]
	}
	return matched, count
}

func matchesTerm(e entities.CatalogEntry, term, lowerTerm string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), lowerTerm) ||
		strings.Contains(strconv.Itoa(e.ID), term)
}

// Listing tracks how many rows of the catalog are currently shown.
type Listing struct {
	initial int
	step    int
	total   int
	visible int
}

// NewListing creates a Listing that starts at initial rows and grows by step,
// never beyond total.
func NewListing(initial, step, total int) *Listing {
	if initial <= 0 {
		initial = DefaultPageSize
	}
	if step <= 0 {
		step = DefaultScrollStep
	}
	l := &Listing{initial: initial, step: step}
	l.SetTotal(total)
	return l
}

// Visible returns the current row cutoff.
func (l *Listing) Visible() int {
	return l.visible
}

// SetTotal updates the catalog size and re-clamps the cutoff.
func (l *Listing) SetTotal(total int) {
	l.total = total
	if l.visible == 0 {
		l.visible = l.initial
	}
	if total > 0 && l.visible > total {
		l.visible = total
	}
}

// Grow raises the cutoff by one step. It reports whether anything changed.
func (l *Listing) Grow() bool {
	next := l.visible + l.step
	if l.total > 0 && next > l.total {
		next = l.total
	}
	if next == l.visible {
		return false
	}
	l.visible = next
	return true
}

// NearBottom reports whether a cursor at row cursor of shown rows is close
// enough to the end that the list should grow.
func NearBottom(cursor, shown, threshold int) bool {
	if shown == 0 {
		return false
	}
	return cursor >= shown-1-threshold
}

// Suggest returns up to limit entry names closest to term by edit distance.
// It is meant for searches that matched nothing.
func Suggest(entries []entities.CatalogEntry, term string, limit int) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	maxDist := suggestionLimit(len(term))
	candidates := make([]scored, 0, limit)
	for _, e := range entries {
		dist := levenshtein.ComputeDistance(term, strings.ToLower(e.Name))
		if dist > maxDist {
			continue
		}
		candidates = append(candidates, scored{name: e.Name, dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
