package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/application/session"
	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

// catalogMsg carries the full catalog listing.
type catalogMsg struct {
	entries []entities.CatalogEntry
	err     error
}

// typesMsg carries the type vocabulary.
type typesMsg struct {
	types []string
	err   error
}

// detailMsg carries a detail result for the request identified by ticket.
type detailMsg struct {
	ticket session.Ticket
	result *handlers.DetailResult
	err    error
}

func (m Model) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		result, err := m.listing.HandleList(m.ctx, services.ListingQuery{})
		if err != nil {
			return catalogMsg{err: err}
		}
		return catalogMsg{entries: result.Entries}
	}
}

func (m Model) fetchTypes() tea.Cmd {
	return func() tea.Msg {
		types, err := m.listing.HandleTypes(m.ctx)
		return typesMsg{types: types, err: err}
	}
}

func (m Model) fetchDetail(ticket session.Ticket) tea.Cmd {
	return func() tea.Msg {
		result, err := m.detail.HandleDetail(m.ctx, ticket.ID)
		return detailMsg{ticket: ticket, result: result, err: err}
	}
}
