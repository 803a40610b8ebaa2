package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/application/session"
	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

type route int

const (
	routeList route = iota
	routeDetail
)

// chromeLines is how many lines the list view uses outside the rows.
const chromeLines = 9

// Options configures a Model.
type Options struct {
	Listing    *handlers.ListingHandler
	Detail     *handlers.DetailHandler
	State      *session.State
	Logger     *zap.Logger
	PageSize   int
	ScrollStep int
	// StartID opens the detail route for this identifier on launch.
	StartID int
}

// Model is the bubbletea model for the catalog browser.
type Model struct {
	ctx     context.Context
	listing *handlers.ListingHandler
	detail  *handlers.DetailHandler
	state   *session.State
	logger  *zap.Logger
	styles  Styles

	route  route
	width  int
	height int

	spinner spinner.Model

	// Listing route
	entries       []entities.CatalogEntry
	types         []string
	typeIdx       int
	rows          *services.Listing
	cursor        int
	search        textinput.Model
	favoritesOnly bool
	loading       bool
	listErr       error

	// Detail route
	detailID      int
	detailResult  *handlers.DetailResult
	detailLoading bool
	detailErr     error
	// stage is the highlighted evolution stage, -1 for none.
	stage int

	initCmds []tea.Cmd
}

// NewModel creates the browser model.
func NewModel(ctx context.Context, opts Options) Model {
	if opts.State == nil {
		opts.State = session.New(false)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "Buscar Pokémon por nombre o número..."
	search.Prompt = "/ "
	search.CharLimit = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		listing: opts.Listing,
		detail:  opts.Detail,
		state:   opts.State,
		logger:  opts.Logger,
		styles:  NewStyles(opts.State.Theme.IsDark()),
		spinner: sp,
		rows:    services.NewListing(opts.PageSize, opts.ScrollStep, 0),
		search:  search,
		loading: true,
		stage:   -1,
	}

	m.initCmds = []tea.Cmd{m.spinner.Tick, m.fetchCatalog(), m.fetchTypes()}
	if opts.StartID > 0 {
		m.initCmds = append(m.initCmds, m.openDetail(opts.StartID))
	}
	return m
}

// Init starts the initial fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.route == routeDetail {
			return m, m.handleDetailKey(msg)
		}
		return m, m.handleListKey(msg)

	case catalogMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Warn("catalog load failed", zap.Error(msg.err))
			m.listErr = msg.err
			return m, nil
		}
		m.listErr = nil
		m.entries = msg.entries
		m.rows.SetTotal(len(msg.entries))
		m.clampCursor()
		return m, nil

	case typesMsg:
		if msg.err != nil {
			// The list still works without the type filter.
			m.logger.Warn("type vocabulary load failed", zap.Error(msg.err))
			return m, nil
		}
		m.types = msg.types
		return m, nil

	case detailMsg:
		if !m.state.Tracker.Current(msg.ticket) {
			m.logger.Debug("discarding stale detail", zap.Int("id", msg.ticket.ID))
			return m, nil
		}
		m.detailLoading = false
		if msg.err != nil {
			m.logger.Warn("detail load failed", zap.Int("id", msg.ticket.ID), zap.Error(msg.err))
			m.detailErr = msg.err
			return m, nil
		}
		m.detailErr = nil
		m.detailResult = msg.result
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		switch msg.String() {
		case "enter":
			m.search.Blur()
			return nil
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.cursor = 0
			return nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "/":
		return m.search.Focus()
	case "t":
		m.typeIdx = (m.typeIdx + 1) % (len(m.types) + 1)
		m.cursor = 0
	case "F":
		m.favoritesOnly = !m.favoritesOnly
		m.cursor = 0
	case "d":
		m.toggleTheme()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		shown := len(m.shown().Entries)
		if m.cursor < shown-1 {
			m.cursor++
		}
		if services.NearBottom(m.cursor, shown, services.NearBottomThreshold) && m.rows.Grow() {
			m.logger.Debug("listing grew", zap.Int("visible", m.rows.Visible()))
		}
	case "f":
		if e, ok := m.selected(); ok {
			m.state.Favorites.Toggle(e.ID)
			m.clampCursor()
		}
	case "enter":
		if e, ok := m.selected(); ok {
			return m.openDetail(e.ID)
		}
	case "r":
		if m.listErr != nil {
			m.listErr = nil
			m.loading = true
			return tea.Batch(m.spinner.Tick, m.fetchCatalog(), m.fetchTypes())
		}
	}
	return nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	nav := m.detail.Navigator()

	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc", "backspace":
		m.route = routeList
		m.state.Tracker.Reset()
		m.detailResult = nil
		m.detailErr = nil
		m.detailLoading = false
	case "left", "h":
		if id, ok := nav.Prev(m.detailID); ok {
			return m.openDetail(id)
		}
	case "right", "l":
		if id, ok := nav.Next(m.detailID); ok {
			return m.openDetail(id)
		}
	case "tab":
		m.moveStage(1)
	case "shift+tab":
		m.moveStage(-1)
	case "enter":
		if evo, ok := m.selectedStage(); ok && evo.ID != m.detailID {
			return m.openDetail(evo.ID)
		}
	case "f":
		m.state.Favorites.Toggle(m.detailID)
	case "d":
		m.toggleTheme()
	case "r":
		if m.detailErr != nil {
			return m.openDetail(m.detailID)
		}
	}
	return nil
}

// openDetail switches to the detail route and issues a fresh request.
// Any response for an earlier request is discarded on arrival.
func (m *Model) openDetail(id int) tea.Cmd {
	ticket := m.state.Tracker.Begin(id)
	m.route = routeDetail
	m.detailID = id
	m.detailResult = nil
	m.detailErr = nil
	m.detailLoading = true
	m.stage = -1
	return tea.Batch(m.spinner.Tick, m.fetchDetail(ticket))
}

func (m Model) stages() []entities.EvolutionNode {
	if m.detailResult == nil || len(m.detailResult.Record.Evolutions) < 2 {
		return nil
	}
	return m.detailResult.Record.Evolutions
}

// moveStage steps the evolution cursor by delta, wrapping at both ends.
func (m *Model) moveStage(delta int) {
	n := len(m.stages())
	if n == 0 {
		return
	}
	if m.stage < 0 {
		if delta > 0 {
			m.stage = 0
		} else {
			m.stage = n - 1
		}
		return
	}
	m.stage = ((m.stage+delta)%n + n) % n
}

func (m Model) selectedStage() (entities.EvolutionNode, bool) {
	stages := m.stages()
	if m.stage < 0 || m.stage >= len(stages) {
		return entities.EvolutionNode{}, false
	}
	return stages[m.stage], true
}

func (m *Model) toggleTheme() {
	m.styles = NewStyles(m.state.Theme.Toggle())
}

func (m Model) currentType() string {
	if m.typeIdx == 0 || m.typeIdx > len(m.types) {
		return entities.TypeAll
	}
	return m.types[m.typeIdx-1]
}

func (m Model) query() services.ListingQuery {
	q := services.ListingQuery{
		Term:    m.search.Value(),
		Type:    m.currentType(),
		Visible: m.rows.Visible(),
	}
	if m.favoritesOnly {
		q.Include = m.state.Favorites.Contains
	}
	return q
}

func (m Model) shown() *handlers.ListingResult {
	return handlers.Filter(m.entries, m.query())
}

func (m Model) selected() (entities.CatalogEntry, bool) {
	shown := m.shown().Entries
	if m.cursor < 0 || m.cursor >= len(shown) {
		return entities.CatalogEntry{}, false
	}
	return shown[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.shown().Entries)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the current route.
func (m Model) View() string {
	if m.route == routeDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("Pokédex"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	filter := "Tipo: " + typeLabel(m.currentType())
	if m.favoritesOnly {
		filter += "   " + st.Favorite.Render("★ solo favoritos")
	}
	b.WriteString(st.Muted.Render(filter))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Cargando...")
		b.WriteString("\n")
	case m.listErr != nil:
		b.WriteString(st.Error.Render("Error: " + m.listErr.Error()))
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("Pulsa r para reintentar"))
		b.WriteString("\n")
	default:
		m.writeRows(&b)
	}

	b.WriteString(st.Help.Render("/ buscar • t tipo • ↑/↓ mover • enter ver • f favorito • F solo favoritos • d tema • q salir"))
	return b.String()
}

func (m Model) writeRows(b *strings.Builder) {
	st := m.styles
	result := m.shown()

	if len(result.Entries) == 0 {
		b.WriteString(st.Muted.Render("No se encontraron resultados"))
		b.WriteString("\n")
		if len(result.Suggestions) > 0 {
			names := make([]string, len(result.Suggestions))
			for i, s := range result.Suggestions {
				names[i] = entities.DisplayName(s)
			}
			b.WriteString(st.Body.Render("¿Quisiste decir: " + strings.Join(names, ", ") + "?"))
			b.WriteString("\n")
		}
		return
	}

	start, end := 0, len(result.Entries)
	if m.height > chromeLines {
		window := m.height - chromeLines
		if m.cursor >= window {
			start = m.cursor - window + 1
		}
		if start+window < end {
			end = start + window
		}
	}
	for i := start; i < end; i++ {
		e := result.Entries[i]
		b.WriteString(RenderRow(st, e, i == m.cursor, m.state.Favorites.Contains(e.ID)))
		b.WriteString("\n")
	}
	b.WriteString(st.Muted.Render(fmt.Sprintf("Mostrando %d de %d", len(result.Entries), result.Matched)))
	b.WriteString("\n")
}

func (m Model) viewDetail() string {
	st := m.styles
	var b strings.Builder

	switch {
	case m.detailLoading:
		b.WriteString(st.Number.Render(entities.FormatNumber(m.detailID)))
		b.WriteString("  " + m.spinner.View() + " Cargando...")
		b.WriteString("\n")
	case m.detailErr != nil:
		b.WriteString(st.Error.Render("Error: " + m.detailErr.Error()))
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("Pulsa r para reintentar o esc para volver"))
		b.WriteString("\n")
	case m.detailResult != nil:
		b.WriteString(RenderDetailStage(st, m.detailResult, m.state.Favorites.Contains(m.detailID), m.stage))
	}

	b.WriteString(st.Help.Render("←/→ anterior/siguiente • tab evolución • enter ver • f favorito • d tema • esc volver • q salir"))
	return b.String()
}
