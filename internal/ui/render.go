package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
)

// StatBarWidth is the number of cells a full (MaxStat) bar occupies.
const StatBarWidth = 20

// StageMarker precedes the evolution stage picked with tab.
const StageMarker = "▸ "

// Labels shown by the browser and the text renderer.
const (
	labelPrev           = "< Anterior"
	labelNext           = "Siguiente >"
	labelFavorite       = "★ Favorito"
	labelAddFavorite    = "☆ Añadir a favoritos"
	labelWeaknesses     = "Debilidades"
	labelNoWeaknesses   = "No tiene debilidades"
	labelStats          = "Estadísticas"
	labelEvolutionChain = "Cadena evolutiva"
	labelAllTypes       = "Todos los tipos"
)

func typeLabel(tag string) string {
	if tag == entities.TypeAll || tag == "" {
		return labelAllTypes
	}
	return entities.TypeDisplayName(tag)
}

// RenderTypes renders a row of type badges.
func RenderTypes(st Styles, types []string) string {
	badges := make([]string, len(types))
	for i, t := range types {
		badges[i] = st.TypeBadge(t)
	}
	return strings.Join(badges, " ")
}

// StatBar renders base as a bar scaled against entities.MaxStat.
func StatBar(st Styles, base, width int) string {
	if base < 0 {
		base = 0
	}
	if base > entities.MaxStat {
		base = entities.MaxStat
	}
	filled := (base*width + entities.MaxStat/2) / entities.MaxStat
	return st.BarFill.Render(strings.Repeat("█", filled)) +
		st.BarEmpty.Render(strings.Repeat("░", width-filled))
}

// FormatTrigger turns "level-up" into "level up".
func FormatTrigger(trigger string) string {
	return strings.Replace(trigger, "-", " ", 1)
}

// FormatStatName turns "special-attack" into "SPECIAL ATTACK".
func FormatStatName(name string) string {
	return strings.ToUpper(strings.Replace(name, "-", " ", 1))
}

// RenderRow renders one listing line.
func RenderRow(st Styles, e entities.CatalogEntry, selected, favorite bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	star := " "
	if favorite {
		star = st.Favorite.Render("★")
	}

	name := fmt.Sprintf("%-12s", entities.DisplayName(e.Name))
	if selected {
		name = st.Selected.Render(name)
	} else {
		name = st.Body.Render(name)
	}

	return marker + st.Number.Render(entities.FormatNumber(e.ID)) + " " + star + " " + name + " " + RenderTypes(st, e.Types)
}

// RenderDetail renders a detail record with its navigation bar.
func RenderDetail(st Styles, result *handlers.DetailResult, favorite bool) string {
	return RenderDetailStage(st, result, favorite, -1)
}

// RenderDetailStage is RenderDetail with the evolution stage at index stage
// marked as the jump target. A negative stage marks nothing.
func RenderDetailStage(st Styles, result *handlers.DetailResult, favorite bool, stage int) string {
	rec := result.Record
	var b strings.Builder

	prev := st.Muted.Render(labelPrev)
	if result.HasPrev {
		prev = st.Body.Render(labelPrev)
	}
	next := st.Muted.Render(labelNext)
	if result.HasNext {
		next = st.Body.Render(labelNext)
	}
	fav := st.Muted.Render(labelAddFavorite)
	if favorite {
		fav = st.Favorite.Render(labelFavorite)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		prev, "   ", st.Number.Render(entities.FormatNumber(rec.ID)), "  ", fav, "   ", next))
	b.WriteString("\n\n")

	b.WriteString(st.Title.Render(entities.DisplayName(rec.Name)))
	if rec.Genus != "" {
		b.WriteString("  " + st.Muted.Render(rec.Genus))
	}
	b.WriteString("\n")
	b.WriteString(RenderTypes(st, rec.Types))
	b.WriteString("\n\n")

	b.WriteString(st.Body.Render(rec.Description))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render(fmt.Sprintf("Altura: %.1f m   Peso: %.1f kg",
		float64(rec.Height)/10, float64(rec.Weight)/10)))
	b.WriteString("\n")

	b.WriteString(st.Header.Render(labelWeaknesses))
	b.WriteString("\n")
	if len(rec.Weaknesses) == 0 {
		b.WriteString(st.Muted.Render(labelNoWeaknesses))
		b.WriteString("\n")
	} else {
		items := make([]string, len(rec.Weaknesses))
		for i, w := range rec.Weaknesses {
			items[i] = st.TypeBadge(w.Type) + " " + st.Body.Render(w.Multiplier.Label())
		}
		b.WriteString(strings.Join(items, "  "))
		b.WriteString("\n")
	}

	b.WriteString(st.Header.Render(labelStats))
	b.WriteString("\n")
	for _, s := range rec.Stats {
		fmt.Fprintf(&b, "%-16s %3d %s\n", FormatStatName(s.Name)+":", s.Base, StatBar(st, s.Base, StatBarWidth))
	}

	// A single stage is not a chain.
	if len(rec.Evolutions) > 1 {
		b.WriteString(st.Header.Render(labelEvolutionChain))
		b.WriteString("\n")
		stages := make([]string, len(rec.Evolutions))
		for i, evo := range rec.Evolutions {
			label := entities.DisplayName(evo.Name)
			if evo.ID == rec.ID {
				label = st.Selected.Render(label)
			}
			stages[i] = fmt.Sprintf("%s %s (%s)", st.Number.Render(entities.FormatNumber(evo.ID)), label, FormatTrigger(evo.Trigger))
			if i == stage {
				stages[i] = StageMarker + stages[i]
			}
		}
		b.WriteString(strings.Join(stages, " → "))
		b.WriteString("\n")
	}

	return b.String()
}
