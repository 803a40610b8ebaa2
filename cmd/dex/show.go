package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/ui"
)

type showFlags struct {
	format string
	dark   bool
	render bool
}

func newShowCmd() *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "show <number>",
		Short: "Show one catalog entry",
		Long:  "Shows the detail view of one entry: description, weaknesses, stats and evolution chain.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json, markdown)")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Use the dark theme (default from ui.dark_mode)")
	cmd.Flags().BoolVar(&flags.render, "render", false, "Render markdown output for the terminal")

	return cmd
}

func runShow(cmd *cobra.Command, arg string, flags showFlags) error {
	if !contains(validShowFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validShowFormats)
	}

	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", arg, err)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		result, err := d.DetailHandler.HandleDetail(ctx, id)
		if err != nil {
			return err
		}

		dark := d.Config.UI.DarkMode
		if cmd.Flags().Changed("dark") {
			dark = flags.dark
		}
		artwork := d.Assets.ArtworkURL(id)

		switch flags.format {
		case "json":
			return writeDetailJSON(os.Stdout, result)
		case "markdown":
			md := detailMarkdown(result, artwork)
			if flags.render {
				return renderMarkdown(os.Stdout, md, dark)
			}
			_, err := io.WriteString(os.Stdout, md)
			return err
		default:
			fmt.Println(ui.RenderDetail(ui.NewStyles(dark), result, false))
			fmt.Println(artwork)
			return nil
		}
	})
}

func writeDetailJSON(w io.Writer, result *handlers.DetailResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// detailMarkdown renders a detail result as a markdown document.
func detailMarkdown(result *handlers.DetailResult, artworkURL string) string {
	rec := result.Record
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", entities.FormatNumber(rec.ID), escapeMarkdown(entities.DisplayName(rec.Name)))
	if artworkURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", rec.Name, artworkURL)
	}
	if rec.Genus != "" {
		fmt.Fprintf(&b, "*%s*\n\n", escapeMarkdown(rec.Genus))
	}

	types := make([]string, len(rec.Types))
	for i, t := range rec.Types {
		types[i] = "`" + entities.TypeDisplayName(t) + "`"
	}
	fmt.Fprintf(&b, "**Tipos:** %s\n\n", strings.Join(types, " "))
	fmt.Fprintf(&b, "%s\n\n", escapeMarkdown(rec.Description))
	fmt.Fprintf(&b, "Altura: %.1f m, Peso: %.1f kg\n\n", float64(rec.Height)/10, float64(rec.Weight)/10)

	b.WriteString("## Debilidades\n\n")
	if len(rec.Weaknesses) == 0 {
		b.WriteString("No tiene debilidades\n\n")
	} else {
		for _, w := range rec.Weaknesses {
			fmt.Fprintf(&b, "- %s %s\n", entities.TypeDisplayName(w.Type), w.Multiplier.Label())
		}
		b.WriteString("\n")
	}

	b.WriteString("## Estadísticas\n\n| Estadística | Valor |\n|---|---|\n")
	for _, s := range rec.Stats {
		fmt.Fprintf(&b, "| %s | %d |\n", ui.FormatStatName(s.Name), s.Base)
	}
	b.WriteString("\n")

	if len(rec.Evolutions) > 1 {
		b.WriteString("## Cadena evolutiva\n\n")
		for i, evo := range rec.Evolutions {
			fmt.Fprintf(&b, "%d. %s %s (%s)\n", i+1, entities.FormatNumber(evo.ID), entities.DisplayName(evo.Name), ui.FormatTrigger(evo.Trigger))
		}
		b.WriteString("\n")
	}

	var nav []string
	if result.HasPrev {
		nav = append(nav, "Anterior: "+entities.FormatNumber(result.PrevID))
	}
	if result.HasNext {
		nav = append(nav, "Siguiente: "+entities.FormatNumber(result.NextID))
	}
	if len(nav) > 0 {
		b.WriteString(strings.Join(nav, " | "))
		b.WriteString("\n")
	}

	return b.String()
}

func renderMarkdown(w io.Writer, md string, dark bool) error {
	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(MarkdownWrap),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
