package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/session"
	"github.com/ersonp/dex-core/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [number]",
		Short: "Browse the catalog interactively",
		Long: `Opens the interactive browser on the listing, or on the detail view of
the given number.

Listing: / search, t cycle type, arrows move, enter open, f favorite,
F favorites only, d theme, q quit.
Detail: left/right previous/next, f favorite, d theme, esc back, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startID := 0
			if len(args) == 1 {
				id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", args[0], err)
				}
				startID = id
			}
			return runBrowse(cmd, startID)
		},
	}
}

func runBrowse(cmd *cobra.Command, startID int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if startID != 0 && !d.DetailHandler.Navigator().Contains(startID) {
			nav := d.DetailHandler.Navigator()
			return fmt.Errorf("number %d out of range [%d, %d]", startID, nav.Min, nav.Max)
		}

		model := ui.NewModel(ctx, ui.Options{
			Listing:    d.ListingHandler,
			Detail:     d.DetailHandler,
			State:      session.New(d.Config.UI.DarkMode),
			Logger:     logger.Named("ui"),
			PageSize:   d.Config.Catalog.PageSize,
			ScrollStep: d.Config.Catalog.ScrollStep,
			StartID:    startID,
		})

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	})
}
