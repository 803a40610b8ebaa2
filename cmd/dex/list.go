package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/application/handlers"
	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

func newListCmd() *cobra.Command {
	var (
		search  string
		typeTag string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Long:  "Lists catalog entries, filtered by a name or number substring and a type.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, search, typeTag, limit)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by name or number substring")
	cmd.Flags().StringVarP(&typeTag, "type", "t", entities.TypeAll, "Filter by type tag")
	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultListLimit, "Maximum number of entries to display (0 for all)")

	return cmd
}

func runList(cmd *cobra.Command, search, typeTag string, limit int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if err := validateType(ctx, d.ListingHandler, typeTag); err != nil {
			return err
		}

		result, err := d.ListingHandler.HandleList(ctx, services.ListingQuery{
			Term:    search,
			Type:    typeTag,
			Visible: limit,
		})
		if err != nil {
			return err
		}

		displayListing(os.Stdout, result)
		return nil
	})
}

// validateType rejects tags outside the upstream vocabulary.
func validateType(ctx context.Context, h *handlers.ListingHandler, typeTag string) error {
	if typeTag == "" || typeTag == entities.TypeAll {
		return nil
	}
	types, err := h.HandleTypes(ctx)
	if err != nil {
		return err
	}
	if !contains(types, typeTag) {
		return fmt.Errorf("invalid type %q, valid types: %v", typeTag, types)
	}
	return nil
}

func displayListing(out io.Writer, result *handlers.ListingResult) {
	if len(result.Entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		if len(result.Suggestions) > 0 {
			fmt.Fprintf(out, "Did you mean: %s?\n", strings.Join(result.Suggestions, ", "))
		}
		return
	}

	fmt.Fprintf(out, "Showing %d of %d matching entries (%d total):\n\n", len(result.Entries), result.Matched, result.Total)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tNAME\tTYPES")
	for _, e := range result.Entries {
		names := make([]string, len(e.Types))
		for i, t := range e.Types {
			names[i] = entities.TypeDisplayName(t)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entities.FormatNumber(e.ID), entities.DisplayName(e.Name), strings.Join(names, ", "))
	}
	w.Flush()
}
