package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List type tags",
		Long:  "Lists every type tag the upstream knows, with its display name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, func(d *Deps) error {
				types, err := d.ListingHandler.HandleTypes(ctx)
				if err != nil {
					return err
				}

				if len(types) == 0 {
					fmt.Println("No types found.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "TAG\tNAME")
				for _, t := range types {
					fmt.Fprintf(w, "%s\t%s\n", t, entities.TypeDisplayName(t))
				}
				w.Flush()

				return nil
			})
		},
	}
}
