package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/services"
)

type exportFlags struct {
	format  string
	output  string
	search  string
	typeTag string
}

type exporter struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a file",
		Long:  "Exports the filtered catalog listing to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "Filter by name or number substring")
	cmd.Flags().StringVarP(&flags.typeTag, "type", "t", entities.TypeAll, "Filter by type tag")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if err := validateType(ctx, d.ListingHandler, flags.typeTag); err != nil {
			return err
		}

		result, err := d.ListingHandler.HandleList(ctx, services.ListingQuery{
			Term: flags.search,
			Type: flags.typeTag,
		})
		if err != nil {
			return err
		}
		if len(result.Entries) == 0 {
			return fmt.Errorf("no entries found to export")
		}

		e := &exporter{
			format: flags.format,
			output: flags.output,
		}
		return e.export(result.Entries)
	})
}

func (e *exporter) export(entries []entities.CatalogEntry) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := e.formatEntries(w, entries); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d entries to %s\n", len(entries), e.output)
	}

	return nil
}

func (e *exporter) formatEntries(w io.Writer, entries []entities.CatalogEntry) error {
	switch e.format {
	case "json":
		return formatJSON(w, entries)
	case "csv":
		return formatCSV(w, entries)
	case "markdown":
		return formatMarkdown(w, entries)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func formatJSON(w io.Writer, entries []entities.CatalogEntry) error {
	if entries == nil {
		entries = []entities.CatalogEntry{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func formatCSV(w io.Writer, entries []entities.CatalogEntry) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "number", "name", "types", "url"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.ID),
			entities.FormatNumber(e.ID),
			e.Name,
			strings.Join(e.Types, ";"),
			e.URL,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, entries []entities.CatalogEntry) error {
	if _, err := fmt.Fprintf(w, "# Exported Catalog\n\nTotal: %d entries\n\n", len(entries)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Number | Name | Types |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|--------|------|-------|\n"); err != nil {
		return err
	}

	for _, e := range entries {
		types := make([]string, len(e.Types))
		for i, t := range e.Types {
			types[i] = entities.TypeDisplayName(t)
		}
		if _, err := fmt.Fprintf(w, "| %s | %s | %s |\n",
			entities.FormatNumber(e.ID),
			escapeMarkdown(entities.DisplayName(e.Name)),
			escapeMarkdown(strings.Join(types, ", ")),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
