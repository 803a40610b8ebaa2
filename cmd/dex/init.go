package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long:  "Creates .dex/config.yaml in the current directory with the default settings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if err := config.WriteDefault(cwd); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", config.ConfigFilePath(cwd))
			return nil
		},
	}
}
