package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/layout"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, t := range layout.Templates() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", t.ID(), t.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
