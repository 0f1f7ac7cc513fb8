package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/model"
	"resume-builder/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render resume JSON (or an analysis) as HTML",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

var (
	previewInput    string
	previewTemplate string
	previewOutput   string
	previewAnalysis bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "Path to resume or analysis JSON file (required)")
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Template id whose sections to preview (default: all sections)")
	previewCmd.Flags().StringVarP(&previewOutput, "out", "o", "", "Output HTML path (default: stdout)")
	previewCmd.Flags().BoolVar(&previewAnalysis, "analysis", false, "Input is an analysis; write the full analysis page")
	_ = previewCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(previewInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var html string
	if previewAnalysis {
		html, err = preview.Document(model.ParseAnalysis(data))
	} else {
		html, err = preview.Render(model.Normalize(data), previewTemplate)
	}
	if err != nil {
		return err
	}

	if previewOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}
	return os.WriteFile(previewOutput, []byte(html), 0o644)
}
