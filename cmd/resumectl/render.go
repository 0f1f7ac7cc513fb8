package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"resume-builder/internal/usecase"
	"resume-builder/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render resume JSON to PDF",
	Long:  "Lays out a resume JSON file with one template (--template) or with every template at once (--all).",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

var (
	renderInput    string
	renderTemplate string
	renderOutput   string
	renderAll      bool
	renderDir      string
	renderCompress bool
	renderFont     string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "modern", "Template id")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Output PDF path (default: suggested file name)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render with every template")
	renderCmd.Flags().StringVarP(&renderDir, "dir", "d", ".", "Output directory for --all")
	renderCmd.Flags().BoolVar(&renderCompress, "compress", true, "Compress PDF streams")
	renderCmd.Flags().StringVar(&renderFont, "font", "", "TrueType font for text outside Latin-1 (used for every style)")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p := usecase.NewProcessor(nil, nil, usecase.Options{
		Compress: renderCompress,
		Font:     render.FontSet{Regular: renderFont},
	})

	if renderAll {
		docs, err := p.GenerateAll(ctx, data)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(renderDir, 0o755); err != nil {
			return err
		}
		for _, doc := range docs {
			path := filepath.Join(renderDir, doc.Template+"_"+doc.Filename)
			if err := os.WriteFile(path, doc.PDF, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		}
		return nil
	}

	doc, err := p.Generate(ctx, renderTemplate, data)
	if err != nil {
		return err
	}
	out := renderOutput
	if out == "" {
		out = doc.Filename
	}
	if err := os.WriteFile(out, doc.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}
