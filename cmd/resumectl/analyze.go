package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/analyzer"
	"resume-builder/pkg/ai"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume PDF against a job description",
	Long:  "Extracts the text of a resume PDF and asks Gemini (GEMINI_API_KEY) or the ai-service (AI_SERVICE_URL) for a structured analysis, printed as JSON.",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

var (
	analyzeResume string
	analyzeJob    string
	analyzeModel  string
	// newGenerator is swapped in tests.
	newGenerator = defaultGenerator
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume PDF (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Gemini model (default: GEMINI_MODEL or "+ai.DefaultGeminiModel+")")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func defaultGenerator(ctx context.Context) (analyzer.TextGenerator, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		model := analyzeModel
		if model == "" {
			model = os.Getenv("GEMINI_MODEL")
		}
		return ai.NewGeminiClient(ctx, key, model)
	}
	return ai.NewClient(""), nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	doc, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jd, err := os.ReadFile(analyzeJob)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}

	res, err := analyzer.New(gen).Analyze(ctx, doc, string(jd))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
