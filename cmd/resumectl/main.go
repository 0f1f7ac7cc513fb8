// Command resumectl renders, previews and analyzes resumes from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resume-builder/internal/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Resume builder command line",
	Long:  "resumectl lays out resume JSON as PDF with one of the built-in templates, previews it as HTML, and scores uploaded resumes against a job description.",
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.Init(logger.Config{Level: logLevel, Format: "pretty"})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
