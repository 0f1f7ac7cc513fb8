// Package analyzer scores an uploaded resume against a job description with
// a text-completion backend.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"resume-builder/internal/logger"
	"resume-builder/internal/model"
)

var (
	ErrEmptyJobDescription = errors.New("no job description provided")
	// ErrInvalidJSON means the isolated object did not parse.
	ErrInvalidJSON = errors.New("invalid JSON format received from AI after cleaning")
)

// TextGenerator completes a prompt. Implemented by ai.Client and
// ai.GeminiClient.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Analyzer struct {
	Extractor TextExtractor
	Generator TextGenerator
}

func New(gen TextGenerator) *Analyzer {
	return &Analyzer{Extractor: PDFTextExtractor{}, Generator: gen}
}

// Analyze extracts the text of document, asks the generator for an analysis
// against jobDescription and parses the reply.
func (a *Analyzer) Analyze(ctx context.Context, document []byte, jobDescription string) (*model.Analysis, error) {
	log := logger.Ctx(ctx)

	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	text, err := a.Extractor.Extract(ctx, document)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	start := time.Now()
	reply, err := a.Generator.Generate(ctx, BuildPrompt(jobDescription, text))
	if err != nil {
		return nil, fmt.Errorf("text completion: %w", err)
	}
	log.Debug().Dur("took", time.Since(start)).Int("reply_len", len(reply)).Msg("analysis completion received")

	obj, err := ExtractJSON(reply)
	if err != nil {
		log.Warn().Str("reply", truncate(reply, 500)).Msg("completion without JSON object")
		return nil, err
	}
	if !gjson.Valid(obj) {
		log.Warn().Str("cleaned", truncate(obj, 500)).Msg("completion JSON does not parse")
		return nil, ErrInvalidJSON
	}
	return model.ParseAnalysis([]byte(obj)), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
