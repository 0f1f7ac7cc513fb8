package usecase

import (
	"time"

	"resume-builder/internal/model"
	"resume-builder/pkg/render"
)

// Document is one generated PDF ready for download.
type Document struct {
	ID       string
	Template string
	Filename string
	PDF      []byte
}

// AnalysisResult is what the analyze flow hands back to callers.
type AnalysisResult struct {
	Analysis     *model.Analysis `json:"analysis"`
	PreviewHTML  string          `json:"previewHtml"`
	AnalysisHTML string          `json:"analysisHtml"`
}

type Options struct {
	Compress bool
	// Creator is written into PDF metadata.
	Creator string
	// Font swaps the core fonts for TrueType files.
	Font render.FontSet
	// Attempts and Backoff control analysis export retries.
	Attempts int
	Backoff  func(attempt int) time.Duration
	// Now stamps generated documents; time.Now when nil.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Creator == "" {
		o.Creator = "resume-builder"
	}
	if o.Attempts < 1 {
		o.Attempts = 3
	}
	if o.Backoff == nil {
		o.Backoff = func(i int) time.Duration { return time.Duration(1<<i) * time.Second }
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
