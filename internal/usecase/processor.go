package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-builder/internal/layout"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
	"resume-builder/pkg/render"
)

var (
	ErrNoRenderer = errors.New("no HTML renderer configured")
	ErrNoAnalyzer = errors.New("no analyzer configured")
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, document []byte, jobDescription string) (*model.Analysis, error)
}

// Processor runs resume requests through normalization, layout and preview.
// renderer and analyzer may be nil; the operations needing them then fail.
type Processor struct {
	renderer Renderer
	analyzer Analyzer
	opts     Options
}

func NewProcessor(r Renderer, a Analyzer, opts Options) *Processor {
	return &Processor{renderer: r, analyzer: a, opts: opts.withDefaults()}
}

// Generate lays out data with the given template and returns the PDF.
func (p *Processor) Generate(ctx context.Context, templateID string, data []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.generate(ctx, templateID, model.Normalize(data))
}

func (p *Processor) generate(ctx context.Context, templateID string, rec model.Record) (*Document, error) {
	id := uuid.New().String()
	start := time.Now()

	out, err := layout.Generate(templateID, rec, render.Options{
		Compress:  p.opts.Compress,
		Creator:   p.opts.Creator,
		CreatedAt: p.opts.Now(),
		Font:      p.opts.Font,
	})
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info().
		Str("id", id).
		Str("template", templateID).
		Int("bytes", len(out)).
		Dur("took", time.Since(start)).
		Msg("resume generated")

	return &Document{
		ID:       id,
		Template: templateID,
		Filename: model.SuggestedFilename(rec.Name()),
		PDF:      out,
	}, nil
}

// GenerateAll renders data with every registered template concurrently.
// Documents come back in registry order.
func (p *Processor) GenerateAll(ctx context.Context, data []byte) ([]*Document, error) {
	rec := model.Normalize(data)
	ids := layout.IDs()
	docs := make([]*Document, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := p.generate(ctx, id, rec)
			if err != nil {
				return fmt.Errorf("template %s: %w", id, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Preview returns the HTML preview of data. An empty templateID uses the
// default preview sections.
func (p *Processor) Preview(templateID string, data []byte) (string, error) {
	return preview.Render(model.Normalize(data), templateID)
}

// Analyze scores an uploaded resume against a job description and renders
// both preview panels for the result.
func (p *Processor) Analyze(ctx context.Context, document []byte, jobDescription string) (*AnalysisResult, error) {
	if p.analyzer == nil {
		return nil, ErrNoAnalyzer
	}
	id := uuid.New().String()
	log := logger.Ctx(ctx).With().Str("id", id).Logger()

	start := time.Now()
	a, err := p.analyzer.Analyze(ctx, document, jobDescription)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return nil, err
	}

	res := &AnalysisResult{Analysis: a}
	if res.AnalysisHTML, err = preview.RenderAnalysis(a); err != nil {
		return nil, err
	}
	if res.PreviewHTML, err = preview.RenderAnalysisResume(a); err != nil {
		return nil, err
	}

	log.Info().Int("score", a.Score).Dur("took", time.Since(start)).Msg("resume analyzed")
	return res, nil
}

// ExportAnalysis prints the analysis panel and resume preview to PDF. The
// renderer is retried with exponential backoff until it yields a PDF.
func (p *Processor) ExportAnalysis(ctx context.Context, a *model.Analysis) (*Document, error) {
	if p.renderer == nil {
		return nil, ErrNoRenderer
	}
	if a == nil {
		a = model.ParseAnalysis(nil)
	}
	id := uuid.New().String()
	log := logger.Ctx(ctx).With().Str("id", id).Logger()

	html, err := preview.Document(a)
	if err != nil {
		return nil, err
	}

	var pdfBytes []byte
	var renderErr error
	for i := 0; i < p.opts.Attempts; i++ {
		pdfBytes, renderErr = p.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		log.Warn().Err(renderErr).Int("attempt", i+1).Msg("analysis export render failed")
		if i < p.opts.Attempts-1 {
			select {
			case <-time.After(p.opts.Backoff(i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, &render.RenderError{
			Message: fmt.Sprintf("rendering failed after %d attempts", p.opts.Attempts),
			Cause:   renderErr,
		}
	}

	name := a.UserInfo.Name
	if name == "" {
		name = a.Resume.Name()
	}
	log.Info().Int("bytes", len(pdfBytes)).Msg("analysis exported")
	return &Document{
		ID:       id,
		Filename: analysisFilename(name),
		PDF:      pdfBytes,
	}, nil
}

func analysisFilename(name string) string {
	f := model.SuggestedFilename(name)
	return f[:len(f)-len("resume.pdf")] + "resume_analysis.pdf"
}
