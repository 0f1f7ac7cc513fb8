package usecase

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/pkg/render"
)

const annLee = `{
	"name": "Ann Lee",
	"email": "ann@example.com",
	"skills": ["Go", "SQL"],
	"education": [{"degree": "BSc", "school": "MIT", "startDate": "2016-09", "endDate": "2020-06"}],
	"experience": [{"role": "Engineer", "company": "Acme", "startDate": "2020-07", "isCurrent": true}]
}`

type fakeRenderer struct {
	calls   int32
	failFor int32
	out     []byte
	html    string
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	n := atomic.AddInt32(&f.calls, 1)
	f.html = html
	if n <= f.failFor {
		return nil, errors.New("chrome crashed")
	}
	return f.out, nil
}

type fakeAnalyzer struct {
	res *model.Analysis
	err error
}

func (f fakeAnalyzer) Analyze(context.Context, []byte, string) (*model.Analysis, error) {
	return f.res, f.err
}

func testOptions() Options {
	return Options{
		Backoff: func(int) time.Duration { return 0 },
		Now:     func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
}

func TestGenerate(t *testing.T) {
	p := NewProcessor(nil, nil, testOptions())

	doc, err := p.Generate(context.Background(), "modern", []byte(annLee))
	require.NoError(t, err)
	assert.Equal(t, "modern", doc.Template)
	assert.Equal(t, "AnnLee_resume.pdf", doc.Filename)
	assert.NotEmpty(t, doc.ID)
	assert.True(t, strings.HasPrefix(string(doc.PDF), "%PDF"))
}

func TestGenerateUnknownTemplate(t *testing.T) {
	p := NewProcessor(nil, nil, testOptions())
	_, err := p.Generate(context.Background(), "fancy", []byte(annLee))
	assert.ErrorIs(t, err, layout.ErrUnknownTemplate)
}

func TestGenerateGarbageData(t *testing.T) {
	p := NewProcessor(nil, nil, testOptions())
	doc, err := p.Generate(context.Background(), "kd", []byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", doc.Filename)
	assert.True(t, strings.HasPrefix(string(doc.PDF), "%PDF"))
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProcessor(nil, nil, testOptions()).Generate(ctx, "modern", []byte(annLee))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateAll(t *testing.T) {
	p := NewProcessor(nil, nil, testOptions())
	docs, err := p.GenerateAll(context.Background(), []byte(annLee))
	require.NoError(t, err)
	require.Len(t, docs, len(layout.IDs()))
	for i, id := range layout.IDs() {
		assert.Equal(t, id, docs[i].Template)
		assert.True(t, strings.HasPrefix(string(docs[i].PDF), "%PDF"), id)
	}
}

func TestPreview(t *testing.T) {
	p := NewProcessor(nil, nil, testOptions())
	html, err := p.Preview("", []byte(annLee))
	require.NoError(t, err)
	assert.Contains(t, html, "Ann Lee")

	_, err = p.Preview("fancy", []byte(annLee))
	assert.ErrorIs(t, err, layout.ErrUnknownTemplate)
}

func TestAnalyze(t *testing.T) {
	a := model.ParseAnalysis([]byte(`{"score": 91, "userInfo": {"name": "Ann Lee"}, "skills": ["Go"]}`))
	p := NewProcessor(nil, fakeAnalyzer{res: a}, testOptions())

	res, err := p.Analyze(context.Background(), []byte("%PDF"), "Go engineer")
	require.NoError(t, err)
	assert.Same(t, a, res.Analysis)
	assert.Contains(t, res.AnalysisHTML, "91")
	assert.Contains(t, res.PreviewHTML, "Ann Lee")
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := NewProcessor(nil, nil, testOptions()).Analyze(context.Background(), nil, "jd")
	assert.ErrorIs(t, err, ErrNoAnalyzer)

	boom := errors.New("quota")
	_, err = NewProcessor(nil, fakeAnalyzer{err: boom}, testOptions()).Analyze(context.Background(), nil, "jd")
	assert.ErrorIs(t, err, boom)
}

func TestExportAnalysisRetries(t *testing.T) {
	r := &fakeRenderer{failFor: 2, out: []byte("%PDF-1.4 fake")}
	p := NewProcessor(r, nil, testOptions())
	a := model.ParseAnalysis([]byte(`{"score": 70, "userInfo": {"name": "Ann Lee"}}`))

	doc, err := p.ExportAnalysis(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&r.calls))
	assert.Equal(t, "AnnLee_resume_analysis.pdf", doc.Filename)
	assert.Equal(t, "%PDF-1.4 fake", string(doc.PDF))
	assert.Contains(t, r.html, "<title>Ann Lee - Resume Analysis</title>")
}

func TestExportAnalysisRejectsNonPDF(t *testing.T) {
	r := &fakeRenderer{out: []byte("<html>")}
	p := NewProcessor(r, nil, testOptions())

	_, err := p.ExportAnalysis(context.Background(), nil)
	var re *render.RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, int32(3), atomic.LoadInt32(&r.calls))
}

func TestExportAnalysisNoRenderer(t *testing.T) {
	_, err := NewProcessor(nil, nil, testOptions()).ExportAnalysis(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoRenderer)
}

func TestAnalysisFilename(t *testing.T) {
	assert.Equal(t, "resume_analysis.pdf", analysisFilename(""))
	assert.Equal(t, "Ann_resume_analysis.pdf", analysisFilename("Ann"))
}
