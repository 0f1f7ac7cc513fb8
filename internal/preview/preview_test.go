package preview

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/pkg/render"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func titles(doc *goquery.Document) []string {
	var out []string
	doc.Find(".resume-section-title").Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}

func TestRenderSectionsMatchTemplate(t *testing.T) {
	rec := model.Normalize([]byte(`{"name":"Ann Lee","email":"ann@x.com","experience":[{"role":"Engineer","company":"Acme","duration":"2020-2022"}],"education":[],"skills":["Go"]}`))

	html, err := Render(rec, "modern")
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, []string{"Experience", "Skills"}, titles(doc))
	assert.Equal(t, "Ann Lee", doc.Find(".resume-name").Text())
	assert.Equal(t, "Engineer", doc.Find(".resume-item-title").First().Text())
	assert.Equal(t, "2020-2022", doc.Find(".resume-item-date").First().Text())
	assert.Equal(t, "Go", doc.Find(".skill-tag").Text())

	mail, ok := doc.Find(".resume-contact a").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "mailto:ann@x.com", mail)
}

func TestRenderDefaultTable(t *testing.T) {
	rec := model.Normalize([]byte(`{"name":"A","summary":"line one\nline <two>","projects":[{"name":"CLI","points":["fast"],"links":{"github":"github.com/a/cli"}}]}`))
	html, err := Render(rec, "")
	require.NoError(t, err)
	doc := parse(t, html)

	assert.Equal(t, []string{"Summary", "Projects"}, titles(doc))
	desc, err := doc.Find(".section-summary .resume-item-description").Html()
	require.NoError(t, err)
	assert.Equal(t, "line one<br/>line &lt;two&gt;", desc)
	assert.Equal(t, "fast", doc.Find(".resume-item-points li").Text())

	link := doc.Find("a.resume-project-link")
	assert.Equal(t, "github", link.Text())
	rel, _ := link.Attr("rel")
	assert.Equal(t, "noopener noreferrer", rel)
}

func TestRenderEscapes(t *testing.T) {
	rec := model.Normalize([]byte(`{"name":"<script>x</script>","skills":["a&b"]}`))
	html, err := Render(rec, "")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Equal(t, 0, parse(t, html).Find("script").Length())
}

func TestRenderEmptyFallback(t *testing.T) {
	for _, in := range []string{`{}`, `{"education":[{"degree":"BSc"}],"email":"a@b.c"}`} {
		html, err := Render(model.Normalize([]byte(in)), "")
		require.NoError(t, err)
		doc := parse(t, html)
		assert.Contains(t, doc.Find(".preview-empty").Text(), EmptyMessage)
		assert.Empty(t, titles(doc))
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(model.Normalize(nil), "nope")
	assert.ErrorIs(t, err, layout.ErrUnknownTemplate)
}

func TestPreviewAgreesWithLayout(t *testing.T) {
	rec := model.Normalize([]byte(`{"name":"K","projects":[{"title":"P"}],"misc":[],"positions":[{"title":"Lead"}],"technicalSkills":{"tools":["git"]}}`))
	html, err := Render(rec, "kd")
	require.NoError(t, err)
	assert.Equal(t, []string{"Projects", "Technical Skills", "Positions of Responsibility"}, titles(parse(t, html)))
}

// drawnHeadings lists the section titles of tpl that the layout engine put
// on the page, in table order.
func drawnHeadings(t *testing.T, tpl layout.Template, rec model.Record) []string {
	t.Helper()
	r := render.NewLetterRecorder(render.Uniform(0))
	require.NoError(t, layout.Render(r, tpl.ID(), rec))
	drawn := map[string]bool{}
	for _, s := range r.Texts() {
		drawn[strings.ToUpper(s)] = true
	}
	var out []string
	for _, s := range tpl.Spec().Sections {
		if drawn[strings.ToUpper(s.Title)] {
			out = append(out, s.Title)
		}
	}
	return out
}

func TestPreviewAgreesWithLayoutOnSparseEntries(t *testing.T) {
	docs := []string{
		`{"name":"A","education":[{"description":"Exchange semester"}]}`,
		`{"name":"A","projects":[{"date":"2021"}]}`,
		`{"name":"A","experience":[{"location":"Pune"}]}`,
		`{"name":"A","education":[{"score":"9.1"}],"experience":[{"description":"Built things"}]}`,
		`{"name":"A","education":[{"location":"Delhi"}],"projects":[{"links":["gh.com/a"]}]}`,
		`{"name":"A","misc":[{"year":"2019"}],"positions":[{"duration":"2021"}],"projects":[{"techStack":["Go"]}]}`,
		`{"name":"A","experience":[{"points":["Shipped"]}],"education":["BSc"]}`,
	}
	for _, tpl := range layout.Templates() {
		for _, doc := range docs {
			rec := model.Normalize([]byte(doc))
			html, err := Render(rec, tpl.ID())
			require.NoError(t, err)
			assert.Equal(t, drawnHeadings(t, tpl, rec), titles(parse(t, html)), "%s %s", tpl.ID(), doc)
		}
	}
}

const analysisJSON = `{
  "score": 78,
  "summaryFeedback": "",
  "keywordMatches": {"found": ["Go"], "missing": ["Kafka"]},
  "suggestions": ["Strong backend focus", "Quantify your impact", "Summary is vague", "Keep it up"],
  "sectionAnalysis": {"skills": 90, "workExperience": 72, "education": 40},
  "userInfo": {"name": "Ann Lee", "email": "ann@x.com"},
  "experienceDetails": [{"jobTitle": "Engineer", "duration": "2020 - 2022", "description": "Built APIs"}],
  "projects": [{"projectName": "CLI", "projectDescription": "tool", "toolsUsed": ["Go"]}]
}`

func TestRenderAnalysis(t *testing.T) {
	a := model.ParseAnalysis([]byte(analysisJSON))
	html, err := RenderAnalysis(a)
	require.NoError(t, err)
	doc := parse(t, html)

	circle := doc.Find(".score-circle")
	assert.Equal(t, "78", circle.Text())
	assert.True(t, circle.HasClass("medium-score"))
	assert.Equal(t, "Analysis complete. See suggestions.", doc.Find(".score-text p").Text())
	assert.Equal(t, 1, doc.Find(".keyword-status.found").Length())
	assert.Equal(t, 1, doc.Find(".keyword-status.missing").Length())

	var names, labels []string
	doc.Find(".strength-item").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Find(".strength-name").Text())
		labels = append(labels, s.Find(".progress-label span").First().Text())
	})
	assert.Equal(t, []string{"Work Experience", "Skills", "Education"}, names)
	assert.Equal(t, []string{"Good", "Excellent", "Poor"}, labels)

	var classes []string
	doc.Find(".analysis-item-icon").Each(func(_ int, s *goquery.Selection) {
		c, _ := s.Attr("class")
		classes = append(classes, strings.TrimPrefix(c, "analysis-item-icon "))
	})
	assert.Equal(t, []string{"positive", "suggestion", "negative", "suggestion"}, classes)
}

func TestRenderAnalysisFallbacks(t *testing.T) {
	html, err := RenderAnalysis(model.ParseAnalysis([]byte(`{}`)))
	require.NoError(t, err)
	text := parse(t, html).Text()
	assert.Contains(t, text, "No keyword analysis available.")
	assert.Contains(t, text, "Section analysis unavailable.")
	assert.Contains(t, text, "No specific suggestions provided.")
	assert.True(t, parse(t, html).Find(".score-circle").HasClass("low-score"))
}

func TestRenderAnalysisResume(t *testing.T) {
	html, err := RenderAnalysisResume(model.ParseAnalysis([]byte(analysisJSON)))
	require.NoError(t, err)
	doc := parse(t, html)
	assert.Equal(t, []string{"Work Experience", "Projects"}, titles(doc))
	assert.Equal(t, "Engineer", doc.Find(".resume-job-title").Text())
	assert.Equal(t, "Technologies: Go", doc.Find(".section-projects .resume-item-subtitle").Text())
}

func TestDocument(t *testing.T) {
	html, err := Document(model.ParseAnalysis([]byte(analysisJSON)))
	require.NoError(t, err)
	doc := parse(t, html)
	assert.Equal(t, "Ann Lee - Resume Analysis", doc.Find("title").Text())
	assert.Contains(t, doc.Find("style").Text(), ".score-circle")
	assert.Equal(t, 1, doc.Find(".analysis-panel").Length())
	assert.Equal(t, 1, doc.Find(".resume-preview").Length())
}
