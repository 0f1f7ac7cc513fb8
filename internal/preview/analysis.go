package preview

import (
	"html/template"
	"strings"
	"unicode"

	"resume-builder/internal/model"
	"resume-builder/internal/plan"
)

const defaultSummary = "Analysis complete. See suggestions."

type strengthView struct {
	Name  string
	Score int
	Label string
}

type suggestionView struct {
	Text   string
	Class  string
	Symbol string
}

type analysisView struct {
	Score              int
	ScoreClass         string
	Summary            string
	SkillsFeedback     string
	ExperienceFeedback string
	Found              []string
	Missing            []string
	Sections           []strengthView
	Suggestions        []suggestionView
}

// RenderAnalysis renders the feedback panel of an analysis.
func RenderAnalysis(a *model.Analysis) (string, error) {
	if a == nil {
		a = model.ParseAnalysis(nil)
	}
	v := analysisView{
		Score:              a.Score,
		ScoreClass:         ScoreClass(a.Score),
		Summary:            a.SummaryFeedback,
		SkillsFeedback:     a.SkillsFeedback,
		ExperienceFeedback: a.ExperienceFeedback,
		Found:              a.KeywordMatches.Found,
		Missing:            a.KeywordMatches.Missing,
	}
	if v.Summary == "" {
		v.Summary = defaultSummary
	}
	for _, s := range a.SectionAnalysis {
		v.Sections = append(v.Sections, strengthView{Name: displayName(s.Key), Score: s.Score, Label: StrengthLabel(s.Score)})
	}
	for _, s := range a.Suggestions {
		class, symbol := classify(s)
		v.Suggestions = append(v.Suggestions, suggestionView{Text: s, Class: class, Symbol: symbol})
	}
	return execute("analysis", v)
}

// RenderAnalysisResume previews the resume fields carried by an analysis.
func RenderAnalysisResume(a *model.Analysis) (string, error) {
	if a == nil {
		a = model.ParseAnalysis(nil)
	}
	return execute("resume", buildView(a.Resume, plan.Preview, ""))
}

// Document is a standalone HTML page with the analysis panel beside the
// resume preview, ready to be printed.
func Document(a *model.Analysis) (string, error) {
	panel, err := RenderAnalysis(a)
	if err != nil {
		return "", err
	}
	resume, err := RenderAnalysisResume(a)
	if err != nil {
		return "", err
	}
	css, err := files.ReadFile("templates/style.css")
	if err != nil {
		return "", err
	}
	title := "Resume Analysis"
	if a != nil && a.UserInfo.Name != "" {
		title = a.UserInfo.Name + " - " + title
	}
	return execute("document", struct {
		Title    string
		CSS      template.CSS
		Analysis template.HTML
		Resume   template.HTML
	}{title, template.CSS(css), template.HTML(panel), template.HTML(resume)})
}

// ScoreClass buckets an overall score.
func ScoreClass(score int) string {
	switch {
	case score >= 85:
		return "high-score"
	case score >= 70:
		return "medium-score"
	}
	return "low-score"
}

// StrengthLabel names a section score.
func StrengthLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Needs Improvement"
	}
	return "Poor"
}

var (
	positiveWords   = []string{"good", "strong", "well done", "excellent"}
	suggestionWords = []string{"consider", "add", "quantify", "improve", "expand", "tailor"}
	negativeWords   = []string{"generic", "missing", "lack", "unclear", "vague", "too "}
)

// classify picks the icon of a suggestion from its wording.
func classify(text string) (class, symbol string) {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, positiveWords):
		return "positive", "✓"
	case containsAny(lower, suggestionWords):
		return "suggestion", "💡"
	case containsAny(lower, negativeWords):
		return "negative", "❌"
	}
	return "suggestion", "•"
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// displayName turns "workExperience" into "Work Experience".
func displayName(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
