// Package preview renders resumes and analyses as HTML fragments for
// on-screen display. Sections and field fallbacks come from the same plan
// the PDF layout draws, so a preview never shows a section the document
// would omit.
package preview

import (
	"bytes"
	"embed"
	"html/template"

	"resume-builder/internal/format"
	"resume-builder/internal/layout"
	"resume-builder/internal/model"
	"resume-builder/internal/plan"
)

//go:embed templates/*.html templates/*.css
var files embed.FS

var tpl = template.Must(template.New("preview").ParseFS(files, "templates/*.html"))

// EmptyMessage is shown when a record has almost nothing to preview.
const EmptyMessage = "Could not parse sufficient resume content for preview."

type contactView struct {
	Kind string
	HTML template.HTML
}

type entryView struct {
	Title       string
	Subtitle    string
	Date        string
	Location    string
	Score       string
	Tech        string
	Description template.HTML
	Points      template.HTML
	Links       []template.HTML
}

type sectionView struct {
	Kind    string
	Title   string
	Entries []entryView
	Tags    []string
	Groups  []string
}

type resumeView struct {
	Template string
	Name     string
	JobTitle string
	Contacts []contactView
	Sections []sectionView
	Empty    bool
}

// Render previews rec with the sections of templateID, or the generic
// preview table when templateID is empty.
func Render(rec model.Record, templateID string) (string, error) {
	spec := plan.Preview
	if templateID != "" {
		t, err := layout.Lookup(templateID)
		if err != nil {
			return "", err
		}
		spec = t.Spec()
	}
	return execute("resume", buildView(rec, spec, templateID))
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildView(rec model.Record, spec plan.Spec, templateID string) resumeView {
	p := plan.Build(spec, rec)
	v := resumeView{
		Template: templateID,
		Name:     p.Header.Name,
		JobTitle: p.Header.JobTitle,
		Empty:    isEmpty(rec),
	}
	if v.Template == "" {
		v.Template = "preview"
	}
	for _, c := range p.Header.Contacts("email", "phone", "location", "links") {
		v.Contacts = append(v.Contacts, contactView{Kind: c.Kind, HTML: contactHTML(c)})
	}
	for _, s := range p.Sections {
		v.Sections = append(v.Sections, sectionOf(s))
	}
	return v
}

// isEmpty is true when name, summary, skills, experience and projects are
// all missing.
func isEmpty(rec model.Record) bool {
	if rec.Name() != "" || rec.Str("summary") != "" || len(rec.Skills()) > 0 {
		return false
	}
	p := plan.Build(plan.Spec{Sections: []plan.SectionSpec{{Kind: plan.Experience}, {Kind: plan.Projects}}}, rec)
	return len(p.Sections) == 0
}

func contactHTML(c plan.Contact) template.HTML {
	if c.Link == (format.Link{}) {
		return template.HTML("<span>" + template.HTMLEscapeString(c.Text) + "</span>")
	}
	return c.Link.HTML("")
}

func sectionOf(s plan.Section) sectionView {
	v := sectionView{Kind: string(s.Kind), Title: s.Title}
	if len(s.Groups) == 1 && s.Groups[0].Label == "" {
		v.Tags = s.Groups[0].Items
	} else {
		for _, g := range s.Groups {
			v.Groups = append(v.Groups, g.Text())
		}
	}
	for _, e := range s.Entries {
		ev := entryView{
			Title:       e.Title,
			Subtitle:    e.Subtitle,
			Date:        e.Date,
			Location:    e.Location,
			Score:       e.Score,
			Tech:        e.TechLine(),
			Description: format.Nl2br(e.Description),
			Points:      format.FormatPoints(e.Points),
		}
		for _, l := range e.Links {
			text := l.Kind
			if text == "" {
				text = "Project Link"
			}
			ev.Links = append(ev.Links, format.CreateLink(l.URL, text, "resume-project-link"))
		}
		v.Entries = append(v.Entries, ev)
	}
	return v
}
