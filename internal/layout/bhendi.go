package layout

import (
	"strings"

	"resume-builder/internal/plan"
	"resume-builder/pkg/render"
)

type bhendi struct{ base }

func newBhendi() *bhendi {
	return &bhendi{base{id: "bhendi", name: "Bhendi", spec: plan.Bhendi, margins: render.Uniform(50)}}
}

var (
	bhendiText   = render.Font{Family: "Times", Size: 10}
	bhendiBold   = bhendiText.Styled(true, false)
	bhendiItalic = bhendiText.Styled(false, true).WithSize(9)
)

func (b *bhendi) Draw(d *Doc, p *plan.Plan) {
	h := p.Header
	d.Block(append([]Line{
		{Text: h.Name, Font: bhendiBold.WithSize(20), Align: render.AlignCenter, After: 2},
	}, contactRow(d, h.Contacts("phone", "email", "linkedin", "github"), " | ",
		Line{Font: bhendiText, Align: render.AlignCenter})...))

	for _, s := range p.Sections {
		d.Gap(18)
		heading := []Line{{
			Text:  strings.ToUpper(s.Title),
			Font:  render.Font{Family: "Times", Bold: true, Underline: true, Size: 12},
			After: 6,
		}}
		var entries [][]Line
		switch s.Kind {
		case plan.Skills:
			entries = groupLines(s, bhendiText)
		case plan.Experience:
			for _, e := range s.Entries {
				lines := []Line{bhendiHeadline(join(" - ", e.Title, e.Subtitle), e.Date)}
				if e.Location != "" {
					lines = append(lines, Line{Text: e.Location, Font: bhendiItalic})
				}
				lines = append(lines, body(e, bhendiText, 10)...)
				entries = append(entries, spaced(lines, 6))
			}
		case plan.Projects:
			for _, e := range s.Entries {
				lines := []Line{{Text: join(" | ", e.Title, e.TechLine()), Font: bhendiBold}}
				lines = append(lines, body(e, bhendiText, 10)...)
				if links := e.LinkLine(" | "); links != "" {
					lines = append(lines, Line{Text: "Links: " + links, Font: bhendiItalic})
				}
				entries = append(entries, spaced(lines, 6))
			}
		case plan.Education:
			for _, e := range s.Entries {
				school, degree := e.Subtitle, e.Title
				if school == "" {
					school, degree = degree, ""
				}
				lines := []Line{bhendiHeadline(school, e.Date)}
				lines = append(lines, Line{Text: join(" | ", degree, e.Score), Font: bhendiText})
				if e.Location != "" {
					lines = append(lines, Line{Text: e.Location, Font: bhendiText.WithSize(9)})
				}
				entries = append(entries, spaced(lines, 4))
			}
		}
		d.Section(heading, entries, nil)
	}
}

// bhendiHeadline is a bold title with the date flush right.
func bhendiHeadline(title, date string) Line {
	l := Line{Text: title, Font: bhendiBold}
	if date != "" {
		l.Suffix = paren(date)
		l.SuffixFont = bhendiText
		l.SuffixRight = true
	}
	return l
}
