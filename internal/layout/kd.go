package layout

import (
	"strings"

	"resume-builder/internal/plan"
	"resume-builder/pkg/render"
)

type kd struct{ base }

func newKD() *kd {
	return &kd{base{id: "kd", name: "KD", spec: plan.KD, margins: render.Uniform(40)}}
}

var (
	kdText = render.Font{Family: "Helvetica", Size: 10}
	kdBold = kdText.Styled(true, false)
)

func (k *kd) Draw(d *Doc, p *plan.Plan) {
	h := p.Header
	d.Block(append([]Line{
		{Text: h.Name, Font: kdBold.WithSize(18), After: 2},
	}, contactRow(d, h.Contacts("email", "phone", "github", "website", "linkedin"), " | ", Line{Font: kdText})...))
	d.Gap(6)

	rule := func(d *Doc, y float64) {
		w, _ := d.Target().PageSize()
		d.Target().StrokeLine(k.margins.Left, y+1, w-k.margins.Right, y+1, render.Black, 0.5)
	}

	for _, s := range p.Sections {
		d.Gap(12)
		heading := []Line{{Text: strings.ToUpper(s.Title), Font: kdBold.WithSize(12), After: 8}}
		var entries [][]Line
		switch s.Kind {
		case plan.Skills, plan.Courses:
			entries = groupLines(s, kdText)
		case plan.Education:
			for _, e := range s.Entries {
				entries = append(entries, spaced([]Line{
					{Text: join(" | ", e.Title, join(", ", e.Subtitle, e.Date), e.Score), Font: kdBold},
				}, 4))
			}
		case plan.Projects:
			for _, e := range s.Entries {
				lines := []Line{{Text: join(" | ", e.Title, e.TechLine()), Font: kdBold}}
				lines = append(lines, body(e, kdText, 10)...)
				if links := e.LinkLine(" | "); links != "" {
					lines = append(lines, Line{Text: links, Font: kdText.Styled(false, true).WithSize(9)})
				}
				entries = append(entries, spaced(lines, 6))
			}
		case plan.Positions:
			for _, e := range s.Entries {
				head := Line{Text: join(", ", e.Title, e.Subtitle), Font: kdBold}
				if e.Date != "" {
					head.Suffix = "  " + paren(e.Date)
					head.SuffixFont = kdText
				}
				lines := append([]Line{head}, body(e, kdText, 10)...)
				entries = append(entries, spaced(lines, 6))
			}
		case plan.Misc:
			for _, e := range s.Entries {
				entries = append(entries, spaced([]Line{
					{Text: join(" - ", e.Title, join(" ", e.Description, paren(e.Date))), Font: kdBold},
				}, 4))
			}
		}
		d.Section(heading, entries, rule)
	}
}
