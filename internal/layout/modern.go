package layout

import (
	"resume-builder/internal/plan"
	"resume-builder/pkg/render"
)

type modern struct{ base }

func newModern() *modern {
	return &modern{base{id: "modern", name: "Modern", spec: plan.Modern, margins: render.Uniform(40)}}
}

var (
	modernAccent  = render.Hex("#2E86C1")
	modernMuted   = render.Hex("#555555")
	modernText    = render.Font{Family: "Helvetica", Size: 12}
	modernHeading = render.Font{Family: "Helvetica", Underline: true, Size: 16}
)

func (m *modern) Draw(d *Doc, p *plan.Plan) {
	h := p.Header
	d.Block(append([]Line{
		{Text: h.Name, Font: modernText.WithSize(24), Color: modernAccent, Align: render.AlignCenter, After: 4},
		{Text: h.JobTitle, Font: modernText.WithSize(14), Color: modernMuted, Align: render.AlignCenter, After: 2},
	}, contactRow(d, h.Contacts("email", "phone", "location", "links"), "  |  ",
		Line{Font: modernText.WithSize(11), Align: render.AlignCenter})...))
	d.Gap(12)

	for _, s := range p.Sections {
		heading := []Line{{Text: s.Title, Font: modernHeading, After: 4}}
		var entries [][]Line
		switch s.Kind {
		case plan.Skills:
			entries = groupLines(s, modernText)
		case plan.Education:
			for _, e := range s.Entries {
				entries = append(entries, spaced([]Line{
					{Text: join(" ", join(" - ", e.Title, e.Subtitle), paren(e.Date)), Font: modernText},
				}, 4))
			}
		case plan.Experience:
			for _, e := range s.Entries {
				lines := []Line{{Text: join(" ", join(" at ", e.Title, e.Subtitle), paren(e.Date)), Font: modernText}}
				lines = append(lines, body(e, modernText.WithSize(11), 12)...)
				entries = append(entries, spaced(lines, 4))
			}
		}
		d.Section(heading, entries, nil)
		d.Gap(10)
	}
}
