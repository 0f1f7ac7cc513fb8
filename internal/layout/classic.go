package layout

import (
	"resume-builder/internal/plan"
	"resume-builder/pkg/render"
)

type classic struct{ base }

func newClassic() *classic {
	return &classic{base{id: "classic", name: "Classic", spec: plan.Classic, margins: render.Uniform(40)}}
}

var classicText = render.Font{Family: "Times", Size: 11}

func (c *classic) Draw(d *Doc, p *plan.Plan) {
	h := p.Header
	d.Block(append([]Line{
		{Text: h.Name, Font: classicText.WithSize(18), After: 2},
		{Text: h.JobTitle, Font: classicText.Styled(false, true).WithSize(12), After: 2},
	}, contactRow(d, h.Contacts("email", "phone", "location", "links"), ", ", Line{Font: classicText})...))
	d.Gap(12)

	for _, s := range p.Sections {
		heading := []Line{{Text: s.Title, Font: classicText.WithSize(14), After: 2}}
		var entries [][]Line
		switch s.Kind {
		case plan.Skills:
			entries = groupLines(s, classicText)
		case plan.Education:
			for _, e := range s.Entries {
				entries = append(entries, spaced([]Line{
					{Text: join(", ", join(" at ", e.Title, e.Subtitle), e.Date), Font: classicText},
				}, 2))
			}
		case plan.Experience:
			for _, e := range s.Entries {
				lines := []Line{{Text: join(", ", join(" at ", e.Title, e.Subtitle), e.Date), Font: classicText}}
				lines = append(lines, body(e, classicText.WithSize(10), 10)...)
				entries = append(entries, spaced(lines, 2))
			}
		}
		d.Section(heading, entries, nil)
		d.Gap(12)
	}
}
