package layout

import (
	"resume-builder/internal/plan"
	"resume-builder/pkg/render"
)

const (
	sidebarWidth = 150
	sidebarPad   = 20
)

type azurill struct{ base }

func newAzurill() *azurill {
	return &azurill{base{
		id:      "azurill",
		name:    "Azurill",
		spec:    plan.Azurill,
		margins: render.Margins{Top: 40, Right: 40, Bottom: 50, Left: sidebarWidth + 20},
	}}
}

var (
	azurillAccent = render.Hex("#4B0082")
	azurillText   = render.Font{Family: "Helvetica", Size: 11}
)

func drawSidebar(d *Doc) {
	_, h := d.Target().PageSize()
	d.Target().FillRect(0, 0, sidebarWidth, h, azurillAccent)
}

func (a *azurill) Draw(d *Doc, p *plan.Plan) {
	d.onPage = drawSidebar
	drawSidebar(d)

	t := d.Target()
	side := render.TextOptions{Color: render.White, Width: sidebarWidth - 2*sidebarPad, Align: render.AlignCenter}
	side.Font = azurillText.Styled(true, false).WithSize(18)
	t.PlaceText(p.Header.Name, sidebarPad, 40, side)
	y := t.CurrentY() + 10
	if y < 80 {
		y = 80
	}
	side.Font = azurillText.WithSize(10)
	if p.Header.JobTitle != "" {
		t.PlaceText(p.Header.JobTitle, sidebarPad, y, side)
		y = t.CurrentY() + 6
	}
	// Contacts that would run past the bottom margin move to the main column.
	contacts := p.Header.Contacts("email", "phone", "location", "links")
	var overflow []plan.Contact
	for i, c := range contacts {
		text := c.Printed()
		if y+t.TextHeight(text, side.Font, side.Width) > d.bottom {
			overflow = contacts[i:]
			break
		}
		side.Link = c.Link.Href
		t.PlaceText(text, sidebarPad, y, side)
		y = t.CurrentY() + 3
	}
	d.SetY(a.margins.Top)
	if len(overflow) > 0 {
		d.Block(contactRow(d, overflow, " | ", Line{Font: azurillText.WithSize(10), After: 10}))
	}

	for _, s := range p.Sections {
		heading := []Line{{Text: s.Title, Font: azurillText.WithSize(14), Color: azurillAccent, After: 8}}
		var entries [][]Line
		switch s.Kind {
		case plan.Skills:
			entries = groupLines(s, azurillText)
		default:
			for _, e := range s.Entries {
				lines := []Line{
					{Text: e.Title, Font: azurillText.Styled(true, false), After: 2},
					{Text: join(" ", e.Subtitle, paren(e.Date)), Font: azurillText, Indent: 10},
				}
				lines = append(lines, body(e, azurillText.WithSize(10), 10)...)
				entries = append(entries, spaced(lines, 15))
			}
		}
		d.Section(heading, entries, nil)
		d.Gap(10)
	}
}
