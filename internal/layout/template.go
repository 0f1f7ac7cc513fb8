// Package layout draws resumes on a render.Target. Each visual template is a
// strategy over the shared section plan; pagination, keep-with-next headings
// and page decoration live in Doc so templates only compose lines.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/plan"
	"resume-builder/pkg/render"
)

// ErrUnknownTemplate is matched by every UnknownTemplateError.
var ErrUnknownTemplate = errors.New("unknown template")

type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q (known: %s)", e.ID, strings.Join(IDs(), ", "))
}

func (e *UnknownTemplateError) Is(target error) bool { return target == ErrUnknownTemplate }

// Template is one visual layout strategy.
type Template interface {
	ID() string
	Name() string
	Spec() plan.Spec
	Margins() render.Margins
	Draw(d *Doc, p *plan.Plan)
}

type base struct {
	id      string
	name    string
	spec    plan.Spec
	margins render.Margins
}

func (b base) ID() string              { return b.id }
func (b base) Name() string            { return b.name }
func (b base) Spec() plan.Spec         { return b.spec }
func (b base) Margins() render.Margins { return b.margins }

var templates = []Template{
	newModern(),
	newClassic(),
	newAzurill(),
	newBhendi(),
	newKD(),
}

// Templates lists every template in display order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// IDs lists every template id in display order.
func IDs() []string {
	ids := make([]string, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID())
	}
	return ids
}

// Lookup finds a template by id.
func Lookup(id string) (Template, error) {
	for _, t := range templates {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, &UnknownTemplateError{ID: id}
}

// Render draws rec with the template id on t. The record is only read.
func Render(t render.Target, id string, rec model.Record) error {
	tpl, err := Lookup(id)
	if err != nil {
		return err
	}
	d := newDoc(t, tpl.Margins())
	tpl.Draw(d, plan.Build(tpl.Spec(), rec))
	return nil
}

// Generate renders rec to PDF bytes. Margins in opts are replaced by the
// template's own.
func Generate(id string, rec model.Record, opts render.Options) ([]byte, error) {
	tpl, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	opts.Margins = tpl.Margins()
	if opts.Title == "" {
		opts.Title = strings.TrimSpace(rec.Name() + " Resume")
	}
	t := render.NewPDF(opts)
	if err := Render(t, id, rec); err != nil {
		return nil, err
	}
	return t.Finalize()
}

func join(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func paren(s string) string {
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// body is the description or bullet lines of an entry.
func body(e plan.Entry, font render.Font, indent float64) []Line {
	if len(e.Points) > 0 {
		lines := make([]Line, 0, len(e.Points))
		for _, p := range e.Points {
			lines = append(lines, Line{Text: "• " + p, Font: font, Indent: indent})
		}
		return lines
	}
	if e.Description != "" {
		return []Line{{Text: e.Description, Font: font, Indent: indent}}
	}
	return nil
}

// spaced adds gap below the last line of a block.
func spaced(lines []Line, gap float64) []Line {
	if len(lines) > 0 {
		lines[len(lines)-1].After += gap
	}
	return lines
}

// contactRow lays out header contacts, each linked to its own address.
func contactRow(d *Doc, contacts []plan.Contact, sep string, proto Line) []Line {
	runs := make([]Span, 0, len(contacts))
	for _, c := range contacts {
		runs = append(runs, Span{Text: c.Printed(), Link: c.Link.Href})
	}
	return d.Row(runs, sep, proto)
}

func groupLines(s plan.Section, font render.Font) [][]Line {
	var out [][]Line
	for _, g := range s.Groups {
		out = append(out, []Line{{Text: g.Text(), Font: font}})
	}
	return out
}
