// Package plan turns a normalized resume into the ordered list of sections a
// template shows, with every empty section and entry already removed. The PDF
// layout engine and the HTML preview both draw from the same Plan.
package plan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"resume-builder/internal/format"
	"resume-builder/internal/model"
)

type Kind string

const (
	Summary    Kind = "summary"
	Education  Kind = "education"
	Experience Kind = "experience"
	Projects   Kind = "projects"
	Skills     Kind = "skills"
	Courses    Kind = "courses"
	Positions  Kind = "positions"
	Misc       Kind = "misc"
)

// SkillStyle selects how the skills section is grouped.
type SkillStyle int

const (
	// SkillsMerged is a single unlabeled group holding the merged skill list.
	SkillsMerged SkillStyle = iota
	// SkillsByCategory is one labelled group per technicalSkills category,
	// preceded by an unlabeled group of flat skills not already listed.
	SkillsByCategory
)

type SectionSpec struct {
	Kind  Kind
	Title string
}

// Spec is a template's section table. Fields lists, per kind, the entry
// fields the template draws; an entry showing none of them is dropped. A
// kind missing from Fields keeps every entry with any value.
type Spec struct {
	Sections    []SectionSpec
	Skills      SkillStyle
	SkillLabels map[string]string
	Fields      map[Kind]Field
}

func (s Spec) fields(k Kind) Field {
	if f, ok := s.Fields[k]; ok {
		return f
	}
	return AllFields
}

type Plan struct {
	Header   Header
	Sections []Section
}

type Section struct {
	Kind    Kind
	Title   string
	Entries []Entry
	Groups  []Group
}

// Group is one labelled line of items. Label may be empty.
type Group struct {
	Label string
	Items []string
}

func (g Group) Text() string {
	s := strings.Join(g.Items, ", ")
	if g.Label == "" {
		return s
	}
	return g.Label + ": " + s
}

// Build applies spec to rec. Sections keep spec order; a section whose
// entries and groups are all empty is left out.
func Build(spec Spec, rec model.Record) *Plan {
	p := &Plan{Header: buildHeader(rec)}
	for _, ss := range spec.Sections {
		s := Section{Kind: ss.Kind, Title: ss.Title}
		switch ss.Kind {
		case Summary:
			if txt := rec.Str("summary"); txt != "" {
				s.Entries = []Entry{{Description: txt}}
			}
		case Skills:
			s.Groups = skillGroups(spec, rec)
		case Courses:
			for _, c := range rec.Courses() {
				s.Groups = append(s.Groups, Group{Label: c.Key, Items: c.Items})
			}
		default:
			s.Entries = entries(ss.Kind, rec, spec.fields(ss.Kind))
		}
		if len(s.Entries) > 0 || len(s.Groups) > 0 {
			p.Sections = append(p.Sections, s)
		}
	}
	return p
}

// Section returns the section of the given kind, if present.
func (p *Plan) Section(kind Kind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

func entries(kind Kind, rec model.Record, shown Field) []Entry {
	var build func(node gjson.Result) Entry
	switch kind {
	case Education:
		build = educationEntry
	case Experience:
		build = experienceEntry
	case Projects:
		build = projectEntry
	case Positions:
		build = positionEntry
	case Misc:
		build = miscEntry
	default:
		return nil
	}
	var out []Entry
	for _, item := range rec.List(string(kind)) {
		if e := build(item); e.Shows(shown) {
			out = append(out, e)
		}
	}
	return out
}

func skillGroups(spec Spec, rec model.Record) []Group {
	if spec.Skills == SkillsMerged {
		if items := rec.Skills(); len(items) > 0 {
			return []Group{{Items: items}}
		}
		return nil
	}

	seen := map[string]bool{}
	var groups []Group
	var flat []string
	for _, s := range model.StrList(rec.Root(), "skills") {
		if !seen[s] {
			seen[s] = true
			flat = append(flat, s)
		}
	}
	if len(flat) > 0 {
		groups = append(groups, Group{Items: flat})
	}
	for _, c := range rec.SkillCategories() {
		var items []string
		for _, s := range c.Items {
			if !seen[s] {
				seen[s] = true
				items = append(items, s)
			}
		}
		if len(items) > 0 {
			groups = append(groups, Group{Label: categoryLabel(spec, c.Key), Items: items})
		}
	}
	return groups
}

func categoryLabel(spec Spec, key string) string {
	if l, ok := spec.SkillLabels[key]; ok {
		return l
	}
	return titleCase(key)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[n:]
	}
	return strings.Join(words, " ")
}

// Header is the name block and the contact values of a resume.
type Header struct {
	Name     string
	JobTitle string
	Email    string
	Phone    string
	Location string
	Links    []model.Link
}

// Contact is one present contact value. Text is the on-screen label and
// Value the address itself; they differ for links shown by their kind.
type Contact struct {
	Kind  string
	Text  string
	Value string
	Link  format.Link
}

// Printed is the contact as it appears on paper: the address rather than
// its kind, with format.InvalidSuffix when a link does not resolve.
func (c Contact) Printed() string {
	text := c.Value
	if text == "" {
		text = c.Text
	}
	if c.Link.Text != "" && !c.Link.Valid {
		return text + format.InvalidSuffix
	}
	return text
}

func buildHeader(rec model.Record) Header {
	return Header{
		Name:     rec.Name(),
		JobTitle: rec.Str("jobTitle", "title"),
		Email:    rec.Str("email"),
		Phone:    rec.Str("phone"),
		Location: rec.Str("location", "address"),
		Links:    model.Links(rec.Root(), "links"),
	}
}

// Contacts returns the present values among kinds, in that order. The kinds
// "email", "phone" and "location" read header fields; any other kind names a
// link. The kind "links" expands to every link not named elsewhere in kinds.
func (h Header) Contacts(kinds ...string) []Contact {
	named := map[string]bool{}
	for _, k := range kinds {
		named[strings.ToLower(k)] = true
	}
	var out []Contact
	for _, k := range kinds {
		switch strings.ToLower(k) {
		case "email":
			if h.Email != "" {
				out = append(out, Contact{Kind: "email", Text: h.Email, Value: h.Email, Link: format.ResolveLink(h.Email, h.Email)})
			}
		case "phone":
			if h.Phone != "" {
				out = append(out, Contact{Kind: "phone", Text: h.Phone})
			}
		case "location":
			if h.Location != "" {
				out = append(out, Contact{Kind: "location", Text: h.Location})
			}
		case "links":
			for _, l := range h.Links {
				if named[strings.ToLower(l.Kind)] {
					continue
				}
				text := l.Kind
				if text == "" {
					text = format.LinkLabel(l.URL)
				}
				out = append(out, Contact{Kind: l.Kind, Text: text, Value: l.URL, Link: format.ResolveLink(l.URL, text)})
			}
		default:
			if u := model.LinkOf(h.Links, k); u != "" {
				out = append(out, Contact{Kind: k, Text: u, Value: u, Link: format.ResolveLink(u, u)})
			}
		}
	}
	return out
}

// ContactLine joins the printed form of contacts with sep.
func ContactLine(contacts []Contact, sep string) string {
	parts := make([]string, 0, len(contacts))
	for _, c := range contacts {
		parts = append(parts, c.Printed())
	}
	return strings.Join(parts, sep)
}
