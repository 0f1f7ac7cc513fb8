package plan

import (
	"strings"

	"github.com/tidwall/gjson"

	"resume-builder/internal/format"
	"resume-builder/internal/model"
)

// Entry is one item of a section with every field fallback already applied.
// Points and Description are never both set.
type Entry struct {
	Title       string
	Subtitle    string
	Date        string
	Location    string
	Score       string
	Description string
	Points      []string
	Tech        []string
	Links       []model.Link
}

// Field names one part of an entry. Fields combine as a set.
type Field uint

const (
	FieldTitle Field = 1 << iota
	FieldSubtitle
	FieldDate
	FieldLocation
	FieldScore
	// FieldBody is the description or the bullet points.
	FieldBody
	FieldTech
	FieldLinks

	AllFields = FieldTitle | FieldSubtitle | FieldDate | FieldLocation | FieldScore | FieldBody | FieldTech | FieldLinks
)

// Shows reports whether any field in set has a value.
func (e Entry) Shows(set Field) bool {
	has := func(f Field, ok bool) bool { return set&f != 0 && ok }
	return has(FieldTitle, e.Title != "") ||
		has(FieldSubtitle, e.Subtitle != "") ||
		has(FieldDate, e.Date != "") ||
		has(FieldLocation, e.Location != "") ||
		has(FieldScore, e.Score != "") ||
		has(FieldBody, e.Description != "" || len(e.Points) > 0) ||
		has(FieldTech, len(e.Tech) > 0) ||
		has(FieldLinks, len(e.Links) > 0)
}

// Empty reports whether the entry has nothing to show.
func (e Entry) Empty() bool {
	return !e.Shows(AllFields)
}

// TechLine is the comma-joined tech stack.
func (e Entry) TechLine() string {
	return strings.Join(e.Tech, ", ")
}

// LinkLine joins the link URLs with sep.
func (e Entry) LinkLine(sep string) string {
	parts := make([]string, 0, len(e.Links))
	for _, l := range e.Links {
		parts = append(parts, l.URL)
	}
	return strings.Join(parts, sep)
}

// A bare string item is read as the entry title.
func bare(node gjson.Result) (Entry, bool) {
	if node.IsObject() {
		return Entry{}, false
	}
	return Entry{Title: model.Scalar(node)}, true
}

func educationEntry(n gjson.Result) Entry {
	if e, ok := bare(n); ok {
		return e
	}
	e := Entry{
		Title:       model.Str(n, "degree", "course", "qualification"),
		Subtitle:    model.Str(n, "school", "institution", "university", "college"),
		Location:    model.Str(n, "location"),
		Score:       model.Str(n, "score", "gpa", "cgpa", "grade"),
		Description: model.Str(n, "description"),
	}
	e.Date = format.FormatDateRange(model.Str(n, "start", "startDate"), model.Str(n, "end", "endDate"), false)
	if e.Date == "" {
		e.Date = model.Str(n, "duration", "year", "date")
	}
	return e
}

func experienceEntry(n gjson.Result) Entry {
	if e, ok := bare(n); ok {
		return e
	}
	e := Entry{
		Title:    model.Str(n, "role", "position", "title", "jobTitle"),
		Subtitle: model.Str(n, "company", "organization", "employer"),
		Location: model.Str(n, "location"),
	}
	current := model.Bool(n, "isCurrent")
	e.Date = format.FormatDateRange(model.Str(n, "start", "startDate"), model.Str(n, "end", "endDate"), current)
	if e.Date == "" {
		e.Date = model.Str(n, "duration", "date", "period")
		if current {
			e.Date = presentFrom(e.Date)
		}
	}
	e.Points, e.Description = pointsOr(n, "description", "summary")
	return e
}

func projectEntry(n gjson.Result) Entry {
	if e, ok := bare(n); ok {
		return e
	}
	e := Entry{
		Title: model.Str(n, "title", "name", "projectName"),
		Tech:  model.StrList(n, "techStack", "toolsUsed", "tech", "technologies"),
		Links: model.Links(n, "links"),
	}
	if len(e.Links) == 0 {
		if u := model.Str(n, "link", "url"); u != "" {
			e.Links = []model.Link{{URL: u}}
		}
	}
	e.Date = format.FormatDateRange(model.Str(n, "start"), model.Str(n, "end"), false)
	if e.Date == "" {
		e.Date = model.Str(n, "date", "duration", "year")
	}
	e.Points, e.Description = pointsOr(n, "description", "projectDescription")
	return e
}

func positionEntry(n gjson.Result) Entry {
	if e, ok := bare(n); ok {
		return e
	}
	e := Entry{
		Title:    model.Str(n, "title", "role", "position"),
		Subtitle: model.Str(n, "org", "organization", "company"),
		Date:     model.Str(n, "duration", "date", "year"),
	}
	e.Points = format.CleanPoints(model.Strings(n, "points"))
	if len(e.Points) == 0 {
		e.Points = format.SplitLines(model.Str(n, "desc", "description"))
	}
	return e
}

func miscEntry(n gjson.Result) Entry {
	if e, ok := bare(n); ok {
		return e
	}
	return Entry{
		Title:       model.Str(n, "title", "name"),
		Description: model.Str(n, "desc", "description"),
		Date:        model.Str(n, "year", "date"),
	}
}

// pointsOr returns the entry's bullet points, or its free-text description
// when it has none.
func pointsOr(n gjson.Result, descPaths ...string) ([]string, string) {
	points := format.CleanPoints(model.Strings(n, "points"))
	if len(points) == 0 {
		points = format.CleanPoints(model.Strings(n, "bullets"))
	}
	if len(points) > 0 {
		return points, ""
	}
	return nil, model.Str(n, descPaths...)
}

// presentFrom rewrites a free-text duration so that it ends in Present.
func presentFrom(duration string) string {
	if duration == "" || strings.Contains(strings.ToLower(duration), "present") {
		return duration
	}
	for _, sep := range []string{" - ", " – ", "–", "-", " to "} {
		if i := strings.Index(duration, sep); i > 0 {
			return strings.TrimSpace(duration[:i]) + " - " + format.Present
		}
	}
	return duration + " - " + format.Present
}
