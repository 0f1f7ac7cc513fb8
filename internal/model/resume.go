package model

import (
	"github.com/tidwall/gjson"
)

// Record is a normalized resume tree as produced by Normalize. It wraps the
// canonical JSON document and is only ever read, through gjson paths, so a
// single Record can be handed to any number of renderers at once.
type Record struct {
	raw []byte
}

// Root returns the top-level object. A zero Record behaves like an empty one.
func (r Record) Root() gjson.Result {
	if len(r.raw) == 0 {
		return gjson.Parse("{}")
	}
	return gjson.ParseBytes(r.raw)
}

// Get reads a gjson path relative to the root.
func (r Record) Get(path string) gjson.Result {
	return r.Root().Get(path)
}

// Str returns the first non-empty scalar among paths, or "".
func (r Record) Str(paths ...string) string {
	return Str(r.Root(), paths...)
}

// List returns the elements of the sequence at path. Anything that is not a
// sequence yields nil.
func (r Record) List(path string) []gjson.Result {
	return List(r.Root(), path)
}

// Bytes returns a copy of the canonical JSON.
func (r Record) Bytes() []byte {
	if len(r.raw) == 0 {
		return []byte("{}")
	}
	out := make([]byte, len(r.raw))
	copy(out, r.raw)
	return out
}

func (r Record) MarshalJSON() ([]byte, error) {
	return r.Bytes(), nil
}

// UnmarshalJSON normalizes whatever it is given.
func (r *Record) UnmarshalJSON(b []byte) error {
	*r = Normalize(b)
	return nil
}

// Name is the display name, "" when absent.
func (r Record) Name() string {
	return r.Str("name")
}

// Skills merges the flat skills sequence with every technicalSkills category.
// Flat skills come first, then categories in document key order; the first
// occurrence of a skill wins.
func (r Record) Skills() []string {
	seen := map[string]bool{}
	var out []string
	add := func(items []string) {
		for _, s := range items {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	add(StrList(r.Root(), "skills"))
	for _, c := range r.SkillCategories() {
		add(c.Items)
	}
	return out
}

// Category is one labelled group of strings (a technicalSkills or courses entry).
type Category struct {
	Key   string
	Items []string
}

// SkillCategories returns technicalSkills in key order, skipping empty groups.
func (r Record) SkillCategories() []Category {
	return categories(r.Get("technicalSkills"))
}

// Courses returns the courses mapping in key order, skipping empty groups.
func (r Record) Courses() []Category {
	return categories(r.Get("courses"))
}

func categories(node gjson.Result) []Category {
	if !node.IsObject() {
		return nil
	}
	var out []Category
	node.ForEach(func(key, value gjson.Result) bool {
		items := stringsOf(value)
		if len(items) > 0 {
			out = append(out, Category{Key: key.String(), Items: items})
		}
		return true
	})
	return out
}
