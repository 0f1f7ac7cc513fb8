package model

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Str returns the first non-empty scalar found at any of paths under node.
// Missing hops, nulls, objects and arrays all read as "".
func Str(node gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := scalar(node.Get(p)); s != "" {
			return s
		}
	}
	return ""
}

// Scalar renders a single value the way Str does.
func Scalar(v gjson.Result) string {
	return scalar(v)
}

func scalar(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return strings.TrimSpace(v.Str)
	case gjson.Number:
		return v.Raw
	}
	return ""
}

// List returns the elements at path when it is a sequence.
func List(node gjson.Result, path string) []gjson.Result {
	v := node.Get(path)
	if !v.IsArray() {
		return nil
	}
	return v.Array()
}

// StrList reads path as a list of strings: a sequence of scalars, or a
// comma separated string. Blank items are dropped.
func StrList(node gjson.Result, paths ...string) []string {
	for _, p := range paths {
		if items := stringsOf(node.Get(p)); len(items) > 0 {
			return items
		}
	}
	return nil
}

// Strings reads path as a sequence of scalars. A lone string becomes a
// single item, unsplit.
func Strings(node gjson.Result, path string) []string {
	v := node.Get(path)
	if v.Type == gjson.String {
		if s := scalar(v); s != "" {
			return []string{s}
		}
		return nil
	}
	return stringsOf(v)
}

func stringsOf(v gjson.Result) []string {
	var out []string
	switch {
	case v.IsArray():
		for _, it := range v.Array() {
			if s := scalar(it); s != "" {
				out = append(out, s)
			}
		}
	case v.Type == gjson.String:
		out = splitComma(v.Str)
	case v.Type == gjson.Number:
		out = append(out, v.Raw)
	}
	return out
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Bool reads form-style booleans: true, "true", "on", "yes", "1".
func Bool(node gjson.Result, path string) bool {
	v := node.Get(path)
	switch v.Type {
	case gjson.True:
		return true
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(v.Str)) {
		case "true", "on", "yes", "1":
			return true
		}
	case gjson.Number:
		return v.Num != 0
	}
	return false
}

// Link is one named URL from a links mapping or sequence.
type Link struct {
	Kind string
	URL  string
}

// Links reads path as either a kind->url mapping (document order) or a
// sequence of strings / {url, type} objects. Empty URLs are skipped.
func Links(node gjson.Result, path string) []Link {
	v := node.Get(path)
	var out []Link
	switch {
	case v.IsObject():
		v.ForEach(func(key, value gjson.Result) bool {
			if u := scalar(value); u != "" {
				out = append(out, Link{Kind: key.String(), URL: u})
			} else if value.IsObject() {
				if u := Str(value, "url", "href", "link"); u != "" {
					out = append(out, Link{Kind: key.String(), URL: u})
				}
			}
			return true
		})
	case v.IsArray():
		for _, it := range v.Array() {
			if u := scalar(it); u != "" {
				out = append(out, Link{URL: u})
				continue
			}
			if u := Str(it, "url", "href", "link"); u != "" {
				out = append(out, Link{Kind: Str(it, "type", "kind", "label", "name"), URL: u})
			}
		}
	case v.Type == gjson.String:
		if u := scalar(v); u != "" {
			out = append(out, Link{URL: u})
		}
	}
	return out
}

// LinkOf returns the URL of the first link of the given kind.
func LinkOf(links []Link, kind string) string {
	for _, l := range links {
		if strings.EqualFold(l.Kind, kind) {
			return l.URL
		}
	}
	return ""
}
