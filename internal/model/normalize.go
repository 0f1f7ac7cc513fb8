package model

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// listFields are always sequences after normalization.
var listFields = []string{"education", "experience", "projects", "positions", "misc"}

// groupFields map a label to a sequence of strings.
var groupFields = []string{"technicalSkills", "courses"}

// Normalize coerces any JSON document into a Record. It never fails: input
// that is not a JSON object yields an empty record with every list field
// present and empty. Key order of the input is preserved, the first
// occurrence of a duplicated key wins, and Normalize(Normalize(x).Bytes())
// is byte-identical to Normalize(x).
func Normalize(raw []byte) Record {
	root := gjson.ParseBytes(raw)
	if !gjson.ValidBytes(raw) || !root.IsObject() {
		root = gjson.Parse("{}")
	}

	w := newObjectWriter()
	seen := map[string]bool{}
	root.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if seen[k] {
			return true
		}
		seen[k] = true
		switch {
		case isOneOf(k, listFields):
			w.rawField(k, normalizeList(k, value))
		case k == "skills":
			w.rawField(k, stringArray(flatSkills(value)))
		case isOneOf(k, groupFields):
			w.rawField(k, normalizeGroups(value))
		default:
			w.rawField(k, value.Raw)
		}
		return true
	})
	for _, k := range append(listFields, "skills") {
		if !seen[k] {
			w.rawField(k, "[]")
		}
	}
	return Record{raw: w.bytes()}
}

// NormalizeValue marshals v and normalizes the result. Values that cannot be
// marshalled produce an empty record.
func NormalizeValue(v any) Record {
	b, err := json.Marshal(v)
	if err != nil {
		return Normalize(nil)
	}
	return Normalize(b)
}

func normalizeList(key string, v gjson.Result) string {
	switch {
	case v.IsArray():
		return compact(v.Raw)
	case !v.Exists() || v.Type == gjson.Null:
		return "[]"
	case key == "education" && v.IsObject() && v.Get("details").IsArray():
		return compact(v.Get("details").Raw)
	case key == "education" && v.IsObject() && v.Get("details").Type == gjson.Null:
		return "[]"
	default:
		return "[" + compact(v.Raw) + "]"
	}
}

func flatSkills(v gjson.Result) []string {
	if v.IsObject() {
		var out []string
		v.ForEach(func(_, value gjson.Result) bool {
			out = append(out, stringsOf(value)...)
			return true
		})
		return out
	}
	return stringsOf(v)
}

// normalizeGroups keeps a label->strings mapping. Anything else is dropped
// to an empty mapping.
func normalizeGroups(v gjson.Result) string {
	w := newObjectWriter()
	if v.IsObject() {
		seen := map[string]bool{}
		v.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			if !seen[k] {
				seen[k] = true
				w.rawField(k, stringArray(stringsOf(value)))
			}
			return true
		})
	}
	return string(w.bytes())
}

func stringArray(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

func compact(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}

func isOneOf(s string, set []string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// objectWriter emits a JSON object with fields in insertion order.
type objectWriter struct {
	buf bytes.Buffer
	n   int
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) rawField(key, raw string) {
	if raw == "" {
		raw = "null"
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.WriteString(compact(raw))
	w.n++
}

func (w *objectWriter) field(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		b = []byte("null")
	}
	w.rawField(key, string(b))
}

func (w *objectWriter) bytes() []byte {
	out := make([]byte, 0, w.buf.Len()+1)
	out = append(out, w.buf.Bytes()...)
	return append(out, '}')
}
