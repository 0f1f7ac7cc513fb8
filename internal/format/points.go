package format

import (
	"html/template"
	"strings"
)

// CleanPoints trims every point, strips a leading bullet glyph and drops
// blanks.
func CleanPoints(points []string) []string {
	var out []string
	for _, p := range points {
		p = strings.TrimSpace(p)
		for _, bullet := range []string{"•", "·", "- ", "* "} {
			if strings.HasPrefix(p, bullet) {
				p = strings.TrimSpace(strings.TrimPrefix(p, bullet))
				break
			}
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitLines turns free text into points, one per non-blank line.
func SplitLines(text string) []string {
	return CleanPoints(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

// FormatPoints renders points as an escaped bullet list, or "" when there is
// nothing to list.
func FormatPoints(points []string) template.HTML {
	points = CleanPoints(points)
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>")
	for _, p := range points {
		b.WriteString("<li>" + template.HTMLEscapeString(p) + "</li>")
	}
	b.WriteString("</ul>")
	return template.HTML(b.String())
}

// Nl2br escapes text and turns newlines into <br> breaks.
func Nl2br(text string) template.HTML {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = template.HTMLEscapeString(p)
	}
	return template.HTML(strings.Join(parts, "<br>"))
}
