package format

import (
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// InvalidSuffix annotates text whose URL could not be validated.
const InvalidSuffix = " (invalid link)"

// Link is a resolved URL ready for either renderer.
type Link struct {
	Href  string
	Text  string
	Mail  bool
	Valid bool
}

// Display is the text to show, annotated when the link is not usable.
func (l Link) Display() string {
	if !l.Valid {
		return l.Text + InvalidSuffix
	}
	return l.Text
}

// ResolveLink classifies raw as an email address or web URL. Text falls back
// to raw. Empty raw yields the zero Link.
func ResolveLink(raw, text string) Link {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Link{}
	}
	if text = strings.TrimSpace(text); text == "" {
		text = raw
	}
	hasScheme := strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
	if !hasScheme && strings.Contains(raw, "@") {
		return Link{Href: "mailto:" + strings.TrimPrefix(raw, "mailto:"), Text: text, Mail: true, Valid: true}
	}
	candidate := raw
	if !hasScheme {
		candidate = "https://" + candidate
	}
	if !validURL(candidate) {
		return Link{Text: text}
	}
	return Link{Href: candidate, Text: text, Valid: true}
}

func validURL(s string) bool {
	if strings.ContainsAny(s, " \t\r\n<>\"") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Hostname() != ""
}

// CreateLink renders raw as markup. Mail links get a mailto href, web links
// open in a new context without referrer or opener, and unparseable input is
// shown as plain text with InvalidSuffix.
func CreateLink(raw, text, class string) template.HTML {
	return ResolveLink(raw, text).HTML(class)
}

// HTML renders the link inside a span, "" for the zero Link.
func (l Link) HTML(class string) template.HTML {
	if l.Text == "" {
		return ""
	}
	esc := template.HTMLEscapeString
	var b strings.Builder
	b.WriteString("<span>")
	switch {
	case !l.Valid:
		b.WriteString(esc(l.Display()))
	case l.Mail:
		b.WriteString(`<a href="` + esc(l.Href) + `"`)
		writeClass(&b, class)
		b.WriteString(">" + esc(l.Text) + "</a>")
	default:
		b.WriteString(`<a href="` + esc(l.Href) + `" target="_blank" rel="noopener noreferrer"`)
		writeClass(&b, class)
		b.WriteString(">" + esc(l.Text) + "</a>")
	}
	b.WriteString("</span>")
	return template.HTML(b.String())
}

func writeClass(b *strings.Builder, class string) {
	if class != "" {
		b.WriteString(` class="` + template.HTMLEscapeString(class) + `"`)
	}
}

// LinkLabel is a short label for a URL: the registrable domain without
// "www.", the host when that fails, raw as a last resort.
func LinkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	host := u.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
