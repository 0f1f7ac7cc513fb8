package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2022-01", "2022-06", false, "Jan 2022 - Jun 2022"},
		{"2022-01", "", true, "Jan 2022 - Present"},
		{"2022-01", "2023-03", true, "Jan 2022 - Present"},
		{"", "", false, ""},
		{"", "2022-06", false, ""},
		{"", "", true, ""},
		{"2022-01", "", false, "Jan 2022"},
		{"2022-01", "someday", false, "Jan 2022"},
		{"garbage", "2022-06", false, ""},
		{"2021-12-31", "2022-02", false, "Dec 2021 - Feb 2022"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDateRange(c.start, c.end, c.current), "%q %q %v", c.start, c.end, c.current)
	}
}

func TestResolveLink(t *testing.T) {
	mail := ResolveLink("user@example.com", "Contact")
	assert.True(t, mail.Mail)
	assert.Equal(t, "mailto:user@example.com", mail.Href)
	assert.Equal(t, "Contact", mail.Text)

	site := ResolveLink("example.com", "Site")
	assert.True(t, site.Valid)
	assert.Equal(t, "https://example.com", site.Href)

	kept := ResolveLink("http://example.com/a", "")
	assert.Equal(t, "http://example.com/a", kept.Href)
	assert.Equal(t, "http://example.com/a", kept.Text)

	bad := ResolveLink("not a url", "X")
	assert.False(t, bad.Valid)
	assert.Equal(t, "X (invalid link)", bad.Display())

	assert.Equal(t, Link{}, ResolveLink("  ", "X"))
}

func TestCreateLink(t *testing.T) {
	assert.Equal(t,
		`<span><a href="mailto:user@example.com">Contact</a></span>`,
		string(CreateLink("user@example.com", "Contact", "")))
	assert.Equal(t,
		`<span><a href="https://example.com" target="_blank" rel="noopener noreferrer" class="p">Site</a></span>`,
		string(CreateLink("example.com", "Site", "p")))
	assert.Equal(t, `<span>X (invalid link)</span>`, string(CreateLink("not a url", "X", "")))
	assert.Equal(t, "", string(CreateLink("", "X", "")))
	assert.Contains(t, string(CreateLink("a.com", "<b>", "")), "&lt;b&gt;")
}

func TestLinkLabel(t *testing.T) {
	assert.Equal(t, "github.com", LinkLabel("https://www.github.com/ann"))
	assert.Equal(t, "example.co.uk", LinkLabel("blog.example.co.uk/post"))
	assert.Equal(t, "localhost", LinkLabel("localhost:8080"))
	assert.Equal(t, "", LinkLabel(""))
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "", string(FormatPoints(nil)))
	assert.Equal(t, "", string(FormatPoints([]string{" ", "•"})))
	assert.Equal(t, "<ul><li>a &lt;b&gt;</li><li>c</li></ul>", string(FormatPoints([]string{"a <b>", "• c"})))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"Built X", "Led Y", "-5% cost"}, SplitLines("• Built X\r\n\n- Led Y\n-5% cost"))
}

func TestNl2br(t *testing.T) {
	assert.Equal(t, "a<br>&lt;b&gt;", string(Nl2br("a\n<b>\n")))
}
