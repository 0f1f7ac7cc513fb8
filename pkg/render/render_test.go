package render

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, Color{0x2E, 0x86, 0xC1}, Hex("#2E86C1"))
	assert.Equal(t, Color{0x4B, 0x00, 0x82}, Hex("4b0082"))
	assert.Equal(t, Black, Hex("#zzz"))
	assert.Equal(t, "#4B0082", Hex("#4B0082").String())
}

func TestRecorderWrapsAndAdvances(t *testing.T) {
	r := NewLetterRecorder(Uniform(40))
	font := Font{Size: 10}

	// 5pt per glyph: "aaaa bbbb" is 45pt wide.
	r.PlaceText("aaaa bbbb cccc", 40, 40, TextOptions{Font: font, Width: 50})
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, r.Texts())
	assert.InDelta(t, 40+2*12.0, r.CurrentY(), 0.001)

	r.PlaceText("suffix", 40, 100, TextOptions{Font: font, Continued: true})
	assert.InDelta(t, 64.0, r.CurrentY(), 0.001)

	r.PlaceText("   ", 40, 100, TextOptions{Font: font})
	assert.InDelta(t, 64.0, r.CurrentY(), 0.001)
}

func TestRecorderPages(t *testing.T) {
	r := NewLetterRecorder(Margins{Top: 30, Bottom: 30, Left: 20, Right: 20})
	r.SetY(500)
	r.AddPage()
	assert.Equal(t, 2, r.PageCount())
	assert.Equal(t, 30.0, r.CurrentY())
	r.FillRect(0, 0, 150, 792, White)
	assert.Len(t, r.Rects(2), 1)
	assert.Empty(t, r.Rects(1))
}

func TestPDFFinalize(t *testing.T) {
	p := NewPDF(Options{Margins: Uniform(40), Title: "Ann Lee"})
	p.PlaceText("Ann Lee", 40, 40, TextOptions{Font: Font{Family: "Helvetica", Bold: true, Size: 18}})
	p.PlaceText("Engineer at Acme", 40, p.CurrentY(), TextOptions{Font: Font{Size: 12}, Link: "https://acme.test"})
	p.FillRect(0, 0, 10, 10, Hex("#4B0082"))
	p.StrokeLine(40, 100, 200, 100, Black, 0.5)
	p.AddPage()
	p.PlaceText("Page two • done", 40, p.CurrentY(), TextOptions{Font: Font{Family: "Times", Italic: true, Size: 10}})

	out, err := p.Finalize()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, 2, p.PageCount())
	assert.True(t, bytes.Contains(out, []byte("Ann Lee")))

	again, err := p.Finalize()
	require.NoError(t, err)
	assert.Equal(t, out, again)

	doc, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.NumPage())
}

func TestPDFTextHeight(t *testing.T) {
	p := NewPDF(Options{Margins: Uniform(40)})
	font := Font{Family: "Helvetica", Size: 10}
	assert.Equal(t, 0.0, p.TextHeight("", font, 100))
	one := p.TextHeight("short", font, 500)
	assert.InDelta(t, 12.0, one, 0.001)
	assert.Greater(t, p.TextHeight("a much longer line of text that must wrap several times over", font, 60), one)
	assert.InDelta(t, 24.0, p.TextHeight("a\nb", font, 500), 0.001)
}

func TestRenderErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &RenderError{Message: "serialize document", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "serialize document")
}
