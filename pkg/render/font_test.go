package render

import (
	"bytes"
	"errors"
	"go/build"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dejaVu finds the TrueType font shipped with gofpdf in the module cache.
func dejaVu(t *testing.T) string {
	t.Helper()
	dir := os.Getenv("GOMODCACHE")
	if dir == "" {
		dir = filepath.Join(build.Default.GOPATH, "pkg", "mod")
	}
	path := filepath.Join(dir, "github.com", "jung-kurt", "gofpdf@v1.16.2", "font", "DejaVuSansCondensed.ttf")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("no DejaVu font at %s", path)
	}
	return path
}

func TestCoreFontsReplaceNonLatin(t *testing.T) {
	p := NewPDF(Options{Margins: Uniform(40)})
	assert.Equal(t, []string{".ukasz Lee"}, p.wrap("Łukasz Lee", Font{Size: 10}, 500))
}

func TestUnicodeFontKeepsText(t *testing.T) {
	p := NewPDF(Options{Margins: Uniform(40), Font: FontSet{Regular: dejaVu(t)}})
	font := Font{Family: "Times", Bold: true, Underline: true, Size: 12}

	assert.Equal(t, []string{"Łukasz Ωμέγα Жанна"}, p.wrap("Łukasz Ωμέγα Жанна", font, 500))
	assert.Equal(t, []string{"go ."}, p.wrap("go 🚀", font, 500))
	assert.Greater(t, p.TextWidth("Łukasz", font), 0.0)
	assert.Greater(t, p.TextHeight("Łukasz Łukasz Łukasz Łukasz", font, 60), p.LineHeight(font))

	p.PlaceText("Łukasz Ωμέγα Жанна", 40, 40, TextOptions{Font: font, Link: "https://example.com"})
	out, err := p.Finalize()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMissingFontFailsFinalize(t *testing.T) {
	p := NewPDF(Options{Margins: Uniform(40), Font: FontSet{Regular: filepath.Join(t.TempDir(), "none.ttf")}})
	p.PlaceText("Ann", 40, 40, TextOptions{Font: Font{Size: 10}})

	_, err := p.Finalize()
	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
