// Package render is the paginated drawing surface the layout engine draws
// resumes on. Coordinates are points from the top-left corner of the page.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Target places text, rectangles and lines on pages and serializes the
// result. A Target is used by one goroutine for one document.
type Target interface {
	PageSize() (w, h float64)
	Margins() Margins

	// TextWidth is the unwrapped width of text in font.
	TextWidth(text string, font Font) float64
	// LineHeight is the advance of one line of font.
	LineHeight(font Font) float64
	// TextHeight is the height text occupies when wrapped to width.
	TextHeight(text string, font Font, width float64) float64

	// PlaceText draws text wrapped to opts.Width starting at (x, y). The
	// cursor moves below the last line unless opts.Continued is set.
	PlaceText(text string, x, y float64, opts TextOptions)
	FillRect(x, y, w, h float64, c Color)
	StrokeLine(x1, y1, x2, y2 float64, c Color, width float64)

	CurrentY() float64
	SetY(y float64)
	// AddPage starts a new page and moves the cursor to the top margin.
	AddPage()
	PageCount() int

	// Finalize serializes the document. Later calls return the same result.
	Finalize() ([]byte, error)
}

type Margins struct {
	Top, Right, Bottom, Left float64
}

// Uniform is the same margin on every side.
func Uniform(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Font struct {
	Family    string
	Bold      bool
	Italic    bool
	Underline bool
	Size      float64
}

// Styled returns a copy of f with the given style flags.
func (f Font) Styled(bold, italic bool) Font {
	f.Bold, f.Italic = bold, italic
	return f
}

// WithSize returns a copy of f at size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

func (f Font) style() string {
	var b strings.Builder
	if f.Bold {
		b.WriteByte('B')
	}
	if f.Italic {
		b.WriteByte('I')
	}
	if f.Underline {
		b.WriteByte('U')
	}
	return b.String()
}

type TextOptions struct {
	Font  Font
	Color Color
	// Width wraps the text; zero means up to the right margin.
	Width     float64
	Align     Align
	Continued bool
	// Link turns every drawn line into a hyperlink.
	Link string
}

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{255, 255, 255}
)

// Hex parses "#RRGGBB" or "RRGGBB". Malformed input is Black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// lineSpacing is the line height as a multiple of the font size.
const lineSpacing = 1.2

// RenderError is a serialization fault of the underlying document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render: %s: %v", e.Message, e.Cause)
	}
	return "render: " + e.Message
}

func (e *RenderError) Unwrap() error { return e.Cause }
