package render

import (
	"strings"
	"unicode/utf8"
)

type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpLine
	OpPage
)

// Op is one recorded drawing operation. Text ops are recorded per wrapped
// line.
type Op struct {
	Kind  OpKind
	Page  int
	Text  string
	X, Y  float64
	W, H  float64
	Font  Font
	Color Color
	Align Align
	Link  string
}

// Recorder is a Target that keeps the operations instead of drawing them.
// Every glyph is half the font size wide, which makes layouts easy to reason
// about in tests.
type Recorder struct {
	Ops []Op

	width, height float64
	margins       Margins
	y             float64
	pages         int
}

// NewRecorder begins a recording with its first page.
func NewRecorder(width, height float64, m Margins) *Recorder {
	r := &Recorder{width: width, height: height, margins: m}
	r.AddPage()
	return r
}

// NewLetterRecorder is a Recorder on a US Letter page.
func NewLetterRecorder(m Margins) *Recorder {
	return NewRecorder(612, 792, m)
}

func (r *Recorder) PageSize() (float64, float64) { return r.width, r.height }

func (r *Recorder) Margins() Margins { return r.margins }

func (r *Recorder) TextWidth(text string, font Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size / 2
}

func (r *Recorder) LineHeight(font Font) float64 { return font.Size * lineSpacing }

func (r *Recorder) TextHeight(text string, font Font, width float64) float64 {
	return float64(len(r.wrap(text, font, width))) * r.LineHeight(font)
}

func (r *Recorder) wrap(text string, font Font, width float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if r.TextWidth(cur+" "+w, font) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		lines = append(lines, cur)
	}
	return lines
}

func (r *Recorder) PlaceText(text string, x, y float64, opts TextOptions) {
	w := opts.Width
	if w <= 0 {
		w = r.width - r.margins.Right - x
	}
	lines := r.wrap(text, opts.Font, w)
	if len(lines) == 0 {
		return
	}
	lh := r.LineHeight(opts.Font)
	cy := y
	for _, l := range lines {
		r.Ops = append(r.Ops, Op{
			Kind: OpText, Page: r.pages, Text: l,
			X: x, Y: cy, W: w, H: lh,
			Font: opts.Font, Color: opts.Color, Align: opts.Align, Link: opts.Link,
		})
		cy += lh
	}
	if !opts.Continued {
		r.y = cy
	}
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Page: r.pages, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, c Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Page: r.pages, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: c})
}

func (r *Recorder) CurrentY() float64 { return r.y }

func (r *Recorder) SetY(y float64) { r.y = y }

func (r *Recorder) AddPage() {
	r.pages++
	r.y = r.margins.Top
	r.Ops = append(r.Ops, Op{Kind: OpPage, Page: r.pages})
}

func (r *Recorder) PageCount() int { return r.pages }

// Finalize returns the recorded text, one line per op.
func (r *Recorder) Finalize() ([]byte, error) {
	return []byte(strings.Join(r.Texts(), "\n")), nil
}

// Texts returns the text of every text op in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Rects returns the rectangle ops drawn on page.
func (r *Recorder) Rects(page int) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpRect && op.Page == page {
			out = append(out, op)
		}
	}
	return out
}
