package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Options configure a PDF target.
type Options struct {
	// PageSize is a gofpdf size name; Letter when empty.
	PageSize string
	Margins  Margins
	Compress bool
	Title    string
	Creator  string
	// CreatedAt pins the creation date, for reproducible output.
	CreatedAt time.Time
	// Font replaces the core fonts when its Regular file is set.
	Font FontSet
}

// FontSet names TrueType files used for every font family. A style without
// its own file falls back to Regular.
type FontSet struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

const unicodeFamily = "resume-unicode"

// PDF is a Target backed by gofpdf. The core fonts only carry cp1252, so
// any other character is drawn as "."; a FontSet lifts that for the Basic
// Multilingual Plane.
type PDF struct {
	pdf     *gofpdf.Fpdf
	tr      func(string) string
	unicode bool
	margins Margins
	y       float64
	pages   int

	out []byte
	err error
}

// NewPDF begins a document with its first page.
func NewPDF(opts Options) *PDF {
	size := opts.PageSize
	if size == "" {
		size = "Letter"
	}
	f := gofpdf.New("P", "pt", size, "")
	m := opts.Margins
	f.SetMargins(m.Left, m.Top, m.Right)
	f.SetAutoPageBreak(false, m.Bottom)
	f.SetCompression(opts.Compress)
	if opts.Title != "" {
		f.SetTitle(opts.Title, true)
	}
	if opts.Creator != "" {
		f.SetCreator(opts.Creator, true)
	}
	if !opts.CreatedAt.IsZero() {
		f.SetCreationDate(opts.CreatedAt)
	}

	p := &PDF{
		pdf:     f,
		tr:      f.UnicodeTranslatorFromDescriptor(""),
		margins: m,
	}
	if opts.Font.Regular != "" {
		if err := p.useFonts(opts.Font); err != nil {
			f.SetError(err)
		}
	}
	p.AddPage()
	return p
}

func (p *PDF) useFonts(fs FontSet) error {
	read := map[string][]byte{}
	for style, file := range map[string]string{"": fs.Regular, "B": fs.Bold, "I": fs.Italic, "BI": fs.BoldItalic} {
		if file == "" {
			file = fs.Regular
		}
		b, ok := read[file]
		if !ok {
			var err error
			if b, err = os.ReadFile(file); err != nil {
				return fmt.Errorf("load font: %w", err)
			}
			read[file] = b
		}
		p.pdf.AddUTF8FontFromBytes(unicodeFamily, style, b)
	}
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	p.unicode = true
	p.tr = bmpOnly
	return nil
}

// bmpOnly replaces runes outside the Basic Multilingual Plane, which
// gofpdf's width tables do not cover.
func bmpOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return '.'
		}
		return r
	}, s)
}

func (p *PDF) PageSize() (float64, float64) {
	return p.pdf.GetPageSize()
}

func (p *PDF) Margins() Margins { return p.margins }

func (p *PDF) setFont(font Font) {
	family := font.Family
	switch {
	case p.unicode:
		family = unicodeFamily
	case family == "":
		family = "Helvetica"
	}
	p.pdf.SetFont(family, font.style(), font.Size)
}

func (p *PDF) TextWidth(text string, font Font) float64 {
	p.setFont(font)
	return p.pdf.GetStringWidth(p.tr(text))
}

func (p *PDF) LineHeight(font Font) float64 {
	return font.Size * lineSpacing
}

func (p *PDF) TextHeight(text string, font Font, width float64) float64 {
	return float64(len(p.wrap(text, font, width))) * p.LineHeight(font)
}

// wrap returns translated lines; hard newlines always break.
func (p *PDF) wrap(text string, font Font, width float64) []string {
	// A failed document has no font to measure with; Finalize reports why.
	if strings.TrimSpace(text) == "" || p.pdf.Err() {
		return nil
	}
	p.setFont(font)
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		encoded := p.tr(para)
		if encoded == "" {
			lines = append(lines, "")
			continue
		}
		if p.unicode {
			lines = append(lines, p.pdf.SplitText(encoded, width)...)
			continue
		}
		for _, l := range p.pdf.SplitLines([]byte(encoded), width) {
			lines = append(lines, string(l))
		}
	}
	return lines
}

func (p *PDF) width(x, w float64) float64 {
	if w > 0 {
		return w
	}
	pw, _ := p.PageSize()
	return pw - p.margins.Right - x
}

func (p *PDF) PlaceText(text string, x, y float64, opts TextOptions) {
	w := p.width(x, opts.Width)
	lines := p.wrap(text, opts.Font, w)
	if len(lines) == 0 {
		return
	}
	lh := p.LineHeight(opts.Font)
	p.setFont(opts.Font)
	p.pdf.SetTextColor(int(opts.Color.R), int(opts.Color.G), int(opts.Color.B))
	align := "L"
	switch opts.Align {
	case AlignCenter:
		align = "C"
	case AlignRight:
		align = "R"
	}
	cy := y
	for _, l := range lines {
		p.pdf.SetXY(x, cy)
		p.pdf.CellFormat(w, lh, l, "", 0, align, false, 0, opts.Link)
		cy += lh
	}
	if !opts.Continued {
		p.y = cy
	}
}

func (p *PDF) FillRect(x, y, w, h float64, c Color) {
	p.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	p.pdf.Rect(x, y, w, h, "F")
}

func (p *PDF) StrokeLine(x1, y1, x2, y2 float64, c Color, width float64) {
	p.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.pdf.SetLineWidth(width)
	p.pdf.Line(x1, y1, x2, y2)
}

func (p *PDF) CurrentY() float64 { return p.y }

func (p *PDF) SetY(y float64) { p.y = y }

func (p *PDF) AddPage() {
	p.pdf.AddPage()
	p.pages++
	p.y = p.margins.Top
}

func (p *PDF) PageCount() int { return p.pages }

func (p *PDF) Finalize() ([]byte, error) {
	if p.out != nil || p.err != nil {
		return p.out, p.err
	}
	if p.pdf.Err() {
		p.err = &RenderError{Message: "build document", Cause: p.pdf.Error()}
		return nil, p.err
	}
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		p.err = &RenderError{Message: "serialize document", Cause: err}
		return nil, p.err
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		p.err = &RenderError{Message: "serialize document", Cause: errors.New("missing PDF signature")}
		return nil, p.err
	}
	p.out = buf.Bytes()
	return p.out, nil
}
