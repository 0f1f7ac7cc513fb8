package layout

import (
	"strings"

	"resume-builder/pkg/render"
)

// Line is one logical line of a block. A Suffix is drawn after the text,
// either flush right in the column or inline right after it.
type Line struct {
	Text       string
	Font       render.Font
	Color      render.Color
	Align      render.Align
	Indent     float64
	Link       string
	Suffix     string
	SuffixFont render.Font
	// SuffixRight puts the suffix flush right on the first line.
	SuffixRight bool
	// Spans, when set, are the runs of Text that each carry their own link.
	// They are honoured only while Text fits on one line.
	Spans []Span
	// After is extra space below the line.
	After float64
}

// Span is a run of a Line with its own hyperlink.
type Span struct {
	Text string
	Link string
}

// Doc is the running state of one layout: the content column, the vertical
// cursor bounds and the hook that decorates every new page.
type Doc struct {
	t      render.Target
	x      float64
	width  float64
	top    float64
	bottom float64
	onPage func(*Doc)
}

func newDoc(t render.Target, m render.Margins) *Doc {
	w, h := t.PageSize()
	d := &Doc{
		t:      t,
		x:      m.Left,
		width:  w - m.Left - m.Right,
		top:    m.Top,
		bottom: h - m.Bottom,
	}
	t.SetY(m.Top)
	return d
}

// Target exposes the underlying surface for template-specific drawing.
func (d *Doc) Target() render.Target { return d.t }

func (d *Doc) Y() float64 { return d.t.CurrentY() }

func (d *Doc) SetY(y float64) { d.t.SetY(y) }

func (d *Doc) Gap(h float64) { d.t.SetY(d.t.CurrentY() + h) }

// Usable is the vertical space of one page between the margins.
func (d *Doc) Usable() float64 { return d.bottom - d.top }

// NewPage finishes the current page. The cursor lands on the top margin
// after the page hook has run.
func (d *Doc) NewPage() {
	d.t.AddPage()
	if d.onPage != nil {
		d.onPage(d)
	}
	d.t.SetY(d.top)
}

// Ensure starts a new page when h more points would cross the bottom
// margin. On a fresh page nothing moves, so oversized content still lands.
func (d *Doc) Ensure(h float64) {
	if d.Y()+h > d.bottom && d.Y() > d.top {
		d.NewPage()
	}
}

// AtTop reports whether nothing has been drawn below the top margin.
func (d *Doc) AtTop() bool { return d.Y() <= d.top }

func (d *Doc) lineWidth(l Line) float64 {
	return d.width - l.Indent
}

// Height is the space l takes when drawn.
func (d *Doc) Height(l Line) float64 {
	h := d.t.TextHeight(l.Text, l.Font, d.textWidth(l))
	if l.Suffix != "" {
		if sh := d.t.LineHeight(l.SuffixFont); sh > h {
			h = sh
		}
	}
	if h == 0 {
		return 0
	}
	return h + l.After
}

// textWidth leaves room for a right-hand suffix.
func (d *Doc) textWidth(l Line) float64 {
	w := d.lineWidth(l)
	if l.Suffix != "" && l.SuffixRight {
		w -= d.t.TextWidth(l.Suffix, l.SuffixFont) + 6
	}
	if w < 1 {
		w = 1
	}
	return w
}

// BlockHeight sums the heights of lines.
func (d *Doc) BlockHeight(lines []Line) float64 {
	var h float64
	for _, l := range lines {
		h += d.Height(l)
	}
	return h
}

// Block draws lines as one unit: the whole block moves to the next page if
// it would straddle the bottom margin. A block taller than a page is broken
// between lines instead.
func (d *Doc) Block(lines []Line) {
	h := d.BlockHeight(lines)
	if h == 0 {
		return
	}
	if h <= d.Usable() {
		d.Ensure(h)
		for _, l := range lines {
			d.draw(l)
		}
		return
	}
	for _, l := range lines {
		d.Ensure(d.Height(l))
		d.draw(l)
	}
}

func (d *Doc) draw(l Line) {
	if d.Height(l) == 0 {
		return
	}
	if len(l.Spans) > 0 && l.Suffix == "" && d.t.TextWidth(l.Text, l.Font) <= d.lineWidth(l) {
		d.drawSpans(l)
		return
	}
	x, y := d.x+l.Indent, d.Y()
	opts := render.TextOptions{Font: l.Font, Color: l.Color, Align: l.Align, Link: l.Link}

	if l.Suffix == "" {
		opts.Width = d.lineWidth(l)
		d.t.PlaceText(l.Text, x, y, opts)
		d.t.SetY(d.t.CurrentY() + l.After)
		return
	}

	suffixW := d.t.TextWidth(l.Suffix, l.SuffixFont)
	suffix := render.TextOptions{Font: l.SuffixFont, Color: l.Color, Continued: true}
	end := y

	switch {
	case l.SuffixRight:
		opts.Width = d.textWidth(l)
		d.t.PlaceText(l.Text, x, y, opts)
		end = d.t.CurrentY()
		suffix.Align = render.AlignRight
		suffix.Width = d.lineWidth(l)
		d.t.PlaceText(l.Suffix, x, y, suffix)
	case d.t.TextWidth(l.Text, l.Font)+suffixW <= d.lineWidth(l):
		textW := d.t.TextWidth(l.Text, l.Font)
		opts.Width = d.lineWidth(l)
		d.t.PlaceText(l.Text, x, y, opts)
		end = d.t.CurrentY()
		suffix.Width = suffixW + 1
		d.t.PlaceText(l.Suffix, x+textW, y, suffix)
	default:
		opts.Width = d.lineWidth(l)
		d.t.PlaceText(l.Text+l.Suffix, x, y, opts)
		end = d.t.CurrentY()
	}

	if sh := y + d.t.LineHeight(l.SuffixFont); sh > end {
		end = sh
	}
	d.t.SetY(end + l.After)
}

// drawSpans places the spans of l side by side on a single line.
func (d *Doc) drawSpans(l Line) {
	x, y := d.x+l.Indent, d.Y()
	free := d.lineWidth(l) - d.t.TextWidth(l.Text, l.Font)
	switch l.Align {
	case render.AlignCenter:
		x += free / 2
	case render.AlignRight:
		x += free
	}
	for _, s := range l.Spans {
		w := d.t.TextWidth(s.Text, l.Font)
		d.t.PlaceText(s.Text, x, y, render.TextOptions{
			Font: l.Font, Color: l.Color, Width: w + 1, Link: s.Link, Continued: true,
		})
		x += w
	}
	d.t.SetY(y + d.t.LineHeight(l.Font) + l.After)
}

// Row packs runs separated by sep into as many lines styled like proto as
// the column needs. A run wider than the column gets a wrapped line of its
// own.
func (d *Doc) Row(runs []Span, sep string, proto Line) []Line {
	var out []Line
	var cur []Span
	flush := func() {
		if len(cur) == 0 {
			return
		}
		l := proto
		l.Spans = cur
		var b strings.Builder
		for _, s := range cur {
			b.WriteString(s.Text)
		}
		l.Text = b.String()
		if len(cur) == 1 {
			l.Link = cur[0].Link
		}
		out = append(out, l)
		cur = nil
	}
	width := d.lineWidth(proto)
	var used float64
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		w := d.t.TextWidth(r.Text, proto.Font)
		if len(cur) > 0 {
			sw := d.t.TextWidth(sep, proto.Font)
			if used+sw+w <= width {
				cur = append(cur, Span{Text: sep}, r)
				used += sw + w
				continue
			}
			flush()
		}
		cur, used = []Span{r}, w
	}
	flush()
	for i := range out[:max(len(out)-1, 0)] {
		out[i].After = 0
	}
	return out
}

// Section draws a heading kept together with the first entry, then the
// remaining entries each as its own block. Nothing is drawn when no entry has
// visible content. decorate runs right below the heading text, before the
// heading's trailing space.
func (d *Doc) Section(heading []Line, entries [][]Line, decorate func(d *Doc, y float64)) {
	var firstEntry []Line
	var rest [][]Line
	for i, e := range entries {
		if d.BlockHeight(e) > 0 {
			firstEntry, rest = e, entries[i+1:]
			break
		}
	}
	if firstEntry == nil {
		return
	}

	h := d.BlockHeight(heading) + d.BlockHeight(firstEntry)
	if h <= d.Usable() {
		d.Ensure(h)
	} else {
		d.Ensure(d.BlockHeight(heading))
	}
	for _, l := range heading {
		d.draw(l)
	}
	if decorate != nil && len(heading) > 0 {
		decorate(d, d.Y()-heading[len(heading)-1].After)
	}
	if h <= d.Usable() {
		for _, l := range firstEntry {
			d.draw(l)
		}
	} else {
		d.Block(firstEntry)
	}
	for _, e := range rest {
		d.Block(e)
	}
}
