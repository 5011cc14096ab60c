package layout

// Line flow: the state machine that walks the global line stream and
// assigns every line to a page, a column and a vertical offset.

// MeasuredLine is one entry of the global line stream: a shaped line plus
// the form-feed marker carried over from its paragraph.
type MeasuredLine struct {
	ShapedLine
	Formfeed bool

	// EndsParagraph marks a paragraph's last visual line. Justification
	// never applies to it.
	EndsParagraph bool
}

// collectLines flattens the paragraphs into the single line stream the flow
// engine consumes (paragraph order, then visual order within a paragraph)
// and reports the tallest natural line height, needed for the stretch
// scale. The form-feed marker lands on the last line of a form-feed
// terminated paragraph only.
func collectLines(paras []*Paragraph) ([]MeasuredLine, float64) {
	var lines []MeasuredLine
	maxHeight := 0.0
	for _, para := range paras {
		for i, sl := range para.Lines {
			last := i == len(para.Lines)-1
			lines = append(lines, MeasuredLine{
				ShapedLine:    sl,
				Formfeed:      para.Formfeed && last,
				EndsParagraph: last,
			})
			if sl.Height > maxHeight {
				maxHeight = sl.Height
			}
		}
		para.Lines = nil
	}
	return lines, maxHeight
}

// ruleStrokeWidth is the stroke width of separator and header rules.
const ruleStrokeWidth = 0.1

type flowState struct {
	cfg     *PageConfig
	band    HeaderBand
	hdr     *headerComposer
	stretch bool

	// Usable column height and the top of the text body, both after the
	// header band has been subtracted.
	colHeight float64
	bodyTop   float64

	pages []Page
	cur   Page

	column int
	offset float64
}

// flowLines places the line stream onto pages. Overflow is tested against
// the line's natural height while the vertical advance may be overridden by
// the LPI grid; this asymmetry is deliberate and matches the historical
// behavior.
func flowLines(lines []MeasuredLine, cfg *PageConfig, band HeaderBand, hdr *headerComposer, stretch bool) ([]Page, error) {
	f := &flowState{
		cfg:       cfg,
		band:      band,
		hdr:       hdr,
		stretch:   stretch,
		colHeight: cfg.ColumnHeight - band.HeaderHeight,
		bodyTop:   cfg.TopMargin + band.HeaderHeight + cfg.HeaderSep,
	}
	if err := f.startPage(1); err != nil {
		return nil, err
	}

	prevFormfeed := false
	for _, ln := range lines {
		if f.offset+ln.Height >= f.colHeight || prevFormfeed {
			if err := f.breakColumn(); err != nil {
				return nil, err
			}
		}
		advance := ln.Height
		if cfg.LPI > 0 {
			advance = PointsPerInch / cfg.LPI
		}
		// Wrapped lines are justified, a paragraph's final line is not.
		justify := cfg.Justify && cfg.WordWrap && !ln.EndsParagraph
		f.cur.Body = append(f.cur.Body, PlacedLine{
			Content: ln.Content,
			X:       f.lineX(ln, justify),
			Y:       f.bodyTop + f.offset + advance,
			Width:   ln.Width,
			Height:  ln.Height,
			Font:    cfg.Font,
			Stretch: f.stretch,
			Justify: justify,
		})
		f.offset += advance
		prevFormfeed = ln.Formfeed
	}

	f.pages = append(f.pages, f.cur)
	return f.pages, nil
}

func (f *flowState) startPage(number int) error {
	f.cur = Page{Number: number}
	f.column = 0
	f.offset = 0
	if f.hdr != nil {
		texts, rules, err := f.hdr.compose(number)
		if err != nil {
			return err
		}
		f.cur.Header = texts
		f.cur.Rules = append(f.cur.Rules, rules...)
	}
	return nil
}

// breakColumn advances to the next column, rolling over to a fresh page
// when the current one is full.
func (f *flowState) breakColumn() error {
	f.column++
	f.offset = 0
	if f.column == f.cfg.Columns {
		f.pages = append(f.pages, f.cur)
		return f.startPage(f.cur.Number + 1)
	}
	if f.cfg.SeparationLine {
		f.cur.Rules = append(f.cur.Rules, f.separator(f.column))
	}
	return nil
}

// separator is the vertical rule at the left edge of column c, mirrored
// for right-to-left layout.
func (f *flowState) separator(c int) Rule {
	idx := c
	if f.cfg.Direction == RightToLeft {
		idx = f.cfg.Columns - c
	}
	x := f.cfg.LeftMargin + f.cfg.ColumnWidth*float64(idx) + (float64(idx)-0.5)*f.cfg.GutterWidth
	return Rule{
		X1:          x,
		Y1:          f.cfg.TopMargin + f.band.HeaderHeight + f.cfg.HeaderSep/2,
		X2:          x,
		Y2:          f.cfg.PageHeight - f.cfg.BottomMargin - f.band.FooterHeight,
		StrokeWidth: ruleStrokeWidth,
	}
}

// lineX resolves the baseline origin of a line within the current column.
// Right-to-left layout mirrors the column order and right-aligns each line
// within its column using the line's measured width. A justified line fills
// the whole column and starts at the column origin in both directions.
func (f *flowState) lineX(ln MeasuredLine, justified bool) float64 {
	if f.cfg.Direction == RightToLeft {
		x := f.cfg.LeftMargin + float64(f.cfg.Columns-1-f.column)*(f.cfg.ColumnWidth+f.cfg.GutterWidth)
		if justified {
			return x
		}
		return x + f.cfg.ColumnWidth - ln.Width
	}
	return f.cfg.LeftMargin + float64(f.column)*(f.cfg.ColumnWidth+f.cfg.GutterWidth)
}
