package layout

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Paragraph segmentation. The input text is split on newline and form-feed
// boundaries, each run is handed to the shaping backend for measurement, and
// under a characters-per-inch grid runs are pre-cut to a character-cell
// budget before shaping.

// Paragraph is a contiguous run of source text between two break
// boundaries, holding the shaped lines measured for it. Formfeed is set
// when the run ended at a form-feed, which forces a column or page break
// after its last line.
type Paragraph struct {
	Text     string
	Formfeed bool
	Lines    []ShapedLine
}

type segmenter struct {
	cfg   *PageConfig
	ts    Typesetter
	paras []*Paragraph
}

// splitTextIntoParagraphs scans the UTF-8 text and produces the measured
// paragraphs in source order. In markup mode the whole text is a single
// paragraph and no splitting occurs.
func splitTextIntoParagraphs(text string, cfg *PageConfig, ts Typesetter) ([]*Paragraph, error) {
	s := &segmenter{cfg: cfg, ts: ts}

	if cfg.Markup {
		opts := s.shapingOptions()
		if cfg.WordWrap {
			opts.Wrap = WrapWordChar
			opts.WrapWidth = cfg.ColumnWidth
		} else {
			opts.Wrap = WrapNone
		}
		if err := s.shape(text, false, opts); err != nil {
			return nil, err
		}
		return s.paras, nil
	}

	pos := 0
	last := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRuneInString(text[pos:]) {
				// Truncated multi-byte sequence at the end of the
				// buffer: stop scanning without emitting a boundary.
				return s.paras, nil
			}
			if !s.cfg.RecoverEncoding {
				return nil, &EncodingError{Offset: pos, Reason: "invalid UTF-8 sequence"}
			}
			// Recovery: the bad byte acts as a paragraph boundary and is
			// dropped from the output.
			if err := s.emit(text[last:pos], false); err != nil {
				return nil, err
			}
			pos++
			last = pos
			continue
		}
		if r == '\n' || r == '\f' {
			if err := s.emit(text[last:pos], r == '\f'); err != nil {
				return nil, err
			}
			pos += size
			last = pos
			continue
		}
		pos += size
	}
	if last < len(text) {
		if err := s.emit(text[last:], false); err != nil {
			return nil, err
		}
	}
	return s.paras, nil
}

func (s *segmenter) shapingOptions() ShapingOptions {
	return ShapingOptions{
		Font:      s.cfg.Font,
		Direction: s.cfg.Direction,
		Justify:   s.cfg.Justify,
	}
}

// emit measures one paragraph run and appends it. Under an active CPI grid
// with word-wrap enabled the run is pre-cut to the cell budget instead of
// relying on the shaper's own wrapping, which is unreliable for a fixed
// character pitch.
func (s *segmenter) emit(run string, formfeed bool) error {
	if s.cfg.CPI > 0 && s.cfg.WordWrap {
		return s.emitFixedPitch(run, formfeed)
	}
	opts := s.shapingOptions()
	if s.cfg.WordWrap {
		opts.Wrap = WrapWordChar
		opts.WrapWidth = s.cfg.ColumnWidth
	} else {
		opts.Wrap = WrapNone
	}
	return s.shape(run, formfeed, opts)
}

func (s *segmenter) emitFixedPitch(run string, formfeed bool) error {
	// Character cells that fit one column at the requested pitch.
	budget := int(s.cfg.ColumnWidth / PointsPerInch * s.cfg.CPI)
	if budget < 1 {
		budget = 1
	}
	for {
		cut, fits := fixedPitchCut(run, budget)
		if fits {
			// Within budget: let the shaper word-wrap naturally at the
			// full column width.
			opts := s.shapingOptions()
			opts.Wrap = WrapWordChar
			opts.WrapWidth = s.cfg.ColumnWidth
			return s.shape(run, formfeed, opts)
		}
		opts := s.shapingOptions()
		opts.Wrap = WrapNone
		if err := s.shape(run[:cut], false, opts); err != nil {
			return err
		}
		run = run[cut:]
	}
}

func (s *segmenter) shape(text string, formfeed bool, opts ShapingOptions) error {
	lines, err := s.ts.MeasureParagraph(text, opts)
	if err != nil {
		return &ShapingError{Text: text, Err: err}
	}
	s.paras = append(s.paras, &Paragraph{Text: text, Formfeed: formfeed, Lines: lines})
	return nil
}

// fixedPitchCut reports where run must be cut so the first fragment stays
// within budget character cells. fits is true when the whole run fits. The
// fragment ends one cell short of the cumulative sum crossing the budget,
// and always consumes at least one rune so the scan makes progress.
func fixedPitchCut(run string, budget int) (cut int, fits bool) {
	if utf8.RuneCountInString(run) <= budget {
		return len(run), true
	}
	cells := 0
	for i, r := range run {
		cells += cellWidth(r)
		if cells > budget {
			if i == 0 {
				_, size := utf8.DecodeRuneInString(run)
				return size, false
			}
			return i, false
		}
	}
	return len(run), true
}

// cellWidth is the device-cell count of one codepoint under a fixed pitch:
// East Asian wide and fullwidth characters take two cells, control
// characters none, everything else one.
func cellWidth(r rune) int {
	if unicode.IsControl(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
