package layout

import (
	"fmt"
	"time"
)

// Header and footer composition: three independently measured runs (the
// timestamp on the left, the source name in the center, the page number on
// the right) plus a separator rule under the header band.

type headerComposer struct {
	cfg  *PageConfig
	ts   Typesetter
	band HeaderBand

	left   ShapedLine // formatted timestamp, fixed per document
	center ShapedLine // source identifier
}

func newHeaderComposer(cfg *PageConfig, ts Typesetter, now time.Time) (*headerComposer, error) {
	h := &headerComposer{cfg: cfg, ts: ts}

	var err error
	h.left, err = h.run(now.Format(time.ANSIC))
	if err != nil {
		return nil, err
	}
	h.center, err = h.run(cfg.Filename)
	if err != nil {
		return nil, err
	}
	// The reserved band is one third of the header line height.
	h.band.HeaderHeight = h.left.Height / 3
	return h, nil
}

// run shapes one header segment as a single unconstrained line.
func (h *headerComposer) run(text string) (ShapedLine, error) {
	lines, err := h.ts.MeasureParagraph(text, ShapingOptions{
		Font: h.cfg.HeaderFont,
		Wrap: WrapNone,
	})
	if err != nil {
		return ShapedLine{}, &ShapingError{Text: text, Err: err}
	}
	if len(lines) == 0 {
		return ShapedLine{}, nil
	}
	return lines[0], nil
}

// compose builds the header content for one page: the three runs on a
// shared baseline right under the top margin, and the separator rule
// halfway into the header gap.
func (h *headerComposer) compose(page int) ([]PlacedLine, []Rule, error) {
	right, err := h.run(fmt.Sprintf("Page %d", page))
	if err != nil {
		return nil, nil, err
	}

	cfg := h.cfg
	y := cfg.TopMargin + h.band.HeaderHeight
	texts := []PlacedLine{
		h.placed(h.left, cfg.LeftMargin, y),
		h.placed(h.center, (cfg.PageWidth-h.center.Width)/2, y),
		h.placed(right, cfg.PageWidth-cfg.RightMargin-right.Width, y),
	}

	ruleY := cfg.TopMargin + h.band.HeaderHeight + cfg.HeaderSep/2
	rules := []Rule{{
		X1:          cfg.LeftMargin,
		Y1:          ruleY,
		X2:          cfg.PageWidth - cfg.RightMargin,
		Y2:          ruleY,
		StrokeWidth: ruleStrokeWidth,
	}}
	return texts, rules, nil
}

// composeFooter is the footer variant: the same three runs anchored to the
// bottom margin. Nothing drives it yet; it exists for print-queue style
// consumers and is exercised by tests.
func (h *headerComposer) composeFooter(page int) ([]PlacedLine, error) {
	right, err := h.run(fmt.Sprintf("Page %d", page))
	if err != nil {
		return nil, err
	}
	h.band.FooterHeight = h.left.Height / 3

	cfg := h.cfg
	y := cfg.PageHeight - cfg.BottomMargin
	return []PlacedLine{
		h.placed(h.left, cfg.LeftMargin, y),
		h.placed(h.center, (cfg.PageWidth-h.center.Width)/2, y),
		h.placed(right, cfg.PageWidth-cfg.RightMargin-right.Width, y),
	}, nil
}

func (h *headerComposer) placed(sl ShapedLine, x, y float64) PlacedLine {
	return PlacedLine{
		Content: sl.Content,
		X:       x,
		Y:       y,
		Width:   sl.Width,
		Height:  sl.Height,
		Font:    h.cfg.HeaderFont,
	}
}
