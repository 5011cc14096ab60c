package layout

import (
	"fmt"
	"time"
)

// BuildOptions configures a Build run with its external dependencies.
type BuildOptions struct {
	// Typesetter is the shaping backend. Required.
	Typesetter Typesetter
	// Now supplies the header timestamp; defaults to time.Now. Tests pin
	// it for reproducible output.
	Now func() time.Time
}

// Build paginates text under a finalized PageConfig and returns the placed
// document. The run is strictly sequential: segmentation and measurement
// first, then one pre-pass for the stretch scale, then line flow.
func Build(text string, cfg PageConfig, opts BuildOptions) (*Result, error) {
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: missing shaping backend Typesetter")
	}
	if cfg.ColumnWidth <= 0 || cfg.ColumnHeight <= 0 {
		return nil, &ConfigError{Reason: "PageConfig was not finalized"}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// Under a CPI grid, rescale the body font so the glyph advance
	// matches the requested pitch.
	if cfg.CPI > 0 {
		w, err := opts.Typesetter.ApproximateCharWidth(cfg.Font)
		if err != nil {
			return nil, &ShapingError{Text: cfg.Font.String(), Err: err}
		}
		if w > 0 {
			cfg.Font.Size *= (PointsPerInch / cfg.CPI) / w
		}
	}

	band := HeaderBand{}
	var hdr *headerComposer
	if cfg.DrawHeader {
		var err error
		hdr, err = newHeaderComposer(&cfg, opts.Typesetter, now())
		if err != nil {
			return nil, err
		}
		band = hdr.band
	}

	paras, err := splitTextIntoParagraphs(text, &cfg, opts.Typesetter)
	if err != nil {
		return nil, err
	}
	lines, maxHeight := collectLines(paras)

	scaleY := 1.0
	if cfg.StretchChars && cfg.LPI > 0 && maxHeight > 0 {
		scaleY = (PointsPerInch / cfg.LPI) / maxHeight
	}

	pages, err := flowLines(lines, &cfg, band, hdr, scaleY != 1)
	if err != nil {
		return nil, err
	}

	return &Result{
		Pages:         pages,
		PageWidth:     cfg.PageWidth,
		PageHeight:    cfg.PageHeight,
		SurfaceWidth:  cfg.SurfaceWidth,
		SurfaceHeight: cfg.SurfaceHeight,
		Landscape:     cfg.Landscape,
		ColumnWidth:   cfg.ColumnWidth,
		ScaleY:        scaleY,
	}, nil
}
