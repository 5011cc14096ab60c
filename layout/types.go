package layout

// This file defines the layout result shared by the flow engine, the
// renderers and the debug JSON output.

// Result holds the fully paginated document. It is a pure function of the
// input text and the PageConfig: rendering it twice, or rebuilding it from
// the same inputs, yields identical output.
type Result struct {
	Pages []Page `json:"pages"`

	// Logical page geometry (post landscape swap) and the surface
	// dimensions the output backend must be opened with.
	PageWidth     float64 `json:"pageWidth"`
	PageHeight    float64 `json:"pageHeight"`
	SurfaceWidth  float64 `json:"surfaceWidth"`
	SurfaceHeight float64 `json:"surfaceHeight"`
	Landscape     bool    `json:"landscape"`

	// ColumnWidth is the width justified lines are widened to.
	ColumnWidth float64 `json:"columnWidth"`

	// ScaleY is the uniform vertical stretch applied to body glyphs when
	// stretch-chars is enabled under an LPI grid; 1 otherwise.
	ScaleY float64 `json:"scaleY"`
}

// Page is one output page with everything positioned, ready to draw.
type Page struct {
	Number int          `json:"number"`
	Body   []PlacedLine `json:"body"`
	Header []PlacedLine `json:"header,omitempty"`
	Rules  []Rule       `json:"rules,omitempty"`
}

// PlacedLine is a shaped line with its baseline origin resolved to page
// coordinates (points, origin top-left, y growing down).
type PlacedLine struct {
	Content string   `json:"content"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Font    FontDesc `json:"font"`

	// Stretch marks lines subject to the Result.ScaleY glyph transform.
	Stretch bool `json:"stretch,omitempty"`

	// Justify marks wrapped lines whose word gaps are widened to fill the
	// column width at draw time.
	Justify bool `json:"justify,omitempty"`
}

// Rule is a stroked line segment: column separators and the header rule.
type Rule struct {
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// HeaderBand is the vertical space reserved for the header and footer,
// subtracted from the usable column height before line flow begins.
type HeaderBand struct {
	HeaderHeight float64 `json:"headerHeight"`
	FooterHeight float64 `json:"footerHeight"`
}
