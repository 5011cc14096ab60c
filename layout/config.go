package layout

// Geometry calculation. A PageConfig is filled in by the caller (CLI flags,
// print-queue options), run once through Finalize, and from then on treated
// as immutable by every component.

// Direction selects the base text direction for column layout.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// Paper is a named page size in points.
type Paper struct {
	Name   string
	Width  float64
	Height float64
}

// The four standard paper presets.
var (
	PaperA4     = Paper{"a4", 595.28, 841.89}
	PaperLetter = Paper{"letter", 612, 792}
	PaperLegal  = Paper{"legal", 612, 1008}
	PaperA3     = Paper{"a3", 842, 1190}
)

// PaperByName looks up one of the standard presets.
func PaperByName(name string) (Paper, bool) {
	for _, p := range []Paper{PaperA4, PaperLetter, PaperLegal, PaperA3} {
		if p.Name == name {
			return p, true
		}
	}
	return Paper{}, false
}

// FontDesc describes a font request handed to the shaping backend: a family
// name, an optional style ("Bold", "Italic", "Bold Italic") and a size in
// points.
type FontDesc struct {
	Family string  `json:"family"`
	Style  string  `json:"style,omitempty"`
	Size   float64 `json:"size"`
}

func (f FontDesc) String() string {
	s := f.Family
	if f.Style != "" {
		s += " " + f.Style
	}
	return s
}

// PageConfig carries the full page and column geometry plus the layout
// policies. The caller fills the input fields and calls Finalize; the
// returned copy additionally holds the derived fields (surface dimensions,
// column width/height, duplex/tumble defaults).
type PageConfig struct {
	// Page dimensions in points, before the landscape swap.
	PageWidth  float64
	PageHeight float64

	// Surface dimensions as handed to the output backend. Derived.
	SurfaceWidth  float64
	SurfaceHeight float64

	Columns      int
	GutterWidth  float64
	TopMargin    float64
	BottomMargin float64
	LeftMargin   float64
	RightMargin  float64

	// HeaderSep is the vertical gap reserved between the header band and
	// the text body. Forced to zero when DrawHeader is off.
	HeaderSep float64

	// Derived column geometry.
	ColumnWidth  float64
	ColumnHeight float64

	Landscape bool
	// Duplex and Tumble are tri-state: nil means "not set by
	// configuration" and defaults to true once orientation is finalized.
	Duplex *bool
	Tumble *bool

	LPI float64 // lines per inch, 0 = natural line height
	CPI float64 // characters per inch, 0 = no fixed-pitch rewrap

	WordWrap       bool
	Justify        bool
	StretchChars   bool
	Markup         bool
	SeparationLine bool
	DrawHeader     bool
	Direction      Direction

	Font       FontDesc
	HeaderFont FontDesc

	// Filename identifies the input in the page header.
	Filename string

	// RecoverEncoding makes the segmenter skip undecodable bytes instead
	// of aborting. Print-queue integrations set this; the CLI does not.
	RecoverEncoding bool
}

// Bool returns a pointer to v, for the tri-state Duplex/Tumble fields.
func Bool(v bool) *bool { return &v }

// Finalize validates the configuration and computes the derived geometry.
// swapSurface controls whether the landscape swap is applied to the surface
// dimensions as well: backends that rotate landscape pages themselves (the
// PostScript surface) pass false so the page is not rotated twice.
func (cfg PageConfig) Finalize(swapSurface bool) (PageConfig, error) {
	if cfg.Columns < 1 {
		return cfg, &ConfigError{Reason: "column count must be at least 1"}
	}
	if cfg.PageWidth <= 0 || cfg.PageHeight <= 0 {
		return cfg, &ConfigError{Reason: "page dimensions must be positive"}
	}

	cfg.SurfaceWidth = cfg.PageWidth
	cfg.SurfaceHeight = cfg.PageHeight
	if cfg.Landscape {
		cfg.PageWidth, cfg.PageHeight = cfg.PageHeight, cfg.PageWidth
		if swapSurface {
			cfg.SurfaceWidth, cfg.SurfaceHeight = cfg.SurfaceHeight, cfg.SurfaceWidth
		}
	}
	// Historical default: both true when unset, whatever the orientation.
	if cfg.Tumble == nil {
		cfg.Tumble = Bool(true)
	}
	if cfg.Duplex == nil {
		cfg.Duplex = Bool(true)
	}

	if !cfg.DrawHeader {
		cfg.HeaderSep = 0
	}

	totalGutter := 0.0
	if cfg.Columns > 1 {
		totalGutter = cfg.GutterWidth * float64(cfg.Columns-1)
	}
	cfg.ColumnWidth = (cfg.PageWidth - cfg.LeftMargin - cfg.RightMargin - totalGutter) / float64(cfg.Columns)
	cfg.ColumnHeight = cfg.PageHeight - cfg.TopMargin - cfg.HeaderSep - cfg.BottomMargin
	if cfg.ColumnWidth <= 0 {
		return cfg, &ConfigError{Reason: "margins and gutters leave no room for columns"}
	}
	if cfg.ColumnHeight <= 0 {
		return cfg, &ConfigError{Reason: "vertical margins leave no room for text"}
	}
	return cfg, nil
}
