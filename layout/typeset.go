package layout

// Typesetter is the shaping backend the layout core depends on. It turns a
// paragraph of text into measured visual lines and reports an approximate
// character advance for a font. Implemented by renderer/canvas; tests use
// small stubs instead.

// WrapMode selects how a paragraph is broken into lines by the shaper.
type WrapMode int

const (
	// WrapWordChar breaks at word boundaries, falling back to breaking
	// inside a word that is wider than the wrap width on its own.
	WrapWordChar WrapMode = iota
	// WrapNone only breaks at line breaks embedded in the text itself.
	WrapNone
)

// ShapingOptions carries the per-paragraph shaping settings. WrapWidth is in
// points and is ignored when Wrap is WrapNone.
type ShapingOptions struct {
	Font      FontDesc
	WrapWidth float64
	Wrap      WrapMode
	Direction Direction
	Justify   bool
}

// ShapedLine is one measured visual line as reported by the shaping backend.
// The logical box (Width/Height/Ascent) drives placement; the ink box is
// carried along for callers that need tight bounds. All values in points.
type ShapedLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Ascent  float64 `json:"ascent"`

	InkWidth  float64 `json:"inkWidth,omitempty"`
	InkHeight float64 `json:"inkHeight,omitempty"`
}

// Typesetter shapes and measures text runs.
type Typesetter interface {
	// MeasureParagraph shapes one paragraph and returns its visual lines
	// in order. An empty paragraph yields a single empty line.
	MeasureParagraph(text string, opts ShapingOptions) ([]ShapedLine, error)

	// ApproximateCharWidth returns the approximate advance width of a
	// character cell for the font, in points. Used to match glyph pitch
	// to a characters-per-inch request.
	ApproximateCharWidth(font FontDesc) (float64, error)
}
