package renderer

import (
	"fmt"
	"strings"

	"github.com/ByLCY/folio/layout"
)

// Format selects the page-description output produced by a renderer.
type Format int

const (
	FormatPostScript Format = iota
	FormatPDF
	FormatSVG
)

// ParseFormat maps a format name from the command line to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "ps", "postscript":
		return FormatPostScript, nil
	case "pdf":
		return FormatPDF, nil
	case "svg":
		return FormatSVG, nil
	}
	return 0, fmt.Errorf("renderer: unknown output format %q", s)
}

func (f Format) String() string {
	switch f {
	case FormatPostScript:
		return "ps"
	case FormatPDF:
		return "pdf"
	case FormatSVG:
		return "svg"
	}
	return "unknown"
}

// RotatesLandscape reports whether the backend keeps a portrait surface and
// rotates landscape pages itself. The surface dimensions must not be
// swapped for such backends, or the page would be rotated twice.
func (f Format) RotatesLandscape() bool {
	return f == FormatPostScript
}

// Renderer serializes a layout result into a finished document, for
// example a PDF or PostScript byte stream.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
