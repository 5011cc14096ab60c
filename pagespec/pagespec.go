// Package pagespec parses the compound option values of the command line:
// paper sizes ("a4", "210mmx297mm"), margin shorthands ("36pt,54pt") and
// font descriptions ("Monospace Bold 12").
package pagespec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/folio/layout"
)

var (
	// The unit suffix is part of the Number token, so that "210mmx297mm"
	// lexes cleanly.
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?(?:pt|mm|cm|in)?`},
		{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9-]*`},
		{Name: "Sep", Pattern: `[x,]`},
	})

	paperParser = participle.MustBuild[paperSpec](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
	marginParser = participle.MustBuild[marginSpec](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
	fontParser = participle.MustBuild[fontSpec](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
)

// paperSpec is an explicit WIDTHxHEIGHT page size.
type paperSpec struct {
	Width  string `parser:"@Number"`
	Height string `parser:"'x' @Number"`
}

// marginSpec is a comma-separated list of one to four lengths, expanded
// CSS-style to top/right/bottom/left.
type marginSpec struct {
	Dims []string `parser:"@Number ( ',' @Number )*"`
}

// fontSpec is a font description in the "Family [Style...] [Size]" form.
type fontSpec struct {
	Words []string `parser:"@Ident+"`
	Size  *string  `parser:"@Number?"`
}

// parseLength converts a Number token ("36", "12.5mm") to points.
func parseLength(tok string) (float64, error) {
	num, unit := tok, ""
	for _, suffix := range []string{"pt", "mm", "cm", "in"} {
		if strings.HasSuffix(tok, suffix) {
			num, unit = tok[:len(tok)-len(suffix)], suffix
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "mm":
		return v * layout.MmToPt, nil
	case "cm":
		return v * 10 * layout.MmToPt, nil
	case "in":
		return layout.InchToPt(v), nil
	default:
		return v, nil
	}
}

// ParsePaper resolves a paper size: one of the preset names (a4, letter,
// legal, a3) or an explicit WIDTHxHEIGHT with optional units.
func ParsePaper(s string) (layout.Paper, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p, ok := layout.PaperByName(name); ok {
		return p, nil
	}
	spec, err := paperParser.ParseString("", name)
	if err != nil {
		return layout.Paper{}, fmt.Errorf("pagespec: unknown paper size %q: %w", s, err)
	}
	w, errW := parseLength(spec.Width)
	h, errH := parseLength(spec.Height)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return layout.Paper{}, fmt.Errorf("pagespec: invalid paper size %q", s)
	}
	return layout.Paper{Name: "custom", Width: w, Height: h}, nil
}

// ParseMargins parses a margin shorthand of one to four comma-separated
// lengths and returns top, right, bottom and left in points.
func ParseMargins(s string) (top, right, bottom, left float64, err error) {
	spec, err := marginParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("pagespec: invalid margins %q: %w", s, err)
	}
	pts := make([]float64, len(spec.Dims))
	for i, tok := range spec.Dims {
		if pts[i], err = parseLength(tok); err != nil {
			return 0, 0, 0, 0, fmt.Errorf("pagespec: invalid margin %q: %w", tok, err)
		}
	}
	switch len(pts) {
	case 1:
		return pts[0], pts[0], pts[0], pts[0], nil
	case 2:
		return pts[0], pts[1], pts[0], pts[1], nil
	case 3:
		return pts[0], pts[1], pts[2], pts[1], nil
	case 4:
		return pts[0], pts[1], pts[2], pts[3], nil
	}
	return 0, 0, 0, 0, fmt.Errorf("pagespec: margins %q must list one to four lengths", s)
}

// styleWords are the trailing description words treated as a style rather
// than part of the family name.
var styleWords = map[string]bool{
	"regular": true,
	"bold":    true,
	"italic":  true,
	"oblique": true,
}

// ParseFont parses a font description like "Monospace 12" or
// "Monospace Bold Italic 14". The size defaults to defaultSize when the
// description omits it.
func ParseFont(s string, defaultSize float64) (layout.FontDesc, error) {
	spec, err := fontParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return layout.FontDesc{}, fmt.Errorf("pagespec: invalid font description %q: %w", s, err)
	}

	words := spec.Words
	var styles []string
	for len(words) > 1 && styleWords[strings.ToLower(words[len(words)-1])] {
		styles = append([]string{words[len(words)-1]}, styles...)
		words = words[:len(words)-1]
	}

	desc := layout.FontDesc{
		Family: strings.Join(words, " "),
		Style:  strings.Join(styles, " "),
		Size:   defaultSize,
	}
	if spec.Size != nil {
		if desc.Size, err = parseLength(*spec.Size); err != nil {
			return layout.FontDesc{}, fmt.Errorf("pagespec: invalid font size in %q: %w", s, err)
		}
	}
	if desc.Size <= 0 {
		return layout.FontDesc{}, fmt.Errorf("pagespec: font size in %q must be positive", s)
	}
	return desc, nil
}
