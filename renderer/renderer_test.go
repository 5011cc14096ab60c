package renderer

import "testing"

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"ps":         FormatPostScript,
		"postscript": FormatPostScript,
		"PDF":        FormatPDF,
		"svg":        FormatSVG,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseFormat("docx"); err == nil {
		t.Fatalf("unknown format must not parse")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatPostScript, FormatPDF, FormatSVG} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Fatalf("round trip for %v failed: %v, %v", f, got, err)
		}
	}
}

// Only the PostScript surface rotates landscape pages itself; the other
// backends receive pre-swapped surface dimensions.
func TestRotatesLandscape(t *testing.T) {
	if !FormatPostScript.RotatesLandscape() {
		t.Fatalf("PostScript must rotate landscape pages")
	}
	if FormatPDF.RotatesLandscape() || FormatSVG.RotatesLandscape() {
		t.Fatalf("PDF and SVG must use swapped surfaces instead")
	}
}
