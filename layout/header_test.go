package layout

import (
	"testing"
	"time"
)

func headerConfig(t *testing.T) PageConfig {
	return testConfig(t, PageConfig{
		PageWidth: 612, PageHeight: 792, Columns: 1, WordWrap: true,
		TopMargin: 36, BottomMargin: 36, LeftMargin: 30, RightMargin: 30,
		DrawHeader: true, HeaderSep: 20,
		Filename: "report.txt",
	})
}

// TestHeaderRuns: every page carries three header runs on one baseline:
// the timestamp left, the file name centered, the page number right.
func TestHeaderRuns(t *testing.T) {
	cfg := headerConfig(t)
	ts := &gridTypesetter{charWidth: 6, lineHeight: 12}

	res := buildText(t, "body\n", cfg, ts)
	hdr := res.Pages[0].Header
	if len(hdr) != 3 {
		t.Fatalf("want 3 header runs, got %+v", hdr)
	}

	wantStamp := fixedNow().Format(time.ANSIC)
	if hdr[0].Content != wantStamp {
		t.Fatalf("left run = %q, want %q", hdr[0].Content, wantStamp)
	}
	if hdr[1].Content != "report.txt" {
		t.Fatalf("center run = %q", hdr[1].Content)
	}
	if hdr[2].Content != "Page 1" {
		t.Fatalf("right run = %q", hdr[2].Content)
	}

	// Band is a third of the header line height; the shared baseline sits
	// at the bottom of the band.
	wantY := 36 + 12.0/3
	for i, pl := range hdr {
		if !almost(pl.Y, wantY) {
			t.Fatalf("run %d baseline = %g, want %g", i, pl.Y, wantY)
		}
	}
	if !almost(hdr[0].X, 30) {
		t.Fatalf("left run at x=%g, want the left margin", hdr[0].X)
	}
	if wantX := (612 - hdr[1].Width) / 2; !almost(hdr[1].X, wantX) {
		t.Fatalf("center run at x=%g, want %g", hdr[1].X, wantX)
	}
	if wantX := 612 - 30 - hdr[2].Width; !almost(hdr[2].X, wantX) {
		t.Fatalf("right run at x=%g, want %g", hdr[2].X, wantX)
	}
}

// TestHeaderRule: the rule under the header band sits halfway into the
// header gap and spans margin to margin.
func TestHeaderRule(t *testing.T) {
	cfg := headerConfig(t)
	ts := &gridTypesetter{charWidth: 6, lineHeight: 12}

	res := buildText(t, "body\n", cfg, ts)
	rules := res.Pages[0].Rules
	if len(rules) != 1 {
		t.Fatalf("want the header rule only, got %+v", rules)
	}
	r := rules[0]
	wantY := 36 + 12.0/3 + 10
	if !almost(r.Y1, wantY) || !almost(r.Y2, wantY) {
		t.Fatalf("rule at y=%g/%g, want %g", r.Y1, r.Y2, wantY)
	}
	if !almost(r.X1, 30) || !almost(r.X2, 582) {
		t.Fatalf("rule spans %g..%g, want 30..582", r.X1, r.X2)
	}
}

// TestHeaderShiftsBody: the text body starts below the header band and the
// header gap, and header runs are never stretched.
func TestHeaderShiftsBody(t *testing.T) {
	cfg := headerConfig(t)
	ts := &gridTypesetter{charWidth: 6, lineHeight: 12}

	res := buildText(t, "body\n", cfg, ts)
	first := res.Pages[0].Body[0]
	if wantY := 36 + 12.0/3 + 20 + 12; !almost(first.Y, wantY) {
		t.Fatalf("first body baseline = %g, want %g", first.Y, wantY)
	}
	for _, pl := range res.Pages[0].Header {
		if pl.Stretch {
			t.Fatalf("header run marked for stretching: %+v", pl)
		}
	}
}

// TestHeaderOnEveryPage: the page number advances per page while the other
// runs repeat.
func TestHeaderOnEveryPage(t *testing.T) {
	base := PageConfig{
		PageWidth: 200, PageHeight: 90, Columns: 1, WordWrap: true,
		DrawHeader: true, HeaderSep: 20, Filename: "in",
	}
	cfg := testConfig(t, base)
	ts := &gridTypesetter{charWidth: 6, lineHeight: 12}

	res := buildText(t, "a\nb\nc\nd\ne\nf\ng\nh\n", cfg, ts)
	if len(res.Pages) < 2 {
		t.Fatalf("want at least 2 pages, got %d", len(res.Pages))
	}
	if res.Pages[0].Header[2].Content != "Page 1" {
		t.Fatalf("page 1 run = %q", res.Pages[0].Header[2].Content)
	}
	if res.Pages[1].Header[2].Content != "Page 2" {
		t.Fatalf("page 2 run = %q", res.Pages[1].Header[2].Content)
	}
}

// TestComposeFooter: the footer variant mirrors the header runs at the
// bottom margin.
func TestComposeFooter(t *testing.T) {
	cfg := headerConfig(t)
	ts := &gridTypesetter{charWidth: 6, lineHeight: 12}
	h, err := newHeaderComposer(&cfg, ts, fixedNow())
	if err != nil {
		t.Fatalf("newHeaderComposer: %v", err)
	}

	runs, err := h.composeFooter(2)
	if err != nil {
		t.Fatalf("composeFooter: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("want 3 footer runs, got %+v", runs)
	}
	if runs[2].Content != "Page 2" {
		t.Fatalf("footer page run = %q", runs[2].Content)
	}
	if wantY := 792.0 - 36; !almost(runs[0].Y, wantY) {
		t.Fatalf("footer baseline = %g, want %g", runs[0].Y, wantY)
	}
	if h.band.FooterHeight != 4 {
		t.Fatalf("footer band = %g, want 4", h.band.FooterHeight)
	}
}
