package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip verifies the pt/mm conversion survives a round trip
// within floating point noise.
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		mm := pt * PtToMm
		back := mm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt drift: in=%gpt mm=%g back=%g diff=%g", pt, mm, back, diff)
		}
	}
}

// TestInchConversions: 72 points to the inch, both ways.
func TestInchConversions(t *testing.T) {
	if got := InchToPt(1); got != 72 {
		t.Fatalf("InchToPt(1) = %g, want 72", got)
	}
	if got := PtToInch(36); got != 0.5 {
		t.Fatalf("PtToInch(36) = %g, want 0.5", got)
	}
	if got := PtToInch(InchToPt(3.25)); math.Abs(got-3.25) > 1e-12 {
		t.Fatalf("inch round trip drift: %g", got)
	}
}
