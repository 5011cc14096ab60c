package layout

// This file defines unit constants shared by the layout core and the
// renderers. All layout arithmetic is done in PostScript points (1/72 inch);
// renderers convert at their own boundary.

// Conversion constants between pt and mm, and points per inch.
const (
	PointsPerInch = 72.0
	PtToMm        = 0.352777
	MmToPt        = 1.0 / PtToMm
)

// InchToPt converts inches to points.
func InchToPt(in float64) float64 { return in * PointsPerInch }

// PtToInch converts points to inches.
func PtToInch(pt float64) float64 { return pt / PointsPerInch }
