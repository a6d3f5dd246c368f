// Package palette maps normalized positions and segment origins to colors.
package palette

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"boltgen/internal/geom"
	"boltgen/internal/lightning"
)

var (
	Green  = mustHex("#00B140")
	Red    = mustHex("#E02020")
	Cyan   = mustHex("#38BDF8")
	Amber  = mustHex("#F59E0B")
	Violet = mustHex("#7C3AED")
	Slate  = mustHex("#6B7280")
	White  = mustHex("#F5F5F5")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Gradient returns the green-to-red color at t, clamped to [0, 1].
func Gradient(t float64) colorful.Color {
	return Green.BlendRgb(Red, geom.Clamp(t, 0, 1))
}

// SegmentPosition is i/(n-1), or 0 for a single segment.
func SegmentPosition(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Segment picks the draw color for segment i of n. Midpoint segments follow
// the gradient; dual-front segments are colored by the side they grew from.
func Segment(s lightning.Segment, i, n int) colorful.Color {
	switch s.Origin {
	case lightning.OriginStart:
		return Cyan
	case lightning.OriginEnd:
		return Violet
	default:
		return Gradient(SegmentPosition(i, n))
	}
}

// Path colors the assembled path at normalized position t. Fallback paths
// are drawn in amber so the unvalidated gap stands out.
func Path(t float64, connected bool) colorful.Color {
	if !connected {
		return Amber.BlendRgb(White, 0.2*geom.Clamp(t, 0, 1))
	}
	return Gradient(t)
}

// RGBA converts for image rasterization.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
