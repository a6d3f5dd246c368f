package lightning

import (
	"fmt"

	"boltgen/internal/geom"
)

// Mode selects a generator.
type Mode string

const (
	ModeMidpoint  Mode = "midpoint"
	ModeDualFront Mode = "dualfront"
)

// Modes lists every generator in display order.
var Modes = []Mode{ModeMidpoint, ModeDualFront}

// ParseMode accepts a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMidpoint, ModeDualFront:
		return Mode(s), nil
	case "dual-front", "dual":
		return ModeDualFront, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidParameter, s)
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	for i, x := range Modes {
		if x == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Bolt is one generated bolt ready for rendering.
type Bolt struct {
	Mode   Mode
	Start  geom.Point
	End    geom.Point
	Bounds geom.Bounds

	// Segments in construction order, for progressive drawing.
	Segments []Segment
	// Path is the assembled start-to-end path; empty in midpoint mode.
	Path Path
	// Connected is false only when the dual-front walk fell back.
	Connected bool
	// Steps taken by the dual-front walk.
	Steps int
}

// RandomEndpoints picks a start on the top edge and an end on the bottom
// edge, x uniform across the bounds. The start is drawn first.
func RandomEndpoints(src Source, b geom.Bounds) (start, end geom.Point) {
	start = geom.Pt(uniform(src, b.MinX, b.MaxX), b.MaxY)
	end = geom.Pt(uniform(src, b.MinX, b.MaxX), b.MinY)
	return start, end
}

// Generate validates its inputs and runs the generator for mode.
func Generate(src Source, mode Mode, start, end geom.Point, b geom.Bounds, mp MidpointParams, dp DualFrontParams) (Bolt, error) {
	if err := ValidateBounds(b); err != nil {
		return Bolt{}, err
	}
	bolt := Bolt{Mode: mode, Start: start, End: end, Bounds: b}
	switch mode {
	case ModeMidpoint:
		if err := mp.Validate(); err != nil {
			return Bolt{}, fmt.Errorf("midpoint: %w", err)
		}
		bolt.Segments = Midpoint(src, start, end, mp, b)
		bolt.Connected = true
	case ModeDualFront:
		if err := dp.Validate(); err != nil {
			return Bolt{}, fmt.Errorf("dualfront: %w", err)
		}
		res := DualFront(src, start, end, b, dp)
		bolt.Segments = res.Segments()
		bolt.Path = res.Path()
		bolt.Connected = res.Connected
		bolt.Steps = res.Steps
	default:
		return Bolt{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidParameter, mode)
	}
	return bolt, nil
}

// Points returns every distinct vertex referenced by the bolt's segments and path.
func (b Bolt) Points() []geom.Point {
	seen := make(map[geom.Point]bool, 2*len(b.Segments)+len(b.Path))
	var out []geom.Point
	add := func(p geom.Point) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, s := range b.Segments {
		add(s.A)
		add(s.B)
	}
	for _, p := range b.Path {
		add(p)
	}
	return out
}
