package lightning

import "boltgen/internal/geom"

// Origin tags which endpoint a segment grew from.
type Origin uint8

const (
	OriginNone  Origin = iota // midpoint displacement, no growth side
	OriginStart               // grown from the start front
	OriginEnd                 // grown from the end front
)

func (o Origin) String() string {
	switch o {
	case OriginStart:
		return "start"
	case OriginEnd:
		return "end"
	default:
		return "none"
	}
}

// Segment is a line between A and B in construction order.
type Segment struct {
	A, B   geom.Point
	Origin Origin
}

// Branch is the ordered history of points from a root endpoint to its tip.
type Branch []geom.Point

// Tip returns the last point of the branch.
func (b Branch) Tip() geom.Point { return b[len(b)-1] }

// Path is the ordered sequence of points from the true start to the true end.
type Path []geom.Point

// Positions returns each point's normalized position along the path,
// index/(len-1). A single-point path reports 0.
func (p Path) Positions() []float64 {
	out := make([]float64, len(p))
	if len(p) < 2 {
		return out
	}
	last := float64(len(p) - 1)
	for i := range p {
		out[i] = float64(i) / last
	}
	return out
}

// Segments returns consecutive point pairs of the path.
func (p Path) Segments() []Segment {
	if len(p) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		out = append(out, Segment{A: p[i-1], B: p[i]})
	}
	return out
}
