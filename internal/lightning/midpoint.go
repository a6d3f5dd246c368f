package lightning

import (
	"math"

	"boltgen/internal/geom"
)

// Midpoint subdivides p1-p2 by recursive midpoint displacement and returns
// the leaf segments in construction order. Side branches are appended after
// the two halves they sprout from.
func Midpoint(src Source, p1, p2 geom.Point, params MidpointParams, b geom.Bounds) []Segment {
	segs := AppendMidpoint(nil, src, p1, p2, params.Displacement, params, b)
	Logger().Debug("midpoint generated",
		"segments", len(segs),
		"displacement", params.Displacement,
		"detail", params.Detail)
	return segs
}

// AppendMidpoint appends the segments for p1-p2 at the given displacement
// to dst and returns the extended slice. A segment whose displacement has
// reached the detail threshold is a leaf, so recursion depth is bounded by
// ceil(log2(displacement/detail)); detail must be positive.
func AppendMidpoint(dst []Segment, src Source, p1, p2 geom.Point, displacement float64, params MidpointParams, b geom.Bounds) []Segment {
	if displacement <= params.Detail {
		return append(dst, Segment{A: p1, B: p2})
	}
	mid := geom.Point{
		X: (p1.X+p2.X)/2 + (src.Float64()-0.5)*displacement,
		Y: (p1.Y+p2.Y)/2 + (src.Float64()-0.5)*displacement,
	}
	mid = b.Clamp(mid)

	half := displacement / 2
	dst = AppendMidpoint(dst, src, p1, mid, half, params, b)
	dst = AppendMidpoint(dst, src, mid, p2, half, params, b)

	// the gate is always drawn so the stream stays aligned with or without branching
	if src.Float64() > 1-params.BranchProbability && displacement > params.BranchMinDisplacement {
		// absolute angle, not relative to p1-p2
		angle := params.BranchSpread * (src.Float64() - 0.5)
		length := displacement * (0.5 + src.Float64()*0.5)
		end := b.Clamp(geom.Point{
			X: mid.X + length*math.Cos(angle),
			Y: mid.Y + length*math.Sin(angle),
		})
		dst = AppendMidpoint(dst, src, mid, end, half, params, b)
	}
	return dst
}
