package lightning

import (
	"math"

	"boltgen/internal/geom"
)

// Step length jitter around DualFrontParams.BranchLength.
const (
	minStepScale = 0.7
	maxStepScale = 1.3
)

// DualFrontResult is the outcome of a dual-front walk.
type DualFrontResult struct {
	StartSegments []Segment // grown from start, tagged OriginStart
	EndSegments   []Segment // grown from end, tagged OriginEnd
	Branches1     []Branch  // rooted at start
	Branches2     []Branch  // rooted at end
	Connected     bool
	Meeting       [2]int // (i, j) into Branches1/Branches2; zero when not connected
	Steps         int    // growth steps taken, at most MaxSteps
}

// Path assembles the winning branches, or the fallback pair.
func (r DualFrontResult) Path() Path {
	return Assemble(r.Branches1, r.Branches2, r.Connected, r.Meeting)
}

// Segments interleaves both sides in growth order: each step's start-front
// segments followed by its end-front segments.
func (r DualFrontResult) Segments() []Segment {
	out := make([]Segment, 0, len(r.StartSegments)+len(r.EndSegments))
	si, ei := 0, 0
	for si < len(r.StartSegments) || ei < len(r.EndSegments) {
		per1 := max(1, len(r.Branches1))
		per2 := max(1, len(r.Branches2))
		for k := 0; k < per1 && si < len(r.StartSegments); k++ {
			out = append(out, r.StartSegments[si])
			si++
		}
		for k := 0; k < per2 && ei < len(r.EndSegments); k++ {
			out = append(out, r.EndSegments[ei])
			ei++
		}
	}
	return out
}

// DualFront grows one front from start and one from end toward each other
// until a pair of tips comes within ConnectThreshold or MaxSteps is spent.
//
// Within a step the start front moves first, aimed at the end front's lead
// tip. The end front then aims at the start front's freshly moved lead tip.
func DualFront(src Source, start, end geom.Point, b geom.Bounds, params DualFrontParams) DualFrontResult {
	res := DualFrontResult{
		Branches1: []Branch{{start}},
		Branches2: []Branch{{end}},
	}
	front1 := []geom.Point{start}
	front2 := []geom.Point{end}

	for step := 0; step < params.MaxSteps; step++ {
		res.Steps++
		var segs []Segment
		front1, segs = growFront(src, front1, res.Branches1, front2[0], OriginStart, b, params)
		res.StartSegments = append(res.StartSegments, segs...)
		front2, segs = growFront(src, front2, res.Branches2, front1[0], OriginEnd, b, params)
		res.EndSegments = append(res.EndSegments, segs...)

		if i, j, ok := FindConnection(front1, front2, params.ConnectThreshold); ok {
			res.Connected = true
			res.Meeting = [2]int{i, j}
			break
		}
	}

	log := Logger()
	if !res.Connected {
		log.Info("dual-front fronts never met, using fallback path",
			"steps", res.Steps,
			"gap", geom.Distance(front1[0], front2[0]))
	}
	log.Debug("dual-front generated",
		"steps", res.Steps,
		"connected", res.Connected,
		"start_segments", len(res.StartSegments),
		"end_segments", len(res.EndSegments))
	return res
}

// growFront advances every tip of front one step toward target. branches is
// updated in place; front[i] and branches[i] stay aligned.
func growFront(src Source, front []geom.Point, branches []Branch, target geom.Point, origin Origin, b geom.Bounds, params DualFrontParams) ([]geom.Point, []Segment) {
	next := make([]geom.Point, len(front))
	segs := make([]Segment, 0, len(front))
	for i, tip := range front {
		nt := b.Clamp(stepToward(src, tip, target, params))
		segs = append(segs, Segment{A: tip, B: nt, Origin: origin})
		branches[i] = append(branches[i], nt)
		next[i] = nt
	}
	return next, segs
}

// stepToward returns the unclamped next tip from tip, biased toward target.
func stepToward(src Source, tip, target geom.Point, params DualFrontParams) geom.Point {
	dir := math.Atan2(target.Y-tip.Y, target.X-tip.X)
	dir += uniform(src, -params.AngleSpread/2, params.AngleSpread/2)
	length := params.BranchLength * uniform(src, minStepScale, maxStepScale)
	return geom.Point{
		X: tip.X + length*math.Cos(dir),
		Y: tip.Y + length*math.Sin(dir),
	}
}

// FindConnection scans front1 x front2 in row-major order and returns the
// first pair closer than threshold.
func FindConnection(front1, front2 []geom.Point, threshold float64) (i, j int, ok bool) {
	for i, p := range front1 {
		for j, q := range front2 {
			if geom.Distance(p, q) < threshold {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
