package lightning

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"boltgen/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// seqSource replays vals cyclically.
type seqSource struct {
	vals []float64
	n    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.n%len(s.vals)]
	s.n++
	return v
}

var wide = geom.Bounds{MinX: -1e6, MaxX: 1e6, MinY: -1e6, MaxY: 1e6}

func assertInside(t *testing.T, b geom.Bounds, segs []Segment) {
	t.Helper()
	for i, s := range segs {
		if !b.Contains(s.A) || !b.Contains(s.B) {
			t.Fatalf("segment %d %v-%v outside bounds %+v", i, s.A, s.B, b)
		}
	}
}
