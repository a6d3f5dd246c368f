package lightning

import (
	"errors"
	"testing"

	"boltgen/internal/geom"
)

func TestAssembleConnected(t *testing.T) {
	b1 := []Branch{
		{geom.Pt(0, 0), geom.Pt(9, 9)},
		{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2)},
	}
	b2 := []Branch{
		{geom.Pt(5, 5), geom.Pt(3, 3), geom.Pt(2, 2)},
	}
	got := Assemble(b1, b2, true, [2]int{1, 0})
	diff(t, Path{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3), geom.Pt(5, 5)}, got)
	if want := len(b1[1]) + len(b2[0]) - 1; len(got) != want {
		t.Errorf("length %d, want %d", len(got), want)
	}
}

func TestAssembleFallbackUsesFirstBranches(t *testing.T) {
	b1 := []Branch{{geom.Pt(0, 0), geom.Pt(1, 0)}, {geom.Pt(0, 0), geom.Pt(0, 7)}}
	b2 := []Branch{{geom.Pt(50, 0), geom.Pt(40, 0)}, {geom.Pt(50, 0), geom.Pt(8, 8)}}
	// meeting indices are ignored when not connected
	got := Assemble(b1, b2, false, [2]int{1, 1})
	diff(t, Path{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(50, 0)}, got)
	if want := len(b1[0]) + len(b2[0]) - 1; len(got) != want {
		t.Errorf("length %d, want %d", len(got), want)
	}
}

func TestAssembleSingleRoots(t *testing.T) {
	got := Assemble([]Branch{{geom.Pt(1, 2)}}, []Branch{{geom.Pt(3, 4)}}, false, [2]int{})
	diff(t, Path{geom.Pt(1, 2)}, got)
}

func TestPathPositions(t *testing.T) {
	p := Path{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(3, 0), geom.Pt(4, 0)}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, p.Positions())
	diff(t, []float64{0}, Path{geom.Pt(0, 0)}.Positions())
	diff(t, []float64{}, Path{}.Positions())
}

func TestPathSegments(t *testing.T) {
	p := Path{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)}
	diff(t, []Segment{
		{A: geom.Pt(0, 0), B: geom.Pt(1, 0)},
		{A: geom.Pt(1, 0), B: geom.Pt(1, 1)},
	}, p.Segments())
	if Path(nil).Segments() != nil {
		t.Error("empty path should have no segments")
	}
}

func TestGenerate(t *testing.T) {
	b := geom.Bounds{MinX: -80, MaxX: 80, MinY: 0, MaxY: 110}
	start, end := geom.Pt(0, 110), geom.Pt(10, 0)

	mid, err := Generate(NewSource(5), ModeMidpoint, start, end, b, DefaultMidpointParams(), DefaultDualFrontParams())
	if err != nil {
		t.Fatal(err)
	}
	if len(mid.Segments) == 0 || len(mid.Path) != 0 || !mid.Connected {
		t.Errorf("midpoint bolt: %d segments, %d path points, connected=%v", len(mid.Segments), len(mid.Path), mid.Connected)
	}

	df, err := Generate(NewSource(5), ModeDualFront, start, end, b, DefaultMidpointParams(), DefaultDualFrontParams())
	if err != nil {
		t.Fatal(err)
	}
	if df.Path[0] != start || df.Path[len(df.Path)-1] != end {
		t.Errorf("dual-front path runs %v..%v", df.Path[0], df.Path[len(df.Path)-1])
	}
	if df.Steps < 1 || df.Steps > DefaultDualFrontParams().MaxSteps {
		t.Errorf("steps = %d", df.Steps)
	}
	if len(df.Segments) != 2*df.Steps {
		t.Errorf("segments = %d, want %d", len(df.Segments), 2*df.Steps)
	}
}

func TestGenerateValidation(t *testing.T) {
	good := geom.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	mp, dp := DefaultMidpointParams(), DefaultDualFrontParams()

	cases := []struct {
		name string
		mode Mode
		b    geom.Bounds
		mp   MidpointParams
		dp   DualFrontParams
		want error
	}{
		{"inverted x", ModeMidpoint, geom.Bounds{MinX: 10, MaxX: 0, MinY: 0, MaxY: 10}, mp, dp, ErrInvalidBounds},
		{"flat y", ModeDualFront, geom.Bounds{MinX: 0, MaxX: 10, MinY: 3, MaxY: 3}, mp, dp, ErrInvalidBounds},
		{"zero detail", ModeMidpoint, good, MidpointParams{Displacement: 8}, dp, ErrInvalidParameter},
		{"bad probability", ModeMidpoint, good, MidpointParams{Displacement: 8, Detail: 1, BranchProbability: 2}, dp, ErrInvalidParameter},
		{"zero length", ModeDualFront, good, mp, DualFrontParams{MaxSteps: 1}, ErrInvalidParameter},
		{"zero steps", ModeDualFront, good, mp, DualFrontParams{BranchLength: 1}, ErrInvalidParameter},
		{"negative threshold", ModeDualFront, good, mp, DualFrontParams{BranchLength: 1, MaxSteps: 1, ConnectThreshold: -1}, ErrInvalidParameter},
		{"unknown mode", Mode("zigzag"), good, mp, dp, ErrInvalidParameter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Generate(NewSource(1), c.mode, geom.Pt(1, 1), geom.Pt(2, 2), c.b, c.mp, c.dp)
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"midpoint":   ModeMidpoint,
		"dualfront":  ModeDualFront,
		"dual-front": ModeDualFront,
	} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseMode("spiral"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseMode(spiral) err = %v", err)
	}
	if ModeMidpoint.Next() != ModeDualFront || ModeDualFront.Next() != ModeMidpoint {
		t.Error("Next does not cycle")
	}
}

func TestRandomEndpoints(t *testing.T) {
	b := geom.Bounds{MinX: -80, MaxX: 80, MinY: 0, MaxY: 110}
	src := &seqSource{vals: []float64{0.25, 0.75}}
	start, end := RandomEndpoints(src, b)
	diff(t, geom.Pt(-40, 110), start)
	diff(t, geom.Pt(40, 0), end)
}

func TestBoltPoints(t *testing.T) {
	bolt := Bolt{
		Segments: []Segment{
			{A: geom.Pt(0, 0), B: geom.Pt(1, 1)},
			{A: geom.Pt(1, 1), B: geom.Pt(2, 0)},
		},
		Path: Path{geom.Pt(0, 0), geom.Pt(5, 5)},
	}
	diff(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0), geom.Pt(5, 5)}, bolt.Points())
}
