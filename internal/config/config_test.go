package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"boltgen/internal/lightning"
)

func TestDefaultValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.FrameInterval() != 30*time.Millisecond {
		t.Errorf("frame interval = %v", c.FrameInterval())
	}
}

func TestDecodeMergesDefaults(t *testing.T) {
	in := `{"mode": "dualfront", "seed": 7, "dualfront": {"max_steps": 40, "branch_length": 5}}`
	c, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Mode = lightning.ModeDualFront
	want.Seed = 7
	want.DualFront.MaxSteps = 40
	want.DualFront.BranchLength = 5
	if d := cmp.Diff(want, c); d != "" {
		t.Error(d)
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"bounds": {"xmin": 5, "xmax": 1, "ymin": 0, "ymax": 1}}`))
	if !errors.Is(err, lightning.ErrInvalidBounds) {
		t.Errorf("err = %v, want ErrInvalidBounds", err)
	}
	if _, err := Decode(strings.NewReader(`{`)); err == nil {
		t.Error("truncated JSON accepted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bolt.json")
	if err := os.WriteFile(path, []byte(`{"midpoint": {"displacement": 40, "detail": 4}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Midpoint.Displacement != 40 || c.Midpoint.Detail != 4 {
		t.Errorf("midpoint = %+v", c.Midpoint)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	c, err := Default().ApplyOverrides("mode=dualfront, seed=99\n# comment\nmax_steps=10 connect_threshold=0")
	if err != nil {
		t.Fatal(err)
	}
	if c.Mode != lightning.ModeDualFront || c.Seed != 99 || c.DualFront.MaxSteps != 10 || c.DualFront.ConnectThreshold != 0 {
		t.Errorf("overrides not applied: %+v", c)
	}
}

func TestApplyOverridesErrors(t *testing.T) {
	base := Default()
	cases := []struct {
		in   string
		want error
	}{
		{"colour=red", ErrUnknownKey},
		{"detail=0", lightning.ErrInvalidParameter},
		{"xmin=100", lightning.ErrInvalidBounds},
		{"mode=spiral", lightning.ErrInvalidParameter},
	}
	for _, c := range cases {
		got, err := base.ApplyOverrides(c.in)
		if !errors.Is(err, c.want) {
			t.Errorf("%q: err = %v, want %v", c.in, err, c.want)
		}
		if d := cmp.Diff(base, got); d != "" {
			t.Errorf("%q: config changed on error:\n%s", c.in, d)
		}
	}
	if _, err := base.ApplyOverrides("detail"); err == nil {
		t.Error("bare key accepted")
	}
	if _, err := base.ApplyOverrides("max_steps=ten"); err == nil {
		t.Error("non-numeric value accepted")
	}
}

func TestOverridesRoundTrip(t *testing.T) {
	c := Default()
	c.Mode = lightning.ModeDualFront
	c.Seed = 12345
	c.DualFront.ConnectThreshold = 3.5
	got, err := Default().ApplyOverrides(c.Overrides())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(c, got); d != "" {
		t.Error(d)
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	if len(keys) != len(setters) {
		t.Fatalf("got %d keys", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted at %d: %v", i, keys)
		}
	}
}

func TestGenerateSeeded(t *testing.T) {
	c := Default()
	a, err := c.Generate(21)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Generate(21)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("same seed, different bolts:\n%s", d)
	}
	if a.Start.Y != c.Bounds.MaxY || a.End.Y != c.Bounds.MinY {
		t.Errorf("endpoints %v %v not on top/bottom edges", a.Start, a.End)
	}

	df, err := c.GenerateMode(21, lightning.ModeDualFront)
	if err != nil {
		t.Fatal(err)
	}
	if df.Start != a.Start || df.End != a.End {
		t.Error("switching mode moved the endpoints")
	}
}
