package palette

import (
	"image/color"
	"testing"

	"boltgen/internal/lightning"
)

func TestGradientEnds(t *testing.T) {
	if got := Gradient(0).Hex(); got != Green.Hex() {
		t.Errorf("Gradient(0) = %s, want %s", got, Green.Hex())
	}
	if got := Gradient(1).Hex(); got != Red.Hex() {
		t.Errorf("Gradient(1) = %s, want %s", got, Red.Hex())
	}
	if Gradient(-3).Hex() != Gradient(0).Hex() || Gradient(7).Hex() != Gradient(1).Hex() {
		t.Error("Gradient does not clamp")
	}
}

func TestSegmentPosition(t *testing.T) {
	if SegmentPosition(0, 1) != 0 {
		t.Error("single segment should sit at 0")
	}
	if SegmentPosition(3, 5) != 0.75 {
		t.Errorf("SegmentPosition(3, 5) = %v", SegmentPosition(3, 5))
	}
}

func TestSegmentByOrigin(t *testing.T) {
	if Segment(lightning.Segment{Origin: lightning.OriginStart}, 0, 1) != Cyan {
		t.Error("start-origin segment not cyan")
	}
	if Segment(lightning.Segment{Origin: lightning.OriginEnd}, 0, 1) != Violet {
		t.Error("end-origin segment not violet")
	}
	if Segment(lightning.Segment{}, 4, 5).Hex() != Red.Hex() {
		t.Error("last midpoint segment should be red")
	}
}

func TestPathFallbackColor(t *testing.T) {
	if Path(0, false).Hex() != Amber.Hex() {
		t.Errorf("fallback path start = %s", Path(0, false).Hex())
	}
	if Path(0, true).Hex() != Green.Hex() {
		t.Errorf("connected path start = %s", Path(0, true).Hex())
	}
}

func TestRGBA(t *testing.T) {
	got := RGBA(mustHex("#102030"))
	if got != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("RGBA = %+v", got)
	}
}
