package tui

import (
	"fmt"
	"math"
	"strings"

	"boltgen/internal/geom"
	"boltgen/internal/lightning"
	"boltgen/internal/palette"
)

// scale returns micro-pixels per canvas unit for a w x h cell canvas,
// fitting the bounds without distorting them.
func (m Model) scale(w, h int) float64 {
	b := m.bolt.Bounds
	s := math.Min(float64(w*2-1)/b.Width(), float64(h*4-1)/b.Height())
	return s * m.zoom
}

// screenXYMicro maps canvas coordinates into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	b := m.bolt.Bounds
	if !b.Valid() {
		return 0, 0, false
	}
	s := m.scale(w, h)
	cx, cy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	sx := int(math.Round(float64(w*2)/2+(x-cx)*s)) + m.offsetX*2
	sy := int(math.Round(float64(h*4)/2-(y-cy)*s)) + m.offsetY*4
	return sx, sy, true
}

// cellToCanvas converts a canvas cell back to canvas coordinates.
func (m Model) cellToCanvas(cx, cy, w, h int) (float64, float64, bool) {
	b := m.bolt.Bounds
	if !b.Valid() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	s := m.scale(w, h)
	mx := float64(cx*2+1-m.offsetX*2) - float64(w*2)/2
	my := float64(cy*4+2-m.offsetY*4) - float64(h*4)/2
	return (b.MinX+b.MaxX)/2 + mx/s, (b.MinY+b.MaxY)/2 - my/s, true
}

func (m Model) drawSegment(br *brailleBuf, a, b geom.Point, col string, w, h int) {
	x0, y0, ok0 := m.screenXYMicro(a.X, a.Y, w, h)
	x1, y1, ok1 := m.screenXYMicro(b.X, b.Y, w, h)
	if !ok0 || !ok1 {
		return
	}
	br.drawLineMicro(x0, y0, x1, y1, col)
}

func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	b := m.bolt.Bounds
	if !b.Valid() {
		return strings.Repeat("\n", max(0, h-1))
	}

	// canvas frame
	corners := []geom.Point{geom.Pt(b.MinX, b.MinY), geom.Pt(b.MaxX, b.MinY), geom.Pt(b.MaxX, b.MaxY), geom.Pt(b.MinX, b.MaxY)}
	for i := range corners {
		m.drawSegment(br, corners[i], corners[(i+1)%len(corners)], string(borderCol), w, h)
	}

	n := len(m.bolt.Segments)
	for i := 0; i < m.revealed && i < n; i++ {
		s := m.bolt.Segments[i]
		m.drawSegment(br, s.A, s.B, palette.Segment(s, i, n).Hex(), w, h)
	}

	// the assembled path goes on top once growth has finished
	if m.done() && len(m.bolt.Path) > 1 {
		pos := m.bolt.Path.Positions()
		for i := 1; i < len(m.bolt.Path); i++ {
			col := palette.Path(pos[i], m.bolt.Connected).Hex()
			m.drawSegment(br, m.bolt.Path[i-1], m.bolt.Path[i], col, w, h)
		}
	}

	for _, mk := range []struct {
		p geom.Point
		s string
	}{{m.bolt.Start, startMarker}, {m.bolt.End, endMarker}} {
		if mx, my, ok := m.screenXYMicro(mk.p.X, mk.p.Y, w, h); ok && mx >= 0 && my >= 0 {
			br.setMark(mx/2, my/4, mk.s)
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// summary is the status line for a freshly generated bolt.
func summary(b lightning.Bolt, seed uint64) string {
	s := fmt.Sprintf("%s  seed=%d  segments=%d", b.Mode, seed, len(b.Segments))
	if b.Mode == lightning.ModeDualFront {
		s += fmt.Sprintf("  steps=%d  path=%d  connected=%v", b.Steps, len(b.Path), b.Connected)
	}
	return s
}
