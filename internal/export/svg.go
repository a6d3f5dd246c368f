package export

import (
	"fmt"
	"io"
	"strings"

	jgeom "github.com/jbeda/geom"

	"boltgen/internal/geom"
	"boltgen/internal/lightning"
	"boltgen/internal/palette"
)

// SVGOptions configures SVG output.
type SVGOptions struct {
	StrokeWidth float64 // in canvas units
	PathWidth   float64
	MarkerR     float64
	Background  string // CSS color; empty for transparent
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{StrokeWidth: 0.8, PathWidth: 1.6, MarkerR: 2.5, Background: "#000000"}
}

// svgWriter accumulates the first write error so drawing calls stay terse.
type svgWriter struct {
	w   io.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(viewBox jgeom.Rect, extra string) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), extra)
}

func (s *svgWriter) end() { s.printf("</svg>\n") }

func (s *svgWriter) line(p1, p2 geom.Point, style string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='%s'/>\n", p1.X, p1.Y, p2.X, p2.Y, style)
}

func (s *svgWriter) circle(c geom.Point, r float64, style string) {
	s.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n", c.X, c.Y, r, style)
}

func (s *svgWriter) rect(r jgeom.Rect, style string) {
	s.printf("<rect x='%f' y='%f' width='%f' height='%f' style='%s'/>\n", r.Min.X, r.Min.Y, r.Width(), r.Height(), style)
}

// flipY maps canvas coordinates (y up) into SVG space (y down) inside the
// same rectangle.
func flipY(b geom.Bounds) func(geom.Point) geom.Point {
	return func(p geom.Point) geom.Point {
		return geom.Pt(p.X, b.MaxY+b.MinY-p.Y)
	}
}

// WriteSVG renders the bolt's segments, path and endpoint markers.
func WriteSVG(w io.Writer, bolt lightning.Bolt, opts SVGOptions) error {
	s := &svgWriter{w: w}
	tr := flipY(bolt.Bounds)
	vb := bolt.Bounds.Rect()

	s.start(vb, fmt.Sprintf("data-mode='%s' data-connected='%t'", bolt.Mode, bolt.Connected))
	if opts.Background != "" {
		s.rect(vb, "fill: "+opts.Background)
	}
	n := len(bolt.Segments)
	for i, seg := range bolt.Segments {
		c := palette.Segment(seg, i, n)
		s.line(tr(seg.A), tr(seg.B), fmt.Sprintf("stroke: %s; stroke-width: %g; stroke-linecap: round", c.Hex(), opts.StrokeWidth))
	}
	if len(bolt.Path) > 1 {
		pos := bolt.Path.Positions()
		for i := 1; i < len(bolt.Path); i++ {
			c := palette.Path(pos[i], bolt.Connected)
			style := fmt.Sprintf("stroke: %s; stroke-width: %g; stroke-linecap: round", c.Hex(), opts.PathWidth)
			if !bolt.Connected {
				style += "; stroke-dasharray: 2 1"
			}
			s.line(tr(bolt.Path[i-1]), tr(bolt.Path[i]), style)
		}
		s.pathOutline(bolt.Path, tr)
	}
	s.circle(tr(bolt.Start), opts.MarkerR, "fill: "+palette.Green.Hex())
	s.circle(tr(bolt.End), opts.MarkerR, "fill: "+palette.Red.Hex())
	s.end()
	return s.err
}

// pathOutline emits the assembled path as a single invisible <path> so
// consumers can pick it up by id.
func (s *svgWriter) pathOutline(p lightning.Path, tr func(geom.Point) geom.Point) {
	var sb strings.Builder
	for i, pt := range p {
		q := tr(pt)
		if i == 0 {
			fmt.Fprintf(&sb, "M%f,%f", q.X, q.Y)
			continue
		}
		fmt.Fprintf(&sb, " L%f,%f", q.X, q.Y)
	}
	s.printf("<path id='bolt-path' d='%s' style='fill: none; stroke: none'/>\n", sb.String())
}
