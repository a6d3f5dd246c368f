package geom

import (
	"math"

	jgeom "github.com/jbeda/geom"
)

// Point is a canvas coordinate. It has no identity beyond its value.
type Point = jgeom.Coord

// Bounds is the axis-aligned canvas rectangle every generated point must satisfy.
type Bounds struct {
	MinX float64 `json:"xmin"`
	MaxX float64 `json:"xmax"`
	MinY float64 `json:"ymin"`
	MaxY float64 `json:"ymax"`
}

// Pt is shorthand for a Point literal.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Clamp bounds v to [lo, hi]. Callers must ensure lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return p1.DistanceFrom(p2)
}

// Lerp returns the point at t along a to b.
func Lerp(a, b Point, t float64) Point {
	return a.Plus(b.Minus(a).Times(t))
}

// Valid reports whether the rectangle has positive width and height.
func (b Bounds) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Clamp pulls p onto the rectangle, each axis independently.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: Clamp(p.X, b.MinX, b.MaxX), Y: Clamp(p.Y, b.MinY, b.MaxY)}
}

// Contains reports whether p lies inside or on the edge of the rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Rect converts the bounds to a geom.Rect.
func (b Bounds) Rect() jgeom.Rect {
	return jgeom.Rect{Min: Point{X: b.MinX, Y: b.MinY}, Max: Point{X: b.MaxX, Y: b.MaxY}}
}

// Extent returns the smallest rectangle containing all points.
func Extent(points []Point) (jgeom.Rect, bool) {
	if len(points) == 0 {
		return jgeom.Rect{}, false
	}
	r := jgeom.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p)
	}
	return r, true
}
