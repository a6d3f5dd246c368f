package export

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"boltgen/internal/geom"
	"boltgen/internal/lightning"
	"boltgen/internal/palette"
)

// PNGOptions configures PNG rendering. Sizes are in output pixels.
type PNGOptions struct {
	Width      int
	Height     int
	Padding    int
	LineWidth  float64
	PathWidth  float64
	MarkerR    float64
	Background color.Color
}

func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:      480,
		Height:     640,
		Padding:    16,
		LineWidth:  1.5,
		PathWidth:  3,
		MarkerR:    6,
		Background: color.Black,
	}
}

// supersample is the render scale before downsampling.
const supersample = 4

type raster struct {
	img   *image.RGBA
	scale float64
	tr    func(geom.Point) (float64, float64)
}

// WritePNG renders the bolt at 4x and downsamples with Catmull-Rom.
func WritePNG(w io.Writer, bolt lightning.Bolt, opts PNGOptions) error {
	large := renderRaster(bolt, opts, supersample)
	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)
	return png.Encode(w, final)
}

func renderRaster(bolt lightning.Bolt, opts PNGOptions, scale int) *image.RGBA {
	W, H := opts.Width*scale, opts.Height*scale
	img := image.NewRGBA(image.Rect(0, 0, W, H))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	r := &raster{img: img, scale: float64(scale), tr: fitTransform(bolt.Bounds, W, H, opts.Padding*scale)}
	n := len(bolt.Segments)
	for i, seg := range bolt.Segments {
		r.line(seg.A, seg.B, opts.LineWidth, palette.RGBA(palette.Segment(seg, i, n)))
	}
	if len(bolt.Path) > 1 {
		pos := bolt.Path.Positions()
		for i := 1; i < len(bolt.Path); i++ {
			r.line(bolt.Path[i-1], bolt.Path[i], opts.PathWidth, palette.RGBA(palette.Path(pos[i], bolt.Connected)))
		}
	}
	r.disc(bolt.Start, opts.MarkerR, palette.RGBA(palette.Green))
	r.disc(bolt.End, opts.MarkerR, palette.RGBA(palette.Red))
	return img
}

// fitTransform maps canvas coordinates into a W x H image, preserving the
// aspect ratio and flipping y.
func fitTransform(b geom.Bounds, W, H, pad int) func(geom.Point) (float64, float64) {
	aw, ah := float64(W-2*pad), float64(H-2*pad)
	s := math.Min(aw/b.Width(), ah/b.Height())
	ox := float64(pad) + (aw-s*b.Width())/2
	oy := float64(pad) + (ah-s*b.Height())/2
	return func(p geom.Point) (float64, float64) {
		return ox + (p.X-b.MinX)*s, oy + (b.MaxY-p.Y)*s
	}
}

// line stamps a thick line by walking it and filling perpendicular offsets.
func (r *raster) line(a, b geom.Point, width float64, c color.Color) {
	x1, y1 := r.tr(a)
	x2, y2 := r.tr(b)
	half := width * r.scale / 2

	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		r.fillDisc(x1, y1, half, c)
		return
	}
	px, py := -dy/dist, dx/dist
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx, cy := x1+dx*t, y1+dy*t
		for off := -half; off <= half; off += 0.5 {
			r.img.Set(int(cx+px*off), int(cy+py*off), c)
		}
	}
}

func (r *raster) disc(p geom.Point, radius float64, c color.Color) {
	x, y := r.tr(p)
	r.fillDisc(x, y, radius*r.scale, c)
}

func (r *raster) fillDisc(cx, cy, radius float64, c color.Color) {
	r2 := radius * radius
	for y := math.Floor(cy - radius); y <= cy+radius; y++ {
		for x := math.Floor(cx - radius); x <= cx+radius; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r2 {
				r.img.Set(int(x), int(y), c)
			}
		}
	}
}
