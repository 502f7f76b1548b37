package terrain

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for blob outlines.
const circleSegments = 64

// Raster is a Surface backed by an *image.RGBA and an anti-aliasing
// polygon rasterizer.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster creates a transparent w×h raster. Negative sizes become 0.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	_ = r.Resize(max(w, 0), max(h, 0))
	return r
}

// Image returns the backing image. It is replaced, not reused, by Resize.
func (r *Raster) Image() *image.RGBA {
	if r == nil {
		return nil
	}
	return r.img
}

// Size returns the current dimensions.
func (r *Raster) Size() (int, int) {
	if r == nil || r.img == nil {
		return 0, 0
	}
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize implements Surface. The new image starts fully transparent.
func (r *Raster) Resize(w, h int) error {
	if r == nil {
		return ErrSurfaceUnavailable
	}
	if w < 0 || h < 0 {
		return ErrInvalidSize
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.z = vector.NewRasterizer(w, h)
	return nil
}

func (r *Raster) empty() bool {
	return r.img == nil || r.img.Bounds().Empty()
}

// FillLinearGradient implements Surface by covering the whole raster.
func (r *Raster) FillLinearGradient(from, to Point, stops []Stop) {
	if r.empty() || len(stops) == 0 {
		return
	}
	src := &linearGradient{from: from, to: to, stops: stops}
	draw.Draw(r.img, r.img.Bounds(), src, image.Point{}, draw.Over)
}

// StrokeLine implements Surface with a butt-capped quad.
func (r *Raster) StrokeLine(from, to Point, width float64, c color.NRGBA) {
	if r.empty() || width <= 0 {
		return
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	w, h := r.Size()
	r.z.Reset(w, h)
	r.z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	r.z.LineTo(float32(to.X+nx), float32(to.Y+ny))
	r.z.LineTo(float32(to.X-nx), float32(to.Y-ny))
	r.z.LineTo(float32(from.X-nx), float32(from.Y-ny))
	r.z.ClosePath()
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// FillRadialGradient implements Surface: a disc filled with a gradient from
// inner at the centre to outer at the radius.
func (r *Raster) FillRadialGradient(center Point, radius float64, inner, outer color.NRGBA) {
	if r.empty() || radius <= 0 {
		return
	}
	w, h := r.Size()
	r.z.Reset(w, h)
	for i := 0; i < circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		x := float32(center.X + radius*math.Cos(a))
		y := float32(center.Y + radius*math.Sin(a))
		if i == 0 {
			r.z.MoveTo(x, y)
		} else {
			r.z.LineTo(x, y)
		}
	}
	r.z.ClosePath()
	src := &radialGradient{center: center, radius: radius, inner: inner, outer: outer}
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

// gradientBounds is effectively unbounded so draw never clips the source.
var gradientBounds = image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)

// linearGradient is an image.Image sampling a gradient along from→to.
type linearGradient struct {
	from, to Point
	stops    []Stop
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *linearGradient) Bounds() image.Rectangle { return gradientBounds }

func (g *linearGradient) At(x, y int) color.Color {
	dx, dy := g.to.X-g.from.X, g.to.Y-g.from.Y
	den := dx*dx + dy*dy
	t := 0.0
	if den > 0 {
		px, py := float64(x)+0.5-g.from.X, float64(y)+0.5-g.from.Y
		t = (px*dx + py*dy) / den
	}
	return sampleStops(g.stops, t)
}

// radialGradient is an image.Image fading from inner to outer with distance.
type radialGradient struct {
	center       Point
	radius       float64
	inner, outer color.NRGBA
}

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }
func (g *radialGradient) Bounds() image.Rectangle { return gradientBounds }

func (g *radialGradient) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-g.center.X, float64(y)+0.5-g.center.Y)
	return lerpColor(g.inner, g.outer, d/g.radius)
}

// sampleStops returns the colour at t, clamped to the first and last stop.
func sampleStops(stops []Stop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
