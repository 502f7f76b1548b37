// Package terrain generates and paints the decorative satellite backdrop:
// a diagonal slate gradient, a scatter of faint terrain strokes and green
// radial "vegetation" blobs.
package terrain

import (
	"fmt"
	"image/color"
	"math"
)

// Scene shape. Every render draws exactly LineCount lines and BlobCount blobs.
const (
	LineCount = 50
	BlobCount = 30

	minLineLength  = 20.0
	lineLengthSpan = 50.0 // length in [20, 70)
	lineJitter     = 15.0 // vertical jitter in [-15, 15)
	minBlobRadius  = 10.0
	blobRadiusSpan = 40.0 // radius in [10, 50)
)

// Rand is the random source a scene is drawn from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Line is one terrain stroke running rightwards from Start.
type Line struct {
	Start  Point
	Length float64
	Jitter float64 // vertical offset of the end point
}

// End returns the stroke's end point.
func (l Line) End() Point {
	return Point{X: l.Start.X + l.Length, Y: l.Start.Y + l.Jitter}
}

// Blob is a radial-gradient patch. Intensity in [0,1) drives the green
// channel and opacity.
type Blob struct {
	Center    Point
	Radius    float64
	Intensity float64
}

// InnerColor is the gradient colour at the blob centre.
func (b Blob) InnerColor() color.NRGBA {
	return color.NRGBA{
		R: 80,
		G: uint8(100 + math.Floor(b.Intensity*100)),
		B: 80,
		A: alpha(0.1 + b.Intensity*0.3),
	}
}

// OuterColor is the gradient colour at the blob edge (fully transparent).
func (b Blob) OuterColor() color.NRGBA {
	return color.NRGBA{R: 80, G: uint8(50 + math.Floor(b.Intensity*100)), B: 80, A: 0}
}

// Scene is one generated backdrop. It is regenerated on every render.
type Scene struct {
	Width  int
	Height int
	Lines  []Line
	Blobs  []Blob
}

// Generate draws a fresh scene for a w×h surface. Draw order per line is
// x, y, length, jitter; per blob x, y, radius, intensity.
func Generate(rng Rand, w, h int) Scene {
	fw, fh := float64(w), float64(h)
	sc := Scene{
		Width:  w,
		Height: h,
		Lines:  make([]Line, 0, LineCount),
		Blobs:  make([]Blob, 0, BlobCount),
	}
	for i := 0; i < LineCount; i++ {
		x := rng.Float64() * fw
		y := rng.Float64() * fh
		length := minLineLength + rng.Float64()*lineLengthSpan
		jitter := rng.Float64()*2*lineJitter - lineJitter
		sc.Lines = append(sc.Lines, Line{Start: Point{X: x, Y: y}, Length: length, Jitter: jitter})
	}
	for i := 0; i < BlobCount; i++ {
		x := rng.Float64() * fw
		y := rng.Float64() * fh
		radius := minBlobRadius + rng.Float64()*blobRadiusSpan
		intensity := rng.Float64()
		sc.Blobs = append(sc.Blobs, Blob{Center: Point{X: x, Y: y}, Radius: radius, Intensity: intensity})
	}
	return sc
}

// Validate checks primitive counts, origin bounds and parameter ranges.
func (sc Scene) Validate() error {
	if len(sc.Lines) != LineCount {
		return fmt.Errorf("scene has %d lines, want %d", len(sc.Lines), LineCount)
	}
	if len(sc.Blobs) != BlobCount {
		return fmt.Errorf("scene has %d blobs, want %d", len(sc.Blobs), BlobCount)
	}
	for i, l := range sc.Lines {
		if !sc.contains(l.Start) {
			return fmt.Errorf("line %d starts outside %dx%d at (%.1f,%.1f)", i, sc.Width, sc.Height, l.Start.X, l.Start.Y)
		}
		if l.Length < minLineLength || l.Length >= minLineLength+lineLengthSpan {
			return fmt.Errorf("line %d length %.2f out of range", i, l.Length)
		}
		if l.Jitter < -lineJitter || l.Jitter >= lineJitter {
			return fmt.Errorf("line %d jitter %.2f out of range", i, l.Jitter)
		}
	}
	for i, b := range sc.Blobs {
		if !sc.contains(b.Center) {
			return fmt.Errorf("blob %d centred outside %dx%d at (%.1f,%.1f)", i, sc.Width, sc.Height, b.Center.X, b.Center.Y)
		}
		if b.Radius < minBlobRadius || b.Radius >= minBlobRadius+blobRadiusSpan {
			return fmt.Errorf("blob %d radius %.2f out of range", i, b.Radius)
		}
		if b.Intensity < 0 || b.Intensity >= 1 {
			return fmt.Errorf("blob %d intensity %.3f out of range", i, b.Intensity)
		}
	}
	return nil
}

func (sc Scene) contains(p Point) bool {
	return p.X >= 0 && p.X <= float64(sc.Width) && p.Y >= 0 && p.Y <= float64(sc.Height)
}

// Summary formats aggregate scene statistics for reports.
func (sc Scene) Summary() string {
	var sumLen, sumRad, sumInt float64
	for _, l := range sc.Lines {
		sumLen += l.Length
	}
	for _, b := range sc.Blobs {
		sumRad += b.Radius
		sumInt += b.Intensity
	}
	avg := func(sum float64, n int) float64 {
		if n == 0 {
			return 0
		}
		return sum / float64(n)
	}
	return fmt.Sprintf("%dx%d lines=%d avg_len=%.1f blobs=%d avg_radius=%.1f avg_intensity=%.2f",
		sc.Width, sc.Height,
		len(sc.Lines), avg(sumLen, len(sc.Lines)),
		len(sc.Blobs), avg(sumRad, len(sc.Blobs)), avg(sumInt, len(sc.Blobs)))
}

func alpha(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}
