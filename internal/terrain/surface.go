package terrain

import (
	"errors"
	"image/color"
)

var (
	// ErrSurfaceUnavailable reports that no drawing surface could be obtained.
	ErrSurfaceUnavailable = errors.New("unable to get drawing surface")
	// ErrInvalidSize reports negative surface dimensions.
	ErrInvalidSize = errors.New("invalid surface size")
)

// Stop is one colour stop of a gradient, Offset in [0,1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Palette.
var (
	slateDark  = color.NRGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 255} // #2c3e50
	slateLight = color.NRGBA{R: 0x34, G: 0x49, B: 0x5e, A: 255} // #34495e

	// BackgroundStops is the corner-to-corner background ramp.
	BackgroundStops = []Stop{
		{Offset: 0, Color: slateDark},
		{Offset: 0.5, Color: slateLight},
		{Offset: 1, Color: slateDark},
	}

	// LineColor is the stroke colour of terrain lines, rgba(100,100,100,0.3).
	LineColor = color.NRGBA{R: 100, G: 100, B: 100, A: alpha(0.3)}
)

// LineWidth is the stroke width of terrain lines in pixels.
const LineWidth = 1.0

// Surface is a 2D drawing target. Resize must discard all previous content.
type Surface interface {
	Resize(w, h int) error
	FillLinearGradient(from, to Point, stops []Stop)
	StrokeLine(from, to Point, width float64, c color.NRGBA)
	FillRadialGradient(center Point, radius float64, inner, outer color.NRGBA)
}
