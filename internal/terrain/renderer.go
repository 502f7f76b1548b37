package terrain

import (
	"fmt"
	"math/rand"
	"time"
)

// Renderer paints freshly generated scenes onto surfaces.
type Renderer struct {
	rng Rand
}

// NewRenderer creates a renderer drawing from rng. A nil rng is replaced by a
// time-seeded source.
func NewRenderer(rng Rand) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- cosmetic only
	}
	return &Renderer{rng: rng}
}

// NewSeededRenderer creates a renderer with a deterministic source. Seed 0
// means "seed from the clock".
func NewSeededRenderer(seed int64) *Renderer {
	if seed == 0 {
		return NewRenderer(nil)
	}
	return NewRenderer(rand.New(rand.NewSource(seed))) // #nosec G404 -- cosmetic only
}

// Render generates a scene for w×h and paints it onto s, replacing whatever
// s held before. Failures are returned, never retried.
func (r *Renderer) Render(s Surface, w, h int) (Scene, error) {
	if s == nil {
		return Scene{}, ErrSurfaceUnavailable
	}
	if w < 0 || h < 0 {
		return Scene{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	sc := Generate(r.rng, w, h)
	if err := Paint(s, sc); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

// Paint clears s to the scene size and draws background, lines, then blobs.
func Paint(s Surface, sc Scene) error {
	if s == nil {
		return ErrSurfaceUnavailable
	}
	if err := s.Resize(sc.Width, sc.Height); err != nil {
		return err
	}
	s.FillLinearGradient(Point{}, Point{X: float64(sc.Width), Y: float64(sc.Height)}, BackgroundStops)
	for _, l := range sc.Lines {
		s.StrokeLine(l.Start, l.End(), LineWidth, LineColor)
	}
	for _, b := range sc.Blobs {
		s.FillRadialGradient(b.Center, b.Radius, b.InnerColor(), b.OuterColor())
	}
	return nil
}
