package terrain

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface captures the sequence of draw calls.
type recordingSurface struct {
	ops       []string
	w, h      int
	resizeErr error
}

func (s *recordingSurface) Resize(w, h int) error {
	if s.resizeErr != nil {
		return s.resizeErr
	}
	s.ops = s.ops[:0]
	s.ops = append(s.ops, "resize")
	s.w, s.h = w, h
	return nil
}

func (s *recordingSurface) FillLinearGradient(from, to Point, stops []Stop) {
	s.ops = append(s.ops, "gradient")
}

func (s *recordingSurface) StrokeLine(from, to Point, width float64, c color.NRGBA) {
	s.ops = append(s.ops, "line")
}

func (s *recordingSurface) FillRadialGradient(center Point, radius float64, inner, outer color.NRGBA) {
	s.ops = append(s.ops, "blob")
}

func TestRender_DrawOrder(t *testing.T) {
	s := &recordingSurface{}
	r := NewRenderer(rand.New(rand.NewSource(1)))
	sc, err := r.Render(s, 320, 200)
	require.NoError(t, err)
	require.NoError(t, sc.Validate())

	require.Len(t, s.ops, 1+1+LineCount+BlobCount)
	assert.Equal(t, "resize", s.ops[0])
	assert.Equal(t, "gradient", s.ops[1])
	for _, op := range s.ops[2 : 2+LineCount] {
		assert.Equal(t, "line", op)
	}
	for _, op := range s.ops[2+LineCount:] {
		assert.Equal(t, "blob", op)
	}
	assert.Equal(t, 320, s.w)
	assert.Equal(t, 200, s.h)
}

func TestRender_SurfaceUnavailable(t *testing.T) {
	r := NewSeededRenderer(5)
	_, err := r.Render(nil, 10, 10)
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)

	var missing *Raster
	_, err = r.Render(missing, 10, 10)
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)

	_, err = r.Render(&recordingSurface{resizeErr: ErrSurfaceUnavailable}, 10, 10)
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
}

func TestRender_InvalidSize(t *testing.T) {
	_, err := NewSeededRenderer(5).Render(&recordingSurface{}, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewRenderer_NilRandIsUsable(t *testing.T) {
	sc, err := NewRenderer(nil).Render(&recordingSurface{}, 50, 50)
	require.NoError(t, err)
	assert.NoError(t, sc.Validate())
}
