package terrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constRand always returns v.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func TestGenerate_CountsAndBounds(t *testing.T) {
	sizes := [][2]int{{800, 600}, {1, 1}, {0, 0}, {1920, 40}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			sc := Generate(rng, sz[0], sz[1])
			require.NoError(t, sc.Validate(), "size=%v seed=%d", sz, seed)
			assert.Len(t, sc.Lines, LineCount)
			assert.Len(t, sc.Blobs, BlobCount)
		}
	}
}

func TestGenerate_RangeExtremes(t *testing.T) {
	lo := Generate(constRand(0), 100, 100)
	assert.Equal(t, Line{Start: Point{}, Length: 20, Jitter: -15}, lo.Lines[0])
	assert.Equal(t, Blob{Center: Point{}, Radius: 10, Intensity: 0}, lo.Blobs[0])

	hi := Generate(constRand(0.999), 100, 100)
	require.NoError(t, hi.Validate())
	assert.InDelta(t, 69.95, hi.Lines[0].Length, 1e-9)
	assert.InDelta(t, 14.97, hi.Lines[0].Jitter, 1e-9)
	assert.InDelta(t, 49.96, hi.Blobs[0].Radius, 1e-9)
}

func TestGenerate_SameSeedSameScene(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)), 640, 480)
	b := Generate(rand.New(rand.NewSource(7)), 640, 480)
	assert.Equal(t, a, b)
}

func TestLineEnd(t *testing.T) {
	l := Line{Start: Point{X: 10, Y: 20}, Length: 30, Jitter: -5}
	assert.Equal(t, Point{X: 40, Y: 15}, l.End())
}

func TestBlobColours(t *testing.T) {
	b := Blob{Intensity: 0.5}
	in := b.InnerColor()
	assert.Equal(t, uint8(80), in.R)
	assert.Equal(t, uint8(150), in.G)
	assert.Equal(t, uint8(64), in.A) // 0.25 * 255
	out := b.OuterColor()
	assert.Equal(t, uint8(100), out.G)
	assert.Zero(t, out.A)

	zero := Blob{}.InnerColor()
	assert.Equal(t, uint8(100), zero.G)
	assert.Equal(t, uint8(26), zero.A)
}

func TestValidate_RejectsBadScenes(t *testing.T) {
	sc := Generate(rand.New(rand.NewSource(3)), 200, 100)
	sc.Lines = sc.Lines[:10]
	assert.Error(t, sc.Validate())

	sc = Generate(rand.New(rand.NewSource(3)), 200, 100)
	sc.Blobs[4].Center.X = 500
	assert.ErrorContains(t, sc.Validate(), "blob 4")
}

func TestSummary(t *testing.T) {
	sc := Generate(constRand(0), 10, 20)
	assert.Equal(t, "10x20 lines=50 avg_len=20.0 blobs=30 avg_radius=10.0 avg_intensity=0.00", sc.Summary())
}
