package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

func TestComputeLayout_PanelOnlyWhenWide(t *testing.T) {
	wide := ComputeLayout(1280, 800)
	assert.Equal(t, float64(1280-panelWidth), wide.Terrain.W)
	assert.Equal(t, float64(panelWidth), wide.Panel.W)

	narrow := ComputeLayout(640, 480)
	assert.Equal(t, 640.0, narrow.Terrain.W)
	assert.Zero(t, narrow.Panel.W)

	w, h := narrow.TerrainSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestComputeLayout_ZonesInsideTerrain(t *testing.T) {
	for _, size := range [][2]int{{320, 240}, {1280, 800}, {1920, 1080}} {
		l := ComputeLayout(size[0], size[1])
		for _, z := range view.AllZones {
			r := l.Zones[z]
			assert.GreaterOrEqual(t, r.X, l.Terrain.X, "%v %v", size, z)
			assert.LessOrEqual(t, r.X+r.W, l.Terrain.X+l.Terrain.W, "%v %v", size, z)
			assert.LessOrEqual(t, r.Y+r.H, l.Terrain.Y+l.Terrain.H, "%v %v", size, z)
		}
	}
}

func TestHitTest(t *testing.T) {
	l := ComputeLayout(1280, 800)

	cx, cy := l.ToggleButton.Center()
	assert.Equal(t, Hit{Target: TargetToggle}, l.HitTest(cx, cy, true, false))

	cx, cy = l.ResetButton.Center()
	assert.Equal(t, Hit{Target: TargetReset}, l.HitTest(cx, cy, false, false))

	cx, cy = l.Zones[view.ZoneWarning].Center()
	assert.Equal(t, Hit{Target: TargetZone, Zone: view.ZoneWarning}, l.HitTest(cx, cy, true, false))
	assert.Equal(t, Hit{}, l.HitTest(cx, cy, false, false), "hidden overlay is not clickable")

	cx, cy = l.BannerClose.Center()
	assert.Equal(t, Hit{Target: TargetBannerClose}, l.HitTest(cx, cy, true, true))
	assert.NotEqual(t, TargetBannerClose, l.HitTest(cx, cy, true, false).Target)

	px, py := l.Panel.Center()
	assert.Equal(t, Hit{}, l.HitTest(px, py, true, true))
}

func TestRectScale(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}
	s := r.Scale(hoverScale)
	assert.InDelta(t, 105, s.W, 1e-9)
	assert.InDelta(t, 52.5, s.H, 1e-9)
	cx, cy := s.Center()
	ox, oy := r.Center()
	assert.InDelta(t, ox, cx, 1e-9)
	assert.InDelta(t, oy, cy, 1e-9)
	assert.True(t, r.Contains(10, 10))
	assert.False(t, r.Contains(110, 10))
}

func TestDroneAt(t *testing.T) {
	l := ComputeLayout(1280, 800)
	assert.Equal(t, l.DroneHome, l.DroneAt(1))
	assert.Equal(t, l.DroneHome, l.DroneAt(2), "progress is clamped")
	start := l.DroneAt(0)
	assert.Less(t, start.X+start.W, 0.0, "drone starts off screen")
	mid := l.DroneAt(0.5)
	assert.Greater(t, mid.X, start.X)
	assert.Less(t, mid.X, l.DroneHome.X)
}

func TestSizeTracker_CollapsesBursts(t *testing.T) {
	var s sizeTracker
	_, _, ok := s.Due()
	assert.False(t, ok)

	s.Observe(800, 600)
	w, h, ok := s.Due()
	assert.True(t, ok)
	assert.Equal(t, [2]int{800, 600}, [2]int{w, h})

	s.Observe(900, 600)
	s.Observe(1000, 700)
	s.Observe(0, 0)
	w, h, ok = s.Due()
	assert.True(t, ok)
	assert.Equal(t, [2]int{1000, 700}, [2]int{w, h}, "only the latest size renders")

	s.Observe(1000, 700)
	_, _, ok = s.Due()
	assert.False(t, ok, "same size does not re-render")
}
