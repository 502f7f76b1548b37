package game

import (
	"math"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

const (
	// panelWidth is the notification history panel on the right edge. It is
	// dropped when the window is narrower than minPanelWindow.
	panelWidth     = 300
	minPanelWindow = 720

	buttonH    = 32
	buttonGap  = 8
	margin     = 16
	bannerH    = 40
	bannerMaxW = 520
	closeSize  = 24
	droneSize  = 56

	// hoverScale enlarges a zone under the cursor.
	hoverScale = 1.05
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x,y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the centre point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale grows or shrinks r about its centre.
func (r Rect) Scale(f float64) Rect {
	cx, cy := r.Center()
	w, h := r.W*f, r.H*f
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// zoneFractions places each zone relative to the terrain area.
var zoneFractions = map[view.ZoneKind]Rect{
	view.ZoneSafe:     {X: 0.10, Y: 0.30, W: 0.22, H: 0.26},
	view.ZoneWarning:  {X: 0.40, Y: 0.48, W: 0.20, H: 0.22},
	view.ZoneCritical: {X: 0.66, Y: 0.24, W: 0.20, H: 0.28},
}

// Layout is the screen geometry for one window size.
type Layout struct {
	Width, Height int

	Terrain      Rect
	Panel        Rect // zero when hidden
	ToggleButton Rect
	ResetButton  Rect
	Zones        map[view.ZoneKind]Rect
	Banner       Rect
	BannerClose  Rect
	DroneHome    Rect // where the drone hovers once it has arrived
}

// ComputeLayout lays the widget out for a w×h window.
func ComputeLayout(w, h int) Layout {
	w, h = max(w, 1), max(h, 1)
	l := Layout{Width: w, Height: h, Zones: make(map[view.ZoneKind]Rect, len(view.AllZones))}

	tw := float64(w)
	if w >= minPanelWindow {
		tw -= panelWidth
		l.Panel = Rect{X: tw, Y: 0, W: panelWidth, H: float64(h)}
	}
	th := float64(h)
	l.Terrain = Rect{W: tw, H: th}

	l.ToggleButton = Rect{X: margin, Y: margin, W: 140, H: buttonH}
	l.ResetButton = Rect{X: margin + 140 + buttonGap, Y: margin, W: 120, H: buttonH}

	for z, f := range zoneFractions {
		l.Zones[z] = Rect{X: f.X * tw, Y: f.Y * th, W: f.W * tw, H: f.H * th}
	}

	bw := math.Min(bannerMaxW, tw-2*margin)
	l.Banner = Rect{X: (tw - bw) / 2, Y: th - bannerH - margin, W: bw, H: bannerH}
	l.BannerClose = Rect{
		X: l.Banner.X + l.Banner.W - closeSize - 8,
		Y: l.Banner.Y + (bannerH-closeSize)/2,
		W: closeSize,
		H: closeSize,
	}

	l.DroneHome = Rect{X: tw/2 - droneSize/2, Y: th*0.15 - droneSize/2 + buttonH, W: droneSize, H: droneSize}
	return l
}

// TerrainSize returns the terrain area in whole pixels.
func (l Layout) TerrainSize() (int, int) {
	return int(l.Terrain.W), int(l.Terrain.H)
}

// DroneAt returns the drone's rectangle for entry progress p in [0,1]. The
// drone flies in from above the left edge and eases out onto DroneHome.
func (l Layout) DroneAt(p float64) Rect {
	if p >= 1 {
		return l.DroneHome
	}
	p = math.Max(0, p)
	e := 1 - math.Pow(1-p, 3)
	startX := -droneSize * 1.5
	startY := -droneSize * 1.5
	r := l.DroneHome
	r.X = startX + (l.DroneHome.X-startX)*e
	r.Y = startY + (l.DroneHome.Y-startY)*e
	return r
}

// Target identifies a clickable thing.
type Target int

const (
	TargetNone Target = iota
	TargetToggle
	TargetReset
	TargetZone
	TargetBannerClose
)

// Hit is the result of a hit test. Zone is set only for TargetZone.
type Hit struct {
	Target Target
	Zone   view.ZoneKind
}

// HitTest finds what lies under (x,y). Topmost first: banner close box,
// buttons, then zones. Zones are only hittable while the overlay is visible.
func (l Layout) HitTest(x, y float64, overlayVisible, bannerVisible bool) Hit {
	if bannerVisible && l.BannerClose.Contains(x, y) {
		return Hit{Target: TargetBannerClose}
	}
	if l.ToggleButton.Contains(x, y) {
		return Hit{Target: TargetToggle}
	}
	if l.ResetButton.Contains(x, y) {
		return Hit{Target: TargetReset}
	}
	if !overlayVisible || !l.Terrain.Contains(x, y) {
		return Hit{}
	}
	for _, z := range view.AllZones {
		if l.Zones[z].Contains(x, y) {
			return Hit{Target: TargetZone, Zone: z}
		}
	}
	return Hit{}
}

// sizeTracker collapses bursts of window resizes into one re-render for the
// latest size.
type sizeTracker struct {
	latestW, latestH     int
	renderedW, renderedH int
}

// Observe records the latest window size. Non-positive sizes (a minimised
// window) are ignored.
func (s *sizeTracker) Observe(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.latestW, s.latestH = w, h
}

// Due returns the latest size if it differs from the last rendered one and
// marks it rendered.
func (s *sizeTracker) Due() (int, int, bool) {
	if s.latestW == 0 || (s.latestW == s.renderedW && s.latestH == s.renderedH) {
		return 0, 0, false
	}
	s.renderedW, s.renderedH = s.latestW, s.latestH
	return s.latestW, s.latestH, true
}
