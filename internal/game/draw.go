package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

var (
	windowBg      = color.RGBA{R: 24, G: 32, B: 40, A: 255}
	buttonFill    = color.RGBA{R: 52, G: 152, B: 219, A: 230}
	buttonEdge    = color.RGBA{R: 236, G: 240, B: 241, A: 200}
	bannerSuccess = color.RGBA{R: 39, G: 174, B: 96, A: 235}
	bannerError   = color.RGBA{R: 192, G: 57, B: 43, A: 235}
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	droneBody     = color.RGBA{R: 236, G: 240, B: 241, A: 255}
	droneArm      = color.RGBA{R: 149, G: 165, B: 166, A: 255}
	droneRotor    = color.RGBA{R: 52, G: 73, B: 94, A: 220}
	droneLight    = color.RGBA{R: 231, G: 76, B: 60, A: 255}
)

// Draw renders terrain, overlay, controls, drone, banner, history and legend.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(windowBg)

	a.drawTerrain(screen)
	if a.overlay.visible {
		a.drawZones(screen)
	}
	a.drawButton(screen, a.layout.ToggleButton, a.toggle.text)
	a.drawButton(screen, a.layout.ResetButton, "Reset View")
	a.drawDrone(screen)
	a.drawBanner(screen)
	drawHistoryPanel(screen, a.layout.Panel, a.banner.History().Recent())
	if a.showHUD {
		a.drawLegend(screen)
	}
}

func (a *App) drawTerrain(screen *ebiten.Image) {
	if a.terrainImg == nil {
		return
	}
	screen.DrawImage(a.terrainImg, &ebiten.DrawImageOptions{})

	// The pulse brightens the surface and fades out.
	if a.pulse.Active() {
		p := a.pulse.Progress()
		alpha := uint8(70 * math.Sin(p*math.Pi))
		t := a.layout.Terrain
		vector.FillRect(screen, float32(t.X), float32(t.Y), float32(t.W), float32(t.H),
			color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}, false)
	}
}

func (a *App) drawZones(screen *ebiten.Image) {
	for _, z := range view.AllZones {
		w := a.zones[z]
		r := a.layout.Zones[z]
		if w.hovered {
			r = r.Scale(hoverScale)
		}
		c := w.kind.Color()
		fillA := uint8(70)
		if w.emphasized {
			fillA = 140
		}
		// premultiplied fill
		fill := color.RGBA{
			R: uint8(uint16(c.R) * uint16(fillA) / 255),
			G: uint8(uint16(c.G) * uint16(fillA) / 255),
			B: uint8(uint16(c.B) * uint16(fillA) / 255),
			A: fillA,
		}
		x, y, ww, hh := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.FillRect(screen, x, y, ww, hh, fill, false)
		edge := float32(2)
		if w.emphasized {
			edge = 4
			vector.StrokeRect(screen, x-3, y-3, ww+6, hh+6, 1, textColor, true)
		}
		vector.StrokeRect(screen, x, y, ww, hh, edge, c, true)

		cx, cy := r.Center()
		drawCentered(screen, z.Label(), a.fonts.ui, cx, cy)
	}
}

func (a *App) drawButton(screen *ebiten.Image, r Rect, label string) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, h, buttonFill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonEdge, true)
	cx, cy := r.Center()
	drawCentered(screen, label, a.fonts.ui, cx, cy)
}

func (a *App) drawDrone(screen *ebiten.Image) {
	if a.intro.Phase() == view.IntroHidden {
		return
	}
	r := a.layout.DroneAt(a.intro.Progress())
	cx, cy := r.Center()
	x, y := float32(cx), float32(cy)
	arm := float32(r.W) * 0.36
	rotor := float32(r.W) * 0.16

	// Hover bob once in position.
	if a.intro.Phase() == view.IntroArrived {
		y += float32(2 * math.Sin(a.clock.Now().Seconds()*3))
	}

	for _, d := range [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		ex, ey := x+d[0]*arm, y+d[1]*arm
		vector.StrokeLine(screen, x, y, ex, ey, 3, droneArm, true)
		vector.FillCircle(screen, ex, ey, rotor, droneRotor, true)
		vector.StrokeCircle(screen, ex, ey, rotor, 1, droneArm, true)
	}
	vector.FillCircle(screen, x, y, float32(r.W)*0.18, droneBody, true)
	vector.FillCircle(screen, x, y, 3, droneLight, true)
}

func (a *App) drawBanner(screen *ebiten.Image) {
	n, ok := a.banner.Current()
	if !ok {
		return
	}
	r := a.layout.Banner
	bg := bannerSuccess
	if n.Kind == view.KindError {
		bg = bannerError
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonEdge, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+12, r.Y+r.H/2)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, truncate(n.Text(), 60), a.fonts.banner, op)

	c := a.layout.BannerClose
	cx, cy := c.Center()
	d := float32(c.W) * 0.3
	vector.StrokeLine(screen, float32(cx)-d, float32(cy)-d, float32(cx)+d, float32(cy)+d, 2, textColor, true)
	vector.StrokeLine(screen, float32(cx)-d, float32(cy)+d, float32(cx)+d, float32(cy)-d, 2, textColor, true)
}

func (a *App) drawLegend(screen *ebiten.Image) {
	lines := []string{
		"[O] toggle overlay  [R] reset view",
		"[1/2/3] select zone  [X] dismiss",
		"[C] copy status  [H] hide legend",
	}
	const lineH = 14
	const charW = 6
	const pad = 6

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	bw := float32(maxLen*charW + pad*2)
	bh := float32(len(lines)*lineH + pad*2)
	bx := float32(margin)
	by := float32(a.layout.Banner.Y) - bh - 8

	vector.FillRect(screen, bx, by, bw, bh, color.RGBA{R: 12, G: 18, B: 24, A: 200}, false)
	vector.StrokeRect(screen, bx, by, bw, bh, 1, panelEdge, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(bx)+pad, int(by)+pad+i*lineH)
	}
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, cx, cy float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, face, op)
}
