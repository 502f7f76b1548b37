package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

// action is something the user asked for, by key or by click.
type action int

const (
	actNone action = iota
	actToggle
	actReset
	actZoneSafe
	actZoneWarning
	actZoneCritical
	actDismiss
	actCopy
	actLegend
)

// keyBindings are edge-triggered: an action fires once per key press.
var keyBindings = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyO, actToggle},
	{ebiten.KeyR, actReset},
	{ebiten.Key1, actZoneSafe},
	{ebiten.Key2, actZoneWarning},
	{ebiten.Key3, actZoneCritical},
	{ebiten.KeyX, actDismiss},
	{ebiten.KeyC, actCopy},
	{ebiten.KeyH, actLegend},
}

func zoneAction(z view.ZoneKind) action {
	switch z {
	case view.ZoneSafe:
		return actZoneSafe
	case view.ZoneWarning:
		return actZoneWarning
	case view.ZoneCritical:
		return actZoneCritical
	}
	return actNone
}

// hitAction maps a click target to an action.
func hitAction(h Hit) action {
	switch h.Target {
	case TargetToggle:
		return actToggle
	case TargetReset:
		return actReset
	case TargetZone:
		return zoneAction(h.Zone)
	case TargetBannerClose:
		return actDismiss
	}
	return actNone
}

// handleInput processes keys and the left mouse button (edge-triggered).
func (a *App) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(keyBindings))
	for _, b := range keyBindings {
		currentKeys[b.key] = ebiten.IsKeyPressed(b.key)
		if currentKeys[b.key] && !a.prevKeys[b.key] {
			a.apply(b.act)
		}
	}
	a.prevKeys = currentKeys

	mx, my := ebiten.CursorPosition()
	a.updateHover(float64(mx), float64(my))

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && !a.prevMouseLeft {
		_, bannerVisible := a.banner.Current()
		hit := a.layout.HitTest(float64(mx), float64(my), a.overlay.visible, bannerVisible)
		a.apply(hitAction(hit))
	}
	a.prevMouseLeft = pressed
}

// updateHover marks the zone under the cursor.
func (a *App) updateHover(x, y float64) {
	hit := a.layout.HitTest(x, y, a.overlay.visible, false)
	for z, w := range a.zones {
		w.hovered = hit.Target == TargetZone && hit.Zone == z
	}
}

func (a *App) apply(act action) {
	switch act {
	case actToggle:
		a.ctrl.ToggleOverlay()
	case actReset:
		a.ctrl.ResetView()
	case actZoneSafe:
		a.ctrl.SelectZone(view.ZoneSafe)
	case actZoneWarning:
		a.ctrl.SelectZone(view.ZoneWarning)
	case actZoneCritical:
		a.ctrl.SelectZone(view.ZoneCritical)
	case actDismiss:
		a.banner.Dismiss()
	case actCopy:
		a.copyReport()
	case actLegend:
		a.showHUD = !a.showHUD
	}
}
