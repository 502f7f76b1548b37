package game

import "github.com/Garsondee/Drone-Survey/internal/view"

// The widgets hold what the controller last applied; Draw reads them every
// frame. They live for the whole window so their handles never go missing.

type overlayWidget struct {
	visible bool
}

func (o *overlayWidget) SetVisible(v bool) error {
	o.visible = v
	return nil
}

type buttonWidget struct {
	text string
}

func (b *buttonWidget) SetText(s string) error {
	b.text = s
	return nil
}

type zoneWidget struct {
	kind       view.ZoneKind
	emphasized bool
	hovered    bool
}

func (z *zoneWidget) SetEmphasized(on bool) error {
	z.emphasized = on
	return nil
}
