package harness

import (
	"strconv"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

// Element names accepted by Detach and WithDetached.
const (
	ElemOverlay = "overlay"
	ElemToggle  = "toggleOverlay"
	ElemDrone   = "drone"
	ElemTerrain = "satelliteView"
)

// ZoneElement returns the element name of a zone, e.g. "warningZone".
func ZoneElement(z view.ZoneKind) string {
	return z.Key() + "Zone"
}

// The handles record every call into the harness event log and fail with a
// MissingElementError while their element is detached.

type overlayHandle struct {
	h       *Harness
	visible bool
}

func (o *overlayHandle) SetVisible(v bool) error {
	if err := o.h.check(ElemOverlay); err != nil {
		return err
	}
	o.visible = v
	o.h.record("overlay", "visible", strconv.FormatBool(v))
	return nil
}

type labelHandle struct {
	h    *Harness
	text string
}

func (l *labelHandle) SetText(s string) error {
	if err := l.h.check(ElemToggle); err != nil {
		return err
	}
	if s != l.text {
		l.h.record("label", "text", s)
	}
	l.text = s
	return nil
}

type zoneHandle struct {
	h          *Harness
	kind       view.ZoneKind
	emphasized bool
}

func (z *zoneHandle) SetEmphasized(on bool) error {
	if err := z.h.check(ZoneElement(z.kind)); err != nil {
		return err
	}
	if on != z.emphasized {
		z.h.record("zone", z.kind.Key(), strconv.FormatBool(on))
	}
	z.emphasized = on
	return nil
}

type droneHandle struct {
	h     *Harness
	intro *view.Intro
}

func (d *droneHandle) ReplayEntry() error {
	if err := d.h.check(ElemDrone); err != nil {
		return err
	}
	d.h.record("drone", "replay", "")
	return d.intro.ReplayEntry()
}

type terrainHandle struct {
	h     *Harness
	pulse *view.Pulse
}

func (t *terrainHandle) Pulse() error {
	if err := t.h.check(ElemTerrain); err != nil {
		return err
	}
	t.h.record("terrain", "pulse", "")
	return t.pulse.Pulse()
}

// recordingNotifier logs notifications before handing them to the banner.
type recordingNotifier struct {
	h      *Harness
	banner *view.Banner
}

func (r recordingNotifier) Notify(n view.Notification) {
	key := "success"
	if n.Kind == view.KindError {
		key = "error"
	}
	r.h.record("notify", key, n.Message)
	r.banner.Notify(n)
}
