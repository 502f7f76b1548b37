package view

import (
	"io"
	"log/slog"
)

type fakeOverlay struct {
	visible bool
	err     error
}

func (f *fakeOverlay) SetVisible(v bool) error {
	if f.err != nil {
		return f.err
	}
	f.visible = v
	return nil
}

type fakeLabel struct {
	text string
	err  error
}

func (f *fakeLabel) SetText(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

type fakeZone struct {
	on    bool
	panic string
}

func (f *fakeZone) SetEmphasized(on bool) error {
	if f.panic != "" {
		panic(f.panic)
	}
	f.on = on
	return nil
}

type fakeDrone struct {
	replays int
	err     error
}

func (f *fakeDrone) ReplayEntry() error {
	if f.err != nil {
		return f.err
	}
	f.replays++
	return nil
}

type fakeSurface struct{ pulses int }

func (f *fakeSurface) Pulse() error {
	f.pulses++
	return nil
}

type fakes struct {
	overlay *fakeOverlay
	label   *fakeLabel
	zones   map[ZoneKind]*fakeZone
	drone   *fakeDrone
	terrain *fakeSurface
}

func newFakes() *fakes {
	f := &fakes{
		overlay: &fakeOverlay{visible: true},
		label:   &fakeLabel{text: LabelHideOverlay},
		zones:   map[ZoneKind]*fakeZone{},
		drone:   &fakeDrone{},
		terrain: &fakeSurface{},
	}
	for _, z := range AllZones {
		f.zones[z] = &fakeZone{}
	}
	return f
}

func (f *fakes) elements() Elements {
	zones := map[ZoneKind]Zone{}
	for k, z := range f.zones {
		zones[k] = z
	}
	return Elements{
		Overlay:      f.overlay,
		ToggleButton: f.label,
		Zones:        zones,
		Drone:        f.drone,
		Terrain:      f.terrain,
	}
}

func (f *fakes) emphasized() []ZoneKind {
	var out []ZoneKind
	for _, z := range AllZones {
		if f.zones[z].on {
			out = append(out, z)
		}
	}
	return out
}

type recorder struct {
	got []Notification
}

func (r *recorder) Notify(n Notification) {
	r.got = append(r.got, n)
}

func (r *recorder) last() Notification {
	if len(r.got) == 0 {
		return Notification{}
	}
	return r.got[len(r.got)-1]
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
