// Package harness runs the survey widget headlessly: the controller, banner,
// scheduler and terrain raster wired to recording element handles. It mirrors
// the window's Update loop but has no Ebiten dependency, so tests and the
// headless report can drive it deterministically.
package harness

import (
	"io"
	"log/slog"
	"time"

	"github.com/Garsondee/Drone-Survey/internal/schedule"
	"github.com/Garsondee/Drone-Survey/internal/terrain"
	"github.com/Garsondee/Drone-Survey/internal/view"
)

// Harness is a headless survey widget.
type Harness struct {
	Width  int
	Height int
	Log    *EventLog

	clock    *schedule.Scheduler
	banner   *view.Banner
	ctrl     *view.Controller
	intro    *view.Intro
	pulse    *view.Pulse
	renderer *terrain.Renderer
	raster   *terrain.Raster
	scene    terrain.Scene
	renders  int

	overlay *overlayHandle
	toggle  *labelHandle
	zones   map[view.ZoneKind]*zoneHandle

	detached map[string]bool

	// construction settings
	seed          int64
	logger        *slog.Logger
	successTTL    time.Duration
	errorTTL      time.Duration
	historySize   int
	entryDelay    time.Duration
	entryDuration time.Duration
	replayDelay   time.Duration
	pulseDuration time.Duration
}

// Option configures a Harness.
type Option func(*Harness)

// WithSize sets the terrain size.
func WithSize(w, h int) Option {
	return func(hs *Harness) {
		hs.Width = w
		hs.Height = h
	}
}

// WithSeed makes terrain generation deterministic.
func WithSeed(seed int64) Option {
	return func(hs *Harness) { hs.seed = seed }
}

// WithLogger routes controller faults to l.
func WithLogger(l *slog.Logger) Option {
	return func(hs *Harness) { hs.logger = l }
}

// WithTTL overrides the notification lifetimes.
func WithTTL(success, failure time.Duration) Option {
	return func(hs *Harness) {
		hs.successTTL = success
		hs.errorTTL = failure
	}
}

// WithHistory sets the banner history capacity.
func WithHistory(size int) Option {
	return func(hs *Harness) { hs.historySize = size }
}

// WithAnimation overrides the drone and pulse timings. Zero keeps a default.
func WithAnimation(entryDelay, entryDuration, replayDelay, pulse time.Duration) Option {
	return func(hs *Harness) {
		hs.entryDelay = entryDelay
		hs.entryDuration = entryDuration
		hs.replayDelay = replayDelay
		hs.pulseDuration = pulse
	}
}

// WithDetached starts with the named elements missing, so calls on them fail.
func WithDetached(names ...string) Option {
	return func(hs *Harness) {
		for _, n := range names {
			hs.detached[n] = true
		}
	}
}

// New builds a harness. Nothing is drawn or announced until Start.
func New(opts ...Option) (*Harness, error) {
	h := &Harness{
		Width:    800,
		Height:   600,
		Log:      &EventLog{},
		clock:    schedule.New(),
		detached: map[string]bool{},
		seed:     1,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(h)
	}

	h.renderer = terrain.NewSeededRenderer(h.seed)
	h.raster = terrain.NewRaster(0, 0)
	h.banner = view.NewBanner(h.clock, view.WithHistory(view.NewHistory(h.historySize)))
	h.intro = view.NewIntro(h.clock, func(msg string) { h.ctrl.Success(msg) },
		view.WithIntroTimings(h.entryDelay, h.entryDuration, h.replayDelay))
	h.pulse = view.NewPulse(h.clock, h.pulseDuration)

	h.overlay = &overlayHandle{h: h, visible: true}
	h.toggle = &labelHandle{h: h, text: view.LabelHideOverlay}
	h.zones = map[view.ZoneKind]*zoneHandle{}
	zones := map[view.ZoneKind]view.Zone{}
	for _, z := range view.AllZones {
		zh := &zoneHandle{h: h, kind: z}
		h.zones[z] = zh
		zones[z] = zh
	}

	ctrl, err := view.NewController(view.Elements{
		Overlay:      h.overlay,
		ToggleButton: h.toggle,
		Zones:        zones,
		Drone:        &droneHandle{h: h, intro: h.intro},
		Terrain:      &terrainHandle{h: h, pulse: h.pulse},
	}, recordingNotifier{h: h, banner: h.banner},
		view.WithLogger(h.logger),
		view.WithTTL(h.successTTL, h.errorTTL),
	)
	if err != nil {
		return nil, err
	}
	h.ctrl = ctrl
	return h, nil
}

// Start runs the startup sequence: render the terrain, stage the intro,
// announce readiness.
func (h *Harness) Start() {
	h.ctrl.Initialize(h.render, h.intro)
}

// Run applies one command.
func (h *Harness) Run(cmd view.Command) {
	h.record("command", "run", cmd.String())
	h.ctrl.Dispatch(cmd)
}

// Step is the observable result of one scripted command.
type Step struct {
	Command      view.Command
	Snapshot     Snapshot
	Notification view.Notification // last notification the command produced
	Notified     bool
}

// RunScript parses a comma-separated script and runs each command, advancing
// the clock by gap after each one. Parse errors stop before anything runs.
func (h *Harness) RunScript(script string, gap time.Duration) ([]Step, error) {
	cmds, err := view.ParseScript(script)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(cmds))
	for _, cmd := range cmds {
		mark := h.Log.Len()
		h.Run(cmd)
		st := Step{Command: cmd}
		for _, e := range h.Log.Since(mark) {
			if e.Category != "notify" {
				continue
			}
			kind := view.KindSuccess
			if e.Key == "error" {
				kind = view.KindError
			}
			st.Notification = view.Notification{Kind: kind, Message: e.Value}
			st.Notified = true
		}
		st.Snapshot = h.Snapshot()
		steps = append(steps, st)
		h.Advance(gap)
	}
	return steps, nil
}

// Advance moves the clock forward, firing due timers.
func (h *Harness) Advance(d time.Duration) {
	h.clock.Advance(d)
}

// Now returns elapsed scheduler time.
func (h *Harness) Now() time.Duration {
	return h.clock.Now()
}

// Resize re-renders the terrain at the new size. Success is silent.
func (h *Harness) Resize(w, hgt int) bool {
	h.Width, h.Height = w, hgt
	return h.ctrl.Redraw(h.render)
}

// Detach makes the named element fail from now on.
func (h *Harness) Detach(name string) {
	h.detached[name] = true
}

// Attach restores a detached element.
func (h *Harness) Attach(name string) {
	delete(h.detached, name)
}

// Dismiss closes the banner.
func (h *Harness) Dismiss() {
	h.banner.Dismiss()
}

// History returns shown notifications, oldest first.
func (h *Harness) History() []view.HistoryEntry {
	return h.banner.History().Recent()
}

// Raster exposes the terrain raster.
func (h *Harness) Raster() *terrain.Raster {
	return h.raster
}

// Scene returns the most recently rendered scene.
func (h *Harness) Scene() terrain.Scene {
	return h.scene
}

// Renders counts successful terrain renders.
func (h *Harness) Renders() int {
	return h.renders
}

func (h *Harness) surface() terrain.Surface {
	if h.detached[ElemTerrain] {
		return nil
	}
	return h.raster
}

func (h *Harness) render() error {
	sc, err := h.renderer.Render(h.surface(), h.Width, h.Height)
	if err != nil {
		return err
	}
	h.scene = sc
	h.renders++
	h.record("terrain", "render", sc.Summary())
	return nil
}

func (h *Harness) check(name string) error {
	if h.detached[name] {
		return &view.MissingElementError{Name: name}
	}
	return nil
}

func (h *Harness) record(category, key, value string) {
	h.Log.Add(h.clock.Now(), category, key, value)
}
