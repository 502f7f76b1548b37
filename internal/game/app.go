// Package game is the desktop window of the drone survey widget. It owns the
// Ebiten loop and forwards input to the view controller; the state, the
// notifications and the terrain live in packages that have no Ebiten
// dependency.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Drone-Survey/internal/config"
	"github.com/Garsondee/Drone-Survey/internal/schedule"
	"github.com/Garsondee/Drone-Survey/internal/terrain"
	"github.com/Garsondee/Drone-Survey/internal/view"
)

// App implements ebiten.Game.
type App struct {
	log  *slog.Logger
	tick time.Duration

	clock    *schedule.Scheduler
	banner   *view.Banner
	ctrl     *view.Controller
	intro    *view.Intro
	pulse    *view.Pulse
	renderer *terrain.Renderer
	raster   *terrain.Raster
	scene    terrain.Scene

	// terrainImg is the GPU copy of raster, rebuilt after each render.
	terrainImg *ebiten.Image

	overlay *overlayWidget
	toggle  *buttonWidget
	zones   map[view.ZoneKind]*zoneWidget

	layout  Layout
	size    sizeTracker
	fonts   *fonts
	started bool
	showHUD bool

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// writeClipboard is clipboard.WriteAll outside tests.
	writeClipboard func(string) error
}

// New builds the window from cfg. Nothing is drawn until the first Update.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	a := &App{
		log:            log,
		tick:           cfg.TickDuration(),
		clock:          schedule.New(),
		renderer:       terrain.NewSeededRenderer(cfg.Terrain.Seed),
		raster:         terrain.NewRaster(0, 0),
		overlay:        &overlayWidget{visible: true},
		toggle:         &buttonWidget{text: view.LabelHideOverlay},
		zones:          make(map[view.ZoneKind]*zoneWidget, len(view.AllZones)),
		layout:         ComputeLayout(cfg.Window.Width, cfg.Window.Height),
		fonts:          f,
		showHUD:        true,
		prevKeys:       make(map[ebiten.Key]bool),
		writeClipboard: clipboard.WriteAll,
	}
	a.size.Observe(cfg.Window.Width, cfg.Window.Height)

	a.banner = view.NewBanner(a.clock, view.WithHistory(view.NewHistory(cfg.Notify.History)))
	a.intro = view.NewIntro(a.clock, func(msg string) { a.ctrl.Success(msg) },
		view.WithIntroTimings(cfg.Animation.EntryDelay, cfg.Animation.EntryDuration, cfg.Animation.ReplayDelay))
	a.pulse = view.NewPulse(a.clock, cfg.Animation.PulseDuration)

	zones := make(map[view.ZoneKind]view.Zone, len(view.AllZones))
	for _, z := range view.AllZones {
		w := &zoneWidget{kind: z}
		a.zones[z] = w
		zones[z] = w
	}
	a.ctrl, err = view.NewController(view.Elements{
		Overlay:      a.overlay,
		ToggleButton: a.toggle,
		Zones:        zones,
		Drone:        a.intro,
		Terrain:      a.pulse,
	}, a.banner,
		view.WithLogger(log),
		view.WithTTL(cfg.Notify.SuccessTTL, cfg.Notify.ErrorTTL),
	)
	if err != nil {
		return nil, fmt.Errorf("building controller: %w", err)
	}
	return a, nil
}

// Update advances one frame: input, pending resize, then timers.
func (a *App) Update() error {
	if w, h, ok := a.size.Due(); ok {
		a.layout = ComputeLayout(w, h)
		if a.started {
			a.ctrl.Redraw(a.render)
		}
	}
	if !a.started {
		a.started = true
		a.log.Info("starting survey view", "width", a.layout.Width, "height", a.layout.Height)
		a.ctrl.Initialize(a.render, a.intro)
	}

	a.handleInput()
	a.clock.Advance(a.tick)
	return nil
}

// Layout records the outside size and uses it as the screen size, so the
// widget always fills the window at 1:1 pixels.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.size.Observe(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// render paints a fresh scene for the current terrain area and uploads it.
func (a *App) render() error {
	w, h := a.layout.TerrainSize()
	sc, err := a.renderer.Render(a.raster, w, h)
	if err != nil {
		return err
	}
	a.scene = sc
	if a.terrainImg != nil {
		a.terrainImg.Deallocate()
		a.terrainImg = nil
	}
	if w > 0 && h > 0 {
		a.terrainImg = ebiten.NewImageFromImage(a.raster.Image())
	}
	a.log.Debug("terrain rendered", "summary", sc.Summary())
	return nil
}

// copyReport puts a status report on the clipboard.
func (a *App) copyReport() {
	report := statusReport(a.clock.Now(), a.ctrl.State(), a.intro.Phase(), a.scene, a.banner.History().Recent())
	if err := a.writeClipboard(report); err != nil {
		a.ctrl.Failure("Failed to copy status report", err)
		return
	}
	a.ctrl.Success("Status report copied to clipboard")
}
