package view

import (
	"fmt"
	"log/slog"
	"time"
)

// Controller owns the State and applies user commands to it. Every public
// operation is guarded: faults become Error notifications and never escape.
type Controller struct {
	state  State
	el     Elements
	notify Notifier
	log    *slog.Logger

	successTTL time.Duration
	errorTTL   time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for faults.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTTL overrides the notification lifetimes.
func WithTTL(success, failure time.Duration) Option {
	return func(c *Controller) {
		if success > 0 {
			c.successTTL = success
		}
		if failure > 0 {
			c.errorTTL = failure
		}
	}
}

// NewController validates the element handles and returns a controller in
// the initial state. The visuals are not touched until the first command.
func NewController(el Elements, n Notifier, opts ...Option) (*Controller, error) {
	if err := el.Validate(); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &MissingElementError{Name: "errorContainer"}
	}
	c := &Controller{
		state:      InitialState(),
		el:         el,
		notify:     n,
		log:        slog.Default(),
		successTTL: DefaultSuccessTTL,
		errorTTL:   DefaultErrorTTL,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// ToggleOverlay flips overlay visibility.
func (c *Controller) ToggleOverlay() {
	c.guard("Failed to toggle overlay", func() error {
		next := !c.state.OverlayVisible
		if err := c.applyOverlay(next); err != nil {
			return err
		}
		c.state.OverlayVisible = next
		if next {
			c.Success("Overlay shown")
		} else {
			c.Success("Overlay hidden")
		}
		return nil
	})
}

// ResetView restores the initial state, replays the drone entry and pulses
// the terrain.
func (c *Controller) ResetView() {
	c.guard("Failed to reset view", func() error {
		if err := c.applyOverlay(true); err != nil {
			return err
		}
		if err := c.emphasize(ZoneNone); err != nil {
			return err
		}
		if err := c.el.Drone.ReplayEntry(); err != nil {
			return fmt.Errorf("drone: %w", err)
		}
		if err := c.el.Terrain.Pulse(); err != nil {
			return fmt.Errorf("satellite view: %w", err)
		}
		c.state = InitialState()
		c.Success("View reset successfully")
		return nil
	})
}

// SelectZone makes z the single emphasized zone.
func (c *Controller) SelectZone(z ZoneKind) {
	c.guard("Error handling overlay click", func() error {
		if !z.Valid() {
			return fmt.Errorf("%w: %d", ErrUnknownZone, int(z))
		}
		if err := c.emphasize(z); err != nil {
			return err
		}
		c.state.SelectedZone = z
		c.Success("Selected zone: " + z.Label())
		return nil
	})
}

// Dispatch applies a parsed command.
func (c *Controller) Dispatch(cmd Command) {
	switch cmd.Kind {
	case CmdToggleOverlay:
		c.ToggleOverlay()
	case CmdResetView:
		c.ResetView()
	case CmdSelectZone:
		c.SelectZone(cmd.Zone)
	default:
		c.Failure("Failed to handle command", fmt.Errorf("%w: %d", ErrUnknownCommand, int(cmd.Kind)))
	}
}

// Success emits a Success notification.
func (c *Controller) Success(msg string) {
	c.send(Notification{Kind: KindSuccess, Message: msg, TTL: c.successTTL})
}

// Failure logs err and emits an Error notification "<prefix>: <err>".
func (c *Controller) Failure(prefix string, err error) {
	c.log.Error("application error", "op", prefix, "err", err)
	c.send(Notification{Kind: KindError, Message: prefix + ": " + err.Error(), TTL: c.errorTTL})
}

func (c *Controller) applyOverlay(visible bool) error {
	if err := c.el.Overlay.SetVisible(visible); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	if err := c.el.ToggleButton.SetText(ToggleLabel(visible)); err != nil {
		return fmt.Errorf("toggle button: %w", err)
	}
	return nil
}

// emphasize de-emphasizes every zone except sel. ZoneNone clears all.
func (c *Controller) emphasize(sel ZoneKind) error {
	for _, z := range AllZones {
		if z == sel {
			continue
		}
		if err := c.el.Zones[z].SetEmphasized(false); err != nil {
			return fmt.Errorf("%s zone: %w", z.Key(), err)
		}
	}
	if sel.Valid() {
		if err := c.el.Zones[sel].SetEmphasized(true); err != nil {
			return fmt.Errorf("%s zone: %w", sel.Key(), err)
		}
	}
	return nil
}

func (c *Controller) guard(prefix string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			c.Failure(prefix, err)
		}
	}()
	if err := fn(); err != nil {
		c.Failure(prefix, err)
	}
}

// send delivers n, swallowing a panicking notifier.
func (c *Controller) send(n Notification) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("error displaying message", "message", n.Message, "panic", r)
		}
	}()
	c.notify.Notify(n)
}
