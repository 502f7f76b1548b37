package view

// The handles below are the visual anchors the controller drives. A handle
// may return an error (typically wrapping ErrMissingElement) when its
// element has gone away at call time.

// Overlay shows or hides the zone layer.
type Overlay interface {
	SetVisible(visible bool) error
}

// Label is a control whose caption can change.
type Label interface {
	SetText(text string) error
}

// Zone is one clickable zone region.
type Zone interface {
	SetEmphasized(on bool) error
}

// Drone is the animated drone icon.
type Drone interface {
	ReplayEntry() error
}

// Surface is the terrain backdrop.
type Surface interface {
	Pulse() error
}

// Elements bundles every handle the controller needs.
type Elements struct {
	Overlay      Overlay
	ToggleButton Label
	Zones        map[ZoneKind]Zone
	Drone        Drone
	Terrain      Surface
}

// Validate returns a *MissingElementError for the first absent handle.
func (e Elements) Validate() error {
	switch {
	case e.Overlay == nil:
		return &MissingElementError{Name: "overlay"}
	case e.ToggleButton == nil:
		return &MissingElementError{Name: "toggleOverlay"}
	case e.Drone == nil:
		return &MissingElementError{Name: "drone"}
	case e.Terrain == nil:
		return &MissingElementError{Name: "satelliteView"}
	}
	for _, z := range AllZones {
		if e.Zones[z] == nil {
			return &MissingElementError{Name: z.Key() + "Zone"}
		}
	}
	return nil
}
