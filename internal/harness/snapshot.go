package harness

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Drone-Survey/internal/view"
)

// Snapshot captures what a user would see at one instant.
type Snapshot struct {
	State          view.State
	OverlayVisible bool   // as applied to the overlay element
	ToggleLabel    string // as applied to the toggle control
	Emphasized     []view.ZoneKind
	Banner         view.Notification
	BannerVisible  bool
	DronePhase     view.IntroPhase
	PulseActive    bool
}

// Snapshot returns the current observable state.
func (h *Harness) Snapshot() Snapshot {
	s := Snapshot{
		State:          h.ctrl.State(),
		OverlayVisible: h.overlay.visible,
		ToggleLabel:    h.toggle.text,
		DronePhase:     h.intro.Phase(),
		PulseActive:    h.pulse.Active(),
	}
	for _, z := range view.AllZones {
		if h.zones[z].emphasized {
			s.Emphasized = append(s.Emphasized, z)
		}
	}
	s.Banner, s.BannerVisible = h.banner.Current()
	return s
}

// String formats the snapshot on one line.
func (s Snapshot) String() string {
	var zones []string
	for _, z := range s.Emphasized {
		zones = append(zones, z.Key())
	}
	banner := "-"
	if s.BannerVisible {
		banner = s.Banner.Text()
	}
	return fmt.Sprintf("%s label=%q emphasized=[%s] drone=%s pulse=%t banner=%q",
		s.State, s.ToggleLabel, strings.Join(zones, ","), s.DronePhase, s.PulseActive, banner)
}
