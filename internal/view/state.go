// Package view holds the survey widget's view state and the controller that
// applies user commands to it.
package view

import "fmt"

// Toggle button captions.
const (
	LabelHideOverlay = "Hide Overlay"
	LabelShowOverlay = "Show Overlay"
)

// State is the whole mutable view state of the widget.
type State struct {
	OverlayVisible bool
	SelectedZone   ZoneKind // ZoneNone when nothing is selected
}

// InitialState is the state at startup and after a reset.
func InitialState() State {
	return State{OverlayVisible: true, SelectedZone: ZoneNone}
}

// Selected returns the selected zone, if any.
func (s State) Selected() (ZoneKind, bool) {
	return s.SelectedZone, s.SelectedZone.Valid()
}

func (s State) String() string {
	vis := "hidden"
	if s.OverlayVisible {
		vis = "visible"
	}
	return fmt.Sprintf("overlay=%s zone=%s", vis, s.SelectedZone.Key())
}

// ToggleLabel returns the caption the toggle control shows for the given
// overlay visibility.
func ToggleLabel(visible bool) string {
	if visible {
		return LabelHideOverlay
	}
	return LabelShowOverlay
}
