package view

import (
	"fmt"
	"image/color"
	"strings"
)

// ZoneKind is one of the overlay's risk categories. The zero value means
// "no zone".
type ZoneKind int

const (
	ZoneNone ZoneKind = iota
	ZoneSafe
	ZoneWarning
	ZoneCritical
)

// AllZones lists the selectable zones in display order.
var AllZones = [...]ZoneKind{ZoneSafe, ZoneWarning, ZoneCritical}

var zoneKeys = map[ZoneKind]string{
	ZoneSafe:     "safe",
	ZoneWarning:  "warning",
	ZoneCritical: "critical",
}

var zoneLabels = map[ZoneKind]string{
	ZoneSafe:     "Safe (Green)",
	ZoneWarning:  "Warning (Yellow)",
	ZoneCritical: "Critical (Red)",
}

// zoneColors are the fill colours of each zone on the overlay.
var zoneColors = map[ZoneKind]color.RGBA{
	ZoneSafe:     {R: 46, G: 204, B: 113, A: 255},
	ZoneWarning:  {R: 241, G: 196, B: 15, A: 255},
	ZoneCritical: {R: 231, G: 76, B: 60, A: 255},
}

// Valid reports whether z is a selectable zone.
func (z ZoneKind) Valid() bool {
	_, ok := zoneKeys[z]
	return ok
}

// Key returns the short machine name ("safe", "warning", "critical").
func (z ZoneKind) Key() string {
	if k, ok := zoneKeys[z]; ok {
		return k
	}
	return "none"
}

// Label returns the human-readable name shown in notifications.
func (z ZoneKind) Label() string {
	if l, ok := zoneLabels[z]; ok {
		return l
	}
	return fmt.Sprintf("Unknown (%d)", int(z))
}

// Color returns the zone's display colour. Unknown zones are grey.
func (z ZoneKind) Color() color.RGBA {
	if c, ok := zoneColors[z]; ok {
		return c
	}
	return color.RGBA{R: 127, G: 140, B: 141, A: 255}
}

func (z ZoneKind) String() string {
	return z.Key()
}

// ParseZone accepts a zone key, case-insensitively.
func ParseZone(s string) (ZoneKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, z := range AllZones {
		if zoneKeys[z] == key {
			return z, nil
		}
	}
	return ZoneNone, fmt.Errorf("%w: %q", ErrUnknownZone, s)
}
