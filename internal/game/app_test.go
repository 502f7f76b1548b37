package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Drone-Survey/internal/config"
	"github.com/Garsondee/Drone-Survey/internal/logger"
	"github.com/Garsondee/Drone-Survey/internal/terrain"
	"github.com/Garsondee/Drone-Survey/internal/view"
)

func newTestApp(t *testing.T) (*App, *[]string) {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	a, err := New(cfg, logger.Discard())
	require.NoError(t, err)
	var copied []string
	a.writeClipboard = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return a, &copied
}

func TestApp_ActionsDriveController(t *testing.T) {
	a, _ := newTestApp(t)

	a.apply(actToggle)
	assert.False(t, a.overlay.visible)
	assert.Equal(t, view.LabelShowOverlay, a.toggle.text)

	a.apply(hitAction(Hit{Target: TargetZone, Zone: view.ZoneCritical}))
	assert.True(t, a.zones[view.ZoneCritical].emphasized)
	assert.Equal(t, view.ZoneCritical, a.ctrl.State().SelectedZone)

	a.apply(actReset)
	assert.True(t, a.overlay.visible)
	assert.False(t, a.zones[view.ZoneCritical].emphasized)
	assert.True(t, a.pulse.Active())
	n, ok := a.banner.Current()
	require.True(t, ok)
	assert.Equal(t, "View reset successfully", n.Message)

	a.apply(actDismiss)
	_, ok = a.banner.Current()
	assert.False(t, ok)

	a.apply(actLegend)
	assert.False(t, a.showHUD)
}

func TestApp_CopyReport(t *testing.T) {
	a, copied := newTestApp(t)
	a.apply(actZoneSafe)
	a.apply(actCopy)

	require.Len(t, *copied, 1)
	assert.Contains(t, (*copied)[0], "state: overlay=visible zone=safe")
	n, _ := a.banner.Current()
	assert.Equal(t, "Status report copied to clipboard", n.Message)

	a.writeClipboard = func(string) error { return errors.New("no clipboard utility") }
	a.apply(actCopy)
	n, _ = a.banner.Current()
	assert.Equal(t, view.KindError, n.Kind)
	assert.Equal(t, "Failed to copy status report: no clipboard utility", n.Message)
}

func TestHitAction(t *testing.T) {
	assert.Equal(t, actNone, hitAction(Hit{}))
	assert.Equal(t, actToggle, hitAction(Hit{Target: TargetToggle}))
	assert.Equal(t, actReset, hitAction(Hit{Target: TargetReset}))
	assert.Equal(t, actDismiss, hitAction(Hit{Target: TargetBannerClose}))
	assert.Equal(t, actZoneWarning, hitAction(Hit{Target: TargetZone, Zone: view.ZoneWarning}))
	assert.Equal(t, actNone, hitAction(Hit{Target: TargetZone}))
}

func TestStatusReport(t *testing.T) {
	hist := make([]view.HistoryEntry, 0, 12)
	for i := 1; i <= 12; i++ {
		hist = append(hist, view.HistoryEntry{
			Seq:          uint64(i),
			Notification: view.Notification{Kind: view.KindSuccess, Message: "Overlay shown"},
		})
	}
	sc := terrain.Scene{Width: 10, Height: 20}
	r := statusReport(1500*time.Millisecond, view.InitialState(), view.IntroArrived, sc, hist)

	assert.Contains(t, r, "uptime=1.5s")
	assert.Contains(t, r, "drone: arrived")
	assert.Contains(t, r, "terrain: 10x20")
	assert.NotContains(t, r, "#2 ")
	assert.Contains(t, r, "#3 Success: Overlay shown")
	assert.Contains(t, r, "#12 Success: Overlay shown")

	empty := statusReport(0, view.InitialState(), view.IntroHidden, sc, nil)
	assert.Contains(t, empty, "(none)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
