package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*Controller, *fakes, *recorder) {
	t.Helper()
	f := newFakes()
	rec := &recorder{}
	c, err := NewController(f.elements(), rec, WithLogger(quietLogger()))
	require.NoError(t, err)
	return c, f, rec
}

func TestNewController_InitialState(t *testing.T) {
	c, _, rec := newTestController(t)
	assert.Equal(t, State{OverlayVisible: true, SelectedZone: ZoneNone}, c.State())
	assert.Empty(t, rec.got)
}

func TestNewController_RejectsMissingElements(t *testing.T) {
	cases := map[string]func(*Elements){
		"overlay":       func(e *Elements) { e.Overlay = nil },
		"toggleOverlay": func(e *Elements) { e.ToggleButton = nil },
		"drone":         func(e *Elements) { e.Drone = nil },
		"satelliteView": func(e *Elements) { e.Terrain = nil },
		"warningZone":   func(e *Elements) { delete(e.Zones, ZoneWarning) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			el := newFakes().elements()
			mutate(&el)
			_, err := NewController(el, &recorder{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingElement))
			var me *MissingElementError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, name, me.Name)
		})
	}

	_, err := NewController(newFakes().elements(), nil)
	assert.ErrorIs(t, err, ErrMissingElement)
}

func TestToggleOverlay_IsInvolution(t *testing.T) {
	c, f, rec := newTestController(t)

	c.ToggleOverlay()
	assert.False(t, c.State().OverlayVisible)
	assert.False(t, f.overlay.visible)
	assert.Equal(t, LabelShowOverlay, f.label.text)
	assert.Equal(t, Notification{Kind: KindSuccess, Message: "Overlay hidden", TTL: DefaultSuccessTTL}, rec.last())

	c.ToggleOverlay()
	assert.True(t, c.State().OverlayVisible)
	assert.True(t, f.overlay.visible)
	assert.Equal(t, LabelHideOverlay, f.label.text)
	assert.Equal(t, "Overlay shown", rec.last().Message)
}

func TestResetView_RestoresInitialStateFromAnyState(t *testing.T) {
	c, f, rec := newTestController(t)
	c.ToggleOverlay()
	c.SelectZone(ZoneCritical)

	c.ResetView()
	assert.Equal(t, InitialState(), c.State())
	assert.True(t, f.overlay.visible)
	assert.Equal(t, LabelHideOverlay, f.label.text)
	assert.Empty(t, f.emphasized())
	assert.Equal(t, 1, f.drone.replays)
	assert.Equal(t, 1, f.terrain.pulses)
	assert.Equal(t, "View reset successfully", rec.last().Message)

	c.ResetView()
	assert.Equal(t, InitialState(), c.State())
	assert.Equal(t, 2, f.drone.replays)
}

func TestSelectZone_ExactlyOneEmphasized(t *testing.T) {
	c, f, rec := newTestController(t)

	c.SelectZone(ZoneSafe)
	c.SelectZone(ZoneWarning)
	assert.Equal(t, []ZoneKind{ZoneWarning}, f.emphasized())

	c.SelectZone(ZoneWarning)
	z, ok := c.State().Selected()
	require.True(t, ok)
	assert.Equal(t, ZoneWarning, z)
	assert.Equal(t, []ZoneKind{ZoneWarning}, f.emphasized())
	assert.Equal(t, "Selected zone: Warning (Yellow)", rec.last().Message)
}

func TestSelectZone_InvalidZoneIsReported(t *testing.T) {
	c, f, rec := newTestController(t)
	c.SelectZone(ZoneKind(42))

	assert.Equal(t, ZoneNone, c.State().SelectedZone)
	assert.Empty(t, f.emphasized())
	n := rec.last()
	assert.Equal(t, KindError, n.Kind)
	assert.Equal(t, DefaultErrorTTL, n.TTL)
	assert.Contains(t, n.Message, "Error handling overlay click: unknown zone")
}

func TestFaultsBecomeErrorNotifications(t *testing.T) {
	c, f, rec := newTestController(t)

	f.overlay.err = &MissingElementError{Name: "overlay"}
	c.ToggleOverlay()
	assert.True(t, c.State().OverlayVisible, "state must not change when the visual update fails")
	assert.Equal(t, KindError, rec.last().Kind)
	assert.Equal(t, "Failed to toggle overlay: overlay: required element not found: overlay", rec.last().Message)

	f.zones[ZoneSafe].panic = "boom"
	c.SelectZone(ZoneCritical)
	assert.Equal(t, ZoneNone, c.State().SelectedZone)
	assert.Equal(t, "Error handling overlay click: boom", rec.last().Message)

	f.overlay.err = nil
	f.drone.err = errors.New("detached")
	f.zones[ZoneSafe].panic = ""
	c.ResetView()
	assert.Equal(t, "Failed to reset view: drone: detached", rec.last().Message)

	// Independent commands keep working.
	c.ToggleOverlay()
	assert.False(t, c.State().OverlayVisible)
	assert.Equal(t, KindSuccess, rec.last().Kind)
}

type panickyNotifier struct{}

func (panickyNotifier) Notify(Notification) { panic("banner gone") }

func TestPanickingNotifierIsContained(t *testing.T) {
	c, err := NewController(newFakes().elements(), panickyNotifier{}, WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		c.ToggleOverlay()
		c.SelectZone(ZoneKind(-1))
	})
	assert.False(t, c.State().OverlayVisible)
}

func TestWithTTL(t *testing.T) {
	f := newFakes()
	rec := &recorder{}
	c, err := NewController(f.elements(), rec, WithTTL(100, 200), WithLogger(quietLogger()))
	require.NoError(t, err)

	c.ToggleOverlay()
	assert.EqualValues(t, 100, rec.last().TTL)
	c.SelectZone(ZoneNone)
	assert.EqualValues(t, 200, rec.last().TTL)
}

func TestDispatch(t *testing.T) {
	c, _, rec := newTestController(t)
	script, err := ParseScript("toggle-overlay, select-zone:warning")
	require.NoError(t, err)
	for _, cmd := range script {
		c.Dispatch(cmd)
	}
	assert.Equal(t, State{OverlayVisible: false, SelectedZone: ZoneWarning}, c.State())

	c.Dispatch(Command{Kind: CommandKind(99)})
	assert.Equal(t, KindError, rec.last().Kind)
	assert.Contains(t, rec.last().Message, "unknown command")
}

func TestEndToEnd(t *testing.T) {
	c, f, rec := newTestController(t)
	require.Equal(t, State{OverlayVisible: true, SelectedZone: ZoneNone}, c.State())

	c.ToggleOverlay()
	assert.False(t, c.State().OverlayVisible)
	assert.Equal(t, "Show Overlay", f.label.text)

	c.SelectZone(ZoneWarning)
	assert.Equal(t, "Selected zone: Warning (Yellow)", rec.last().Message)

	c.ResetView()
	assert.Equal(t, State{OverlayVisible: true, SelectedZone: ZoneNone}, c.State())
}
