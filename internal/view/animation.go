package view

import "time"

// Clock is a Timers that also reports elapsed time. *schedule.Scheduler
// satisfies it.
type Clock interface {
	Timers
	Now() time.Duration
}

// Animation timings.
const (
	DefaultEntryDelay    = 500 * time.Millisecond
	DefaultEntryDuration = 1500 * time.Millisecond
	DefaultReplayDelay   = 100 * time.Millisecond
	DefaultPulseDuration = 2 * time.Second
)

// Intro notices.
const (
	MsgDroneDeployed   = "Drone deployed successfully"
	MsgDroneInPosition = "Drone in position. Surveying area..."
)

// IntroPhase is where the drone is in its entry animation.
type IntroPhase int

const (
	IntroHidden IntroPhase = iota
	IntroEntering
	IntroArrived
)

func (p IntroPhase) String() string {
	switch p {
	case IntroEntering:
		return "entering"
	case IntroArrived:
		return "arrived"
	}
	return "hidden"
}

// Intro stages the drone's entry. The first Start announces deployment when
// the drone begins moving and its arrival when the movement ends; replays
// run silently. Each Start or Replay invalidates timers armed before it.
type Intro struct {
	clock    Clock
	notice   func(msg string)
	delay    time.Duration
	duration time.Duration
	replay   time.Duration

	phase     IntroPhase
	enteredAt time.Duration
	gen       uint64
	announced bool
}

// IntroOption configures an Intro.
type IntroOption func(*Intro)

// WithIntroTimings overrides the entry delay, entry duration and replay delay.
// Non-positive values keep the defaults.
func WithIntroTimings(delay, duration, replay time.Duration) IntroOption {
	return func(i *Intro) {
		if delay > 0 {
			i.delay = delay
		}
		if duration > 0 {
			i.duration = duration
		}
		if replay > 0 {
			i.replay = replay
		}
	}
}

// NewIntro creates an intro driven by clock. notice receives the deployment
// and arrival messages; it may be nil.
func NewIntro(clock Clock, notice func(msg string), opts ...IntroOption) *Intro {
	i := &Intro{
		clock:    clock,
		notice:   notice,
		delay:    DefaultEntryDelay,
		duration: DefaultEntryDuration,
		replay:   DefaultReplayDelay,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Start hides the drone and begins the entry after the entry delay.
func (i *Intro) Start() {
	i.stage(i.delay, !i.announced)
	i.announced = true
}

// ReplayEntry implements Drone: the drone snaps back and re-enters after the
// replay delay.
func (i *Intro) ReplayEntry() error {
	i.stage(i.replay, false)
	return nil
}

func (i *Intro) stage(after time.Duration, announce bool) {
	i.gen++
	gen := i.gen
	i.phase = IntroHidden
	i.clock.After(after, func() {
		if gen != i.gen {
			return
		}
		i.phase = IntroEntering
		i.enteredAt = i.clock.Now()
		if announce {
			i.say(MsgDroneDeployed)
		}
		i.clock.After(i.duration, func() {
			if gen != i.gen {
				return
			}
			i.phase = IntroArrived
			if announce {
				i.say(MsgDroneInPosition)
			}
		})
	})
}

func (i *Intro) say(msg string) {
	if i.notice != nil {
		i.notice(msg)
	}
}

// Phase returns the current phase.
func (i *Intro) Phase() IntroPhase {
	return i.phase
}

// Progress returns entry progress in [0,1]: 0 while hidden, 1 once arrived.
func (i *Intro) Progress() float64 {
	switch i.phase {
	case IntroHidden:
		return 0
	case IntroArrived:
		return 1
	}
	return fraction(i.clock.Now()-i.enteredAt, i.duration)
}

// Pulse is a transient highlight effect on the terrain surface.
type Pulse struct {
	clock    Clock
	duration time.Duration

	active    bool
	startedAt time.Duration
	gen       uint64
}

// NewPulse creates an idle pulse lasting duration (default 2s).
func NewPulse(clock Clock, duration time.Duration) *Pulse {
	if duration <= 0 {
		duration = DefaultPulseDuration
	}
	return &Pulse{clock: clock, duration: duration}
}

// Pulse implements Surface. Re-triggering restarts the effect.
func (p *Pulse) Pulse() error {
	p.gen++
	gen := p.gen
	p.active = true
	p.startedAt = p.clock.Now()
	p.clock.After(p.duration, func() {
		if gen == p.gen {
			p.active = false
		}
	})
	return nil
}

// Active reports whether the pulse is running.
func (p *Pulse) Active() bool {
	return p.active
}

// Progress returns pulse progress in [0,1]; 0 when idle.
func (p *Pulse) Progress() float64 {
	if !p.active {
		return 0
	}
	return fraction(p.clock.Now()-p.startedAt, p.duration)
}

func fraction(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}
