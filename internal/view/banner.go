package view

import "time"

// Timers schedules fire-and-forget callbacks. *schedule.Scheduler satisfies it.
type Timers interface {
	After(d time.Duration, fn func())
}

// Banner is the single-slot notification display. Showing a notification
// replaces whatever is visible and arms a hide timer; only the timer armed by
// the most recent show may hide the banner, so stale timers are no-ops.
type Banner struct {
	timers  Timers
	history *History

	current Notification
	visible bool
	gen     uint64
}

// BannerOption configures a Banner.
type BannerOption func(*Banner)

// WithHistory records every shown notification into h.
func WithHistory(h *History) BannerOption {
	return func(b *Banner) {
		b.history = h
	}
}

// NewBanner creates a hidden banner whose auto-dismiss timers run on timers.
func NewBanner(timers Timers, opts ...BannerOption) *Banner {
	b := &Banner{timers: timers}
	for _, o := range opts {
		o(b)
	}
	if b.history == nil {
		b.history = NewHistory(DefaultHistorySize)
	}
	return b
}

// Notify implements Notifier.
func (b *Banner) Notify(n Notification) {
	if n.TTL <= 0 {
		n.TTL = DefaultSuccessTTL
		if n.Kind == KindError {
			n.TTL = DefaultErrorTTL
		}
	}
	b.gen++
	b.current = n
	b.visible = true
	b.history.Add(HistoryEntry{Seq: b.gen, Notification: n})

	gen := b.gen
	if b.timers != nil {
		b.timers.After(n.TTL, func() { b.expire(gen) })
	}
}

func (b *Banner) expire(gen uint64) {
	if gen != b.gen {
		return
	}
	b.visible = false
}

// Dismiss hides the banner immediately (the close affordance).
func (b *Banner) Dismiss() {
	b.visible = false
}

// Current returns the visible notification, if any.
func (b *Banner) Current() (Notification, bool) {
	return b.current, b.visible
}

// History returns the banner's notification history.
func (b *Banner) History() *History {
	return b.history
}
