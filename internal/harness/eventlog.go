package harness

import (
	"fmt"
	"strings"
	"time"
)

// Event is one recorded change during a headless run.
type Event struct {
	At       time.Duration // scheduler time
	Category string        // notify, overlay, label, zone, drone, terrain, command
	Key      string        // specific event name within the category
	Value    string        // human-readable detail
}

// String formats the event as a fixed-width log line.
//
//	[t=00500ms] notify    success  Drone deployed successfully
func (e Event) String() string {
	return fmt.Sprintf("[t=%05dms] %-9s %-8s %s",
		e.At.Milliseconds(), e.Category, e.Key, e.Value)
}

// EventLog collects events in order. It is unbounded and machine-readable,
// unlike the banner history.
type EventLog struct {
	entries []Event
}

// Add records an event.
func (l *EventLog) Add(at time.Duration, category, key, value string) {
	l.entries = append(l.entries, Event{At: at, Category: category, Key: key, Value: value})
}

// Entries returns all recorded events.
func (l *EventLog) Entries() []Event {
	return l.entries
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Filter returns events matching category and key. An empty string matches
// anything for that field.
func (l *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// LastOf returns the most recent event matching category and key.
func (l *EventLog) LastOf(category, key string) (Event, bool) {
	matches := l.Filter(category, key)
	if len(matches) == 0 {
		return Event{}, false
	}
	return matches[len(matches)-1], true
}

// Has reports whether an event matches category, key and a value substring.
func (l *EventLog) Has(category, key, valueSubstr string) bool {
	for _, e := range l.Filter(category, key) {
		if strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Since returns the events recorded after the first n.
func (l *EventLog) Since(n int) []Event {
	if n >= len(l.entries) {
		return nil
	}
	return l.entries[max(n, 0):]
}

// Format returns the whole log, one event per line.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
