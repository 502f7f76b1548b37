package view

import "time"

// Default lifetimes of a banner notification.
const (
	DefaultSuccessTTL = 3 * time.Second
	DefaultErrorTTL   = 5 * time.Second
)

// Kind classifies a notification.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
)

func (k Kind) String() string {
	if k == KindError {
		return "Error"
	}
	return "Success"
}

// Notification is a transient message for the banner.
type Notification struct {
	Kind    Kind
	Message string
	TTL     time.Duration
}

// Text is the banner line, e.g. "Success: Overlay shown".
func (n Notification) Text() string {
	return n.Kind.String() + ": " + n.Message
}

// Notifier accepts notifications for display.
type Notifier interface {
	Notify(n Notification)
}
