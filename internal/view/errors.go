package view

import "errors"

var (
	// ErrMissingElement reports an absent visual anchor.
	ErrMissingElement = errors.New("required element not found")
	// ErrUnknownZone reports a zone outside Safe/Warning/Critical.
	ErrUnknownZone = errors.New("unknown zone")
	// ErrUnknownCommand reports an unparseable command.
	ErrUnknownCommand = errors.New("unknown command")
)

// MissingElementError names the element that was absent.
type MissingElementError struct {
	Name string
}

func (e *MissingElementError) Error() string {
	return ErrMissingElement.Error() + ": " + e.Name
}

func (e *MissingElementError) Unwrap() error {
	return ErrMissingElement
}
