package xerrors

import "errors"

// Localized pairs an internal error with the Swedish message shown to the
// user. Handlers unwrap it to pick the display text without losing the
// underlying cause.
type Localized struct {
	Msg string
	Err error
}

func (e *Localized) Error() string { return e.Msg + ": " + e.Err.Error() }
func (e *Localized) Unwrap() error { return e.Err }

// Localize attaches a display message to err. Returns nil for a nil err.
func Localize(msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Localized{Msg: msg, Err: err}
}

// DisplayMessage extracts the localized message, or returns fallback.
func DisplayMessage(err error, fallback string) string {
	var l *Localized
	if errors.As(err, &l) {
		return l.Msg
	}
	return fallback
}
