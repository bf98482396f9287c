package fretboard

import "errors"

// Sentinel errors, wrapped with context by the functions that return them.
var (
	// ErrUnknownNote is returned for note names outside the 12 note table.
	ErrUnknownNote = errors.New("unknown note")
	// ErrUnknownTuning is returned for tuning names not in the catalog.
	ErrUnknownTuning = errors.New("unknown tuning")
	// ErrInvalidScale is returned by Scale.Validate.
	ErrInvalidScale = errors.New("invalid scale")
	// ErrOutOfRange is returned for scale or box indexes past the end.
	ErrOutOfRange = errors.New("index out of range")
)
