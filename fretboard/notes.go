// Package fretboard holds the note, tuning and scale reference data of a
// six-string guitar and the selection model that decides which fretboard
// positions are highlighted.
package fretboard

import (
	"fmt"
	"strings"
)

// NoteNames is indexed by pitch class.
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = map[string]string{
	"DB": "C#", "EB": "D#", "GB": "F#", "AB": "G#", "BB": "A#",
	"CB": "B", "FB": "E", "E#": "F", "B#": "C",
}

// PitchClass identifies one of the 12 notes regardless of octave.
type PitchClass int

// PitchClassOf reduces n modulo 12 into 0..11.
func PitchClassOf(n int) PitchClass {
	pc := n % 12
	if pc < 0 {
		pc += 12
	}
	return PitchClass(pc)
}

// Name returns the sharp spelling of the pitch class.
func (p PitchClass) Name() string {
	return NoteNames[PitchClassOf(int(p))]
}

func (p PitchClass) String() string { return p.Name() }

// ParsePitchClass accepts sharp or flat spellings ("A#", "Bb", "bb").
func ParsePitchClass(name string) (PitchClass, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if alias, ok := flatNames[n]; ok {
		n = alias
	}
	for i, nn := range NoteNames {
		if nn == n {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
}

// MIDIName returns the scientific name of a MIDI note number, e.g. 40 -> "E2".
func MIDIName(pitch int) string {
	if pitch < 0 {
		return fmt.Sprintf("?\"%d\"", pitch)
	}
	return fmt.Sprintf("%s%d", NoteNames[pitch%12], (pitch/12)-1)
}
