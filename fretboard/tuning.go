package fretboard

import (
	"fmt"
	"sort"
	"strings"
)

// NumStrings is the number of strings on the instrument.
const NumStrings = 6

// Tuning lists, string 0 first (high E in standard), the MIDI pitch each
// string sounds when played open.
type Tuning struct {
	Name      string
	OpenPitch [NumStrings]int
}

// StandardTuning is E4 B3 G3 D3 A2 E2.
var StandardTuning = Tuning{Name: "standard", OpenPitch: [NumStrings]int{64, 59, 55, 50, 45, 40}}

var tunings = map[string]Tuning{
	"standard": StandardTuning,
	"drop-d":   {Name: "drop-d", OpenPitch: [NumStrings]int{64, 59, 55, 50, 45, 38}},
	"open-g":   {Name: "open-g", OpenPitch: [NumStrings]int{62, 59, 55, 50, 43, 38}},
	"dadgad":   {Name: "dadgad", OpenPitch: [NumStrings]int{62, 57, 55, 50, 45, 38}},
}

// LookupTuning finds a named tuning.
func LookupTuning(name string) (Tuning, error) {
	t, ok := tunings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownTuning, name, strings.Join(TuningNames(), ", "))
	}
	return t, nil
}

// TuningNames returns the known tuning names, sorted.
func TuningNames() []string {
	names := make([]string, 0, len(tunings))
	for n := range tunings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Offset is the pitch class of string s played open.
func (t Tuning) Offset(s int) PitchClass {
	return PitchClassOf(t.OpenPitch[s])
}

// Offsets returns the per-string pitch-class offsets, e.g. [4 11 7 2 9 4]
// for standard tuning.
func (t Tuning) Offsets() [NumStrings]int {
	var out [NumStrings]int
	for s := range t.OpenPitch {
		out[s] = int(t.Offset(s))
	}
	return out
}

