package main

import "github.com/chase3718/fretboard/fretboard"

// BuildFrame converts the model's highlight predicates into an LED frame.
func BuildFrame(m *fretboard.Model, seq byte) Frame {
	f := EmptyFrame(seq)
	frets := m.FretCount()
	for s := 0; s < NumStrings; s++ {
		for fret := 0; fret <= frets; fret++ {
			if m.ShowFretNote(s, fret) {
				f.Lit[s] |= 1 << fret
			}
			if m.IsRoot(s, fret) {
				f.Root[s] |= 1 << fret
			}
		}
	}

	// IsBox needs a root too; mirror that so the LEDs match the screen.
	_, rootOK := m.SelectedRoot()
	if i, ok := m.SelectedBox(); ok && rootOK {
		b := m.SelectedScaleBoxes()[i]
		f.BoxMin = byte(b.MinFret)
		f.BoxMax = byte(b.MaxFret)
	}

	logger.Debug("mapping: frame built",
		"seq", seq,
		"selection", m.Selection(),
		"box_min", f.BoxMin,
		"box_max", f.BoxMax,
	)
	return f
}

// EmptyFrame returns an all-dark frame (used on exit).
func EmptyFrame(seq byte) Frame {
	return Frame{BoxMin: NoBox, BoxMax: NoBox, Seq: seq}
}
