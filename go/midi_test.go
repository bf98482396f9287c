package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
)

func TestPickPreferred(t *testing.T) {
	preferred := []string{"Launchkey", "Novation"}

	name, ok := pickPreferred([]string{"USB Midi", "Novation Launchkey Mini MK3"}, preferred)
	assert.True(t, ok)
	assert.Equal(t, "Novation Launchkey Mini MK3", name)

	name, ok = pickPreferred([]string{"Keystation 49"}, preferred)
	assert.True(t, ok, "single input is taken")
	assert.Equal(t, "Keystation 49", name)

	_, ok = pickPreferred([]string{"A", "B"}, preferred)
	assert.False(t, ok)
	_, ok = pickPreferred(nil, preferred)
	assert.False(t, ok)
}

func TestFilterExcluded(t *testing.T) {
	got := filterExcluded(
		[]string{"Midi Through Port-0", "Launchkey MIDI", "dummy out"},
		[]string{"Midi Through", "Dummy"},
	)
	assert.Equal(t, []string{"Launchkey MIDI"}, got)
}

func TestNoteOn(t *testing.T) {
	pitch, vel, ok := noteOn(midi.NoteOn(0, 60, 100))
	assert.True(t, ok)
	assert.Equal(t, 60, pitch)
	assert.Equal(t, 100, vel)

	_, _, ok = noteOn(midi.NoteOn(0, 60, 0))
	assert.False(t, ok, "velocity 0 is a note off")
	_, _, ok = noteOn(midi.NoteOff(0, 60))
	assert.False(t, ok)
}
