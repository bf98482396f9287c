package fretboard

import (
	"fmt"
	"slices"
)

// Box is an inclusive fret range covering one playable pattern of a scale.
type Box struct {
	MinFret int `yaml:"min_fret"`
	MaxFret int `yaml:"max_fret"`
}

// Contains reports whether fret lies in [MinFret, MaxFret].
func (b Box) Contains(fret int) bool {
	return fret >= b.MinFret && fret <= b.MaxFret
}

func (b Box) String() string { return fmt.Sprintf("%d-%d", b.MinFret, b.MaxFret) }

// Scale is a set of semitone intervals above a root, optionally split into
// boxes.
type Scale struct {
	Name      string `yaml:"name"`
	Intervals []int  `yaml:"intervals"`
	Boxes     []Box  `yaml:"boxes,omitempty"`
}

// Contains reports whether interval (0..11 above the root) is in the scale.
func (s Scale) Contains(interval int) bool {
	return slices.Contains(s.Intervals, interval)
}

// Clone returns a copy that shares no slices with s.
func (s Scale) Clone() Scale {
	s.Intervals = slices.Clone(s.Intervals)
	s.Boxes = slices.Clone(s.Boxes)
	return s
}

// Validate checks the scale against a fretboard with fretCount frets.
func (s Scale) Validate(fretCount int) error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidScale)
	}
	if len(s.Intervals) == 0 {
		return fmt.Errorf("%w: %s: no intervals", ErrInvalidScale, s.Name)
	}
	seen := make(map[int]bool, len(s.Intervals))
	for _, iv := range s.Intervals {
		if iv < 0 || iv > 11 {
			return fmt.Errorf("%w: %s: interval %d outside 0..11", ErrInvalidScale, s.Name, iv)
		}
		if seen[iv] {
			return fmt.Errorf("%w: %s: duplicate interval %d", ErrInvalidScale, s.Name, iv)
		}
		seen[iv] = true
	}
	for i, b := range s.Boxes {
		if b.MinFret < 0 || b.MinFret > b.MaxFret || b.MaxFret > fretCount {
			return fmt.Errorf("%w: %s: box %d (%s) outside 0..%d", ErrInvalidScale, s.Name, i, b, fretCount)
		}
	}
	return nil
}

// pentatonicBoxes are the five CAGED-style positions shared by the minor
// pentatonic and blues scales.
var pentatonicBoxes = []Box{
	{MinFret: 0, MaxFret: 3},
	{MinFret: 2, MaxFret: 5},
	{MinFret: 4, MaxFret: 8},
	{MinFret: 7, MaxFret: 10},
	{MinFret: 9, MaxFret: 12},
}

// DefaultScales returns a fresh copy of the built-in catalog.
func DefaultScales() []Scale {
	return []Scale{
		{Name: "Minor Pentatonic", Intervals: []int{0, 3, 5, 7, 10}, Boxes: slices.Clone(pentatonicBoxes)},
		{Name: "Blues", Intervals: []int{0, 3, 5, 6, 7, 10}, Boxes: slices.Clone(pentatonicBoxes)},
		{Name: "Major", Intervals: []int{0, 2, 4, 5, 7, 9, 11}},
		{Name: "Natural Minor (Aeolian Mode)", Intervals: []int{0, 2, 3, 5, 7, 8, 10}},
		{Name: "Major Pentatonic", Intervals: []int{0, 2, 4, 7, 9}},
		{Name: "Harmonic Minor", Intervals: []int{0, 2, 3, 5, 7, 8, 11}},
	}
}
