package fretboard

import "slices"

// Fret count limits. Fret 0 is the open string and not counted.
const (
	MinFrets     = 5
	MaxFrets     = 24
	DefaultFrets = 12
)

// Cell is one fretboard position. Fret 0 is the open string.
type Cell struct {
	String int
	Fret   int
}

// GuitarString is one row of the grid.
type GuitarString struct {
	Index int
	Frets []Cell
}

// Grid is the strings x frets iteration scaffold used by renderers. Every
// row and cell is its own value.
type Grid struct {
	Strings []GuitarString
}

// ClampFrets bounds n to [MinFrets, MaxFrets].
func ClampFrets(n int) int {
	return min(max(n, MinFrets), MaxFrets)
}

// NewGrid builds a grid with numStrings rows of frets+1 cells.
func NewGrid(numStrings, frets int) Grid {
	g := Grid{Strings: make([]GuitarString, numStrings)}
	for s := range g.Strings {
		row := GuitarString{Index: s, Frets: make([]Cell, frets+1)}
		for f := range row.Frets {
			row.Frets[f] = Cell{String: s, Fret: f}
		}
		g.Strings[s] = row
	}
	return g
}

// FretCount is the highest fret number on the grid.
func (g Grid) FretCount() int {
	if len(g.Strings) == 0 {
		return 0
	}
	return len(g.Strings[0].Frets) - 1
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := Grid{Strings: make([]GuitarString, len(g.Strings))}
	for i, row := range g.Strings {
		out.Strings[i] = GuitarString{Index: row.Index, Frets: slices.Clone(row.Frets)}
	}
	return out
}
