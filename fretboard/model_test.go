package fretboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(StandardTuning, DefaultScales(), DefaultFrets)
}

func TestNoteNameMatchesTable(t *testing.T) {
	m := newTestModel(t)
	offsets := [NumStrings]int{4, 11, 7, 2, 9, 4}
	for s := 0; s < NumStrings; s++ {
		for f := 0; f <= m.FretCount(); f++ {
			assert.Equal(t, NoteNames[(f+offsets[s])%12], m.NoteName(s, f), "string %d fret %d", s, f)
		}
	}
}

func TestNoteNameExamples(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, "E", m.NoteName(0, 0))
	assert.Equal(t, "A", m.NoteName(0, 5))
	assert.Equal(t, "B", m.NoteName(1, 0))
	assert.Equal(t, "E", m.NoteName(5, 12))
}

func TestShowAllNotesDefault(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, m.ShowAllNotes())
	assert.True(t, m.ShowFretNote(3, 7))
}

func TestSetSelectedNoteToggle(t *testing.T) {
	m := newTestModel(t)

	require.NoError(t, m.SetSelectedNote("A"))
	assert.Equal(t, "A", m.SelectedNote())
	assert.False(t, m.ShowAllNotes())
	assert.True(t, m.ShowFretNote(0, 5))
	assert.False(t, m.ShowFretNote(0, 4))

	require.NoError(t, m.SetSelectedNote("A"))
	assert.Equal(t, "", m.SelectedNote())
	assert.False(t, m.ShowAllNotes(), "show-all stays off after deselecting")
	assert.False(t, m.ShowFretNote(0, 5))

	require.NoError(t, m.SetSelectedNote("C"))
	require.NoError(t, m.SetSelectedNote("D"))
	assert.Equal(t, "D", m.SelectedNote())
}

func TestSetSelectedNoteRejectsUnknownNames(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SetSelectedNote("bb"))
	assert.Equal(t, "A#", m.SelectedNote())

	for _, name := range []string{"", "H", "C##"} {
		assert.ErrorIs(t, m.SetSelectedNote(name), ErrUnknownNote, "name %q", name)
		assert.Equal(t, "A#", m.SelectedNote(), "selection unchanged after %q", name)
	}

	m.SetShowAllNotes(true)
	assert.Error(t, m.SetSelectedNote(""))
	assert.True(t, m.ShowAllNotes(), "empty name does not touch show-all")
}

func TestPitchClassAt(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, PitchClass(4), m.PitchClassAt(0, 0))
	assert.Equal(t, PitchClass(9), m.PitchClassAt(0, 5))
	assert.Equal(t, PitchClass(1), m.PitchClassAt(1, 2))
}

func TestSetShowAllNotesClearsSelectedNote(t *testing.T) {
	m := newTestModel(t)
	m.SelectNote(PitchClass(9))
	require.Equal(t, "A", m.SelectedNote())

	m.SetShowAllNotes(true)
	assert.True(t, m.ShowAllNotes())
	assert.Equal(t, "", m.SelectedNote())

	require.NoError(t, m.SetSelectedNote("G"))
	m.SetShowAllNotes(false)
	assert.Equal(t, "G", m.SelectedNote(), "turning show-all off keeps the note")
}

func TestScaleTakesPriority(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SelectScale(0)) // Minor Pentatonic
	m.SelectRoot(4)                      // E

	for s := 0; s < NumStrings; s++ {
		for f := 0; f <= m.FretCount(); f++ {
			rel := (f + 12 + m.Tuning().Offsets()[s] - 4) % 12
			switch rel {
			case 3:
				assert.True(t, m.ShowFretNote(s, f), "string %d fret %d", s, f)
			case 1:
				assert.False(t, m.ShowFretNote(s, f), "string %d fret %d", s, f)
			}
		}
	}

	m.SetShowAllNotes(true)
	assert.False(t, m.ShowFretNote(0, 1), "F is not in E minor pentatonic even with show-all")
}

func TestScaleWithoutRootFallsBack(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SelectScale(0))
	require.NoError(t, m.SetSelectedNote("F"))
	assert.True(t, m.ShowFretNote(0, 1))
	assert.False(t, m.ShowFretNote(0, 0))
}

func TestIsRoot(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.IsRoot(0, 0), "nothing selected")

	m.SelectRoot(4)
	assert.False(t, m.IsRoot(0, 0), "root without scale")

	require.NoError(t, m.SelectScale(2))
	assert.True(t, m.IsRoot(0, 0))
	assert.True(t, m.IsRoot(0, 12))
	assert.True(t, m.IsRoot(3, 2))
	assert.False(t, m.IsRoot(0, 1))

	m.ClearRoot()
	assert.False(t, m.IsRoot(0, 0))
}

func TestIsBox(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.IsBox(2))

	require.NoError(t, m.SelectScale(0))
	require.NoError(t, m.SelectBox(1)) // frets 2-5
	assert.False(t, m.IsBox(3), "no root selected")

	m.SelectRoot(9)
	for f := 0; f <= m.FretCount(); f++ {
		assert.Equal(t, f >= 2 && f <= 5, m.IsBox(f), "fret %d", f)
	}

	m.ClearBox()
	assert.False(t, m.IsBox(3))
}

func TestSelectScaleClearsBoxOnChange(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SelectScale(0))
	require.NoError(t, m.SelectBox(2))

	require.NoError(t, m.SelectScale(0))
	_, ok := m.SelectedBox()
	assert.True(t, ok, "reselecting the same scale keeps the box")

	require.NoError(t, m.SelectScale(1))
	_, ok = m.SelectedBox()
	assert.False(t, ok)
}

func TestSelectOutOfRange(t *testing.T) {
	m := newTestModel(t)
	assert.ErrorIs(t, m.SelectScale(-1), ErrOutOfRange)
	assert.ErrorIs(t, m.SelectScale(len(m.Scales())), ErrOutOfRange)
	assert.ErrorIs(t, m.SelectBox(0), ErrOutOfRange, "no scale selected")

	require.NoError(t, m.SelectScale(2)) // Major has no boxes
	assert.ErrorIs(t, m.SelectBox(0), ErrOutOfRange)
	assert.Empty(t, m.SelectedScaleBoxes())
}

func TestSelectedScaleBoxes(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.SelectedScaleBoxes())
	require.NoError(t, m.SelectScale(1))
	assert.Equal(t, pentatonicBoxes, m.SelectedScaleBoxes())
}

func TestSetFretCount(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SelectScale(0))
	m.SelectRoot(4)
	require.NoError(t, m.SelectBox(1)) // 2-5

	m.SetFretCount(7)
	assert.Equal(t, 7, m.FretCount())
	assert.Len(t, m.SelectedScaleBoxes(), 2)
	i, ok := m.SelectedBox()
	require.True(t, ok)
	assert.Equal(t, 1, i)

	require.NoError(t, m.SelectBox(0))
	m.SetFretCount(100)
	assert.Equal(t, MaxFrets, m.FretCount())

	require.NoError(t, m.SelectBox(4)) // 9-12
	m.SetFretCount(1)
	assert.Equal(t, MinFrets, m.FretCount())
	_, ok = m.SelectedBox()
	assert.False(t, ok, "box 9-12 does not fit on 5 frets")
	assert.False(t, m.IsBox(10))
}

func TestSelectionSnapshot(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, Selection{ShowAllNotes: true}, m.Selection())

	require.NoError(t, m.SelectScale(0))
	m.SelectRoot(PitchClassOf(-8))
	require.NoError(t, m.SelectBox(0))
	assert.Equal(t, Selection{
		ShowAllNotes: true,
		Scale:        "Minor Pentatonic",
		Root:         "E",
		Box:          "1 (0-3)",
	}, m.Selection())
}

func TestCell(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SelectScale(0))
	m.SelectRoot(9)
	require.NoError(t, m.SelectBox(0))

	assert.Equal(t, CellState{Name: "A", Visible: true, Root: true, InBox: false}, m.Cell(0, 5))
	assert.Equal(t, CellState{Name: "E", Visible: true, Root: false, InBox: true}, m.Cell(0, 0))
	assert.Equal(t, CellState{Name: "F", Visible: false, Root: false, InBox: true}, m.Cell(0, 1))
}

func TestNewModelDoesNotShareScales(t *testing.T) {
	scales := DefaultScales()
	m := NewModel(StandardTuning, scales, DefaultFrets)
	require.NoError(t, m.SelectScale(0))
	m.SelectRoot(4)
	require.False(t, m.ShowFretNote(0, 1))

	scales[0].Name = "changed"
	scales[0].Intervals[1] = 1
	scales[0].Boxes[0].MaxFret = 99

	assert.Equal(t, "Minor Pentatonic", m.Scales()[0].Name)
	assert.False(t, m.ShowFretNote(0, 1), "F is not in E minor pentatonic")
	assert.Equal(t, Box{MinFret: 0, MaxFret: 3}, m.SelectedScaleBoxes()[0])
}

func TestScalesReturnsCopy(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.SelectScale(0))
	m.SelectRoot(4)

	got := m.Scales()
	got[0].Intervals[1] = 1
	got[0].Boxes[0].MaxFret = 99
	got[0].Name = "changed"

	assert.False(t, m.ShowFretNote(0, 1))
	assert.Equal(t, []Box{{0, 3}, {2, 5}, {4, 8}, {7, 10}, {9, 12}}, m.SelectedScaleBoxes())
	assert.Equal(t, "Minor Pentatonic", m.Scales()[0].Name)
}

func TestGridReturnsCopy(t *testing.T) {
	m := newTestModel(t)
	g := m.Grid()
	g.Strings[0].Frets[3] = Cell{String: 5, Fret: 0}
	g.Strings[1] = GuitarString{}

	again := m.Grid()
	assert.Equal(t, Cell{String: 0, Fret: 3}, again.Strings[0].Frets[3])
	assert.Equal(t, 1, again.Strings[1].Index)
	assert.Len(t, again.Strings[1].Frets, DefaultFrets+1)
}
