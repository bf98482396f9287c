package fretboard

import (
	"fmt"
	"slices"
)

type optIndex struct {
	v  int
	ok bool
}

func some(v int) optIndex { return optIndex{v: v, ok: true} }

// Model is the fretboard view model: immutable reference data (tuning,
// scale catalog) plus the user's current selection. It is not safe for
// concurrent use; callers mutate it from a single event loop.
type Model struct {
	tuning  Tuning
	offsets [NumStrings]int
	scales  []Scale
	grid    Grid

	showAllNotes bool
	selectedNote string
	scale        optIndex
	root         optIndex
	box          optIndex
}

// NewModel builds a model with show-all-notes enabled and nothing selected.
// frets is clamped to [MinFrets, MaxFrets].
func NewModel(tuning Tuning, scales []Scale, frets int) *Model {
	m := &Model{
		tuning:       tuning,
		offsets:      tuning.Offsets(),
		scales:       cloneScales(scales),
		showAllNotes: true,
	}
	m.grid = NewGrid(NumStrings, ClampFrets(frets))
	return m
}

// -------------------- Reference data --------------------

// Tuning returns the tuning the model was built with.
func (m *Model) Tuning() Tuning { return m.tuning }

// Grid returns a copy of the current grid.
func (m *Model) Grid() Grid { return m.grid.Clone() }

// FretCount is the highest fret on the current grid.
func (m *Model) FretCount() int { return m.grid.FretCount() }

// Scales returns a copy of the scale catalog.
func (m *Model) Scales() []Scale { return cloneScales(m.scales) }

func cloneScales(scales []Scale) []Scale {
	if scales == nil {
		return nil
	}
	out := make([]Scale, len(scales))
	for i, s := range scales {
		out[i] = s.Clone()
	}
	return out
}

// -------------------- Predicates --------------------

// NoteName returns the name of the note sounded at string s, fret f.
func (m *Model) NoteName(s, f int) string {
	return m.PitchClassAt(s, f).Name()
}

// PitchClassAt returns the pitch class sounded at string s, fret f.
func (m *Model) PitchClassAt(s, f int) PitchClass {
	return PitchClassOf(f + m.offsets[s])
}

// IsRoot reports whether the note at (s, f) is the selected root. It is
// false unless both a scale and a root are selected. The comparison is by
// display name.
func (m *Model) IsRoot(s, f int) bool {
	if !m.scale.ok || !m.root.ok {
		return false
	}
	note := (f + len(NoteNames) + m.offsets[s]) % 12
	return NoteNames[m.root.v] == NoteNames[note]
}

// IsBox reports whether fret f lies inside the selected box. It is false
// unless a scale, a root and a box are all selected.
func (m *Model) IsBox(f int) bool {
	if !m.scale.ok || !m.root.ok || !m.box.ok {
		return false
	}
	return m.SelectedScaleBoxes()[m.box.v].Contains(f)
}

// ShowFretNote decides whether (s, f) renders as a highlighted note. A
// selected scale and root take priority over show-all and the single note
// selection.
func (m *Model) ShowFretNote(s, f int) bool {
	if m.scale.ok && m.root.ok {
		interval := (f + len(NoteNames) + m.offsets[s] - m.root.v) % 12
		return m.scales[m.scale.v].Contains(interval)
	}
	return m.showAllNotes ||
		(m.selectedNote != "" && NoteNames[(f+m.offsets[s])%12] == m.selectedNote)
}

// CellState bundles every predicate for one position.
type CellState struct {
	Name    string
	Visible bool
	Root    bool
	InBox   bool
}

// Cell evaluates every predicate for (s, f).
func (m *Model) Cell(s, f int) CellState {
	return CellState{
		Name:    m.NoteName(s, f),
		Visible: m.ShowFretNote(s, f),
		Root:    m.IsRoot(s, f),
		InBox:   m.IsBox(f),
	}
}

// SelectedScaleBoxes returns the boxes of the selected scale that fit on the
// current fretboard, or nil when no scale is selected.
func (m *Model) SelectedScaleBoxes() []Box {
	if !m.scale.ok {
		return nil
	}
	return fittingBoxes(m.scales[m.scale.v].Boxes, m.FretCount())
}

func fittingBoxes(boxes []Box, frets int) []Box {
	out := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		if b.MaxFret <= frets {
			out = append(out, b)
		}
	}
	return out
}

// -------------------- Selection --------------------

// ShowAllNotes reports whether every note is shown.
func (m *Model) ShowAllNotes() bool { return m.showAllNotes }

// SelectedNote returns the selected single note name, or "" when none.
func (m *Model) SelectedNote() string { return m.selectedNote }

// SetShowAllNotes toggles show-all. Turning it on clears the single note
// selection.
func (m *Model) SetShowAllNotes(on bool) {
	m.showAllNotes = on
	if on {
		m.selectedNote = ""
	}
}

// SetSelectedNote selects a single note by name, see SelectNote. Names that
// do not parse, including "", are rejected and leave the selection as is.
func (m *Model) SetSelectedNote(note string) error {
	pc, err := ParsePitchClass(note)
	if err != nil {
		return err
	}
	m.SelectNote(pc)
	return nil
}

// SelectNote selects a single note. Selecting the current note again
// deselects it and leaves show-all unchanged; selecting another note turns
// show-all off.
func (m *Model) SelectNote(pc PitchClass) {
	name := PitchClassOf(int(pc)).Name()
	if m.selectedNote == name {
		m.selectedNote = ""
		return
	}
	m.showAllNotes = false
	m.selectedNote = name
}

// SelectedScale returns the selected scale index.
func (m *Model) SelectedScale() (int, bool) { return m.scale.v, m.scale.ok }

// SelectedRoot returns the selected root pitch class.
func (m *Model) SelectedRoot() (PitchClass, bool) { return PitchClass(m.root.v), m.root.ok }

// SelectedBox returns the selected index into SelectedScaleBoxes.
func (m *Model) SelectedBox() (int, bool) { return m.box.v, m.box.ok }

// SelectScale selects scale i of the catalog. Switching to another scale
// clears the box selection.
func (m *Model) SelectScale(i int) error {
	if i < 0 || i >= len(m.scales) {
		return fmt.Errorf("%w: scale %d of %d", ErrOutOfRange, i, len(m.scales))
	}
	if !m.scale.ok || m.scale.v != i {
		m.box = optIndex{}
	}
	m.scale = some(i)
	return nil
}

// ClearScale deselects the scale and its box.
func (m *Model) ClearScale() {
	m.scale = optIndex{}
	m.box = optIndex{}
}

// SelectRoot selects the scale root.
func (m *Model) SelectRoot(pc PitchClass) {
	m.root = some(int(PitchClassOf(int(pc))))
}

// ClearRoot deselects the root.
func (m *Model) ClearRoot() { m.root = optIndex{} }

// SelectBox selects box i of SelectedScaleBoxes. A scale must be selected.
func (m *Model) SelectBox(i int) error {
	boxes := m.SelectedScaleBoxes()
	if i < 0 || i >= len(boxes) {
		return fmt.Errorf("%w: box %d of %d", ErrOutOfRange, i, len(boxes))
	}
	m.box = some(i)
	return nil
}

// ClearBox deselects the box.
func (m *Model) ClearBox() { m.box = optIndex{} }

// SetFretCount rebuilds the grid with n frets (clamped). A selected box
// that no longer fits is cleared; one that still fits stays selected.
func (m *Model) SetFretCount(n int) {
	var prev *Box
	if m.box.ok {
		b := m.SelectedScaleBoxes()[m.box.v]
		prev = &b
	}
	m.grid = NewGrid(NumStrings, ClampFrets(n))
	m.box = optIndex{}
	if prev == nil {
		return
	}
	if i := slices.Index(m.SelectedScaleBoxes(), *prev); i >= 0 {
		m.box = some(i)
	}
}

// Selection is a printable snapshot of the selection state.
type Selection struct {
	ShowAllNotes bool
	Note         string
	Scale        string
	Root         string
	Box          string
}

// Selection reports the current selection by display name.
func (m *Model) Selection() Selection {
	sel := Selection{ShowAllNotes: m.showAllNotes, Note: m.selectedNote}
	if m.scale.ok {
		sel.Scale = m.scales[m.scale.v].Name
	}
	if m.root.ok {
		sel.Root = NoteNames[m.root.v]
	}
	if m.box.ok {
		sel.Box = fmt.Sprintf("%d (%s)", m.box.v+1, m.SelectedScaleBoxes()[m.box.v])
	}
	return sel
}
