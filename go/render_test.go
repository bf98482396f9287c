package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chase3718/fretboard/fretboard"
)

func TestRenderBoardSingleNote(t *testing.T) {
	m := newBoard(t)
	require.NoError(t, m.SetSelectedNote("C"))
	out := renderBoard(m, nil)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, fretboard.NumStrings+2)
	assert.True(t, strings.HasPrefix(lines[1], "E  ────║────│"), lines[1])
	assert.Contains(t, lines[1], "─C──")
	assert.Contains(t, lines[2], "─C──", "B string, fret 1")
	assert.NotContains(t, out, "─D──")
	assert.Contains(t, lines[len(lines)-1], "••")
}

// withColor forces an ANSI colour profile so styles show up in the output.
func withColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestRenderBoardCursor(t *testing.T) {
	withColor(t)
	m := newBoard(t)
	plain := strings.Split(renderBoard(m, nil), "\n")
	withCursor := strings.Split(renderBoard(m, &cellPos{String: 2, Fret: 2}), "\n")
	require.Equal(t, len(plain), len(withCursor))

	for i := range plain {
		if i == 3 { // header row, then strings 0 and 1
			assert.NotEqual(t, plain[i], withCursor[i], "G string row shows the cursor")
			continue
		}
		assert.Equal(t, plain[i], withCursor[i], "row %d", i)
	}

	cs := m.Cell(2, 2)
	under := renderCell(cs, true)
	assert.NotEqual(t, renderCell(cs, false), under)
	assert.Equal(t, cursorStyle.Render("─A──"), under)
	assert.Contains(t, withCursor[3], under)
}

func TestRenderCell(t *testing.T) {
	assert.Equal(t, "────", renderCell(fretboard.CellState{Name: "C"}, false))
	assert.Equal(t, "─C──", renderCell(fretboard.CellState{Name: "C", Visible: true}, false))
	assert.Equal(t, "─C#─", renderCell(fretboard.CellState{Name: "C#", Visible: true, Root: true}, false))
}

func TestRenderSelection(t *testing.T) {
	m := newBoard(t)
	assert.Equal(t, "scale -  root -  box -  note -  all notes on  frets 12  tuning standard", renderSelection(m))
	assert.Equal(t, "", renderBoxes(m))

	require.NoError(t, m.SelectScale(0))
	require.NoError(t, m.SelectBox(2))
	assert.Equal(t, "boxes 1:0-3 2:2-5 [3:4-8] 4:7-10 5:9-12", renderBoxes(m))
}
