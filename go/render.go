package main

import (
	"fmt"
	"strings"

	"github.com/chase3718/fretboard/fretboard"
)

// cellPos is a cursor position on the board.
type cellPos struct {
	String int
	Fret   int
}

var (
	singleMarkers = map[int]bool{3: true, 5: true, 7: true, 9: true, 15: true, 17: true, 19: true, 21: true}
	doubleMarkers = map[int]bool{12: true, 24: true}
)

// renderBoard draws the grid, string 0 on top. cursor may be nil.
func renderBoard(m *fretboard.Model, cursor *cellPos) string {
	var b strings.Builder
	grid := m.Grid()

	b.WriteString("   ")
	for f := range grid.Strings[0].Frets {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-4d", f)))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for _, row := range grid.Strings {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-2s", m.NoteName(row.Index, 0))))
		b.WriteString(" ")
		for _, c := range row.Frets {
			here := cursor != nil && cursor.String == c.String && cursor.Fret == c.Fret
			b.WriteString(renderCell(m.Cell(c.String, c.Fret), here))
			if c.Fret == 0 {
				b.WriteString(nutStyle.Render("║"))
			} else {
				b.WriteString(wireStyle.Render("│"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("   ")
	for f := range grid.Strings[0].Frets {
		mark := ""
		switch {
		case doubleMarkers[f]:
			mark = "••"
		case singleMarkers[f]:
			mark = "•"
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf(" %-3s", mark)))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	return b.String()
}

func renderCell(cs fretboard.CellState, cursor bool) string {
	text := "────"
	st := wireStyle
	if cs.Visible {
		if len(cs.Name) == 1 {
			text = "─" + cs.Name + "──"
		} else {
			text = "─" + cs.Name + "─"
		}
		st = noteStyle
		if cs.Root {
			st = rootStyle
		}
	}
	if cs.InBox {
		st = st.Background(colorBox)
	}
	if cursor {
		st = cursorStyle
	}
	return st.Render(text)
}

// renderSelection summarises the selection state in one line.
func renderSelection(m *fretboard.Model) string {
	sel := m.Selection()
	dash := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	all := "off"
	if sel.ShowAllNotes {
		all = "on"
	}
	return fmt.Sprintf("scale %s  root %s  box %s  note %s  all notes %s  frets %d  tuning %s",
		dash(sel.Scale), dash(sel.Root), dash(sel.Box), dash(sel.Note), all, m.FretCount(), m.Tuning().Name)
}

// renderBoxes lists the boxes of the selected scale, marking the active one.
func renderBoxes(m *fretboard.Model) string {
	boxes := m.SelectedScaleBoxes()
	if len(boxes) == 0 {
		return ""
	}
	cur, ok := m.SelectedBox()
	parts := make([]string, len(boxes))
	for i, bx := range boxes {
		label := fmt.Sprintf("%d:%s", i+1, bx)
		if ok && i == cur {
			label = boxStyle.Bold(true).Render("[" + label + "]")
		}
		parts[i] = label
	}
	return "boxes " + strings.Join(parts, " ")
}
