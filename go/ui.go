package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chase3718/fretboard/fretboard"
)

// -------------------- Messages --------------------

// midiNoteMsg carries a NoteOn from the MIDI watcher into the UI loop.
type midiNoteMsg struct {
	Pitch    int
	Velocity int
}

// midiStatusMsg reports the connected MIDI device, "" when disconnected.
type midiStatusMsg struct {
	Device string
}

// frameErrMsg reports a failed LED frame write.
type frameErrMsg struct {
	Seq byte
	Err error
}

// frameQueue takes board frames for delivery to the LED board.
// *frameWriter in production.
type frameQueue interface {
	Submit(f Frame)
}

// -------------------- Model --------------------

// uiModel is the Bubble Tea model. The fretboard model is only touched from
// Update, so every selection change happens on one goroutine.
type uiModel struct {
	board  *fretboard.Model
	keys   *KeyRegistry
	leds   frameQueue // nil when no LED board is attached
	seq    byte
	cursor cellPos

	midiDevice string
	status     string
	statusErr  bool
	showHelp   bool
	width      int
}

func newUIModel(board *fretboard.Model, leds frameQueue) uiModel {
	return uiModel{
		board: board,
		keys:  NewKeyRegistry(defaultKeyBindings()),
		leds:  leds,
	}
}

func (m uiModel) Init() tea.Cmd {
	m.sendFrame()
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case midiNoteMsg:
		pc := fretboard.PitchClassOf(msg.Pitch)
		m.board.SelectNote(pc)
		m.setStatus(fmt.Sprintf("midi %s", fretboard.MIDIName(msg.Pitch)))
		logger.Info("ui: midi note", "pitch", fretboard.MIDIName(msg.Pitch), "velocity", msg.Velocity, "selection", m.board.Selection())
		m.pushFrame()
		return m, nil

	case midiStatusMsg:
		m.midiDevice = msg.Device
		if msg.Device == "" {
			m.setError("midi disconnected")
		} else {
			m.setStatus("midi connected: " + msg.Device)
		}
		return m, nil

	case frameErrMsg:
		m.setError(fmt.Sprintf("led frame %d: %v", msg.Seq, msg.Err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m uiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.board
	action := m.keys.Action(msg)
	switch action {
	case actionQuit:
		return m, tea.Quit

	case actionHelp:
		m.showHelp = !m.showHelp
		return m, nil

	case actionLeft:
		m.cursor.Fret = max(m.cursor.Fret-1, 0)
		return m, nil
	case actionRight:
		m.cursor.Fret = min(m.cursor.Fret+1, b.FretCount())
		return m, nil
	case actionUp:
		m.cursor.String = max(m.cursor.String-1, 0)
		return m, nil
	case actionDown:
		m.cursor.String = min(m.cursor.String+1, fretboard.NumStrings-1)
		return m, nil

	case actionSelectNote:
		b.SelectNote(b.PitchClassAt(m.cursor.String, m.cursor.Fret))
		m.setStatus(m.noteStatus())

	case actionShowAll:
		b.SetShowAllNotes(!b.ShowAllNotes())
		m.setStatus(m.noteStatus())

	case actionNextScale, actionPrevScale:
		cur, ok := b.SelectedScale()
		i, ok := cycle(cur, ok, len(b.Scales()), step(action == actionNextScale))
		if ok {
			_ = b.SelectScale(i)
			m.setStatus("scale " + b.Scales()[i].Name)
		} else {
			b.ClearScale()
			m.setStatus("scale cleared")
		}

	case actionNextRoot, actionPrevRoot:
		cur, ok := b.SelectedRoot()
		i, ok := cycle(int(cur), ok, len(fretboard.NoteNames), step(action == actionNextRoot))
		if ok {
			b.SelectRoot(fretboard.PitchClass(i))
			m.setStatus("root " + fretboard.NoteNames[i])
		} else {
			b.ClearRoot()
			m.setStatus("root cleared")
		}

	case actionRootHere:
		pc := b.PitchClassAt(m.cursor.String, m.cursor.Fret)
		b.SelectRoot(pc)
		m.setStatus("root " + pc.Name())

	case actionNextBox, actionPrevBox:
		boxes := b.SelectedScaleBoxes()
		if len(boxes) == 0 {
			m.setError("selected scale has no boxes")
			return m, nil
		}
		cur, ok := b.SelectedBox()
		i, ok := cycle(cur, ok, len(boxes), step(action == actionNextBox))
		if ok {
			_ = b.SelectBox(i)
			m.setStatus(fmt.Sprintf("box %d (%s)", i+1, boxes[i]))
		} else {
			b.ClearBox()
			m.setStatus("box cleared")
		}

	case actionClear:
		b.ClearScale()
		b.ClearRoot()
		m.setStatus("scale cleared")

	case actionMoreFrets, actionFewerFrets:
		b.SetFretCount(b.FretCount() + step(action == actionMoreFrets))
		m.cursor.Fret = min(m.cursor.Fret, b.FretCount())
		m.setStatus(fmt.Sprintf("%d frets", b.FretCount()))

	default:
		return m, nil
	}

	logger.Debug("ui: action", "action", action, "selection", b.Selection())
	m.pushFrame()
	return m, nil
}

// pushFrame bumps the sequence number and queues the board for the LEDs.
// Frames are built and queued here on the UI loop so they stay in order.
func (m *uiModel) pushFrame() {
	if m.leds == nil {
		return
	}
	m.seq++
	m.sendFrame()
}

func (m uiModel) sendFrame() {
	if m.leds == nil {
		return
	}
	m.leds.Submit(BuildFrame(m.board, m.seq))
}

func (m *uiModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *uiModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m uiModel) noteStatus() string {
	if n := m.board.SelectedNote(); n != "" {
		return "note " + n
	}
	if m.board.ShowAllNotes() {
		return "showing all notes"
	}
	return "no note selected"
}

// cycle steps through none, 0 .. n-1 and wraps around.
func cycle(cur int, ok bool, n, delta int) (int, bool) {
	pos := 0
	if ok {
		pos = cur + 1
	}
	pos = ((pos+delta)%(n+1) + n + 1) % (n + 1)
	return pos - 1, pos > 0
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}

// -------------------- View --------------------

func (m uiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("fretboard"))
	if m.midiDevice != "" {
		b.WriteString(labelStyle.Render("  midi: " + m.midiDevice))
	}
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.board, &m.cursor))
	b.WriteString("\n")
	b.WriteString(renderSelection(m.board))
	b.WriteString("\n")
	if boxes := renderBoxes(m.board); boxes != "" {
		b.WriteString(boxes)
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.statusErr {
			b.WriteString(statusErr.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.showHelp {
		help := m.keys.helpLine()
		if m.width > 0 {
			help = lipgloss.NewStyle().Width(m.width).Render(help)
		}
		b.WriteString(help)
	} else {
		b.WriteString(keyStyle.Render("?") + " " + helpDescStyle.Render("help") + "  " +
			keyStyle.Render("q") + " " + helpDescStyle.Render("quit"))
	}
	b.WriteString("\n")
	return b.String()
}
