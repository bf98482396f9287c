package main

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionQuit       = "quit"
	actionLeft       = "left"
	actionRight      = "right"
	actionUp         = "up"
	actionDown       = "down"
	actionSelectNote = "select-note"
	actionShowAll    = "show-all"
	actionNextScale  = "next-scale"
	actionPrevScale  = "prev-scale"
	actionNextRoot   = "next-root"
	actionPrevRoot   = "prev-root"
	actionRootHere   = "root-here"
	actionNextBox    = "next-box"
	actionPrevBox    = "prev-box"
	actionClear      = "clear"
	actionMoreFrets  = "more-frets"
	actionFewerFrets = "fewer-frets"
	actionHelp       = "help"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// Action returns the action bound to the pressed key, or "". Keys are
// case sensitive: s and S are different bindings.
func (r *KeyRegistry) Action(msg tea.KeyMsg) string {
	pressed := msg.String()
	for _, b := range r.bindings {
		if slices.Contains(b.Keys, pressed) {
			return b.Action
		}
	}
	return ""
}

// helpLine renders "key desc" pairs, first key of each binding only.
func (r *KeyRegistry) helpLine() string {
	parts := make([]string, 0, len(r.bindings))
	for _, b := range r.bindings {
		parts = append(parts, keyStyle.Render(b.Keys[0])+" "+helpDescStyle.Render(b.Description))
	}
	return strings.Join(parts, "  ")
}

func defaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"left", "h"}, Action: actionLeft, Description: "fret down"},
		{Keys: []string{"right", "l"}, Action: actionRight, Description: "fret up"},
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "string up"},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "string down"},
		{Keys: []string{"enter", " "}, Action: actionSelectNote, Description: "select note"},
		{Keys: []string{"a"}, Action: actionShowAll, Description: "all notes"},
		{Keys: []string{"s"}, Action: actionNextScale, Description: "next scale"},
		{Keys: []string{"S"}, Action: actionPrevScale, Description: "prev scale"},
		{Keys: []string{"r"}, Action: actionNextRoot, Description: "next root"},
		{Keys: []string{"R"}, Action: actionPrevRoot, Description: "prev root"},
		{Keys: []string{"o"}, Action: actionRootHere, Description: "root = cursor"},
		{Keys: []string{"b"}, Action: actionNextBox, Description: "next box"},
		{Keys: []string{"B"}, Action: actionPrevBox, Description: "prev box"},
		{Keys: []string{"x", "esc"}, Action: actionClear, Description: "clear scale"},
		{Keys: []string{"+", "="}, Action: actionMoreFrets, Description: "more frets"},
		{Keys: []string{"-"}, Action: actionFewerFrets, Description: "fewer frets"},
		{Keys: []string{"?"}, Action: actionHelp, Description: "help"},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit"},
	}
}
