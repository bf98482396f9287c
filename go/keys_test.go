package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyRegistryAction(t *testing.T) {
	reg := NewKeyRegistry(defaultKeyBindings())

	assert.Equal(t, actionNextScale, reg.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}))
	assert.Equal(t, actionPrevScale, reg.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'S'}}))
	assert.Equal(t, actionSelectNote, reg.Action(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	assert.Equal(t, actionSelectNote, reg.Action(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, actionClear, reg.Action(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, actionQuit, reg.Action(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.Equal(t, "", reg.Action(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}))
}

func TestKeyBindingsUnique(t *testing.T) {
	seen := map[string]string{}
	for _, b := range defaultKeyBindings() {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Fatalf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestKeyRegistryDoesNotAliasInput(t *testing.T) {
	bindings := defaultKeyBindings()
	reg := NewKeyRegistry(bindings)
	bindings[0].Action = "changed"
	assert.Equal(t, actionLeft, reg.Action(tea.KeyMsg{Type: tea.KeyLeft}))
}
