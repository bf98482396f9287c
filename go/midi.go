package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const midiRescanInterval = 1000 * time.Millisecond

// -------------------- MIDIWatcher --------------------

// MIDIWatcher monitors available MIDI inputs and keeps a connection to the
// preferred device. It handles hot-plug (new device appears) and hot-unplug
// (device disappears) transparently.
//
// onNote is called from the listener goroutine for every NoteOn. onStatus is
// called with the connected device name, or "" after a disconnect. Callers
// forward both to the UI loop rather than touching the board directly.
type MIDIWatcher struct {
	mu           sync.Mutex
	drv          *rtmididrv.Driver
	inPort       drivers.In
	stopFn       func()
	connected    bool
	selectedName string
	lastRescanAt time.Time

	preferred []string
	excluded  []string

	onNote   func(pitch, velocity int)
	onStatus func(device string)
}

// NewMIDIWatcher creates a watcher and initialises the underlying rtmidi
// driver. Call Close() when done.
func NewMIDIWatcher(cfg midiSettings, onNote func(pitch, velocity int), onStatus func(device string)) (*MIDIWatcher, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	return &MIDIWatcher{
		drv:       drv,
		preferred: cfg.Preferred,
		excluded:  cfg.Excluded,
		onNote:    onNote,
		onStatus:  onStatus,
	}, nil
}

// Close shuts down the active MIDI connection and the rtmidi driver.
func (m *MIDIWatcher) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeConn()
	m.drv.Close()
}

// Run polls Tick until ctx is done; Tick itself rate-limits rescans.
func (m *MIDIWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(midiRescanInterval / 4)
	defer ticker.Stop()
	m.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Tick scans for devices, auto-connects to a preferred one, and detects
// disappearances.
func (m *MIDIWatcher) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if !m.lastRescanAt.IsZero() && now.Sub(m.lastRescanAt) < midiRescanInterval {
		return
	}
	m.lastRescanAt = now

	inputs := m.listInputs()

	if m.connected {
		for _, n := range inputs {
			if n == m.selectedName {
				return
			}
		}
		logger.Warn("midi: device disappeared", "device", m.selectedName)
		m.closeConn()
		m.lastRescanAt = time.Time{} // rescan immediately next tick
		if m.onStatus != nil {
			go m.onStatus("")
		}
		return
	}

	if len(inputs) == 0 {
		return
	}
	cand, ok := pickPreferred(inputs, m.preferred)
	if !ok {
		logger.Debug("midi: no preferred device found", "available", strings.Join(inputs, ", "))
		return
	}
	if err := m.openByName(cand); err != nil {
		logger.Error("midi: connect failed", "device", cand, "err", err)
	}
}

// -------------------- internal --------------------

func (m *MIDIWatcher) listInputs() []string {
	ins, err := m.drv.Ins()
	if err != nil {
		logger.Error("midi: list inputs failed", "err", err)
		return nil
	}
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	names = filterExcluded(names, m.excluded)
	logger.Debug("midi: inputs found", "count", len(names), "devices", strings.Join(names, ", "))
	return names
}

func filterExcluded(names, excluded []string) []string {
	var out []string
	for _, name := range names {
		skip := false
		for _, pat := range excluded {
			if containsCI(name, pat) {
				skip = true
				break
			}
		}
		if skip {
			logger.Debug("midi: input excluded", "device", name)
			continue
		}
		out = append(out, name)
	}
	return out
}

// pickPreferred returns the first input matching a preferred pattern, or the
// only input when exactly one exists.
func pickPreferred(inputs, preferred []string) (string, bool) {
	for _, pat := range preferred {
		for _, name := range inputs {
			if containsCI(name, pat) {
				return name, true
			}
		}
	}
	if len(inputs) == 1 {
		return inputs[0], true
	}
	return "", false
}

func (m *MIDIWatcher) closeConn() {
	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}
	if m.inPort != nil {
		_ = m.inPort.Close()
		m.inPort = nil
	}
	m.connected = false
	m.selectedName = ""
}

func (m *MIDIWatcher) openByName(name string) error {
	ins, err := m.drv.Ins()
	if err != nil {
		return err
	}
	var found drivers.In
	for _, in := range ins {
		if in.String() == name {
			found = in
			break
		}
	}
	if found == nil {
		return fmt.Errorf("input %q not found", name)
	}
	if err := found.Open(); err != nil {
		return fmt.Errorf("open %q: %w", name, err)
	}

	stop, err := midi.ListenTo(found, func(msg midi.Message, _ int32) {
		if pitch, vel, ok := noteOn(msg); ok {
			logger.Debug("midi: note on", "key", pitch, "vel", vel)
			m.onNote(pitch, vel)
			return
		}
		logger.Debug("midi: unhandled message", "msg", msg.String())
	}, midi.HandleError(func(listenErr error) {
		logger.Warn("midi: listener error", "device", name, "err", listenErr)
		// closeConn must not run on the listener goroutine.
		go func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.connected && m.selectedName == name {
				m.closeConn()
				m.lastRescanAt = time.Time{}
				if m.onStatus != nil {
					go m.onStatus("")
				}
			}
		}()
	}))
	if err != nil {
		_ = found.Close()
		return fmt.Errorf("listen %q: %w", name, err)
	}

	m.inPort = found
	m.stopFn = stop
	m.connected = true
	m.selectedName = name
	logger.Info("midi: connected", "device", name)
	if m.onStatus != nil {
		go m.onStatus(name)
	}
	return nil
}

// noteOn extracts key and velocity from a NoteOn with non-zero velocity.
func noteOn(msg midi.Message) (pitch, velocity int, ok bool) {
	var ch, key, vel uint8
	if msg.GetNoteStart(&ch, &key, &vel) {
		return int(key), int(vel), true
	}
	return 0, 0, false
}

// -------------------- utility --------------------

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
