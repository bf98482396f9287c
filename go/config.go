package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chase3718/fretboard/fretboard"
)

// -------------------- Config file --------------------

type configFile struct {
	Tuning       string         `toml:"tuning"`
	Frets        int            `toml:"frets"`
	ShowAllNotes bool           `toml:"show_all_notes"`
	ScalesFile   string         `toml:"scales_file"`
	MIDI         midiSettings   `toml:"midi"`
	Serial       serialSettings `toml:"serial"`
}

type midiSettings struct {
	Enabled   bool     `toml:"enabled"`
	Preferred []string `toml:"preferred"` // picked first when several inputs exist
	Excluded  []string `toml:"excluded"`  // virtual/system ports, never auto-connected
}

type serialSettings struct {
	Enabled bool   `toml:"enabled"`
	Device  string `toml:"device"`
	Baud    int    `toml:"baud"`
}

const defaultConfigTOML = `# fretboard settings

# standard, drop-d, open-g or dadgad
tuning = "standard"
# 5..24
frets = 12
show_all_notes = true
# optional YAML file with extra scales
scales_file = ""

[midi]
enabled = false
preferred = ["Launchkey", "Novation"]
excluded = ["Midi Through", "Through Port", "Dummy"]

[serial]
enabled = false
device = "/dev/ttyACM0"
baud = 500000
`

func defaultConfig() configFile {
	return configFile{
		Tuning:       fretboard.StandardTuning.Name,
		Frets:        fretboard.DefaultFrets,
		ShowAllNotes: true,
		MIDI: midiSettings{
			Preferred: []string{"Launchkey", "Novation"},
			Excluded:  []string{"Midi Through", "Through Port", "Dummy"},
		},
		Serial: serialSettings{
			Device: "/dev/ttyACM0",
			Baud:   500000,
		},
	}
}

// configDir returns the fretboard config directory under
// XDG_CONFIG_HOME or ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "fretboard"), nil
}

func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config at path, or at the default location when path
// is empty. A missing default file is created with the defaults; a missing
// explicit path is an error.
func loadConfig(path string) (configFile, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return defaultConfig(), err
		}
		path = p
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
				return defaultConfig(), fmt.Errorf("create config dir: %w", mkErr)
			}
			if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
				return defaultConfig(), fmt.Errorf("write default config: %w", wErr)
			}
			logger.Info("config: wrote defaults", "path", path)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return defaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parseConfig decodes TOML over the defaults and validates the result.
func parseConfig(data []byte) (configFile, error) {
	cfg := defaultConfig()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return defaultConfig(), fmt.Errorf("parse config.toml: %w", err)
	}
	for _, k := range meta.Undecoded() {
		logger.Warn("config: unknown key ignored", "key", k.String())
	}
	return normalizeConfig(cfg)
}

func normalizeConfig(cfg configFile) (configFile, error) {
	cfg.Tuning = strings.ToLower(strings.TrimSpace(cfg.Tuning))
	if cfg.Tuning == "" {
		cfg.Tuning = fretboard.StandardTuning.Name
	}
	if _, err := fretboard.LookupTuning(cfg.Tuning); err != nil {
		return cfg, err
	}
	if clamped := fretboard.ClampFrets(cfg.Frets); clamped != cfg.Frets {
		logger.Warn("config: frets out of range, clamped", "frets", cfg.Frets, "using", clamped)
		cfg.Frets = clamped
	}
	cfg.ScalesFile = strings.TrimSpace(cfg.ScalesFile)
	if cfg.Serial.Enabled && cfg.Serial.Device == "" {
		return cfg, fmt.Errorf("serial.device is required when serial is enabled")
	}
	if cfg.Serial.Baud <= 0 {
		cfg.Serial.Baud = 500000
	}
	return cfg, nil
}

// buildModel constructs the fretboard model described by cfg.
func buildModel(cfg configFile) (*fretboard.Model, error) {
	tuning, err := fretboard.LookupTuning(cfg.Tuning)
	if err != nil {
		return nil, err
	}
	scales := fretboard.DefaultScales()
	if cfg.ScalesFile != "" {
		extra, err := fretboard.LoadScalesFile(cfg.ScalesFile)
		if err != nil {
			return nil, err
		}
		scales = fretboard.MergeScales(scales, extra)
		logger.Info("config: loaded scales", "path", cfg.ScalesFile, "count", len(extra))
	}
	m := fretboard.NewModel(tuning, scales, cfg.Frets)
	m.SetShowAllNotes(cfg.ShowAllNotes)
	return m, nil
}
