package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- Logger --------------------

// logger is the package-wide structured logger. Safe to use before
// initLogger is called; defaults to slog.Default().
var logger = slog.Default()

// initLogger configures the shared slog logger and calls slog.SetDefault so
// the stdlib log package also routes through the same handler.
func initLogger(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug, // include file:line in debug mode
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

// -------------------- Flags --------------------

var (
	flagConfig     string
	flagDebug      bool
	flagTuning     string
	flagFrets      int
	flagScalesFile string
	flagMIDI       bool
	flagSerial     string
	flagBaud       int
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:   "fretboard",
	Short: "Interactive guitar fretboard with scale boxes",
	Long: `Shows every note on a six-string fretboard and highlights a single note,
or a scale from a chosen root with its playable boxes. A MIDI keyboard can
select notes and a serial LED fretboard can mirror the display.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(os.Stderr, flagDebug)
	},
	RunE: runBoard,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/fretboard/config.toml)")
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging (adds source location)")
	pf.StringVar(&flagTuning, "tuning", "", "tuning name (standard, drop-d, open-g, dadgad)")
	pf.IntVar(&flagFrets, "frets", 0, "number of frets (5-24)")
	pf.StringVar(&flagScalesFile, "scales-file", "", "YAML file with extra scales")

	f := rootCmd.Flags()
	f.BoolVar(&flagMIDI, "midi", false, "select notes from a MIDI keyboard")
	f.StringVar(&flagSerial, "serial", "", "serial device of an LED fretboard, e.g. /dev/ttyACM0")
	f.IntVar(&flagBaud, "baud", 0, "serial baud rate")
	f.StringVar(&flagLogFile, "log-file", "", "log file while the board is shown (default <config dir>/fretboard.log)")

	rootCmd.AddCommand(scalesCmd, showCmd)
}

// loadSettings reads the config file and applies flags the user set.
func loadSettings(cmd *cobra.Command) (configFile, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("tuning") {
		cfg.Tuning = flagTuning
	}
	if flags.Changed("frets") {
		cfg.Frets = flagFrets
	}
	if flags.Changed("scales-file") {
		cfg.ScalesFile = flagScalesFile
	}
	if flags.Changed("midi") {
		cfg.MIDI.Enabled = flagMIDI
	}
	if flags.Changed("serial") {
		cfg.Serial.Enabled = flagSerial != ""
		cfg.Serial.Device = flagSerial
	}
	if flags.Changed("baud") {
		cfg.Serial.Baud = flagBaud
	}
	return normalizeConfig(cfg)
}

// openLogFile sends logs to a file so they do not draw over the board.
func openLogFile() (*os.File, error) {
	path := flagLogFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "fretboard.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return fh, nil
}

// -------------------- Main --------------------

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	initLogger(logFile, flagDebug)

	board, err := buildModel(cfg)
	if err != nil {
		logger.Error("fretboard: build model failed", "err", err)
		return err
	}
	logger.Info("fretboard starting",
		"tuning", cfg.Tuning,
		"offsets", board.Tuning().Offsets(),
		"frets", board.FretCount(),
		"scales", len(board.Scales()),
		"midi", cfg.MIDI.Enabled,
		"serial", cfg.Serial.Enabled,
		"serial_device", cfg.Serial.Device,
		"baud", cfg.Serial.Baud,
		"debug", flagDebug,
	)

	var (
		leds   frameQueue
		writer *frameWriter
	)
	if cfg.Serial.Enabled {
		sp, err := OpenSerial(cfg.Serial.Device, cfg.Serial.Baud)
		if err != nil {
			return err
		}
		defer sp.Close()
		// Leave the LEDs dark on exit.
		defer func() { _ = sp.SendFrame(EmptyFrame(0)) }()
		writer = newFrameWriter(sp)
		leds = writer
	}

	p := tea.NewProgram(newUIModel(board, leds), tea.WithAltScreen())

	if writer != nil {
		writer.onError = func(f Frame, err error) { p.Send(frameErrMsg{Seq: f.Seq, Err: err}) }
		writer.Start()
		defer writer.Close()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.MIDI.Enabled {
		// Callbacks run on MIDI goroutines; hand everything to the UI loop.
		onNote := func(pitch, velocity int) { p.Send(midiNoteMsg{Pitch: pitch, Velocity: velocity}) }
		onStatus := func(device string) { p.Send(midiStatusMsg{Device: device}) }
		watcher, err := NewMIDIWatcher(cfg.MIDI, onNote, onStatus)
		if err != nil {
			logger.Warn("midi watcher init failed, continuing without MIDI", "err", err)
		} else {
			defer func() {
				cancel()
				watcher.Close()
			}()
			go watcher.Run(ctx)
			logger.Info("running – waiting for MIDI device")
		}
	}

	if _, err := p.Run(); err != nil {
		logger.Error("ui: exited with error", "err", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("fretboard stopped", "selection", board.Selection())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
