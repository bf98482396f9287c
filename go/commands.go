package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chase3718/fretboard/fretboard"
)

// =============================================================================
// SCALES COMMAND - list the scale catalog
// =============================================================================

var scalesRoot string

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List the available scales",
	Long:  `Lists the built-in scales plus any from scales_file. With --root the intervals are spelled as notes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		board, err := buildModel(cfg)
		if err != nil {
			return err
		}
		var root *fretboard.PitchClass
		if scalesRoot != "" {
			pc, err := fretboard.ParsePitchClass(scalesRoot)
			if err != nil {
				return err
			}
			root = &pc
		}
		return writeScales(cmd.OutOrStdout(), board.Scales(), root)
	},
}

func writeScales(w io.Writer, scales []fretboard.Scale, root *fretboard.PitchClass) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range scales {
		notes := make([]string, len(s.Intervals))
		for j, iv := range s.Intervals {
			if root != nil {
				notes[j] = fretboard.PitchClassOf(int(*root) + iv).Name()
			} else {
				notes[j] = strconv.Itoa(iv)
			}
		}
		boxes := make([]string, len(s.Boxes))
		for j, b := range s.Boxes {
			boxes[j] = b.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, s.Name, strings.Join(notes, " "), strings.Join(boxes, " "))
	}
	return tw.Flush()
}

// =============================================================================
// SHOW COMMAND - print a static board
// =============================================================================

type showOptions struct {
	Scale string
	Root  string
	Box   int
	Note  string
	All   bool
}

var showOpts showOptions

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the fretboard for a scale or note and exit",
	Example: `  fretboard show --scale "minor pentatonic" --root E --box 2
  fretboard show --note A --frets 15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		board, err := buildModel(cfg)
		if err != nil {
			return err
		}
		if err := applyShowOptions(board, showOpts); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, renderBoard(board, nil))
		fmt.Fprintln(out, renderSelection(board))
		if boxes := renderBoxes(board); boxes != "" {
			fmt.Fprintln(out, boxes)
		}
		return nil
	},
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showOpts.Scale, "scale", "", "scale name, name prefix or 1-based number from the scales command")
	f.StringVar(&showOpts.Root, "root", "", "scale root note, e.g. E or Bb")
	f.IntVar(&showOpts.Box, "box", 0, "1-based box of the scale")
	f.StringVar(&showOpts.Note, "note", "", "highlight a single note")
	f.BoolVar(&showOpts.All, "all", false, "show all notes")

	scalesCmd.Flags().StringVar(&scalesRoot, "root", "", "spell intervals from this root")
}

// applyShowOptions applies the selection in the order the board would see
// it from clicks: note or show-all first, then scale, root and box.
func applyShowOptions(board *fretboard.Model, opts showOptions) error {
	if opts.All {
		board.SetShowAllNotes(true)
	}
	if opts.Note != "" {
		pc, err := fretboard.ParsePitchClass(opts.Note)
		if err != nil {
			return err
		}
		board.SelectNote(pc)
	}
	if opts.Scale != "" {
		i, err := resolveScale(board.Scales(), opts.Scale)
		if err != nil {
			return err
		}
		if err := board.SelectScale(i); err != nil {
			return err
		}
	}
	if opts.Root != "" {
		pc, err := fretboard.ParsePitchClass(opts.Root)
		if err != nil {
			return err
		}
		board.SelectRoot(pc)
	}
	if opts.Box > 0 {
		if err := board.SelectBox(opts.Box - 1); err != nil {
			return fmt.Errorf("--box %d: %w", opts.Box, err)
		}
	}
	return nil
}

// resolveScale finds a scale by 1-based number, exact name or unique name
// prefix, ignoring case.
func resolveScale(scales []fretboard.Scale, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(scales) {
			return 0, fmt.Errorf("%w: scale %d of %d", fretboard.ErrOutOfRange, n, len(scales))
		}
		return n - 1, nil
	}
	for i, s := range scales {
		if strings.EqualFold(s.Name, arg) {
			return i, nil
		}
	}
	match := -1
	for i, s := range scales {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(arg)) {
			if match >= 0 {
				return 0, fmt.Errorf("scale %q is ambiguous: %s, %s", arg, scales[match].Name, s.Name)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("unknown scale %q", arg)
	}
	return match, nil
}
