package fretboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// scaleFile is the YAML layout of a user scale catalog:
//
//	scales:
//	  - name: Dorian
//	    intervals: [0, 2, 3, 5, 7, 9, 10]
//	    boxes:
//	      - {min_fret: 0, max_fret: 4}
type scaleFile struct {
	Scales []Scale `yaml:"scales"`
}

// LoadScales decodes a YAML scale catalog. Every scale is validated against
// MaxFrets; the model drops boxes that do not fit its current fret count.
func LoadScales(r io.Reader) ([]Scale, error) {
	var f scaleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode scales: %w", err)
	}
	for _, s := range f.Scales {
		if err := s.Validate(MaxFrets); err != nil {
			return nil, err
		}
	}
	return f.Scales, nil
}

// LoadScalesFile reads a YAML scale catalog from path.
func LoadScalesFile(path string) ([]Scale, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scales file: %w", err)
	}
	defer fh.Close()
	scales, err := LoadScales(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scales, nil
}

// MergeScales appends extra to base. A scale in extra whose name matches one
// in base replaces it in place.
func MergeScales(base, extra []Scale) []Scale {
	out := make([]Scale, len(base), len(base)+len(extra))
	copy(out, base)
	for _, s := range extra {
		replaced := false
		for i := range out {
			if out[i].Name == s.Name {
				out[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, s)
		}
	}
	return out
}
