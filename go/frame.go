package main

import (
	"encoding/binary"

	"github.com/chase3718/fretboard/fretboard"
)

const (
	NumStrings   = fretboard.NumStrings
	NoBox        = 255
	CmdShowBoard = 0x20
	SOF0         = 0xAA
	SOF1         = 0x55
)

// Frame is a full-state snapshot of the LED fretboard sent to the Arduino in
// one bulk transfer. Bit f of a mask is fret f (0 = open string).
type Frame struct {
	Lit    [NumStrings]uint32 // highlighted notes
	Root   [NumStrings]uint32 // root notes, drawn in the root colour
	BoxMin byte               // NoBox when no box is selected
	BoxMax byte
	Seq    byte
}

// Encode builds the on-wire representation:
//
//	[SOF0][SOF1][LEN][CMD][lit0..5 LE32][root0..5 LE32][BoxMin][BoxMax][Seq][CKS]
func (f *Frame) Encode() []byte {
	payload := make([]byte, 0, NumStrings*8+3)
	for i := 0; i < NumStrings; i++ {
		payload = binary.LittleEndian.AppendUint32(payload, f.Lit[i])
	}
	for i := 0; i < NumStrings; i++ {
		payload = binary.LittleEndian.AppendUint32(payload, f.Root[i])
	}
	payload = append(payload, f.BoxMin, f.BoxMax, f.Seq)

	length := byte(len(payload) + 1) // +1 for CMD byte
	cks := length ^ CmdShowBoard
	for _, b := range payload {
		cks ^= b
	}

	out := []byte{SOF0, SOF1, length, CmdShowBoard}
	out = append(out, payload...)
	out = append(out, cks)
	return out
}
