package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// Instruction is one per-cycle action on a part's tape.
type Instruction uint8

const (
	Blank Instruction = iota
	Grab
	Drop
	RotateClockwise
	RotateAnticlockwise
	Extend
	Retract
	PivotClockwise
	PivotAnticlockwise
	Advance
	Retreat
	PeriodOverride
	Reset
	RepeatInstr
)

var instructionCodes = map[byte]Instruction{
	' ': Blank,
	'G': Grab,
	'g': Drop,
	'R': RotateClockwise,
	'r': RotateAnticlockwise,
	'E': Extend,
	'e': Retract,
	'P': PivotClockwise,
	'p': PivotAnticlockwise,
	'A': Advance,
	'a': Retreat,
	'O': PeriodOverride,
	'X': Reset,
	'C': RepeatInstr,
}

var instructionBytes = invert(instructionCodes)

var instructionNames = [...]string{
	Blank:               "blank",
	Grab:                "grab",
	Drop:                "drop",
	RotateClockwise:     "rotate-cw",
	RotateAnticlockwise: "rotate-ccw",
	Extend:              "extend",
	Retract:             "retract",
	PivotClockwise:      "pivot-cw",
	PivotAnticlockwise:  "pivot-ccw",
	Advance:             "advance",
	Retreat:             "retreat",
	PeriodOverride:      "period-override",
	Reset:               "reset",
	RepeatInstr:         "repeat",
}

// InstructionFromCode resolves an on-disk instruction byte.
func InstructionFromCode(code byte) (Instruction, bool) {
	i, ok := instructionCodes[code]
	return i, ok
}

// Code returns the byte the instruction is stored as.
func (i Instruction) Code() byte {
	return instructionBytes[i]
}

func (i Instruction) String() string {
	if int(i) < len(instructionNames) {
		return instructionNames[i]
	}
	return "instruction?"
}

// TapeEntry places an instruction at a cycle of a part's tape.
type TapeEntry struct {
	Instruction Instruction
	Cycle       int32
}

// readTapeEntry reads the cycle index first, then the instruction byte.
func readTapeEntry(r *lebin.Reader) (TapeEntry, error) {
	cycle, err := r.I32()
	if err != nil {
		return TapeEntry{}, err
	}
	code, err := r.U8()
	if err != nil {
		return TapeEntry{}, err
	}
	instr, ok := InstructionFromCode(code)
	if !ok {
		return TapeEntry{}, errors.Wrapf(ErrInvalidEnumValue, "instruction code %q at cycle %d", code, cycle)
	}
	return TapeEntry{Instruction: instr, Cycle: cycle}, nil
}
