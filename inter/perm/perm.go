// Package perm defines the capability mask a puzzle grants to solvers: which arms, glyphs
// and instruction classes may be placed.
//
// The mask is stored verbatim. Bits this package has no name for are kept as they are so
// files written by newer game versions decode without loss.
package perm

import (
	"math/bits"
	"strconv"
	"strings"
)

// Set is a 64-bit permission mask.
type Set uint64

const (
	SimpleArm     Set = 0x00000001
	MultiArms     Set = 0x00000002
	PistonArm     Set = 0x00000004
	Track         Set = 0x00000008
	Bonder        Set = 0x00000100
	Unbonder      Set = 0x00000200
	MultiBonder   Set = 0x00000400
	TriplexBonder Set = 0x00000800
	Calcification Set = 0x00001000
	Duplication   Set = 0x00002000
	Projection    Set = 0x00004000
	Purification  Set = 0x00008000
	Animismus     Set = 0x00010000
	Disposal      Set = 0x00020000
	Quintessence  Set = 0x00040000

	GrabTurnInstructions Set = 0x00400000
	DropInstruction      Set = 0x00800000
	ResetInstruction     Set = 0x01000000
	RepeatInstruction    Set = 0x02000000
	PivotInstructions    Set = 0x04000000

	Berlo Set = 0x10000000
)

// Default is the mask the puzzle editor starts from.
const Default = SimpleArm | MultiArms | PistonArm | Track |
	Bonder | Unbonder | MultiBonder | Calcification |
	GrabTurnInstructions | DropInstruction | ResetInstruction | RepeatInstruction | PivotInstructions

var names = map[Set]string{
	SimpleArm:            "simple-arm",
	MultiArms:            "multi-arms",
	PistonArm:            "piston-arm",
	Track:                "track",
	Bonder:               "bonder",
	Unbonder:             "unbonder",
	MultiBonder:          "multi-bonder",
	TriplexBonder:        "triplex-bonder",
	Calcification:        "calcification",
	Duplication:          "duplication",
	Projection:           "projection",
	Purification:         "purification",
	Animismus:            "animismus",
	Disposal:             "disposal",
	Quintessence:         "quintessence",
	GrabTurnInstructions: "grab-turn-instructions",
	DropInstruction:      "drop-instruction",
	ResetInstruction:     "reset-instruction",
	RepeatInstruction:    "repeat-instruction",
	PivotInstructions:    "pivot-instructions",
	Berlo:                "berlo",
}

// known is the union of every named flag.
var known = func() Set {
	var s Set
	for f := range names {
		s |= f
	}
	return s
}()

// Has reports whether every bit of f is set.
func (s Set) Has(f Set) bool {
	return s&f == f
}

// Bit reports whether bit i (0..63) is set.
func (s Set) Bit(i uint) bool {
	return i < 64 && s&(1<<i) != 0
}

// Unknown returns the bits that have no name.
func (s Set) Unknown() Set {
	return s &^ known
}

// Names lists the named flags that are set, lowest bit first.
func (s Set) Names() []string {
	res := []string{}
	for _, i := range s.Indices() {
		if name, ok := names[Set(1)<<uint(i)]; ok {
			res = append(res, name)
		}
	}
	return res
}

// Indices returns the positions of all set bits in ascending order.
func (s Set) Indices() []int {
	res := make([]int, 0, bits.OnesCount64(uint64(s)))
	for v := uint64(s); v != 0; v &= v - 1 {
		res = append(res, bits.TrailingZeros64(v))
	}
	return res
}

func (s Set) String() string {
	parts := s.Names()
	for _, i := range s.Unknown().Indices() {
		parts = append(parts, "bit"+strconv.Itoa(i))
	}
	return strings.Join(parts, "|")
}
