package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// BondType is the raw bond bitfield. The value 1 is a normal bond; anything else is a
// triplex bond whose set bits name its colours.
type BondType uint8

const (
	BondNormal BondType = 0b0001

	TriplexRed    BondType = 0b0010
	TriplexBlack  BondType = 0b0100
	TriplexYellow BondType = 0b1000

	triplexMask = TriplexRed | TriplexBlack | TriplexYellow
)

// Triplex builds a triplex bond type from its colour flags.
func Triplex(red, black, yellow bool) BondType {
	var t BondType
	if red {
		t |= TriplexRed
	}
	if black {
		t |= TriplexBlack
	}
	if yellow {
		t |= TriplexYellow
	}
	return t
}

func (t BondType) IsTriplex() bool { return t != BondNormal }
func (t BondType) Red() bool       { return t.IsTriplex() && t&TriplexRed != 0 }
func (t BondType) Black() bool     { return t.IsTriplex() && t&TriplexBlack != 0 }
func (t BondType) Yellow() bool    { return t.IsTriplex() && t&TriplexYellow != 0 }

func (t BondType) String() string {
	if !t.IsTriplex() {
		return "normal"
	}
	s := "triplex"
	if t.Red() {
		s += "+red"
	}
	if t.Black() {
		s += "+black"
	}
	if t.Yellow() {
		s += "+yellow"
	}
	return s
}

// Bond joins two hexes of a molecule.
type Bond struct {
	Start HexIndex
	End   HexIndex
	Type  BondType
}

func readBondType(r *lebin.Reader) (BondType, error) {
	raw, err := r.U8()
	if err != nil {
		return 0, err
	}
	t := BondType(raw)
	if t == BondNormal {
		return t, nil
	}
	if t&^triplexMask != 0 {
		return 0, errors.Wrapf(ErrInvalidBondType, "bond bits %#08b", raw)
	}
	return t, nil
}

func readBond(r *lebin.Reader) (Bond, error) {
	t, err := readBondType(r)
	if err != nil {
		return Bond{}, err
	}
	start, err := readNarrowHex(r)
	if err != nil {
		return Bond{}, err
	}
	end, err := readNarrowHex(r)
	if err != nil {
		return Bond{}, err
	}
	return Bond{Start: start, End: end, Type: t}, nil
}
