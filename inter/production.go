package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// ChamberType is the size class of a production chamber.
type ChamberType uint8

const (
	ChamberSmall ChamberType = iota + 1
	ChamberSmallWide
	ChamberSmallWider
	ChamberMedium
	ChamberMediumWide
	ChamberLarge
)

var chamberTypes = map[string]ChamberType{
	"Small":      ChamberSmall,
	"SmallWide":  ChamberSmallWide,
	"SmallWider": ChamberSmallWider,
	"Medium":     ChamberMedium,
	"MediumWide": ChamberMediumWide,
	"Large":      ChamberLarge,
}

var chamberNames = invert(chamberTypes)

// ChamberTypeFromName resolves the exact on-disk chamber name.
func ChamberTypeFromName(name string) (ChamberType, bool) {
	t, ok := chamberTypes[name]
	return t, ok
}

func (t ChamberType) String() string {
	return chamberNames[t]
}

// Chamber is one production area of a multi-molecule puzzle.
type Chamber struct {
	Pos  HexIndex
	Type ChamberType
}

// Conduit connects two chambers through an ordered path of hexes.
type Conduit struct {
	PosA  HexIndex
	PosB  HexIndex
	Hexes []HexIndex
}

// ProductionInfo is present only on puzzles that use production chambers.
type ProductionInfo struct {
	Isolation bool
	Chambers  []Chamber
	Conduits  []Conduit
}

func readChamber(r *lebin.Reader) (Chamber, error) {
	pos, err := readNarrowHex(r)
	if err != nil {
		return Chamber{}, err
	}
	name, err := r.String()
	if err != nil {
		return Chamber{}, err
	}
	t, ok := ChamberTypeFromName(name)
	if !ok {
		return Chamber{}, errors.Wrapf(ErrInvalidEnumValue, "chamber type %q", name)
	}
	return Chamber{Pos: pos, Type: t}, nil
}

func readConduit(r *lebin.Reader) (Conduit, error) {
	a, err := readNarrowHex(r)
	if err != nil {
		return Conduit{}, err
	}
	b, err := readNarrowHex(r)
	if err != nil {
		return Conduit{}, err
	}
	hexes, err := lebin.List(r, readNarrowHex)
	if err != nil {
		return Conduit{}, errors.Wrap(err, "path")
	}
	return Conduit{PosA: a, PosB: b, Hexes: hexes}, nil
}

// readProductionInfo reads the body that follows a true presence flag.
func readProductionInfo(r *lebin.Reader) (*ProductionInfo, error) {
	// shrink-left and shrink-right only affect how the board is drawn
	for i := 0; i < 2; i++ {
		if _, err := r.Bool(); err != nil {
			return nil, err
		}
	}
	isolation, err := r.Bool()
	if err != nil {
		return nil, err
	}
	chambers, err := lebin.List(r, readChamber)
	if err != nil {
		return nil, errors.Wrap(err, "chambers")
	}
	conduits, err := lebin.List(r, readConduit)
	if err != nil {
		return nil, errors.Wrap(err, "conduits")
	}
	return &ProductionInfo{
		Isolation: isolation,
		Chambers:  chambers,
		Conduits:  conduits,
	}, nil
}

func invert[K, V comparable](m map[K]V) map[V]K {
	res := make(map[V]K, len(m))
	for k, v := range m {
		res[v] = k
	}
	return res
}
