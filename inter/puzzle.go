package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/inter/perm"
	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// PuzzleVersion is the only .puzzle format version this decoder reads.
const PuzzleVersion = 3

// Puzzle is a decoded .puzzle file.
type Puzzle struct {
	Name              string
	CreatorID         uint64
	Reagents          []Molecule
	Products          []Molecule
	ProductMultiplier int32
	Permissions       perm.Set
	// ProductionInfo is nil unless the puzzle uses production chambers.
	ProductionInfo *ProductionInfo
}

// DecodePuzzle decodes a complete .puzzle buffer.
// Any error aborts the decode; a nil Puzzle is returned with it.
// Bytes after the last field (board visuals) are ignored.
func DecodePuzzle(raw []byte) (*Puzzle, error) {
	r := lebin.NewReader(raw)

	version, err := r.I32()
	if err != nil {
		return nil, errors.Wrap(err, "version")
	}
	if version != PuzzleVersion {
		return nil, errors.Wrapf(ErrFormatVersionMismatch, "puzzle version %d, want %d", version, PuzzleVersion)
	}

	p := &Puzzle{}
	if p.Name, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "name")
	}
	if p.CreatorID, err = r.U64(); err != nil {
		return nil, errors.Wrap(err, "creator id")
	}
	mask, err := r.U64()
	if err != nil {
		return nil, errors.Wrap(err, "permissions")
	}
	p.Permissions = perm.Set(mask)

	if p.Reagents, err = lebin.List(r, readMolecule); err != nil {
		return nil, errors.Wrap(err, "reagents")
	}
	if p.Products, err = lebin.List(r, readMolecule); err != nil {
		return nil, errors.Wrap(err, "products")
	}
	if p.ProductMultiplier, err = r.I32(); err != nil {
		return nil, errors.Wrap(err, "product multiplier")
	}

	hasProduction, err := r.Bool()
	if err != nil {
		return nil, errors.Wrap(err, "production info")
	}
	if hasProduction {
		if p.ProductionInfo, err = readProductionInfo(r); err != nil {
			return nil, errors.Wrap(err, "production info")
		}
	}
	return p, nil
}
