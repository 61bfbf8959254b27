package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// Molecule is a set of atoms on hexes plus the bonds between them.
type Molecule struct {
	// Atoms holds one atom per hex. A later entry for the same hex replaces an earlier one.
	Atoms map[HexIndex]Atom
	// Bonds is a set: exact duplicates are dropped, first occurrence order is kept.
	Bonds []Bond
}

type atomEntry struct {
	pos  HexIndex
	atom Atom
}

func readAtomEntry(r *lebin.Reader) (atomEntry, error) {
	a, err := readAtom(r)
	if err != nil {
		return atomEntry{}, err
	}
	pos, err := readNarrowHex(r)
	if err != nil {
		return atomEntry{}, err
	}
	return atomEntry{pos: pos, atom: a}, nil
}

func readMolecule(r *lebin.Reader) (Molecule, error) {
	entries, err := lebin.List(r, readAtomEntry)
	if err != nil {
		return Molecule{}, errors.Wrap(err, "atoms")
	}
	atoms := make(map[HexIndex]Atom, len(entries))
	for _, e := range entries {
		atoms[e.pos] = e.atom
	}

	bonds, err := lebin.List(r, readBond)
	if err != nil {
		return Molecule{}, errors.Wrap(err, "bonds")
	}
	return Molecule{Atoms: atoms, Bonds: dedupBonds(bonds)}, nil
}

func dedupBonds(bonds []Bond) []Bond {
	seen := make(map[Bond]struct{}, len(bonds))
	res := bonds[:0]
	for _, b := range bonds {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		res = append(res, b)
	}
	return res
}
