package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// Atom is an element kind. The zero value is not a valid atom.
type Atom uint8

const (
	Salt Atom = iota + 1
	Air
	Earth
	Fire
	Water
	Quicksilver
	Gold
	Silver
	Copper
	Iron
	Tin
	Lead
	Vitae
	Mors
	Repeat
	Quintessence
)

// on-disk codes equal the constant values above
var atomNames = map[Atom]string{
	Salt:         "salt",
	Air:          "air",
	Earth:        "earth",
	Fire:         "fire",
	Water:        "water",
	Quicksilver:  "quicksilver",
	Gold:         "gold",
	Silver:       "silver",
	Copper:       "copper",
	Iron:         "iron",
	Tin:          "tin",
	Lead:         "lead",
	Vitae:        "vitae",
	Mors:         "mors",
	Repeat:       "repeat",
	Quintessence: "quintessence",
}

// AtomFromCode resolves an on-disk atom code.
func AtomFromCode(code uint8) (Atom, bool) {
	a := Atom(code)
	_, ok := atomNames[a]
	return a, ok
}

func (a Atom) String() string {
	if name, ok := atomNames[a]; ok {
		return name
	}
	return "atom?"
}

func readAtom(r *lebin.Reader) (Atom, error) {
	code, err := r.U8()
	if err != nil {
		return 0, err
	}
	a, ok := AtomFromCode(code)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidEnumValue, "atom code %d", code)
	}
	return a, nil
}
