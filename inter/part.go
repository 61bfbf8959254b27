package inter

import (
	"math"

	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// PartType is the kind of mechanism or glyph a part is.
type PartType uint8

const (
	// IO
	PartInput PartType = iota + 1
	PartOutput
	PartPolymerOutput
	// Mechanisms
	PartArm
	PartBiArm
	PartTriArm
	PartHexArm
	PartPistonArm
	PartTrack
	PartBerlo
	// Glyphs
	PartEquilibrium
	PartBonding
	PartMultiBonding
	PartDebonding
	PartCalcification
	PartProjection
	PartPurification
	PartDuplication
	PartAnimismus
	PartUnification
	PartDispersion
	PartTriplexBonding
	PartDisposal
	// Misc
	PartConduit
)

// On-disk part names whose records carry extra trailing fields.
const (
	trackPartName   = "track"
	conduitPartName = "pipe"
)

var partTypes = map[string]PartType{
	"input":                PartInput,
	"out-std":              PartOutput,
	"out-rep":              PartPolymerOutput,
	"arm1":                 PartArm,
	"arm2":                 PartBiArm,
	"arm3":                 PartTriArm,
	"arm6":                 PartHexArm,
	"piston":               PartPistonArm,
	trackPartName:          PartTrack,
	"baron":                PartBerlo,
	"glyph-marker":         PartEquilibrium,
	"bonder":               PartBonding,
	"bonder-speed":         PartMultiBonding,
	"unbonder":             PartDebonding,
	"glyph-calcification":  PartCalcification,
	"glyph-projection":     PartProjection,
	"glyph-purification":   PartPurification,
	"glyph-duplication":    PartDuplication,
	"glyph-life-and-death": PartAnimismus,
	"glyph-unification":    PartUnification,
	"glyph-dispersion":     PartDispersion,
	"bonder-prisma":        PartTriplexBonding,
	"glyph-disposal":       PartDisposal,
	conduitPartName:        PartConduit,
}

var partNames = invert(partTypes)

// PartTypeFromName resolves the exact on-disk part name.
func PartTypeFromName(name string) (PartType, bool) {
	t, ok := partTypes[name]
	return t, ok
}

// Name returns the on-disk part name.
func (t PartType) Name() string {
	return partNames[t]
}

func (t PartType) String() string {
	return t.Name()
}

func (t PartType) IsIO() bool {
	return t >= PartInput && t <= PartPolymerOutput
}

// IsArm is true for the parts that execute an instruction tape.
func (t PartType) IsArm() bool {
	return (t >= PartArm && t <= PartPistonArm) || t == PartBerlo
}

func (t PartType) IsGlyph() bool {
	return t >= PartEquilibrium && t <= PartDisposal
}

// Part is a mechanism or glyph placed on the board.
type Part struct {
	Type      PartType
	Pos       HexIndex
	Rotation  int32
	ArmNumber int32 // 1-based
	ArmLength int32
	Index     int32

	Instructions []TapeEntry

	// TrackHexes is only populated for tracks.
	TrackHexes []HexIndex
	// ConduitIndex and ConduitHexes are only populated for conduits.
	ConduitIndex int32
	ConduitHexes []HexIndex
}

// partSentinel precedes every part body.
const partSentinel = 1

// readPart decodes one part record. The record has no length prefix: whether the track
// and conduit fields exist is decided by the part name alone, so the raw name is kept until
// every field is consumed and only then resolved to a PartType.
func readPart(r *lebin.Reader) (Part, error) {
	name, err := r.String()
	if err != nil {
		return Part{}, errors.Wrap(err, "name")
	}
	sentinel, err := r.U8()
	if err != nil {
		return Part{}, err
	}
	if sentinel != partSentinel {
		return Part{}, errors.Wrapf(ErrStructuralSentinelMismatch, "part %q: marker %d, want %d", name, sentinel, partSentinel)
	}

	p := Part{TrackHexes: []HexIndex{}, ConduitHexes: []HexIndex{}}
	if p.Pos, err = readWideHex(r); err != nil {
		return Part{}, errors.Wrap(err, "position")
	}
	if p.ArmLength, err = r.I32(); err != nil {
		return Part{}, errors.Wrap(err, "arm length")
	}
	if p.Rotation, err = r.I32(); err != nil {
		return Part{}, errors.Wrap(err, "rotation")
	}
	if p.Index, err = r.I32(); err != nil {
		return Part{}, errors.Wrap(err, "index")
	}
	if p.Instructions, err = lebin.List(r, readTapeEntry); err != nil {
		return Part{}, errors.Wrapf(err, "part %q: instructions", name)
	}

	if name == trackPartName {
		if p.TrackHexes, err = lebin.List(r, readWideHex); err != nil {
			return Part{}, errors.Wrap(err, "track hexes")
		}
	}

	armNumber, err := r.I32()
	if err != nil {
		return Part{}, errors.Wrap(err, "arm number")
	}
	if armNumber == math.MaxInt32 {
		return Part{}, errors.Wrapf(lebin.ErrInvalidEncoding, "arm number %d", armNumber)
	}
	p.ArmNumber = armNumber + 1

	if name == conduitPartName {
		if p.ConduitIndex, err = r.I32(); err != nil {
			return Part{}, errors.Wrap(err, "conduit index")
		}
		if p.ConduitHexes, err = lebin.List(r, readWideHex); err != nil {
			return Part{}, errors.Wrap(err, "conduit hexes")
		}
	}

	t, ok := PartTypeFromName(name)
	if !ok {
		return Part{}, errors.Wrapf(ErrInvalidEnumValue, "part type %q", name)
	}
	p.Type = t
	return p, nil
}
