package inter

import (
	"fmt"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// HexIndex is an axial coordinate on the hex grid.
// It is comparable and is used directly as a map key.
type HexIndex struct {
	Q int32
	R int32
}

func (h HexIndex) String() string {
	return fmt.Sprintf("(%d, %d)", h.Q, h.R)
}

// readNarrowHex reads the puzzle-side form: two signed bytes.
func readNarrowHex(r *lebin.Reader) (HexIndex, error) {
	q, err := r.I8()
	if err != nil {
		return HexIndex{}, err
	}
	rr, err := r.I8()
	if err != nil {
		return HexIndex{}, err
	}
	return HexIndex{Q: int32(q), R: int32(rr)}, nil
}

// readWideHex reads the solution-side form: two little-endian int32s.
func readWideHex(r *lebin.Reader) (HexIndex, error) {
	q, err := r.I32()
	if err != nil {
		return HexIndex{}, err
	}
	rr, err := r.I32()
	if err != nil {
		return HexIndex{}, err
	}
	return HexIndex{Q: q, R: rr}, nil
}
