package inter

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// Kind selects which decoder a buffer is fed to.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindPuzzle   Kind = "puzzle"
	KindSolution Kind = "solution"
)

// ErrUnknownKind is returned when neither the file name nor the leading version
// identifies the format.
var ErrUnknownKind = errors.New("cannot tell puzzle from solution")

// DetectKind picks the format from the file extension, falling back to the leading
// version number.
func DetectKind(name string, raw []byte) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".puzzle":
		return KindPuzzle, nil
	case ".solution":
		return KindSolution, nil
	}
	version, err := lebin.NewReader(raw).I32()
	if err != nil {
		return "", errors.Wrap(err, "version")
	}
	switch version {
	case PuzzleVersion:
		return KindPuzzle, nil
	case SolutionVersion:
		return KindSolution, nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%s: leading version %d", name, version)
}

// Decode runs the decoder for kind, detecting it first when kind is KindAuto.
// The result is a *Puzzle or a *Solution.
func Decode(kind Kind, name string, raw []byte) (interface{}, error) {
	if kind == KindAuto || kind == "" {
		var err error
		if kind, err = DetectKind(name, raw); err != nil {
			return nil, err
		}
	}
	switch kind {
	case KindPuzzle:
		p, err := DecodePuzzle(raw)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindSolution:
		s, err := DecodeSolution(raw)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.Wrapf(ErrUnknownKind, "kind %q", kind)
}
