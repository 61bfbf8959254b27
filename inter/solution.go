package inter

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// SolutionVersion is the only .solution format version this decoder reads.
const SolutionVersion = 7

// Metrics tag values.
const (
	metricsAbsent  = 0
	metricsPresent = 4
)

// Metrics is the score the game recorded when the solution was last validated.
type Metrics struct {
	Cycles       int32
	Cost         int32
	Area         int32
	Instructions int32
}

// Solution is a decoded .solution file.
type Solution struct {
	PuzzleName string
	Name       string
	// Metrics is nil when the solution was never completed.
	Metrics *Metrics
	Parts   []Part
}

// DecodeSolution decodes a complete .solution buffer.
// Any error aborts the decode; a nil Solution is returned with it.
func DecodeSolution(raw []byte) (*Solution, error) {
	r := lebin.NewReader(raw)

	version, err := r.I32()
	if err != nil {
		return nil, errors.Wrap(err, "version")
	}
	if version != SolutionVersion {
		return nil, errors.Wrapf(ErrFormatVersionMismatch, "solution version %d, want %d", version, SolutionVersion)
	}

	s := &Solution{}
	if s.PuzzleName, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "puzzle name")
	}
	if s.Name, err = r.String(); err != nil {
		return nil, errors.Wrap(err, "name")
	}
	if s.Metrics, err = readMetrics(r); err != nil {
		return nil, errors.Wrap(err, "metrics")
	}
	if s.Parts, err = lebin.List(r, readPart); err != nil {
		return nil, errors.Wrap(err, "parts")
	}
	return s, nil
}

func readMetrics(r *lebin.Reader) (*Metrics, error) {
	tag, err := r.I32()
	if err != nil {
		return nil, err
	}
	switch tag {
	case metricsAbsent:
		return nil, nil
	case metricsPresent:
	default:
		return nil, errors.Wrapf(ErrFormatVersionMismatch, "metrics tag %d", tag)
	}

	m := &Metrics{}
	// each value is preceded by its position in this list
	fields := []*int32{&m.Cycles, &m.Cost, &m.Area, &m.Instructions}
	for want, field := range fields {
		got, err := r.I32()
		if err != nil {
			return nil, err
		}
		if got != int32(want) {
			return nil, errors.Wrapf(ErrStructuralSentinelMismatch, "metric marker %d, want %d", got, want)
		}
		if *field, err = r.I32(); err != nil {
			return nil, err
		}
	}
	return m, nil
}
