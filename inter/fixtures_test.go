package inter

import (
	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

// Helpers that lay out .puzzle and .solution bytes field by field.

func writeNarrow(w *lebin.Writer, h HexIndex) {
	w.I8(int8(h.Q)).I8(int8(h.R))
}

func writeWide(w *lebin.Writer, h HexIndex) {
	w.I32(h.Q).I32(h.R)
}

func writeNarrowList(w *lebin.Writer, hexes []HexIndex) {
	w.I32(int32(len(hexes)))
	for _, h := range hexes {
		writeNarrow(w, h)
	}
}

func writeWideList(w *lebin.Writer, hexes []HexIndex) {
	w.I32(int32(len(hexes)))
	for _, h := range hexes {
		writeWide(w, h)
	}
}

type rawAtom struct {
	code uint8
	pos  HexIndex
}

type rawBond struct {
	bits       uint8
	start, end HexIndex
}

type rawMolecule struct {
	atoms []rawAtom
	bonds []rawBond
}

func writeMolecule(w *lebin.Writer, m rawMolecule) {
	w.I32(int32(len(m.atoms)))
	for _, a := range m.atoms {
		w.U8(a.code)
		writeNarrow(w, a.pos)
	}
	w.I32(int32(len(m.bonds)))
	for _, b := range m.bonds {
		w.U8(b.bits)
		writeNarrow(w, b.start)
		writeNarrow(w, b.end)
	}
}

type rawChamber struct {
	pos  HexIndex
	name string
}

type rawProduction struct {
	shrinkLeft, shrinkRight bool
	isolation               bool
	chambers                []rawChamber
	conduits                []Conduit
}

type rawPuzzle struct {
	version     int32
	name        string
	creator     uint64
	permissions uint64
	reagents    []rawMolecule
	products    []rawMolecule
	multiplier  int32
	production  *rawProduction
}

func (p rawPuzzle) bytes() []byte {
	w := lebin.NewWriter()
	w.I32(p.version).String(p.name).U64(p.creator).U64(p.permissions)
	for _, list := range [][]rawMolecule{p.reagents, p.products} {
		w.I32(int32(len(list)))
		for _, m := range list {
			writeMolecule(w, m)
		}
	}
	w.I32(p.multiplier)
	w.Bool(p.production != nil)
	if pi := p.production; pi != nil {
		w.Bool(pi.shrinkLeft).Bool(pi.shrinkRight).Bool(pi.isolation)
		w.I32(int32(len(pi.chambers)))
		for _, c := range pi.chambers {
			writeNarrow(w, c.pos)
			w.String(c.name)
		}
		w.I32(int32(len(pi.conduits)))
		for _, c := range pi.conduits {
			writeNarrow(w, c.PosA)
			writeNarrow(w, c.PosB)
			writeNarrowList(w, c.Hexes)
		}
	}
	return w.Bytes()
}

type rawInstr struct {
	cycle int32
	code  byte
}

type rawPart struct {
	name      string
	sentinel  uint8
	pos       HexIndex
	armLength int32
	rotation  int32
	index     int32
	tape      []rawInstr
	// withTrack and withConduit decide whether the trailing fields are laid out at all
	withTrack    bool
	track        []HexIndex
	armNumber    int32 // as stored: 0-based
	withConduit  bool
	conduitIndex int32
	conduit      []HexIndex
}

// newPart lays out the record the way the game does for the given part name.
func newPart(name string) rawPart {
	return rawPart{
		name:        name,
		sentinel:    1,
		withTrack:   name == "track",
		withConduit: name == "pipe",
	}
}

func writePart(w *lebin.Writer, p rawPart) {
	w.String(p.name).U8(p.sentinel)
	writeWide(w, p.pos)
	w.I32(p.armLength).I32(p.rotation).I32(p.index)
	w.I32(int32(len(p.tape)))
	for _, in := range p.tape {
		w.I32(in.cycle).U8(in.code)
	}
	if p.withTrack {
		writeWideList(w, p.track)
	}
	w.I32(p.armNumber)
	if p.withConduit {
		w.I32(p.conduitIndex)
		writeWideList(w, p.conduit)
	}
}

type rawMetric struct {
	marker int32
	value  int32
}

type rawSolution struct {
	version    int32
	puzzleName string
	name       string
	metricsTag int32
	metrics    []rawMetric
	parts      []rawPart
}

func (s rawSolution) bytes() []byte {
	w := lebin.NewWriter()
	w.I32(s.version).String(s.puzzleName).String(s.name).I32(s.metricsTag)
	for _, m := range s.metrics {
		w.I32(m.marker).I32(m.value)
	}
	w.I32(int32(len(s.parts)))
	for _, p := range s.parts {
		writePart(w, p)
	}
	return w.Bytes()
}

func metrics(cycles, cost, area, instructions int32) []rawMetric {
	return []rawMetric{{0, cycles}, {1, cost}, {2, area}, {3, instructions}}
}
