package launcher

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-opus-magnum/inter"
)

// Views turn decoded records into plain trees every output encoding can handle:
// maps keyed by hex become sorted lists and enums are written by name.

type hexView struct {
	Q int32 `json:"q" yaml:"q"`
	R int32 `json:"r" yaml:"r"`
}

type atomView struct {
	Q    int32  `json:"q" yaml:"q"`
	R    int32  `json:"r" yaml:"r"`
	Atom string `json:"atom" yaml:"atom"`
}

type bondView struct {
	Start hexView `json:"start" yaml:"start"`
	End   hexView `json:"end" yaml:"end"`
	Type  string  `json:"type" yaml:"type"`
}

type moleculeView struct {
	Atoms []atomView `json:"atoms" yaml:"atoms"`
	Bonds []bondView `json:"bonds" yaml:"bonds"`
}

type permissionsView struct {
	Mask        hexutil.Uint64 `json:"mask" yaml:"mask"`
	Flags       []string       `json:"flags" yaml:"flags"`
	UnknownBits []int          `json:"unknownBits,omitempty" yaml:"unknownBits,omitempty"`
}

type chamberView struct {
	Pos  hexView `json:"pos" yaml:"pos"`
	Type string  `json:"type" yaml:"type"`
}

type conduitView struct {
	PosA  hexView   `json:"posA" yaml:"posA"`
	PosB  hexView   `json:"posB" yaml:"posB"`
	Hexes []hexView `json:"hexes" yaml:"hexes"`
}

type productionView struct {
	Isolation bool          `json:"isolation" yaml:"isolation"`
	Chambers  []chamberView `json:"chambers" yaml:"chambers"`
	Conduits  []conduitView `json:"conduits" yaml:"conduits"`
}

type puzzleView struct {
	Name              string          `json:"name" yaml:"name"`
	CreatorID         hexutil.Uint64  `json:"creatorId" yaml:"creatorId"`
	Permissions       permissionsView `json:"permissions" yaml:"permissions"`
	Reagents          []moleculeView  `json:"reagents" yaml:"reagents"`
	Products          []moleculeView  `json:"products" yaml:"products"`
	ProductMultiplier int32           `json:"productMultiplier" yaml:"productMultiplier"`
	Production        *productionView `json:"production,omitempty" yaml:"production,omitempty"`
}

type metricsView struct {
	Cycles       int32 `json:"cycles" yaml:"cycles"`
	Cost         int32 `json:"cost" yaml:"cost"`
	Area         int32 `json:"area" yaml:"area"`
	Instructions int32 `json:"instructions" yaml:"instructions"`
}

type tapeView struct {
	Cycle       int32  `json:"cycle" yaml:"cycle"`
	Instruction string `json:"instruction" yaml:"instruction"`
}

type partView struct {
	Type         string     `json:"type" yaml:"type"`
	Pos          hexView    `json:"pos" yaml:"pos"`
	Rotation     int32      `json:"rotation" yaml:"rotation"`
	ArmNumber    int32      `json:"armNumber" yaml:"armNumber"`
	ArmLength    int32      `json:"armLength" yaml:"armLength"`
	Index        int32      `json:"index" yaml:"index"`
	Instructions []tapeView `json:"instructions" yaml:"instructions"`
	TrackHexes   []hexView  `json:"trackHexes,omitempty" yaml:"trackHexes,omitempty"`
	ConduitIndex int32      `json:"conduitIndex,omitempty" yaml:"conduitIndex,omitempty"`
	ConduitHexes []hexView  `json:"conduitHexes,omitempty" yaml:"conduitHexes,omitempty"`
}

type solutionView struct {
	PuzzleName string       `json:"puzzleName" yaml:"puzzleName"`
	Name       string       `json:"name" yaml:"name"`
	Metrics    *metricsView `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Parts      []partView   `json:"parts" yaml:"parts"`
}

// fileView is one entry of the rendered output.
type fileView struct {
	File     string        `json:"file" yaml:"file"`
	Kind     inter.Kind    `json:"kind" yaml:"kind"`
	Puzzle   *puzzleView   `json:"puzzle,omitempty" yaml:"puzzle,omitempty"`
	Solution *solutionView `json:"solution,omitempty" yaml:"solution,omitempty"`
}

func newFileView(file string, record interface{}) fileView {
	v := fileView{File: file}
	switch rec := record.(type) {
	case *inter.Puzzle:
		v.Kind = inter.KindPuzzle
		v.Puzzle = newPuzzleView(rec)
	case *inter.Solution:
		v.Kind = inter.KindSolution
		v.Solution = newSolutionView(rec)
	}
	return v
}

func newHexView(h inter.HexIndex) hexView {
	return hexView{Q: h.Q, R: h.R}
}

func newHexViews(hexes []inter.HexIndex) []hexView {
	res := make([]hexView, len(hexes))
	for i, h := range hexes {
		res[i] = newHexView(h)
	}
	return res
}

func newMoleculeView(m inter.Molecule) moleculeView {
	v := moleculeView{
		Atoms: make([]atomView, 0, len(m.Atoms)),
		Bonds: make([]bondView, len(m.Bonds)),
	}
	for pos, a := range m.Atoms {
		v.Atoms = append(v.Atoms, atomView{Q: pos.Q, R: pos.R, Atom: a.String()})
	}
	sort.Slice(v.Atoms, func(i, j int) bool {
		if v.Atoms[i].Q != v.Atoms[j].Q {
			return v.Atoms[i].Q < v.Atoms[j].Q
		}
		return v.Atoms[i].R < v.Atoms[j].R
	})
	for i, b := range m.Bonds {
		v.Bonds[i] = bondView{Start: newHexView(b.Start), End: newHexView(b.End), Type: b.Type.String()}
	}
	return v
}

func newMoleculeViews(ms []inter.Molecule) []moleculeView {
	res := make([]moleculeView, len(ms))
	for i, m := range ms {
		res[i] = newMoleculeView(m)
	}
	return res
}

func newPuzzleView(p *inter.Puzzle) *puzzleView {
	v := &puzzleView{
		Name:      p.Name,
		CreatorID: hexutil.Uint64(p.CreatorID),
		Permissions: permissionsView{
			Mask:        hexutil.Uint64(p.Permissions),
			Flags:       p.Permissions.Names(),
			UnknownBits: p.Permissions.Unknown().Indices(),
		},
		Reagents:          newMoleculeViews(p.Reagents),
		Products:          newMoleculeViews(p.Products),
		ProductMultiplier: p.ProductMultiplier,
	}
	if pi := p.ProductionInfo; pi != nil {
		pv := &productionView{
			Isolation: pi.Isolation,
			Chambers:  make([]chamberView, len(pi.Chambers)),
			Conduits:  make([]conduitView, len(pi.Conduits)),
		}
		for i, c := range pi.Chambers {
			pv.Chambers[i] = chamberView{Pos: newHexView(c.Pos), Type: c.Type.String()}
		}
		for i, c := range pi.Conduits {
			pv.Conduits[i] = conduitView{PosA: newHexView(c.PosA), PosB: newHexView(c.PosB), Hexes: newHexViews(c.Hexes)}
		}
		v.Production = pv
	}
	return v
}

func newSolutionView(s *inter.Solution) *solutionView {
	v := &solutionView{
		PuzzleName: s.PuzzleName,
		Name:       s.Name,
		Parts:      make([]partView, len(s.Parts)),
	}
	if m := s.Metrics; m != nil {
		v.Metrics = &metricsView{Cycles: m.Cycles, Cost: m.Cost, Area: m.Area, Instructions: m.Instructions}
	}
	for i, p := range s.Parts {
		pv := partView{
			Type:         p.Type.Name(),
			Pos:          newHexView(p.Pos),
			Rotation:     p.Rotation,
			ArmNumber:    p.ArmNumber,
			ArmLength:    p.ArmLength,
			Index:        p.Index,
			Instructions: make([]tapeView, len(p.Instructions)),
			TrackHexes:   newHexViews(p.TrackHexes),
			ConduitIndex: p.ConduitIndex,
			ConduitHexes: newHexViews(p.ConduitHexes),
		}
		for j, e := range p.Instructions {
			pv.Instructions[j] = tapeView{Cycle: e.Cycle, Instruction: e.Instruction.String()}
		}
		v.Parts[i] = pv
	}
	return v
}

// cborMode writes deterministic CBOR; hexutil values go out as their text form.
var cborMode = func() cbor.EncMode {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	mode, err := opts.EncMode()
	if err != nil {
		panic("render: CBOR encoder initialization failed: " + err.Error())
	}
	return mode
}()

// encode renders the views in the configured output format.
func encode(format string, views []fileView) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return yaml.Marshal(views)
	case "cbor":
		return cborMode.Marshal(views)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
