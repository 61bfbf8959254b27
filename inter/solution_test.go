package inter

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-opus-magnum/utils/lebin"
)

func sampleSolution() rawSolution {
	arm := newPart("arm1")
	arm.pos = HexIndex{-1, 2}
	arm.armLength = 2
	arm.rotation = 3
	arm.index = 0
	arm.armNumber = 0
	arm.tape = []rawInstr{{0, 'G'}, {1, 'R'}, {2, 'g'}, {4, 'C'}}

	track := newPart("track")
	track.pos = HexIndex{100000, -70000}
	track.index = 1
	track.track = []HexIndex{{0, 0}, {1, 0}, {2, 0}}
	track.armNumber = 4

	pipe := newPart("pipe")
	pipe.pos = HexIndex{3, 3}
	pipe.index = 2
	pipe.armNumber = -1
	pipe.conduitIndex = 100
	pipe.conduit = []HexIndex{{0, 0}, {0, 1}}

	glyph := newPart("glyph-calcification")
	glyph.pos = HexIndex{5, -5}
	glyph.rotation = -2
	glyph.index = 3

	return rawSolution{
		version:    SolutionVersion,
		puzzleName: "P007",
		name:       "fast one",
		metricsTag: 4,
		metrics:    metrics(120, 45, 9, 30),
		parts:      []rawPart{arm, track, pipe, glyph},
	}
}

func TestDecodeSolution_Full(t *testing.T) {
	require := require.New(t)

	got, err := DecodeSolution(sampleSolution().bytes())
	require.NoError(err)

	empty := []HexIndex{}
	exp := &Solution{
		PuzzleName: "P007",
		Name:       "fast one",
		Metrics:    &Metrics{Cycles: 120, Cost: 45, Area: 9, Instructions: 30},
		Parts: []Part{
			{
				Type: PartArm, Pos: HexIndex{-1, 2}, ArmLength: 2, Rotation: 3, Index: 0, ArmNumber: 1,
				Instructions: []TapeEntry{{Grab, 0}, {RotateClockwise, 1}, {Drop, 2}, {RepeatInstr, 4}},
				TrackHexes:   empty, ConduitHexes: empty,
			},
			{
				Type: PartTrack, Pos: HexIndex{100000, -70000}, Index: 1, ArmNumber: 5,
				Instructions: []TapeEntry{},
				TrackHexes:   []HexIndex{{0, 0}, {1, 0}, {2, 0}}, ConduitHexes: empty,
			},
			{
				Type: PartConduit, Pos: HexIndex{3, 3}, Index: 2, ArmNumber: 0,
				Instructions: []TapeEntry{},
				TrackHexes:   empty,
				ConduitIndex: 100, ConduitHexes: []HexIndex{{0, 0}, {0, 1}},
			},
			{
				Type: PartCalcification, Pos: HexIndex{5, -5}, Rotation: -2, Index: 3, ArmNumber: 1,
				Instructions: []TapeEntry{},
				TrackHexes:   empty, ConduitHexes: empty,
			},
		},
	}
	require.Equal(exp, got)
}

func TestDecodeSolution_Deterministic(t *testing.T) {
	buf := sampleSolution().bytes()
	first, err := DecodeSolution(buf)
	require.NoError(t, err)
	second, err := DecodeSolution(buf)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDecodeSolution_Truncated(t *testing.T) {
	buf := sampleSolution().bytes()
	for n := 0; n < len(buf); n++ {
		got, err := DecodeSolution(buf[:n])
		require.Nil(t, got, "prefix %d", n)
		require.True(t, errors.Is(err, lebin.ErrUnexpectedEOF), "prefix %d: %v", n, err)
	}
}

func TestDecodeSolution_VersionMismatch(t *testing.T) {
	_, err := DecodeSolution(lebin.NewWriter().I32(6).Bytes())
	require.True(t, errors.Is(err, ErrFormatVersionMismatch), "%v", err)
}

func TestDecodeSolution_Metrics(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		raw := sampleSolution()
		raw.metricsTag, raw.metrics = 0, nil
		got, err := DecodeSolution(raw.bytes())
		require.NoError(t, err)
		require.Nil(t, got.Metrics)
		require.Len(t, got.Parts, 4)
	})

	t.Run("markers out of order", func(t *testing.T) {
		raw := sampleSolution()
		raw.metrics = []rawMetric{{1, 120}, {0, 45}, {2, 9}, {3, 30}}
		got, err := DecodeSolution(raw.bytes())
		require.Nil(t, got)
		require.True(t, errors.Is(err, ErrStructuralSentinelMismatch), "%v", err)
	})

	t.Run("last marker wrong", func(t *testing.T) {
		raw := sampleSolution()
		raw.metrics = []rawMetric{{0, 120}, {1, 45}, {2, 9}, {4, 30}}
		_, err := DecodeSolution(raw.bytes())
		require.True(t, errors.Is(err, ErrStructuralSentinelMismatch), "%v", err)
	})

	t.Run("unsupported tag", func(t *testing.T) {
		for _, tag := range []int32{1, 3, 5, -4} {
			raw := sampleSolution()
			raw.metricsTag = tag
			_, err := DecodeSolution(raw.bytes())
			require.True(t, errors.Is(err, ErrFormatVersionMismatch), "tag %d: %v", tag, err)
		}
	})
}

// TestDecodeSolution_TrackListOnlyForTracks lays out the same part body with and without
// the trailing hex list; each layout decodes only under the matching part name.
func TestDecodeSolution_TrackListOnlyForTracks(t *testing.T) {
	follower := newPart("arm2")
	follower.pos = HexIndex{9, 9}
	follower.armNumber = 1

	build := func(name string, withTrack bool) []byte {
		p := newPart(name)
		p.withTrack = withTrack
		p.track = []HexIndex{{7, 7}, {8, 7}}
		p.armNumber = 2
		raw := sampleSolution()
		raw.parts = []rawPart{p, follower}
		return raw.bytes()
	}

	t.Run("track consumes list", func(t *testing.T) {
		got, err := DecodeSolution(build("track", true))
		require.NoError(t, err)
		require.Equal(t, []HexIndex{{7, 7}, {8, 7}}, got.Parts[0].TrackHexes)
		require.Equal(t, int32(3), got.Parts[0].ArmNumber)
		require.Equal(t, HexIndex{9, 9}, got.Parts[1].Pos)
	})

	t.Run("other part has no list", func(t *testing.T) {
		got, err := DecodeSolution(build("arm1", false))
		require.NoError(t, err)
		require.Empty(t, got.Parts[0].TrackHexes)
		require.NotNil(t, got.Parts[0].TrackHexes)
		require.Equal(t, int32(3), got.Parts[0].ArmNumber)
		require.Equal(t, PartBiArm, got.Parts[1].Type)
		require.Equal(t, HexIndex{9, 9}, got.Parts[1].Pos)
	})
}

func TestDecodeSolution_ConduitFieldsOnlyForPipes(t *testing.T) {
	raw := sampleSolution()
	p := newPart("bonder")
	p.withConduit = true
	p.conduitIndex = 5
	raw.parts = []rawPart{p}

	// a bonder never reads conduit fields; with a single part they are left unread
	got, err := DecodeSolution(raw.bytes())
	require.NoError(t, err)
	require.Zero(t, got.Parts[0].ConduitIndex)
	require.Empty(t, got.Parts[0].ConduitHexes)
}

func TestDecodeSolution_PartErrors(t *testing.T) {
	t.Run("sentinel", func(t *testing.T) {
		raw := sampleSolution()
		raw.parts[1].sentinel = 0
		got, err := DecodeSolution(raw.bytes())
		require.Nil(t, got)
		require.True(t, errors.Is(err, ErrStructuralSentinelMismatch), "%v", err)
	})

	t.Run("unknown part name after full record", func(t *testing.T) {
		raw := sampleSolution()
		raw.parts[0].name = "glyph-mystery"
		_, err := DecodeSolution(raw.bytes())
		require.True(t, errors.Is(err, ErrInvalidEnumValue), "%v", err)
	})

	t.Run("unknown part name with short record", func(t *testing.T) {
		raw := sampleSolution()
		raw.parts = raw.parts[:1]
		raw.parts[0].name = "glyph-mystery"
		buf := raw.bytes()
		_, err := DecodeSolution(buf[:len(buf)-1])
		require.True(t, errors.Is(err, lebin.ErrUnexpectedEOF), "%v", err)
	})

	t.Run("arm number", func(t *testing.T) {
		for _, test := range []struct {
			stored int32
			want   int32
			err    error
		}{
			{0, 1, nil},
			{-1, 0, nil},
			{math.MaxInt32 - 1, math.MaxInt32, nil},
			{math.MaxInt32, 0, lebin.ErrInvalidEncoding},
		} {
			raw := sampleSolution()
			raw.parts[0].armNumber = test.stored
			got, err := DecodeSolution(raw.bytes())
			if test.err != nil {
				require.Nil(t, got)
				require.True(t, errors.Is(err, test.err), "stored %d: %v", test.stored, err)
				continue
			}
			require.NoError(t, err, "stored %d", test.stored)
			require.Equal(t, test.want, got.Parts[0].ArmNumber)
		}
	})

	t.Run("instruction code", func(t *testing.T) {
		for _, code := range []byte{'Z', 0, 'x', 'c'} {
			raw := sampleSolution()
			raw.parts[0].tape = []rawInstr{{0, code}}
			_, err := DecodeSolution(raw.bytes())
			require.True(t, errors.Is(err, ErrInvalidEnumValue), "code %q: %v", code, err)
		}
	})
}

func TestInstructionCodes(t *testing.T) {
	require.Len(t, instructionCodes, 14)
	for code, want := range instructionCodes {
		got, ok := InstructionFromCode(code)
		require.True(t, ok)
		require.Equal(t, want, got)
		require.Equal(t, code, got.Code())
		require.NotEqual(t, "instruction?", got.String())
	}
	require.Equal(t, byte(' '), Blank.Code())
	require.Equal(t, byte('X'), Reset.Code())
	require.Equal(t, Retreat, instructionCodes['a'])
	require.Equal(t, PivotAnticlockwise, instructionCodes['p'])
}

func TestPartTypes(t *testing.T) {
	require.Len(t, partTypes, 24)
	for name, want := range partTypes {
		got, ok := PartTypeFromName(name)
		require.True(t, ok)
		require.Equal(t, want, got)
		require.Equal(t, name, got.Name())
	}
	_, ok := PartTypeFromName("Arm1")
	require.False(t, ok, "lookup is exact")

	require.True(t, PartInput.IsIO())
	require.True(t, PartPolymerOutput.IsIO())
	require.True(t, PartHexArm.IsArm())
	require.True(t, PartBerlo.IsArm())
	require.False(t, PartTrack.IsArm())
	require.True(t, PartEquilibrium.IsGlyph())
	require.True(t, PartDisposal.IsGlyph())
	require.False(t, PartConduit.IsGlyph())
}
