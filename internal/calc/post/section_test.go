package post

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidSquareAgainstCircle(t *testing.T) {
	const d = 120.0
	sq, err := SectionProperties(Square, true, d, 0)
	require.NoError(t, err)
	circ, err := SectionProperties(Circular, true, d, 0)
	require.NoError(t, err)

	// b³/6 over πD³/32
	assert.InDelta(t, 16/(3*math.Pi), sq.WEl/circ.WEl, 1e-12)
	assert.InDelta(t, 16/(3*math.Pi), sq.I/circ.I, 1e-12)
	assert.Greater(t, sq.WEl, circ.WEl)
}

func TestHollowSections(t *testing.T) {
	chs, err := SectionProperties(Circular, false, 150, 8)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*(math.Pow(150, 4)-math.Pow(134, 4))/64, chs.I, 1e-6)
	assert.InDelta(t, chs.I/75, chs.WEl, 1e-9)

	shs, err := SectionProperties(Square, false, 100, 5)
	require.NoError(t, err)
	assert.InDelta(t, (1e8-math.Pow(90, 4))/12, shs.I, 1e-6)
	assert.InDelta(t, 100*100-90*90, shs.Area, 1e-9)

	_, err = SectionProperties("oval", false, 100, 5)
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestMaterialOrdering(t *testing.T) {
	const fy = 200.0
	steelS, steelT, err := Resistance(Steel, fy)
	require.NoError(t, err)
	aluS, aluT, err := Resistance(Aluminium, fy)
	require.NoError(t, err)
	timS, timT, err := Resistance(Timber, fy)
	require.NoError(t, err)

	assert.Greater(t, steelS, aluS)
	assert.Greater(t, aluS, timS)
	assert.Greater(t, steelT, aluT)
	assert.Greater(t, aluT, timT)

	// same demand, utilization follows the reverse order
	assert.Less(t, 100/steelS, 100/aluS)
	assert.Less(t, 100/aluS, 100/timS)

	_, _, err = Resistance("glass", fy)
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestTimberPostIsSolid(t *testing.T) {
	pc, err := CheckPost(5, 2, 200, 10, 24, Square, Timber)
	require.NoError(t, err)
	assert.True(t, pc.Solid)
	assert.InDelta(t, math.Pow(200, 3)/6, pc.WEl, 1e-6)
	assert.InDelta(t, 24*0.9/1.3, pc.SigmaRd, 1e-12)
	assert.InDelta(t, 4*0.9/1.3, pc.TauRd, 1e-12)
}

func TestDegenerateSectionFails(t *testing.T) {
	pc, err := CheckPost(5, 2, 0, 0, 275, Circular, Steel)
	require.NoError(t, err)
	assert.Equal(t, noSection, pc.SigmaEd)
	assert.Equal(t, "FAIL", pc.BendingStatus)
}

func TestCheckFoundation(t *testing.T) {
	tests := []struct {
		embedment float64
		kind      string
		want      string
	}{
		{0.8, Concrete, FoundationInadequate},
		{1.0, Concrete, FoundationMarginal},
		{1.5, Concrete, FoundationAdequate},
		{2.0, SteelBase, FoundationDesign},
	}
	for _, tt := range tests {
		fc, err := CheckFoundation(20, tt.embedment, tt.kind)
		require.NoError(t, err)
		assert.Equal(t, tt.want, fc.Status)
		assert.Equal(t, foundationCaveat, fc.Warning)
	}

	fc, err := CheckFoundation(20, 2, SteelBase)
	require.NoError(t, err)
	assert.Zero(t, fc.RequiredWidth)

	_, err = CheckFoundation(20, 2, "raft")
	assert.ErrorIs(t, err, ErrUnknownFoundation)
}
