package wall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessSheffield(t *testing.T) {
	res, err := Calculate(sheffield())
	require.NoError(t, err)
	a := res.Assessment

	// both load checks pass; size and height raise the caution
	assert.Equal(t, Caution, a.Overall)
	assert.Equal(t, summaries[Caution], a.Summary)
	require.Len(t, a.Checks, 4)
	assert.Equal(t, Pass, a.Checks[0].Status)
	assert.Equal(t, Pass, a.Checks[1].Status)
	assert.Equal(t, "540.0 m² (Extra Large)", a.Checks[2].Value)
	assert.Equal(t, "27.0 m (Very High)", a.Checks[3].Value)

	assert.Equal(t, []string{
		"Full structural engineering assessment required for this size",
		"High-level work requires specialist contractors and equipment",
		"Building control approval may be required - check with local authority",
		"This assessment is indicative only - professional structural verification required for installation",
	}, a.Recommendations)
}

func TestAssessBands(t *testing.T) {
	small := Input{SignWidth: 2, SignHeight: 1, BuildingHeight: 3}

	tests := []struct {
		name    string
		qp      float64
		forceKN float64
		want    Status
	}{
		{"all within limits", 800, 1.0, Pass},
		{"pressure caution", 1300, 1.0, Caution},
		{"pressure fail", 1600, 1.0, Fail},
		{"framework caution", 800, 3.6, Caution},
		{"framework fail", 800, 5.0, Fail},
		{"framework caution keeps fail", 1600, 3.6, Fail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Result{ForceKN: tt.forceKN}
			res.QP = tt.qp
			a := Assess(res, small)
			assert.Equal(t, tt.want, a.Overall)
			assert.Equal(t, summaries[tt.want], a.Summary)
		})
	}
}

func TestAssessSmallLowSign(t *testing.T) {
	res := Result{ForceKN: 1}
	res.QP = 500
	a := Assess(res, Input{SignWidth: 2, SignHeight: 1, BuildingHeight: 3})

	assert.Equal(t, Pass, a.Overall)
	assert.Equal(t, "2.0 m² (Small)", a.Checks[2].Value)
	assert.Equal(t, "3.0 m (Low Level)", a.Checks[3].Value)
	assert.Equal(t, "0.50 kN/m²", a.Checks[1].Value)
	assert.Equal(t, []string{
		"This assessment is indicative only - professional structural verification required for installation",
	}, a.Recommendations)
}

func TestAssessZeroArea(t *testing.T) {
	res := Result{ForceKN: 1}
	a := Assess(res, Input{BuildingHeight: 3})
	assert.Equal(t, "0.00 kN/m²", a.Checks[1].Value)
}
