package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAt(t *testing.T) {
	tbl, err := NewTable([]float64{0.25, 0.5, 1, 2, 4, 10}, []float64{1.02, 1.03, 1.06, 1.10, 1.17, 1.24})
	require.NoError(t, err)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below first row", 0.1, 1.02},
		{"first row", 0.25, 1.02},
		{"between rows", 0.75, 1.045},
		{"exact row", 2, 1.10},
		{"between 4 and 10", 7, 1.205},
		{"above last row", 50, 1.24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tbl.At(tt.x), 1e-12)
		})
	}
}

func TestNewTableRejectsBadKeys(t *testing.T) {
	_, err := NewTable([]float64{1, 1}, []float64{2, 3})
	assert.Error(t, err)

	_, err = NewTable([]float64{1}, []float64{2})
	assert.Error(t, err)

	_, err = NewTable([]float64{1, 2}, []float64{2})
	assert.Error(t, err)
}

func TestLogFraction(t *testing.T) {
	assert.InDelta(t, 0, LogFraction(6, 6, 200), 1e-12)
	assert.InDelta(t, 1, LogFraction(200, 6, 200), 1e-12)
	assert.InDelta(t, 0.5, LogFraction(10, 1, 100), 1e-12)
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, 2.42, Lerp(2.5, 2.1, 0.2), 1e-12)
}
