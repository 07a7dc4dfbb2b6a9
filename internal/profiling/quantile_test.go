package profiling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	data := []float64{7, 1, 3, 5}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2.5},
		{0.5, 4},
		{0.75, 5.5},
		{1, 7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Quantile(data, tt.p), 1e-12, "p=%v", tt.p)
	}

	// input order is left alone
	assert.Equal(t, []float64{7, 1, 3, 5}, data)
}

func TestQuantileEdgeCases(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{math.NaN()}, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{1, 2}, 1.5)))
	assert.Equal(t, 42.0, Quantile([]float64{42}, 0.25))
	assert.Equal(t, 2.0, Quantile([]float64{math.NaN(), 1, 3}, 0.5))
}

func TestQuartiles(t *testing.T) {
	q1, q3 := Quartiles([]float64{1200, 3500, 500, 2000000, 750, 1800})
	assert.InDelta(t, 862.5, q1, 1e-9)
	assert.InDelta(t, 3075.0, q3, 1e-9)
}
