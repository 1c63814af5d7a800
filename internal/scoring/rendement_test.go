package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

func TestRendement(t *testing.T) {
	tests := []struct {
		name  string
		yield *float64
		want  float64
	}{
		{"nil yield scores midpoint", nil, 5.0},
		{"ceiling at 10 pct", ptrFloat64(10), 10.0},
		{"above ceiling", ptrFloat64(14.2), 10.0},
		{"very good bracket 9 pct", ptrFloat64(9), 8.5},
		{"bracket edge 8 pct", ptrFloat64(8), 8.0},
		{"solid bracket 7.33 pct", ptrFloat64(7.33), 7.33},
		{"bracket edge 6 pct", ptrFloat64(6), 6.0},
		{"average bracket 5 pct", ptrFloat64(5), 4.5},
		{"bracket edge 4 pct", ptrFloat64(4), 3.0},
		{"weak 2 pct", ptrFloat64(2), 1.5},
		{"floor at 1", ptrFloat64(0.5), 1.0},
		{"zero yield floors", ptrFloat64(0), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rendement(tt.yield)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestRendementMonotonicAndBounded(t *testing.T) {
	prev := 0.0
	for y := 0.0; y <= 15.0; y += 0.05 {
		got := Rendement(ptrFloat64(y))
		assert.GreaterOrEqual(t, got, MinScore)
		assert.LessOrEqual(t, got, MaxScore)
		assert.GreaterOrEqual(t, got, prev, "score must not decrease at yield %.2f", y)
		prev = got
	}
}
