package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulationZoning(t *testing.T) {
	tests := []struct {
		name       string
		population *int
		want       string
	}{
		{"unknown population defaults to B1", nil, "B1"},
		{"large city is A", ptrInt(110169), "A"},
		{"zone boundary 100000 is B1", ptrInt(100000), "B1"},
		{"regional center is B1", ptrInt(72000), "B1"},
		{"zone boundary 50000 is B2", ptrInt(50000), "B2"},
		{"mid-size town is B2", ptrInt(28000), "B2"},
		{"zone boundary 20000 is C", ptrInt(20000), "C"},
		{"village is C", ptrInt(900), "C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PopulationZoning{}.Classify(tt.population))
		})
	}
}
