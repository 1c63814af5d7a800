package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrossYield(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		rent  *float64
		want  *float64
	}{
		{"nominal", ptrFloat64(1000), ptrFloat64(10), ptrFloat64(12.0)},
		{"le havre example", ptrFloat64(1883), ptrFloat64(11.5), ptrFloat64(7.33)},
		{"rounded to 2 decimals", ptrFloat64(1700), ptrFloat64(9.8), ptrFloat64(6.92)},
		{"nil price", nil, ptrFloat64(10), nil},
		{"nil rent", ptrFloat64(1000), nil, nil},
		{"both nil", nil, nil, nil},
		{"zero price", ptrFloat64(0), ptrFloat64(10), nil},
		{"zero rent", ptrFloat64(1000), ptrFloat64(0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrossYield(tt.price, tt.rent)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.InDelta(t, *tt.want, *got, 0.001)
			}
		})
	}
}
