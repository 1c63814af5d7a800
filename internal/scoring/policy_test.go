package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelrousselle-droid/radar-immo76/internal/config"
)

func TestDefaultPolicyValid(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{"default weights", DefaultPolicy(), false},
		{"alternate 40/30/30 split", Policy{0.4, 0.3, 0.3}, false},
		{"weights short of 1", Policy{0.5, 0.2, 0.2}, true},
		{"negative weight", Policy{1.5, -0.25, -0.25}, true},
		{"zero weights", Policy{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComposite(t *testing.T) {
	p := DefaultPolicy()

	assert.InDelta(t, 6.29, p.Composite(7.33, 6.5, 4.0), 0.001)
	assert.InDelta(t, 5.0, p.Composite(5.0, 5.0, 5.0), 0.001)
	assert.InDelta(t, 10.0, p.Composite(10.0, 10.0, 10.0), 0.001)
}

func TestCompositeMonotonicPerWeight(t *testing.T) {
	p := DefaultPolicy()

	base := p.Composite(5.0, 5.0, 5.0)
	assert.Greater(t, p.Composite(6.0, 5.0, 5.0), base)
	assert.Greater(t, p.Composite(5.0, 6.0, 5.0), base)
	assert.Greater(t, p.Composite(5.0, 5.0, 6.0), base)
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(config.ScoringConfig{
		PoidsRendement:   0.4,
		PoidsDemographie: 0.3,
		PoidsSocioEco:    0.3,
	})
	require.NoError(t, p.Validate())
	assert.InDelta(t, 6.0, p.Composite(6.0, 6.0, 6.0), 0.001)
}
