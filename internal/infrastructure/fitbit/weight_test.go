package fitbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferPounds(t *testing.T) {
	tests := []struct {
		name     string
		raw      float64
		expected float64
	}{
		{name: "kilograms lower bound", raw: 50, expected: 50 * 2.20462},
		{name: "kilograms typical", raw: 72.5, expected: 72.5 * 2.20462},
		{name: "kilograms upper edge", raw: 199.9, expected: 199.9 * 2.20462},
		{name: "stones lower bound", raw: 8, expected: 8 * 14},
		{name: "stones typical", raw: 11.3, expected: 11.3 * 14},
		{name: "stones upper edge", raw: 24.9, expected: 24.9 * 14},
		{name: "small values pass through", raw: 7.9, expected: 7.9},
		{name: "zero passes through", raw: 0, expected: 0},
		{name: "large values pass through", raw: 200, expected: 200},
		{name: "plausible pounds pass through", raw: 320, expected: 320},
	}

	// The [25,50) band is deliberately not asserted here: an adult
	// under ~50 kg collides with the assumed-pounds range, and the
	// heuristic's behavior in that band is ambiguous by construction.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, InferPounds(tt.raw), 0.0001)
		})
	}
}
