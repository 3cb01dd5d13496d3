package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		city     string
		state    string
	}{
		{"city and state", "Austin, TX", "Austin", "TX"},
		{"multi comma takes last segment", "Brooklyn, New York, NY", "Brooklyn", "NY"},
		{"no comma is bare region", "San Francisco Bay Area", "", "San Francisco Bay Area"},
		{"empty string", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, state := SplitLocation(tt.location)
			assert.Equal(t, tt.city, city)
			assert.Equal(t, tt.state, state)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "CA", Resolve("San Francisco Bay Area"))
	assert.Equal(t, "NY", Resolve("New York City Metropolitan Area"))
	assert.Equal(t, "TX", Resolve("Dallas-Fort Worth Metroplex"))

	// unmapped strings pass through unchanged
	assert.Equal(t, "TX", Resolve("TX"))
	assert.Equal(t, "Greater Nowhere Area", Resolve("Greater Nowhere Area"))
}

func TestAllIsUniqueAndComplete(t *testing.T) {
	assert.Len(t, All, 52)

	seen := make(map[string]bool)
	for _, code := range All {
		assert.False(t, seen[code], "duplicate region code %s", code)
		seen[code] = true
	}

	assert.True(t, Contains("DC"))
	assert.True(t, Contains("PR"))
	assert.False(t, Contains("US"))
	assert.False(t, Contains(""))
}
