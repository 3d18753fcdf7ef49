package cpu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyViews(t *testing.T) {
	tests := []struct {
		khz Frequency
		mhz float64
		ghz float64
	}{
		{1776664, 1776.7, 1.8},
		{1776714, 1776.7, 1.8},
		{1776650, 1776.7, 1.8},
		{1776649, 1776.6, 1.8},
		{3400000, 3400, 3.4},
		{1749999, 1750, 1.7},
		{1750000, 1750, 1.8},
		{0, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.mhz, tt.khz.MHz(), "MHz(%d)", tt.khz)
		assert.Equal(t, tt.ghz, tt.khz.GHz(), "GHz(%d)", tt.khz)
	}
	assert.Equal(t, uint64(1776664), Frequency(1776664).KHz())
}

func TestTrimBrand(t *testing.T) {
	assert.Equal(t, "AMD Ryzen 7 5700U", TrimBrand("AMD Ryzen 7 5700U with Radeon Graphics"))
	assert.Equal(t, "AMD Ryzen 5 PRO 4650G", TrimBrand("AMD Ryzen 5 PRO 4650G with Radeon Graphics   "))
	assert.Equal(t, "Apple M2", TrimBrand("Apple M2"))
	assert.Equal(t, "", TrimBrand(""))
}

func TestInfoJSON(t *testing.T) {
	data, err := json.Marshal(Info{Brand: "x", PhysicalCores: 2, LogicalCores: 4, Frequency: 1500})
	require.NoError(t, err)
	assert.JSONEq(t, `{"brand":"x","physical_cores":2,"logical_cores":4,"frequency_khz":1500}`, string(data))
}
