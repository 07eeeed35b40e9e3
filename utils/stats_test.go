package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.0, Clamp01(0))
	assert.Equal(t, 0.42, Clamp01(0.42))
	assert.Equal(t, 1.0, Clamp01(1))
	assert.Equal(t, 1.0, Clamp01(1.7))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 3.0, Mean([]float64{3}))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	// Population standard deviation, not sample.
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-9)
	assert.Equal(t, 0.0, StdDev([]float64{3, 3, 3}))
}

func TestSlopeByIndex(t *testing.T) {
	assert.InDelta(t, 2.0, SlopeByIndex([]float64{1, 3, 5, 7}), 1e-9)
	assert.InDelta(t, -10.0, SlopeByIndex([]float64{100, 90, 80}), 1e-9)

	// Degenerate series fit no line.
	assert.Equal(t, 0.0, SlopeByIndex(nil))
	assert.Equal(t, 0.0, SlopeByIndex([]float64{42}))
	assert.Equal(t, 0.0, SlopeByIndex([]float64{5, 5, 5, 5}))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.2346, Round(1.23456, 4))
	assert.Equal(t, 3.14, Round(3.14159, 2))
	assert.Equal(t, -0.67, Round(-0.666, 2))
	assert.Equal(t, 5.0, Round(5, 4))
}
