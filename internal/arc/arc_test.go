package arc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestCircumference(t *testing.T) {
	assert.InDelta(t, 282.743, Circumference(Radius), 1e-3)
}

func TestForLevelEndpoints(t *testing.T) {
	c := Circumference(Radius)

	assert.Equal(t, c, ForLevel(0).DashOffset)
	assert.InDelta(t, 0, ForLevel(100).DashOffset, epsilon)
	assert.InDelta(t, c/2, ForLevel(50).DashOffset, epsilon)
}

func TestForLevelMonotonic(t *testing.T) {
	c := Circumference(Radius)
	prev := math.Inf(1)
	for level := MinLevel; level <= MaxLevel; level++ {
		p := ForLevel(level)
		assert.Equal(t, c, p.Circumference, "circumference must not depend on level")
		assert.LessOrEqual(t, p.DashOffset, prev, "level %d", level)
		assert.GreaterOrEqual(t, p.DashOffset, -epsilon)
		assert.LessOrEqual(t, p.DashOffset, c)
		prev = p.DashOffset
	}
}

func TestForLevelClamps(t *testing.T) {
	assert.Equal(t, ForLevel(0), ForLevel(-20))
	assert.Equal(t, ForLevel(100), ForLevel(140))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		level   int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{85, false},
		{100, false},
		{101, true},
	}

	for _, tt := range tests {
		err := Validate(tt.level)
		if tt.wantErr {
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLevelOutOfRange))
			continue
		}
		require.NoError(t, err)
	}
}

func TestRing(t *testing.T) {
	r := Ring("Go", 50)

	assert.Equal(t, "Go", r.Label)
	assert.Equal(t, 50, r.Level)
	assert.Equal(t, "0 0 100 100", r.ViewBox)
	assert.Equal(t, 50, r.Center)
	assert.Equal(t, 10, r.Stroke)
	assert.Equal(t, "282.743", r.DashArray)
	assert.Equal(t, "141.372", r.DashOffset)

	assert.Equal(t, 100, Ring("HTML", 130).Level)
	assert.Equal(t, "0.000", Ring("HTML", 130).DashOffset)
}
