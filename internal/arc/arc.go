// Package arc computes the stroke-dash geometry for circular progress rings.
//
// A ring is drawn as a circle whose stroke dash array equals its circumference;
// shifting the dash by DashOffset hides the unfilled share of the ring.
package arc

import (
	"errors"
	"fmt"
	"math"
)

// Ring drawing constants, in units of a 100x100 SVG viewBox.
const (
	Radius      = 45.0
	ViewBox     = 100
	Center      = ViewBox / 2
	StrokeWidth = 10

	MinLevel = 0
	MaxLevel = 100
)

// ErrLevelOutOfRange is returned by Validate for levels outside [0, 100].
var ErrLevelOutOfRange = errors.New("level out of range")

// Params are the two numbers a ring needs.
type Params struct {
	Circumference float64 `json:"circumference"`
	DashOffset    float64 `json:"dashOffset"`
}

// Circumference returns 2πr.
func Circumference(r float64) float64 {
	return 2 * math.Pi * r
}

// Clamp limits level to [MinLevel, MaxLevel].
func Clamp(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

// Validate returns ErrLevelOutOfRange if level is outside [0, 100].
func Validate(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLevelOutOfRange, level, MinLevel, MaxLevel)
	}
	return nil
}

// ForLevel returns the ring parameters for a percentage. Levels outside
// [0, 100] are clamped, so DashOffset is always within [0, Circumference].
func ForLevel(level int) Params {
	c := Circumference(Radius)
	return Params{
		Circumference: c,
		DashOffset:    c * (1 - float64(Clamp(level))/MaxLevel),
	}
}
