package param

import (
	"errors"
	"math"
)

// ErrInvalidRange is returned when a bounds update would produce an
// inverted range or a negative lower bound.
var ErrInvalidRange = errors.New("param: bounds must satisfy 0 <= min <= max")

// DefaultTolerance is the auto-ranging tolerance fraction used when the
// caller does not supply one.
const DefaultTolerance = 0.5

const twoPi = 2 * math.Pi

// Oscillator is a bounded scalar parameter that can be driven to sweep
// sinusoidally between its bounds by an external clock.
//
// The invariant min <= value <= max with min >= 0 holds after every
// mutation. The oscillator never advances on its own: the owner calls
// [Oscillator.Advance] once per time step, which keeps the type free of
// timers and trivially testable with synthetic steps.
type Oscillator struct {
	value     float64
	min       float64
	max       float64
	phase     float64
	animating bool
}

// New creates an oscillator at value with a symmetric tolerance band
// [value*(1-tolerance), value*(1+tolerance)] clamped to non-negative
// frequencies. A tolerance <= 0 selects [DefaultTolerance]. Negative
// values are treated as zero.
func New(value, tolerance float64) *Oscillator {
	if value < 0 {
		value = 0
	}

	o := &Oscillator{value: value}
	o.AutoRange(tolerance)

	return o
}

// NewWithBounds creates an oscillator at value with explicit bounds.
// Returns ErrInvalidRange if max < min or min < 0; value is clamped
// into the range.
func NewWithBounds(value, min, max float64) (*Oscillator, error) {
	o := &Oscillator{value: value}

	err := o.SetBounds(min, max)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// Value returns the current parameter value.
func (o *Oscillator) Value() float64 { return o.value }

// Bounds returns the current (min, max) pair.
func (o *Oscillator) Bounds() (float64, float64) { return o.min, o.max }

// Phase returns the animation phase in [0, 2*pi).
func (o *Oscillator) Phase() float64 { return o.phase }

// Animating reports whether Advance currently moves the value.
func (o *Oscillator) Animating() bool { return o.animating }

// SetValue sets the value, clamped into the current bounds.
func (o *Oscillator) SetValue(value float64) {
	o.value = clamp(value, o.min, o.max)
}

// SetBounds replaces the bounds and clamps the value into the new range.
// Returns ErrInvalidRange if max < min or min < 0.
func (o *Oscillator) SetBounds(min, max float64) error {
	if max < min || min < 0 {
		return ErrInvalidRange
	}

	o.min = min
	o.max = max
	o.value = clamp(o.value, min, max)

	return nil
}

// AutoRange recomputes the bounds as a symmetric tolerance band around
// the current value; a tolerance <= 0 selects [DefaultTolerance]:
//
//	min = max(0, value*(1-tolerance))
//	max = value*(1+tolerance)
//
// The value itself is unchanged, so interactive controls always frame
// the current setting.
func (o *Oscillator) AutoRange(tolerance float64) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	o.min = math.Max(0, o.value*(1-tolerance))
	o.max = o.value * (1 + tolerance)
}

// Start enables animation. The next Advance call moves the value.
func (o *Oscillator) Start() { o.animating = true }

// Stop disables animation, freezing the value at its last computed point.
func (o *Oscillator) Stop() { o.animating = false }

// Advance steps the animation by deltaTime seconds at speedHz sweeps per
// second. While animating, the phase accumulates deltaTime*speedHz*2*pi
// wrapped into [0, 2*pi) and the value follows a full sine period across
// the bounds per 1/speedHz seconds:
//
//	value = min + (sin(phase)+1)/2 * (max-min)
//
// A stopped oscillator ignores Advance entirely.
func (o *Oscillator) Advance(deltaTime, speedHz float64) {
	if !o.animating {
		return
	}

	o.phase = wrapPhase(o.phase + deltaTime*speedHz*twoPi)
	o.value = o.min + (math.Sin(o.phase)+1)/2*(o.max-o.min)
}

func wrapPhase(phase float64) float64 {
	phase = math.Mod(phase, twoPi)
	if phase < 0 {
		phase += twoPi
	}

	return phase
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
