// Package cascade composes analog filter sections into an ordered chain
// evaluated by complex multiplication, with a global output gain and an
// externally clocked animation driver for the owned parameters.
package cascade

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/analog/response"
	"github.com/cwbudde/algo-analog/analog/section"
)

// DefaultAnimationSpeed is the parameter sweep rate in full sine periods
// per second used when no option overrides it.
const DefaultAnimationSpeed = 1.0

// Cascade is an ordered chain of analog filter sections plus a scalar
// output gain. Stage order defines the electrical chain; the numeric
// response is order-independent because complex multiplication commutes,
// but insertion order is preserved for deterministic iteration and
// removal. The cascade owns the identity counter for the stages it holds.
//
// A cascade is not safe for concurrent use; the caller serializes
// evaluation and mutation, typically one pass per external tick.
type Cascade struct {
	stages         []section.Section
	ids            section.Counter
	gainDB         float64
	animationSpeed float64
}

// Option mutates a Cascade at construction time.
type Option func(*Cascade)

// WithGainDB sets the initial global output trim in dB.
func WithGainDB(db float64) Option {
	return func(c *Cascade) {
		c.gainDB = db
	}
}

// WithAnimationSpeed sets the parameter sweep rate in Hz.
func WithAnimationSpeed(speedHz float64) Option {
	return func(c *Cascade) {
		if speedHz > 0 {
			c.animationSpeed = speedHz
		}
	}
}

// New creates an empty cascade with 0 dB gain and the default animation
// speed.
func New(opts ...Option) *Cascade {
	c := &Cascade{animationSpeed: DefaultAnimationSpeed}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Counter returns the identity counter for stages created for this
// cascade. Threading it explicitly into stage constructors keeps identity
// assignment deterministic and free of global state.
func (c *Cascade) Counter() *section.Counter { return &c.ids }

// AddStage appends a stage and returns it, so construction and insertion
// chain in one expression.
func (c *Cascade) AddStage(s section.Section) section.Section {
	c.stages = append(c.stages, s)
	return s
}

// RemoveStage removes the stage with the given identity. Removing an
// absent identity is a no-op, not an error. Identities are never reused.
func (c *Cascade) RemoveStage(id int) {
	for i, s := range c.stages {
		if s.ID() == id {
			c.stages = append(c.stages[:i], c.stages[i+1:]...)
			return
		}
	}
}

// Clear empties the stage sequence and resets the gain to 0 dB.
func (c *Cascade) Clear() {
	c.stages = nil
	c.gainDB = 0
}

// Stages returns the stages in insertion order. The returned slice is the
// cascade's own backing storage and must not be mutated by the caller.
func (c *Cascade) Stages() []section.Section { return c.stages }

// Len returns the number of stages, active or not.
func (c *Cascade) Len() int { return len(c.stages) }

// GainDB returns the global output trim in dB.
func (c *Cascade) GainDB() float64 { return c.gainDB }

// SetGainDB sets the global output trim in dB.
func (c *Cascade) SetGainDB(db float64) { c.gainDB = db }

// AnimationSpeed returns the shared parameter sweep rate in Hz.
func (c *Cascade) AnimationSpeed() float64 { return c.animationSpeed }

// SetAnimationSpeed sets the shared parameter sweep rate in Hz.
// Non-positive rates are ignored.
func (c *Cascade) SetAnimationSpeed(speedHz float64) {
	if speedHz > 0 {
		c.animationSpeed = speedHz
	}
}

// Response folds the active stage responses by complex multiplication in
// sequence order, then scales by the linear gain 10^(gainDB/20).
// Inactive stages contribute the identity response (1, 0).
func (c *Cascade) Response(omega float64) complex128 {
	h := complex(math.Pow(10, c.gainDB/20), 0)
	for _, s := range c.stages {
		if !s.Active() {
			continue
		}

		h *= s.Response(omega)
	}

	return h
}

// Magnitude returns |H(jw)| of the full chain.
func (c *Cascade) Magnitude(omega float64) float64 {
	return cmplx.Abs(c.Response(omega))
}

// MagnitudeDB returns 20*log10(|H(jw)|), floored at response.FloorDB.
func (c *Cascade) MagnitudeDB(omega float64) float64 {
	return response.MagnitudeDB(c.Magnitude(omega))
}

// Sample evaluates the chain on the shared log-frequency grid.
func (c *Cascade) Sample(g response.Grid) (response.Curve, error) {
	return response.Sample(c, g)
}

// AdvanceAnimations steps every owned parameter of every stage by
// deltaTime seconds at the cascade's shared animation speed. Parameters
// that are not animating ignore the step.
func (c *Cascade) AdvanceAnimations(deltaTime float64) {
	for _, s := range c.stages {
		for _, p := range s.Params() {
			p.Advance(deltaTime, c.animationSpeed)
		}
	}
}

// PlayAll starts animation on every owned parameter of every stage.
func (c *Cascade) PlayAll() {
	for _, s := range c.stages {
		for _, p := range s.Params() {
			p.Start()
		}
	}
}

// PauseAll stops animation on every owned parameter of every stage,
// freezing values at their last computed points.
func (c *Cascade) PauseAll() {
	for _, s := range c.stages {
		for _, p := range s.Params() {
			p.Stop()
		}
	}
}
