// Package section provides the analog lowpass filter sections that make up
// a cascade: first-order single-pole sections and second-order resonant
// sections.
//
// Each section evaluates its continuous-frequency complex response H(jw),
// reports its s-plane poles, and owns the oscillating parameters that
// interactive front ends bind to. Sections carry a unique integer identity
// assigned from an explicit [Counter] owned by whichever component creates
// them; there is no ambient global counter.
package section

import (
	"errors"

	"github.com/cwbudde/algo-analog/analog/param"
	"github.com/cwbudde/algo-analog/analog/response"
)

// ErrNonPositiveParameter is returned when a section is constructed with a
// cutoff frequency or quality factor <= 0.
var ErrNonPositiveParameter = errors.New("section: cutoff frequency and Q must be positive")

// Kind discriminates the closed set of section variants.
type Kind string

// Section kinds.
const (
	KindFirstOrder  Kind = "first-order"
	KindSecondOrder Kind = "second-order"
)

// Counter allocates monotonically increasing section identities.
// Identities are never reused; the zero value is ready to use.
type Counter struct {
	last int
}

// Next returns the next identity.
func (c *Counter) Next() int {
	c.last++
	return c.last
}

// Section is one unit of an analog filter chain.
type Section interface {
	// ID returns the unique identity assigned at construction.
	ID() int

	// Kind returns the variant discriminant.
	Kind() Kind

	// Active reports whether the section contributes to a cascade.
	Active() bool

	// SetActive toggles cascade participation. An inactive section
	// contributes the identity response (1, 0) to the chain product.
	SetActive(active bool)

	// Response evaluates the complex frequency response H(jw).
	Response(omega float64) complex128

	// Magnitude returns |H(jw)|.
	Magnitude(omega float64) float64

	// MagnitudeDB returns 20*log10(|H(jw)|), floored at response.FloorDB.
	MagnitudeDB(omega float64) float64

	// Poles returns the s-plane pole locations.
	Poles() []complex128

	// Params returns the oscillating parameters owned by the section, in
	// declaration order (cutoff first). They exist for UI binding and for
	// the cascade's animation driver; the section itself never advances
	// them.
	Params() []*param.Oscillator

	// Sample evaluates the section on the shared log-frequency grid.
	Sample(g response.Grid) (response.Curve, error)
}
