package section

import (
	"math/cmplx"

	"github.com/cwbudde/algo-analog/analog/param"
	"github.com/cwbudde/algo-analog/analog/response"
)

// FirstOrder is a single-pole analog lowpass section with the transfer
// function
//
//	H(s) = f0 / (s + f0)
//
// giving a real pole at s = -f0 and a -20 dB/decade rolloff.
type FirstOrder struct {
	id     int
	active bool
	cutoff *param.Oscillator
}

// NewFirstOrder creates an active first-order section with cutoff f0.
// Returns ErrNonPositiveParameter if f0 <= 0.
func NewFirstOrder(ids *Counter, f0 float64) (*FirstOrder, error) {
	if f0 <= 0 {
		return nil, ErrNonPositiveParameter
	}

	return &FirstOrder{
		id:     ids.Next(),
		active: true,
		cutoff: param.New(f0, param.DefaultTolerance),
	}, nil
}

// ID returns the section identity.
func (s *FirstOrder) ID() int { return s.id }

// Kind returns KindFirstOrder.
func (s *FirstOrder) Kind() Kind { return KindFirstOrder }

// Active reports whether the section contributes to a cascade.
func (s *FirstOrder) Active() bool { return s.active }

// SetActive toggles cascade participation.
func (s *FirstOrder) SetActive(active bool) { s.active = active }

// Cutoff returns the owned cutoff frequency parameter.
func (s *FirstOrder) Cutoff() *param.Oscillator { return s.cutoff }

// Params returns the owned parameters: the cutoff frequency.
func (s *FirstOrder) Params() []*param.Oscillator {
	return []*param.Oscillator{s.cutoff}
}

// Response evaluates H(jw) = f0 / (f0 + jw) in closed form:
//
//	re = f0^2 / (f0^2 + w^2)
//	im = -f0*w / (f0^2 + w^2)
//
// A section whose cutoff has been driven to zero through its owned
// parameter is transparent and contributes the identity response; the
// closed form would otherwise divide by zero at w = 0.
func (s *FirstOrder) Response(omega float64) complex128 {
	f0 := s.cutoff.Value()
	if f0 <= 0 {
		return complex(1, 0)
	}

	den := f0*f0 + omega*omega

	return complex(f0*f0/den, -f0*omega/den)
}

// Magnitude returns |H(jw)|.
func (s *FirstOrder) Magnitude(omega float64) float64 {
	return cmplx.Abs(s.Response(omega))
}

// MagnitudeDB returns 20*log10(|H(jw)|), floored at response.FloorDB.
func (s *FirstOrder) MagnitudeDB(omega float64) float64 {
	return response.MagnitudeDB(s.Magnitude(omega))
}

// Poles returns the single real pole at -f0, or nil when the cutoff has
// been driven to zero.
func (s *FirstOrder) Poles() []complex128 {
	f0 := s.cutoff.Value()
	if f0 <= 0 {
		return nil
	}

	return []complex128{complex(-f0, 0)}
}

// Sample evaluates the section on the shared log-frequency grid.
func (s *FirstOrder) Sample(g response.Grid) (response.Curve, error) {
	return response.Sample(s, g)
}
