package section

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/analog/param"
	"github.com/cwbudde/algo-analog/analog/response"
)

// SecondOrder is a two-pole analog lowpass section with the transfer
// function
//
//	H(s) = f0^2 / (s^2 + (f0/Q)*s + f0^2)
//
// rolling off at -40 dB/decade. Q >= 0.5 places a complex-conjugate pole
// pair on the circle |s| = f0; Q < 0.5 splits it into two distinct real
// poles.
type SecondOrder struct {
	id      int
	active  bool
	cutoff  *param.Oscillator
	quality *param.Oscillator
}

// NewSecondOrder creates an active second-order section with cutoff f0 and
// quality factor q. Returns ErrNonPositiveParameter if f0 <= 0 or q <= 0.
func NewSecondOrder(ids *Counter, f0, q float64) (*SecondOrder, error) {
	if f0 <= 0 || q <= 0 {
		return nil, ErrNonPositiveParameter
	}

	return &SecondOrder{
		id:      ids.Next(),
		active:  true,
		cutoff:  param.New(f0, param.DefaultTolerance),
		quality: param.New(q, param.DefaultTolerance),
	}, nil
}

// ID returns the section identity.
func (s *SecondOrder) ID() int { return s.id }

// Kind returns KindSecondOrder.
func (s *SecondOrder) Kind() Kind { return KindSecondOrder }

// Active reports whether the section contributes to a cascade.
func (s *SecondOrder) Active() bool { return s.active }

// SetActive toggles cascade participation.
func (s *SecondOrder) SetActive(active bool) { s.active = active }

// Cutoff returns the owned cutoff frequency parameter.
func (s *SecondOrder) Cutoff() *param.Oscillator { return s.cutoff }

// Quality returns the owned quality factor parameter.
func (s *SecondOrder) Quality() *param.Oscillator { return s.quality }

// Params returns the owned parameters: cutoff frequency, then Q.
func (s *SecondOrder) Params() []*param.Oscillator {
	return []*param.Oscillator{s.cutoff, s.quality}
}

// Response evaluates H(jw) = f0^2 / (f0^2 - w^2 + j*(f0/Q)*w) in closed
// form. With d = (f0^2-w^2)^2 + (f0*w/Q)^2:
//
//	re = f0^2 * (f0^2 - w^2) / d
//	im = -f0^2 * (f0*w/Q) / d
//
// A section whose cutoff or Q has been driven to zero through its owned
// parameters is transparent and contributes the identity response; the
// closed form would otherwise produce NaN.
func (s *SecondOrder) Response(omega float64) complex128 {
	f0 := s.cutoff.Value()
	q := s.quality.Value()

	if f0 <= 0 || q <= 0 {
		return complex(1, 0)
	}

	f02 := f0 * f0
	a := f02 - omega*omega
	b := f0 * omega / q
	den := a*a + b*b

	return complex(f02*a/den, -f02*b/den)
}

// Magnitude returns |H(jw)|.
func (s *SecondOrder) Magnitude(omega float64) float64 {
	return cmplx.Abs(s.Response(omega))
}

// MagnitudeDB returns 20*log10(|H(jw)|), floored at response.FloorDB.
func (s *SecondOrder) MagnitudeDB(omega float64) float64 {
	return response.MagnitudeDB(s.Magnitude(omega))
}

// Poles solves the characteristic equation s^2 + (f0/Q)s + f0^2 = 0.
// With alpha = f0/(2Q) and discriminant f0^2/(4Q^2) - f0^2, a
// non-negative discriminant yields two real poles -alpha +/- sqrt(disc);
// a negative one yields the conjugate pair -alpha +/- j*sqrt(-disc).
// Both lie strictly in the left half plane for any f0, Q > 0. When the
// cutoff or Q has been driven to zero the section has no pole
// representation and Poles returns nil.
func (s *SecondOrder) Poles() []complex128 {
	f0 := s.cutoff.Value()
	q := s.quality.Value()

	if f0 <= 0 || q <= 0 {
		return nil
	}

	alpha := f0 / (2 * q)
	disc := f0*f0/(4*q*q) - f0*f0

	if disc >= 0 {
		r := math.Sqrt(disc)
		return []complex128{
			complex(-alpha+r, 0),
			complex(-alpha-r, 0),
		}
	}

	r := math.Sqrt(-disc)

	return []complex128{
		complex(-alpha, r),
		complex(-alpha, -r),
	}
}

// Sample evaluates the section on the shared log-frequency grid.
func (s *SecondOrder) Sample(g response.Grid) (response.Curve, error) {
	return response.Sample(s, g)
}
