package design

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-analog/analog/response"
)

// ErrInfeasibleSpec is returned when a specification cannot be met by a
// finite-order Chebyshev Type I lowpass: non-increasing band edges,
// non-positive ripple, or stopband attenuation that does not exceed the
// passband ripple.
var ErrInfeasibleSpec = errors.New("design: specification cannot be met by a finite-order filter")

// Spec is a lowpass passband/stopband specification. Frequencies are
// unitless normalized angular values; the passband edge is conventionally
// anchored near 1.
type Spec struct {
	PassbandEdge     float64 // wp, rad/s
	StopbandEdge     float64 // ws, rad/s, must exceed wp
	PassbandRippleDB float64 // Ap, maximum passband deviation in dB
	StopbandAttenDB  float64 // As, minimum stopband attenuation in dB
}

// Validate checks that the specification admits a finite minimum order.
func (s Spec) Validate() error {
	if s.PassbandEdge <= 0 || s.StopbandEdge <= s.PassbandEdge {
		return ErrInfeasibleSpec
	}

	if s.PassbandRippleDB <= 0 || s.StopbandAttenDB <= s.PassbandRippleDB {
		return ErrInfeasibleSpec
	}

	return nil
}

// Epsilon returns the Chebyshev ripple factor for a passband ripple in dB:
//
//	epsilon = sqrt(10^(Ap/10) - 1)
func Epsilon(rippleDB float64) float64 {
	return math.Sqrt(math.Pow(10, rippleDB/10) - 1)
}

// MinimumOrder returns the smallest Chebyshev Type I order meeting the
// specification:
//
//	n = ceil( acosh( sqrt(A^2-1)/epsilon ) / acosh(ws/wp) ),  A = 10^(As/20)
//
// The result is at least 1. Returns ErrInfeasibleSpec when the inputs
// violate the preconditions, rather than propagating NaN.
func MinimumOrder(s Spec) (int, error) {
	err := s.Validate()
	if err != nil {
		return 0, err
	}

	epsilon := Epsilon(s.PassbandRippleDB)
	a := math.Pow(10, s.StopbandAttenDB/20)

	selectivity := math.Sqrt(a*a-1) / epsilon
	if selectivity < 1 {
		return 0, ErrInfeasibleSpec
	}

	n := int(math.Ceil(math.Acosh(selectivity) / math.Acosh(s.StopbandEdge/s.PassbandEdge)))
	if n < 1 {
		n = 1
	}

	return n, nil
}

// Poles returns the n Chebyshev Type I poles on their left half-plane
// ellipse. For k = 1..n with gamma = asinh(1/epsilon)/n and
// theta_k = pi*(2k-1)/(2n):
//
//	sigma_k = -wp * sinh(gamma) * sin(theta_k)
//	omega_k =  wp * cosh(gamma) * cos(theta_k)
//
// All real parts are strictly negative for any epsilon > 0.
func Poles(order int, epsilon, passbandEdge float64) []complex128 {
	if order < 1 {
		return nil
	}

	gamma := math.Asinh(1/epsilon) / float64(order)
	sinhG := math.Sinh(gamma)
	coshG := math.Cosh(gamma)

	poles := make([]complex128, order)
	for k := 1; k <= order; k++ {
		theta := math.Pi * float64(2*k-1) / (2 * float64(order))
		poles[k-1] = complex(
			-passbandEdge*sinhG*math.Sin(theta),
			passbandEdge*coshG*math.Cos(theta),
		)
	}

	return poles
}

// IdealMagnitude evaluates the analytic Chebyshev Type I magnitude at
// angular frequency omega. With x = omega/wp, the Chebyshev polynomial is
// taken on its trigonometric branch for x <= 1 and its hyperbolic branch
// beyond; the branches meet continuously at x = 1:
//
//	T_n(x) = cos(n*acos(x))        x <= 1
//	T_n(x) = cosh(n*acosh(x))      x >  1
//	|H|    = 1 / sqrt(1 + epsilon^2 * T_n(x)^2)
func IdealMagnitude(omega float64, order int, epsilon, passbandEdge float64) float64 {
	x := omega / passbandEdge

	var tn float64
	if x <= 1 {
		tn = math.Cos(float64(order) * math.Acos(x))
	} else {
		tn = math.Cosh(float64(order) * math.Acosh(x))
	}

	return 1 / math.Sqrt(1+epsilon*epsilon*tn*tn)
}

// Ideal is the analytic minimum-order design for a specification.
type Ideal struct {
	Order   int
	Epsilon float64
	Curve   response.Curve
}

// idealResponder adapts the analytic magnitude to the shared sampling
// contract. The ideal curve carries no phase.
type idealResponder struct {
	order        int
	epsilon      float64
	passbandEdge float64
}

func (r idealResponder) Response(omega float64) complex128 {
	return complex(IdealMagnitude(omega, r.order, r.epsilon, r.passbandEdge), 0)
}

// IdealResponse computes the minimum order for the specification and
// samples the analytic magnitude on the shared log-frequency grid,
// returning the curve together with the order and ripple factor for
// display.
func IdealResponse(s Spec, g response.Grid) (Ideal, error) {
	n, err := MinimumOrder(s)
	if err != nil {
		return Ideal{}, err
	}

	epsilon := Epsilon(s.PassbandRippleDB)

	curve, err := response.Sample(idealResponder{
		order:        n,
		epsilon:      epsilon,
		passbandEdge: s.PassbandEdge,
	}, g)
	if err != nil {
		return Ideal{}, err
	}

	return Ideal{Order: n, Epsilon: epsilon, Curve: curve}, nil
}
