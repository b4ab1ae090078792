package design

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-analog/analog/section"
)

// realPoleTolerance scales the passband edge to decide whether a pole's
// imaginary part is numerically zero.
const realPoleTolerance = 1e-9

// Design is a concrete stage decomposition electrically equivalent to the
// analytic minimum-order response.
type Design struct {
	Stages  []section.Section
	GainDB  float64
	Order   int
	Epsilon float64
}

// Decompose builds the cascade-ready stage list for a specification.
//
// Each complex-conjugate pole pair, identified by its positive-imaginary
// representative, yields a second-order section with f0 = |p| and
// Q = f0/(-2*sigma). For odd orders the single real pole yields a
// first-order section with f0 = -sigma, emitted last. Second-order
// sections appear in ascending pole index, so the output is deterministic.
//
// Every synthesized section has unity gain at DC, but the true Chebyshev
// Type I response of even order sits at -Ap dB at DC (odd orders sit at
// 0 dB). GainDB carries that compensation: -Ap for even orders, 0 for
// odd. Without it the reconstructed ripple envelope does not align with
// the analytic curve.
//
// Identities are drawn from ids, typically the counter of the cascade
// that will receive the stages.
func Decompose(s Spec, ids *section.Counter) (Design, error) {
	n, err := MinimumOrder(s)
	if err != nil {
		return Design{}, err
	}

	epsilon := Epsilon(s.PassbandRippleDB)
	poles := Poles(n, epsilon, s.PassbandEdge)
	tol := realPoleTolerance * s.PassbandEdge

	stages := make([]section.Section, 0, (n+1)/2)

	var firstOrder section.Section

	for _, p := range poles {
		sigma := real(p)

		switch {
		case imag(p) > tol:
			f0 := cmplx.Abs(p)
			q := f0 / (-2 * sigma)

			sec, err := section.NewSecondOrder(ids, f0, q)
			if err != nil {
				return Design{}, fmt.Errorf("design: second-order stage for pole %v: %w", p, err)
			}

			stages = append(stages, sec)
		case imag(p) >= -tol:
			sec, err := section.NewFirstOrder(ids, -sigma)
			if err != nil {
				return Design{}, fmt.Errorf("design: first-order stage for pole %v: %w", p, err)
			}

			firstOrder = sec
		}
		// Negative-imaginary poles are the mirrored halves of pairs
		// already represented.
	}

	if firstOrder != nil {
		stages = append(stages, firstOrder)
	}

	gainDB := 0.0
	if n%2 == 0 {
		gainDB = -s.PassbandRippleDB
	}

	return Design{
		Stages:  stages,
		GainDB:  gainDB,
		Order:   n,
		Epsilon: epsilon,
	}, nil
}
