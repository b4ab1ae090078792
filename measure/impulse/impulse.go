// Package impulse synthesizes time-domain impulse responses from analytic
// analog frequency responses.
//
// The continuous response H(jw) of a section, cascade, or ideal design is
// sampled on a conjugate-symmetric linear frequency grid and inverted with
// an FFT, approximating
//
//	h(t) = 1/(2*pi) * Integral H(jw) * e^(jwt) dw
//
// band-limited to the synthesizer bandwidth. This gives the caller a time
// domain view of a filter build for display next to the frequency curves.
package impulse

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-analog/analog/response"
)

// Errors returned by impulse synthesis.
var (
	ErrInvalidBandwidth = errors.New("impulse: bandwidth must be positive")
	ErrInvalidLength    = errors.New("impulse: length must be positive")
)

// Synthesizer computes band-limited impulse responses.
type Synthesizer struct {
	Bandwidth float64 // highest represented angular frequency in rad/s
	Length    int     // number of returned time samples
}

// Validate checks the synthesizer parameters.
func (s *Synthesizer) Validate() error {
	if s.Bandwidth <= 0 {
		return ErrInvalidBandwidth
	}

	if s.Length <= 0 {
		return ErrInvalidLength
	}

	return nil
}

// TimeStep returns the spacing of the returned samples in seconds,
// pi/Bandwidth, the sampling interval that makes Bandwidth the Nyquist
// frequency of the reconstruction.
func (s *Synthesizer) TimeStep() (float64, error) {
	if s.Bandwidth <= 0 {
		return 0, ErrInvalidBandwidth
	}

	return math.Pi / s.Bandwidth, nil
}

// Synthesize samples H(jw) on a linear grid up to the bandwidth, mirrors
// it into a conjugate-symmetric spectrum, and inverse transforms it. The
// result holds Length time samples spaced [Synthesizer.TimeStep] apart.
//
// The synthesis is deterministic: identical responders and parameters
// yield identical output.
func (s *Synthesizer) Synthesize(r response.Responder) ([]float64, error) {
	err := s.Validate()
	if err != nil {
		return nil, err
	}

	fftSize := nextPowerOf2(s.Length)
	half := fftSize / 2
	deltaOmega := 2 * s.Bandwidth / float64(fftSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("impulse: failed to create FFT plan: %w", err)
	}

	// Positive-frequency bins, then the conjugate mirror. The Nyquist bin
	// must be real for the time signal to be real.
	bins := make([]complex128, fftSize)
	for k := 0; k <= half; k++ {
		bins[k] = r.Response(float64(k) * deltaOmega)
	}

	bins[half] = complex(real(bins[half]), 0)
	for k := 1; k < half; k++ {
		bins[fftSize-k] = complex(real(bins[k]), -imag(bins[k]))
	}

	timeBins := make([]complex128, fftSize)

	err = plan.Inverse(timeBins, bins)
	if err != nil {
		return nil, fmt.Errorf("impulse: inverse FFT failed: %w", err)
	}

	// Riemann-sum scaling: with dt*deltaOmega = 2*pi/fftSize the inverse
	// DFT approximates the inversion integral up to a factor 1/dt.
	dt := math.Pi / s.Bandwidth
	scale := 1 / dt

	out := make([]float64, s.Length)
	for i := range out {
		out[i] = real(timeBins[i]) * scale
	}

	return out, nil
}

// PeakIndex returns the sample index of the absolute maximum of h, or -1
// for an empty response.
func PeakIndex(h []float64) int {
	idx := -1
	peak := 0.0

	for i, v := range h {
		if a := math.Abs(v); idx < 0 || a > peak {
			peak = a
			idx = i
		}
	}

	return idx
}

// Energy returns the total energy sum(h[i]^2) of a response.
func Energy(h []float64) float64 {
	var sum float64
	for _, v := range h {
		sum += v * v
	}

	return sum
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
