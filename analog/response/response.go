// Package response defines the shared log-frequency sampling contract for
// analog frequency responses.
//
// Sections, cascades, and ideal designer curves are all sampled through the
// same [Grid], so the three curve types are directly comparable on a shared
// logarithmic frequency axis.
package response

import (
	"errors"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by response sampling.
var ErrInvalidGrid = errors.New("response: grid must satisfy freqMin < freqMax with positive freqMax and non-negative numPoints")

const (
	// MinFrequency is the lowest sampled angular frequency. Grids starting
	// below it are clamped so the logarithmic spacing stays finite.
	MinFrequency = 0.001

	// FloorDB is the magnitude floor in dB. Magnitudes at or below
	// [MagnitudeFloor] report exactly FloorDB instead of -Inf, keeping
	// plotting and curve comparison numerically stable.
	FloorDB = -200

	// MagnitudeFloor is the linear magnitude below which FloorDB applies.
	MagnitudeFloor = 1e-10
)

// Responder is any source of a complex analog frequency response H(jw).
type Responder interface {
	Response(omega float64) complex128
}

// Point is one sampled response value.
type Point struct {
	Frequency   float64 // angular frequency (rad/s, unitless normalized)
	Magnitude   float64 // |H(jw)|
	MagnitudeDB float64 // 20*log10(|H|), floored at FloorDB
}

// Curve is an ordered sequence of sampled response points.
type Curve []Point

// Frequencies returns the frequency column of the curve.
func (c Curve) Frequencies() []float64 {
	out := make([]float64, len(c))
	for i := range c {
		out[i] = c[i].Frequency
	}

	return out
}

// MagnitudesDB returns the dB magnitude column of the curve.
func (c Curve) MagnitudesDB() []float64 {
	out := make([]float64, len(c))
	for i := range c {
		out[i] = c[i].MagnitudeDB
	}

	return out
}

// Grid describes a log-uniform frequency sampling axis with NumPoints+1
// points between max(FreqMin, MinFrequency) and FreqMax. A zero NumPoints
// selects [DefaultNumPoints], so struct-literal grids only need the
// frequency range.
type Grid struct {
	FreqMin   float64
	FreqMax   float64
	NumPoints int
}

func (g Grid) numPoints() int {
	if g.NumPoints == 0 {
		return DefaultNumPoints
	}

	return g.NumPoints
}

// DefaultNumPoints is the sampling density used by the grid constructors.
const DefaultNumPoints = 500

// DefaultGrid covers two decades around a unit passband edge.
func DefaultGrid() Grid {
	return Grid{FreqMin: 0.1, FreqMax: 100, NumPoints: DefaultNumPoints}
}

// GridAround frames a band-edge pair one decade below the lower edge and
// one decade above the upper edge, the plotting window used for comparing
// a response against its specification stencil.
func GridAround(edgeA, edgeB float64) Grid {
	lo := math.Min(edgeA, edgeB)
	hi := math.Max(edgeA, edgeB)

	return Grid{FreqMin: lo / 10, FreqMax: hi * 10, NumPoints: DefaultNumPoints}
}

// Validate checks that the grid describes a non-empty increasing axis.
func (g Grid) Validate() error {
	if g.NumPoints < 0 {
		return ErrInvalidGrid
	}

	if g.FreqMax <= 0 || g.FreqMax <= math.Max(g.FreqMin, MinFrequency) {
		return ErrInvalidGrid
	}

	return nil
}

// Frequencies returns the NumPoints+1 log-uniform frequencies of the grid.
func (g Grid) Frequencies() ([]float64, error) {
	err := g.Validate()
	if err != nil {
		return nil, err
	}

	n := g.numPoints()
	lo := math.Max(g.FreqMin, MinFrequency)
	ratio := g.FreqMax / lo
	out := make([]float64, n+1)

	for i := range out {
		out[i] = lo * math.Pow(ratio, float64(i)/float64(n))
	}

	return out, nil
}

// MagnitudeDB converts a linear magnitude to dB with the FloorDB policy.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude <= MagnitudeFloor {
		return FloorDB
	}

	return 20 * mathLog10(magnitude)
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Sample evaluates r on the grid and returns the sampled curve.
//
// Magnitudes are extracted with SIMD-optimized vector math where available;
// scratch buffers are pooled, so in steady state this allocates only the
// output curve. Identical inputs always produce identical curves.
func Sample(r Responder, g Grid) (Curve, error) {
	freqs, err := g.Frequencies()
	if err != nil {
		return nil, err
	}

	re, im, buf := getScratch(len(freqs))
	for i, w := range freqs {
		h := r.Response(w)
		re[i] = real(h)
		im[i] = imag(h)
	}

	mags := make([]float64, len(freqs))
	vecmath.Magnitude(mags, re, im)
	putScratch(buf)

	curve := make(Curve, len(freqs))
	for i := range curve {
		curve[i] = Point{
			Frequency:   freqs[i],
			Magnitude:   mags[i],
			MagnitudeDB: MagnitudeDB(mags[i]),
		}
	}

	return curve, nil
}
