package impulse

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-analog/internal/testutil"
)

// lowpassResponder is a first-order lowpass at f0 = 1 rad/s.
type lowpassResponder struct{}

func (lowpassResponder) Response(omega float64) complex128 {
	den := 1 + omega*omega
	return complex(1/den, -omega/den)
}

func TestSynthesizer_Validate(t *testing.T) {
	cases := []struct {
		name string
		syn  Synthesizer
		want error
	}{
		{"zero bandwidth", Synthesizer{Bandwidth: 0, Length: 64}, ErrInvalidBandwidth},
		{"negative bandwidth", Synthesizer{Bandwidth: -1, Length: 64}, ErrInvalidBandwidth},
		{"zero length", Synthesizer{Bandwidth: 10, Length: 0}, ErrInvalidLength},
	}

	for _, tc := range cases {
		if err := tc.syn.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}

	ok := Synthesizer{Bandwidth: 100, Length: 256}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid synthesizer rejected: %v", err)
	}
}

func TestSynthesizer_TimeStep(t *testing.T) {
	s := Synthesizer{Bandwidth: 100, Length: 256}

	dt, err := s.TimeStep()
	if err != nil {
		t.Fatalf("TimeStep: %v", err)
	}

	testutil.RequireNearlyEqual(t, dt, math.Pi/100, 1e-15)

	if _, err := (&Synthesizer{Bandwidth: 0}).TimeStep(); !errors.Is(err, ErrInvalidBandwidth) {
		t.Fatalf("err = %v, want ErrInvalidBandwidth", err)
	}
}

func TestSynthesize_LengthAndFiniteness(t *testing.T) {
	s := Synthesizer{Bandwidth: 100, Length: 200}

	h, err := s.Synthesize(lowpassResponder{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if len(h) != s.Length {
		t.Fatalf("len = %d, want %d", len(h), s.Length)
	}

	testutil.RequireFinite(t, h)
}

func TestSynthesize_Deterministic(t *testing.T) {
	s := Synthesizer{Bandwidth: 100, Length: 256}

	a, err := s.Synthesize(lowpassResponder{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	b, err := s.Synthesize(lowpassResponder{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSynthesize_CausalDecay(t *testing.T) {
	// A lowpass at 1 rad/s decays as e^(-t). With dt = pi/100 the first 64
	// samples cover two time constants; almost all energy sits there.
	s := Synthesizer{Bandwidth: 100, Length: 256}

	h, err := s.Synthesize(lowpassResponder{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if idx := PeakIndex(h); idx < 0 || idx > 8 {
		t.Fatalf("peak at sample %d, want near the origin", idx)
	}

	head := Energy(h[:64])
	tail := Energy(h[64:])

	if head <= tail {
		t.Fatalf("energy not concentrated at the start: head %v, tail %v", head, tail)
	}
}

func TestSynthesize_InvalidParams(t *testing.T) {
	_, err := (&Synthesizer{Bandwidth: -1, Length: 64}).Synthesize(lowpassResponder{})
	if !errors.Is(err, ErrInvalidBandwidth) {
		t.Fatalf("err = %v, want ErrInvalidBandwidth", err)
	}
}

func TestPeakIndex_Empty(t *testing.T) {
	if got := PeakIndex(nil); got != -1 {
		t.Fatalf("PeakIndex(nil) = %d, want -1", got)
	}
}

func TestEnergy(t *testing.T) {
	testutil.RequireNearlyEqual(t, Energy([]float64{3, 4}), 25, 1e-12)
	testutil.RequireNearlyEqual(t, Energy(nil), 0, 0)
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 200: 256, 256: 256, 257: 512}
	for n, want := range cases {
		if got := nextPowerOf2(n); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", n, got, want)
		}
	}
}
