package design

import (
	"github.com/cwbudde/algo-analog/analog/response"
)

// stencilToleranceDB absorbs sampling and rounding slack when a curve
// touches a mask edge exactly, as the Chebyshev ripple extremes do.
const stencilToleranceDB = 0.01

// StencilReport is the result of checking a sampled curve against the
// specification masks.
type StencilReport struct {
	Met bool

	// MaxDB is the largest magnitude anywhere on the curve. Gains above
	// 0 dB violate the stencil.
	MaxDB float64

	// MinPassbandDB is the smallest magnitude at or below the passband
	// edge. Values below -Ap violate the stencil.
	MinPassbandDB float64

	// MaxStopbandDB is the largest magnitude at or above the stopband
	// edge. Values above -As violate the stencil.
	MaxStopbandDB float64
}

// CheckStencil validates a sampled curve against the specification's
// passband and stopband masks: magnitude within [-Ap, 0] dB up to the
// passband edge, no point above 0 dB anywhere, and magnitude at or below
// -As beyond the stopband edge. The report carries the worst observed
// value per mask so a front end can show how far off a build is.
func CheckStencil(curve response.Curve, s Spec) (StencilReport, error) {
	err := s.Validate()
	if err != nil {
		return StencilReport{}, err
	}

	report := StencilReport{
		MaxDB:         response.FloorDB,
		MinPassbandDB: 0,
		MaxStopbandDB: response.FloorDB,
	}

	for _, p := range curve {
		if p.MagnitudeDB > report.MaxDB {
			report.MaxDB = p.MagnitudeDB
		}

		if p.Frequency <= s.PassbandEdge && p.MagnitudeDB < report.MinPassbandDB {
			report.MinPassbandDB = p.MagnitudeDB
		}

		if p.Frequency >= s.StopbandEdge && p.MagnitudeDB > report.MaxStopbandDB {
			report.MaxStopbandDB = p.MagnitudeDB
		}
	}

	report.Met = report.MaxDB <= stencilToleranceDB &&
		report.MinPassbandDB >= -s.PassbandRippleDB-stencilToleranceDB &&
		report.MaxStopbandDB <= -s.StopbandAttenDB+stencilToleranceDB

	return report, nil
}
