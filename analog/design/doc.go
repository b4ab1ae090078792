// Package design derives minimum-order Chebyshev Type I lowpass filters
// from passband/stopband specifications.
//
// All functions are pure: they take a [Spec] and return value types, so
// they are safely callable from any context, including concurrently.
//
// # Usage
//
// Compute the minimum order and the analytic response curve:
//
//	spec := design.Spec{
//	    PassbandEdge: 1, StopbandEdge: 3,
//	    PassbandRippleDB: 3, StopbandAttenDB: 30,
//	}
//	ideal, _ := design.IdealResponse(spec, response.GridAround(1, 3))
//
// Or decompose the design into concrete cascade stages:
//
//	c := cascade.New()
//	d, _ := design.Decompose(spec, c.Counter())
//	for _, s := range d.Stages {
//	    c.AddStage(s)
//	}
//	c.SetGainDB(d.GainDB)
//
// The decomposition's GainDB is the DC compensation that aligns the
// reconstructed ripple envelope with the analytic curve: even orders sit
// at -Ap dB at DC, odd orders at 0 dB.
package design
