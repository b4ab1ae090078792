package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-analog/analog/cascade"
	"github.com/cwbudde/algo-analog/analog/design"
)

func ExampleMinimumOrder() {
	spec := design.Spec{
		PassbandEdge:     1,
		StopbandEdge:     3,
		PassbandRippleDB: 3,
		StopbandAttenDB:  30,
	}

	n, err := design.MinimumOrder(spec)
	if err != nil {
		panic(err)
	}

	fmt.Printf("minimum order: %d\n", n)
	// Output:
	// minimum order: 3
}

func ExampleDecompose() {
	spec := design.Spec{
		PassbandEdge:     1,
		StopbandEdge:     3,
		PassbandRippleDB: 3,
		StopbandAttenDB:  30,
	}

	c := cascade.New()

	d, err := design.Decompose(spec, c.Counter())
	if err != nil {
		panic(err)
	}

	for _, s := range d.Stages {
		c.AddStage(s)
	}

	c.SetGainDB(d.GainDB)

	fmt.Printf("stages=%d gain=%.0f dB\n", len(d.Stages), d.GainDB)
	fmt.Printf("w=0.01: %.2f dB\n", c.MagnitudeDB(0.01))
	fmt.Printf("w=1:    %.2f dB\n", c.MagnitudeDB(1))
	fmt.Printf("w=3:    %.2f dB\n", c.MagnitudeDB(3))
	// Output:
	// stages=2 gain=0 dB
	// w=0.01: -0.00 dB
	// w=1:    -3.00 dB
	// w=3:    -39.89 dB
}
