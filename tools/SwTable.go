// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gosw/eos"
)

// SwTable prints tables of seawater properties over the oceanic range, in
// the layout of the UNESCO 1983 check tables: one block per salinity, rows
// over temperature, columns over pressure.
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input
	Svals := []float64{0, 35, 40}
	Tvals := utl.LinSpace(0, 40, 5)
	Pvals := []float64{0, 1000, 5000, 10000}

	// density
	io.PfWhite("density ρ [kg/m³]\n")
	for _, S := range Svals {
		io.Pf("\nS = %g\n%10s", S, "T\\P")
		for _, P := range Pvals {
			io.Pf("%12.0f", P)
		}
		io.Pf("\n")
		for _, T := range Tvals {
			io.Pf("%10.1f", T)
			for _, P := range Pvals {
				io.Pf("%12.5f", eos.Dens(S, T, P))
			}
			io.Pf("\n")
		}
	}

	// potential temperature referenced to the surface
	io.PfWhite("\npotential temperature θ [°C ITS-90], PR = 0\n")
	for _, S := range Svals {
		io.Pf("\nS = %g\n%10s", S, "T\\P")
		for _, P := range Pvals {
			io.Pf("%12.0f", P)
		}
		io.Pf("\n")
		for _, T := range Tvals {
			io.Pf("%10.1f", T)
			for _, P := range Pvals {
				io.Pf("%12.5f", eos.Ptmp(S, T, P, 0))
			}
			io.Pf("\n")
		}
	}

	// sound speed
	io.PfWhite("\nsound speed c [m/s]\n")
	for _, S := range Svals {
		io.Pf("\nS = %g\n%10s", S, "T\\P")
		for _, P := range Pvals {
			io.Pf("%12.0f", P)
		}
		io.Pf("\n")
		for _, T := range Tvals {
			io.Pf("%10.1f", T)
			for _, P := range Pvals {
				io.Pf("%12.3f", eos.Svel(S, T, P))
			}
			io.Pf("\n")
		}
	}
}
