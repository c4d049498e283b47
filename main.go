// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosw/eos"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	S := io.ArgToFloat(0, 35.0)
	T := io.ArgToFloat(1, 10.0)
	P := io.ArgToFloat(2, 0.0)
	PR := io.ArgToFloat(3, 0.0)
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nGosw -- Seawater Properties (EOS-80 / UNESCO 1983)\n")
		io.Pf("Copyright 2017 The Gosw Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"practical salinity [psu]", "S", S,
			"in-situ temperature [°C ITS-90]", "T", T,
			"pressure [dbar]", "P", P,
			"reference pressure [dbar]", "PR", PR,
			"show messages", "verbose", verbose,
		))
	}

	// evaluate surface
	io.Pf("density            ρ = %12.5f [kg/m³]\n", eos.Dens(S, T, P))
	io.Pf("secant bulk mod    K = %12.3f [bar]\n", eos.SecantK(S, T, P))
	io.Pf("adiabatic grad   ATG = %15.7e [°C/dbar]\n", eos.Adtg(S, T, P))
	io.Pf("potential temp     θ = %12.5f [°C ITS-90]\n", eos.Ptmp(S, T, P, PR))
	io.Pf("potential dens    ρθ = %12.5f [kg/m³]\n", eos.Pden(S, T, P, PR))
	io.Pf("sound speed        c = %12.3f [m/s]\n", eos.Svel(S, T, P))
	io.Pf("freezing point    Tf = %12.5f [°C ITS-90]\n", eos.Tfreeze(S, P))
}
