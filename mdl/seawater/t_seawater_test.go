// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seawater

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/gosw/eos"
)

func Test_swmdl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swmdl01. model parameters and evaluation")

	var mdl Model
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Float64(tst, "s", 1e-15, mdl.S, 34.9)
	chk.Float64(tst, "t", 1e-15, mdl.T, 2.5)
	chk.Float64(tst, "p", 1e-15, mdl.P, 3000)
	chk.Float64(tst, "pr", 1e-15, mdl.Pr, 0)

	rho, theta, rhoth := mdl.Calc()
	if chk.Verbose {
		io.Pf("ρ = %.5f  θ = %.5f  ρθ = %.5f\n", rho, theta, rhoth)
	}
	chk.Float64(tst, "ρ", 1e-15, rho, eos.Dens(34.9, 2.5, 3000))
	chk.Float64(tst, "θ", 1e-15, theta, eos.Ptmp(34.9, 2.5, 3000, 0))
	chk.Float64(tst, "ρθ", 1e-15, rhoth, eos.Pden(34.9, 2.5, 3000, 0))
	chk.Float64(tst, "K", 1e-15, mdl.Seck(), eos.SecantK(34.9, 2.5, 3000))
	chk.Float64(tst, "svel", 1e-15, mdl.Svel(), eos.Svel(34.9, 2.5, 3000))
	chk.Float64(tst, "tf", 1e-15, mdl.Tfreeze(), eos.Tfreeze(34.9, 3000))

	// round trip through the parameters database
	var mdl2 Model
	err = mdl2.Init(mdl.GetPrms(false))
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	if mdl2 != mdl {
		tst.Errorf("GetPrms/Init round trip failed: %+v != %+v\n", mdl2, mdl)
		return
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		mdl.PlotProfile("/tmp/gosw", "fig_swmdl01", 6000, 101)
	}
}

func Test_swmdl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("swmdl02. wrong parameter name")

	var mdl Model
	err := mdl.Init(dbf.Params{&dbf.P{N: "salinity", V: 35}})
	if err == nil {
		tst.Errorf("Init must fail with unknown parameter name\n")
		return
	}
	if chk.Verbose {
		io.Pf("err = %v\n", err)
	}
}
