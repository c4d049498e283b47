// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seawater

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gosw/eos"
)

// PlotProfile plots in-situ and potential density of the water mass along a
// pressure range [0,pmax]
func (o Model) PlotProfile(dirout, fnkey string, pmax float64, np int) {

	P := utl.LinSpace(0, pmax, np)
	R := make([]float64, np)
	Rth := make([]float64, np)
	for i, p := range P {
		R[i] = eos.Dens(o.S, o.T, p)
		Rth[i] = eos.Pden(o.S, o.T, p, o.Pr)
	}

	plt.Plot(R, P, &plt.A{C: "b", Ls: "-", L: "in-situ"})
	plt.Plot(Rth, P, &plt.A{C: "r", Ls: "--", L: "potential"})
	plt.Gll("$\\rho$ [kg/m$^3$]", "$P$ [dbar]", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
