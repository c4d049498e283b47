// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_adtg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adtg01. adiabatic temperature gradient")

	// Fofonoff & Millard (1983), p.45: ATG(40,40,10000) on IPTS-68
	chk.Float64(tst, "ATG(40,40,10000)", 1e-9, Adtg(40, t90(40), 10000), 3.255976e-4)

	// at S=35 the salinity-anomaly terms vanish; compare against the
	// polynomial with the ΔS terms struck out
	T, P := 12.5, 2500.0
	t := IPTS68(T)
	noDS := (((-2.1687e-16*t+1.8676e-14)*t-4.6206e-13)*P+
		(((-5.4481e-14*t+8.733e-12)*t-6.7795e-10)*t+
			1.8741e-8))*P +
		((6.6228e-10*t-6.836e-8)*t+8.5258e-6)*t + 3.5803e-5
	chk.Float64(tst, "ATG(35,T,P) drops ΔS terms", 1e-17, Adtg(35, T, P), noDS)
}

func Test_ptmp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ptmp01. potential temperature")

	// canonical UNESCO check case (IPTS-68 in and out):
	// θ(40,40,10000,0) = 36.89073
	th := Ptmp(40, t90(40), 10000, 0)
	if chk.Verbose {
		io.Pf("θ68 = %.5f\n", IPTS68(th))
	}
	chk.Float64(tst, "θ68(40,40,10000,0)", 1e-4, IPTS68(th), 36.89073)

	// raising a parcel must cool it; lowering must warm it
	if th >= t90(40) {
		tst.Errorf("parcel raised over 10000 dbar did not cool: θ=%g\n", th)
		return
	}
	if Ptmp(35, 5, 0, 5000) <= 5 {
		tst.Errorf("parcel lowered to 5000 dbar did not warm\n")
		return
	}

	// zero-length integration is a no-op: θ(S,T,P,P) == T
	for _, S := range []float64{0, 35, 40} {
		for _, T := range []float64{-2, 10, 40} {
			for _, P := range []float64{0, 1000, 10000} {
				chk.Float64(tst, io.Sf("θ(%g,%g,%g,%g)", S, T, P, P), 1e-12, Ptmp(S, T, P, P), T)
			}
		}
	}
}

func Test_ptmp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ptmp02. dθ/dPR at PR=P equals the adiabatic gradient")

	S, T, P := 35.0, 10.0, 2000.0
	dana := Adtg(S, T, P) / tscale
	chk.DerivScaSca(tst, "dθ/dPR", 1e-9, dana, P, 1e-2, chk.Verbose, func(pr float64) float64 {
		return Ptmp(S, T, P, pr)
	})
}

func Test_pden01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pden01. potential density")

	// PR == P collapses to in-situ density
	for _, S := range []float64{0, 35} {
		for _, T := range []float64{-2, 25} {
			for _, P := range []float64{0, 4000} {
				chk.Float64(tst, io.Sf("ρθ(%g,%g,%g,%g)", S, T, P, P), 1e-9, Pden(S, T, P, P), Dens(S, T, P))
			}
		}
	}

	// referencing to the surface removes the compressibility contribution:
	// potential density of a deep parcel is far below its in-situ density
	S, T, P := 34.7, 1.5, 5000.0
	rho := Dens(S, T, P)
	rhoth := Pden(S, T, P, 0)
	if chk.Verbose {
		io.Pf("ρ = %.5f  ρθ = %.5f\n", rho, rhoth)
	}
	if rhoth >= rho {
		tst.Errorf("potential density must be below in-situ density: %g ≥ %g\n", rhoth, rho)
		return
	}
	chk.Float64(tst, "σθ", 1e-12, SigmaTheta(S, T, P, 0), rhoth-1000.0)

	// stable stratification of a typical open-ocean column: σθ referenced
	// to the surface increases monotonically with depth
	Scol := []float64{35.5, 35.2, 34.9, 34.7, 34.7}
	Tcol := []float64{18.0, 12.0, 6.0, 3.0, 1.8}
	Pcol := utl.LinSpace(0, 4000, 5)
	for i := 1; i < len(Pcol); i++ {
		s0 := SigmaTheta(Scol[i-1], Tcol[i-1], Pcol[i-1], 0)
		s1 := SigmaTheta(Scol[i], Tcol[i], Pcol[i], 0)
		if s1 <= s0 {
			tst.Errorf("column not stably stratified at level %d: %g ≤ %g\n", i, s1, s0)
			return
		}
	}
}
