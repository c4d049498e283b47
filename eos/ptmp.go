// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// adtg68 computes the adiabatic temperature gradient [°C/dbar] with the
// temperature already on the IPTS-68 scale (Bryden 1973 polynomial as given
// in [1]). Used directly by Ptmp, whose integration runs on IPTS-68.
func adtg68(S, T, P float64) float64 {
	ds := S - 35.0
	return (((-2.1687e-16*T+1.8676e-14)*T-4.6206e-13)*P+
		((2.7759e-12*T-1.1351e-10)*ds+
			((-5.4481e-14*T+8.733e-12)*T-6.7795e-10)*T+
			1.8741e-8))*P +
		(-4.2393e-8*T+1.8932e-6)*ds +
		((6.6228e-10*T-6.836e-8)*T+8.5258e-6)*T + 3.5803e-5
}

// Adtg returns the adiabatic temperature gradient [°C/dbar] for in-situ
// temperature T on the ITS-90 scale
func Adtg(S, T, P float64) float64 {
	return adtg68(S, IPTS68(T), P)
}

// Ptmp returns the potential temperature [°C ITS-90] of a water parcel moved
// adiabatically from pressure P to reference pressure PR, by 4-stage
// Runge-Kutta integration of the adiabatic gradient over ΔP = PR - P.
//
// The stage combination coefficients are the Fofonoff-Millard set from [1]
// (1±1/√2, 2±√2, -2±3/√2), hard-coded verbatim: they are numerically, not
// just algebraically, part of the published check values, and a textbook
// RK4 grouping does not reproduce them bit-for-bit.
//
// For PR == P the step ΔP is zero, every stage increment vanishes and the
// in-situ temperature is returned unchanged (up to the IPTS-68 round trip).
func Ptmp(S, T, P, PR float64) float64 {
	dP := PR - P
	th := IPTS68(T)

	// stage 1
	dth := dP * adtg68(S, th, P)
	th += 0.5 * dth
	q := dth

	// stage 2
	dth = dP * adtg68(S, th, P+0.5*dP)
	th += (1.0 - 1.0/math.Sqrt2) * (dth - q)
	q = (2.0-math.Sqrt2)*dth + (-2.0+3.0/math.Sqrt2)*q

	// stage 3
	dth = dP * adtg68(S, th, P+0.5*dP)
	th += (1.0 + 1.0/math.Sqrt2) * (dth - q)
	q = (2.0+math.Sqrt2)*dth + (-2.0-3.0/math.Sqrt2)*q

	// stage 4
	dth = dP * adtg68(S, th, P+dP)
	return (th + (dth-2.0*q)/6.0) / tscale
}

// Pden returns the potential density [kg/m³]: the density the parcel would
// have after adiabatic displacement to the reference pressure PR
func Pden(S, T, P, PR float64) float64 {
	return Dens(S, Ptmp(S, T, P, PR), PR)
}

// SigmaTheta returns the potential density anomaly σθ = Pden - 1000 [kg/m³]
func SigmaTheta(S, T, P, PR float64) float64 {
	return Pden(S, T, P, PR) - 1000.0
}
