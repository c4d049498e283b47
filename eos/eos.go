// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eos implements the UNESCO 1983 (EOS-80) equation of state of
// seawater [1,2]: density, secant bulk modulus, adiabatic temperature
// gradient, potential temperature and potential density, plus the companion
// freezing-point and sound-speed formulae from the same technical paper.
//
// Inputs follow the conventions of the oceanographic literature:
//
//	S  -- practical salinity (PSS-78) [psu]
//	T  -- in-situ temperature (ITS-90) [°C]
//	P  -- sea pressure [dbar] (0 at the surface)
//	PR -- reference pressure [dbar]
//
// The polynomials were fitted on the IPTS-68 temperature scale; every
// function converts internally with the fixed 1.00024 factor. All functions
// are pure and total: out-of-range input (e.g. negative salinity under a
// square root) silently yields NaN/Inf following IEEE-754, never a panic.
// Range checking and quality control belong to the caller.
//
// References:
//
//	[1] Fofonoff NP, Millard RC Jr (1983) Algorithms for computation of
//	    fundamental properties of seawater. UNESCO Tech. Pap. Mar. Sci. 44
//	[2] Millero FJ, Poisson A (1981) International one-atmosphere equation
//	    of state of seawater. Deep-Sea Res. 28A(6):625-629
package eos

// tscale is the ITS-90 to IPTS-68 conversion factor
const tscale = 1.00024

// IPTS68 converts temperature from the ITS-90 scale to the IPTS-68 scale
// on which the EOS-80 polynomials were fitted
func IPTS68(T float64) float64 {
	return tscale * T
}

// horner evaluates the polynomial with ordered coefficients cs
//
//	cs[0] + x・(cs[1] + x・(cs[2] + ・・・))
//
// innermost term first. The coefficient tables in this package are
// check-value locked; evaluating them in any other order changes the last
// digits of the published reference cases.
func horner(x float64, cs ...float64) (res float64) {
	for i := len(cs) - 1; i >= 0; i-- {
		res = res*x + cs[i]
	}
	return
}
