// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// density of standard mean ocean water at atmospheric pressure [1, Eq.(14)]
var smow = []float64{999.842594, 6.793952e-2, -9.095290e-3, 1.001685e-4, -1.120083e-6, 6.536332e-9}

// salinity correction terms of the one-atmosphere equation of state [2]
var (
	dnsB = []float64{8.24493e-1, -4.0899e-3, 7.6438e-5, -8.2467e-7, 5.3875e-9}
	dnsC = []float64{-5.72466e-3, 1.0227e-4, -1.6546e-6}
	dnsD = 4.8314e-4
)

// secant bulk modulus terms [1, Eqs.(15)-(18)]; three tiers: pure water,
// salinity correction at zero pressure, pressure correction
var (
	bmE  = []float64{19652.21, 148.4206, -2.327105, 1.360477e-2, -5.155288e-5}
	bmF  = []float64{54.6746, -0.603459, 1.09987e-2, -6.1670e-5}
	bmG  = []float64{7.944e-2, 1.6483e-2, -5.3009e-4}
	bmAw = []float64{3.239908, 1.43713e-3, 1.16092e-4, -5.77905e-7}
	bmI  = []float64{2.2838e-3, -1.0981e-5, -1.6078e-6}
	bmJ  = 1.91075e-4
	bmBw = []float64{8.50935e-5, -6.12293e-6, 5.2787e-8}
	bmM  = []float64{-9.9348e-7, 2.0816e-8, 9.1697e-10}
)

// DensSMOW returns the density of standard mean ocean water (salinity-free
// water) at atmospheric pressure [kg/m³]
func DensSMOW(T float64) float64 {
	return horner(IPTS68(T), smow...)
}

// Dens0 returns the density of seawater at atmospheric pressure (P=0)
// [kg/m³]. Negative salinity yields NaN (square root), by the total-function
// contract of this package.
func Dens0(S, T float64) float64 {
	t := IPTS68(T)
	return DensSMOW(T) + (horner(t, dnsB...)+horner(t, dnsC...)*math.Sqrt(S)+dnsD*S)*S
}

// SecantK returns the secant bulk modulus of seawater [bar]. The three-tier
// structure (pure water, +salinity, +pressure) follows [1] term-by-term;
// regrouping changes the last digit of the density check values.
func SecantK(S, T, P float64) float64 {
	t := IPTS68(T)
	p := P / 10.0 // dbar → bar
	kw := horner(t, bmE...)
	k0 := kw + (horner(t, bmF...)+horner(t, bmG...)*math.Sqrt(S))*S
	if p == 0 {
		return k0
	}
	aw := horner(t, bmAw...)
	a := aw + (horner(t, bmI...)+bmJ*math.Sqrt(S))*S
	bw := horner(t, bmBw...)
	b := bw + horner(t, bmM...)*S
	return k0 + (a+b*p)*p
}

// Dens returns the in-situ density of seawater [kg/m³]
func Dens(S, T, P float64) float64 {
	rho0 := Dens0(S, T)
	if P == 0 {
		return rho0
	}
	p := P / 10.0 // dbar → bar
	return rho0 / (1.0-p/SecantK(S, T, P))
}

// SigmaT returns the density anomaly σt = Dens0(S,T) - 1000 [kg/m³]
func SigmaT(S, T float64) float64 {
	return Dens0(S, T) - 1000.0
}

// Svan returns the specific volume anomaly [m³/kg] relative to standard
// ocean (S=35, T=0) at the same pressure
func Svan(S, T, P float64) float64 {
	return 1.0/Dens(S, T, P) - 1.0/Dens(35.0, 0.0, P)
}
