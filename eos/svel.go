// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// Chen & Millero 1977 sound speed coefficients as tabulated in [1];
// svC[k] multiplies pᵏ in the pure-water term, svA/svB/svD carry the
// salinity corrections
var (
	svC0 = []float64{1402.388, 5.03711, -5.80852e-2, 3.3420e-4, -1.47800e-6, 3.1464e-9}
	svC1 = []float64{0.153563, 6.8982e-4, -8.1788e-6, 1.3621e-7, -6.1185e-10}
	svC2 = []float64{3.1260e-5, -1.7107e-6, 2.5974e-8, -2.5335e-10, 1.0405e-12}
	svC3 = []float64{-9.7729e-9, 3.8504e-10, -2.3643e-12}
	svA0 = []float64{1.389, -1.262e-2, 7.164e-5, 2.006e-6, -3.21e-8}
	svA1 = []float64{9.4742e-5, -1.2580e-5, -6.4885e-8, 1.0507e-8, -2.0122e-10}
	svA2 = []float64{-3.9064e-7, 9.1041e-9, -1.6002e-10, 7.988e-12}
	svA3 = []float64{1.100e-10, 6.649e-12, -3.389e-13}
	svB0 = []float64{-1.922e-2, -4.42e-5}
	svB1 = []float64{7.3637e-5, 1.7945e-7}
	svD  = []float64{1.727e-3, -7.9836e-6}
)

// Svel returns the speed of sound in seawater [m/s] (Chen & Millero 1977,
// UNESCO formulation)
func Svel(S, T, P float64) float64 {
	t := IPTS68(T)
	p := P / 10.0 // dbar → bar
	cw := horner(p, horner(t, svC0...), horner(t, svC1...), horner(t, svC2...), horner(t, svC3...))
	a := horner(p, horner(t, svA0...), horner(t, svA1...), horner(t, svA2...), horner(t, svA3...))
	b := horner(t, svB0...) + horner(t, svB1...)*p
	d := horner(p, svD...)
	return cw + a*S + b*S*math.Sqrt(S) + d*S*S
}
