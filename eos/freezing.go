// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "math"

// Tfreeze returns the freezing point of seawater [°C ITS-90] at salinity S
// and pressure P [1, Eq.(33)]. The fit is valid for S in [4,40] and P up to
// 500 dbar; outside that range the polynomial extrapolates.
func Tfreeze(S, P float64) float64 {
	t68 := (-0.0575+1.710523e-3*math.Sqrt(S)-2.154996e-4*S)*S - 7.53e-4*P
	return t68 / tscale
}
