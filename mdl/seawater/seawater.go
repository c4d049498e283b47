// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seawater wraps the EOS-80 core into a parameterised water-mass
// model with a configurable reference pressure
package seawater

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gosw/eos"
)

// Model holds the state of one water mass and the reference pressure used
// for potential quantities. The thermodynamic work is done by package eos;
// this structure only carries parameters the gofem-database way.
type Model struct {
	S  float64 // practical salinity [psu]
	T  float64 // in-situ temperature [°C ITS-90]
	P  float64 // in-situ pressure [dbar]
	Pr float64 // reference pressure [dbar]
}

// Init initialises the model from a parameters database
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "s":
			o.S = p.V
		case "t":
			o.T = p.V
		case "p":
			o.P = p.V
		case "pr":
			o.Pr = p.V
		default:
			return chk.Err("seawater: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns example of parameters; otherwise returns current parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{ // North Atlantic deep water
			&dbf.P{N: "s", V: 34.9},  // [psu]
			&dbf.P{N: "t", V: 2.5},   // [°C]
			&dbf.P{N: "p", V: 3000},  // [dbar]
			&dbf.P{N: "pr", V: 0.0},  // [dbar]
		}
	}
	return dbf.Params{
		&dbf.P{N: "s", V: o.S},
		&dbf.P{N: "t", V: o.T},
		&dbf.P{N: "p", V: o.P},
		&dbf.P{N: "pr", V: o.Pr},
	}
}

// Calc computes in-situ density, potential temperature and potential density
// of the water mass
func (o Model) Calc() (rho, theta, rhoth float64) {
	rho = eos.Dens(o.S, o.T, o.P)
	theta = eos.Ptmp(o.S, o.T, o.P, o.Pr)
	rhoth = eos.Dens(o.S, theta, o.Pr)
	return
}

// Seck returns the secant bulk modulus [bar] of the water mass
func (o Model) Seck() float64 {
	return eos.SecantK(o.S, o.T, o.P)
}

// Svel returns the sound speed [m/s] in the water mass
func (o Model) Svel() float64 {
	return eos.Svel(o.S, o.T, o.P)
}

// Tfreeze returns the freezing point [°C ITS-90] at the water mass salinity
// and pressure
func (o Model) Tfreeze() float64 {
	return eos.Tfreeze(o.S, o.P)
}
