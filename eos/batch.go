// Copyright 2017 The Gosw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"runtime"
	"sync"
)

// pllApply runs kernel(i) for i in [0,n) distributed over ncpu goroutines.
// Every element is independent of every other, so the split is a plain
// contiguous partition with no ordering guarantee across chunks.
func pllApply(n, ncpu int, kernel func(i int)) {
	if ncpu < 1 || ncpu > runtime.NumCPU() {
		ncpu = runtime.NumCPU()
	}
	if ncpu > n {
		ncpu = n
	}
	if ncpu < 2 {
		for i := 0; i < n; i++ {
			kernel(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(ncpu)
	for icpu := 0; icpu < ncpu; icpu++ {
		start, stop := icpu*n/ncpu, (icpu+1)*n/ncpu
		go func(start, stop int) {
			for i := start; i < stop; i++ {
				kernel(i)
			}
			wg.Done()
		}(start, stop)
	}
	wg.Wait()
}

// ApplyDens computes in-situ density element-wise over equal-length slices,
// using up to ncpu goroutines (ncpu ≤ 0 selects runtime.NumCPU)
func ApplyDens(res, S, T, P []float64, ncpu int) {
	pllApply(len(res), ncpu, func(i int) {
		res[i] = Dens(S[i], T[i], P[i])
	})
}

// ApplyPtmp computes potential temperature element-wise for a common
// reference pressure PR
func ApplyPtmp(res, S, T, P []float64, PR float64, ncpu int) {
	pllApply(len(res), ncpu, func(i int) {
		res[i] = Ptmp(S[i], T[i], P[i], PR)
	})
}

// ApplyPden computes potential density element-wise for a common reference
// pressure PR
func ApplyPden(res, S, T, P []float64, PR float64, ncpu int) {
	pllApply(len(res), ncpu, func(i int) {
		res[i] = Pden(S[i], T[i], P[i], PR)
	})
}
