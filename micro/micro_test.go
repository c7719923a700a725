// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micro

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/xerr"
)

func sampleK(n int, kmax float64) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = kmax * float64(i) / float64(n-1)
	}
	return k
}

func TestExponentialDecaysToZero(tst *testing.T) {
	chk.PrintTitle("exponential microstructure decay")
	p, err := New("exponential", fun.Prms{&fun.Prm{N: "corr_length", V: 3e-4}, &fun.Prm{N: "frac_volume", V: 0.3}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	k := sampleK(50, 1e7)
	c, err := p.FTAutocorrelation(k)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for _, v := range c {
		if v < 0 {
			tst.Fatalf("ĉ(k) must be non-negative, got %g", v)
		}
	}
	if c[len(c)-1] >= c[1] {
		tst.Fatalf("ĉ(k) did not decay: c[1]=%g c[last]=%g", c[1], c[len(c)-1])
	}
}

func TestIndependentSphereContinuousAtZero(tst *testing.T) {
	p, err := New("independent_sphere", fun.Prms{&fun.Prm{N: "radius", V: 2e-4}, &fun.Prm{N: "frac_volume", V: 0.3}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	c, err := p.FTAutocorrelation([]float64{0, 1e-7, 1e3, 1e7})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "ĉ(k→0) continuity", 1e-3, c[0], c[1])
	for _, v := range c {
		if v < 0 {
			tst.Fatalf("ĉ(k) must be non-negative, got %g", v)
		}
	}
}

func TestStickyHardSpheresNonNegative(tst *testing.T) {
	p, err := New("sticky_hard_spheres", fun.Prms{
		&fun.Prm{N: "radius", V: 2e-4},
		&fun.Prm{N: "stickiness", V: 0.1},
		&fun.Prm{N: "frac_volume", V: 0.35},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	c, err := p.FTAutocorrelation(sampleK(30, 5e6))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for _, v := range c {
		if v < 0 {
			tst.Fatalf("ĉ(k) must be non-negative, got %g", v)
		}
	}
}

func TestUnknownMicrostructureFails(tst *testing.T) {
	_, err := New("no-such-microstructure", nil)
	if err == nil || !xerr.Is(err, xerr.MicrostructureUndefined) {
		tst.Fatalf("expected MicrostructureUndefined, got %v", err)
	}
}
