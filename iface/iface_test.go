// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iface

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/perm"
	"github.com/cpmech/mwrt/xerr"
)

func TestTransparentIdentity(tst *testing.T) {
	chk.PrintTitle("transparent interface")
	op, err := New("transparent", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{0.3, 0.6, 0.9}
	R, err := op.Reflection(0, 10e9, complex(1, 0), complex(1, 0), mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range R {
		for j := range R[i] {
			if R[i][j] != 0 {
				tst.Fatalf("transparent reflection must be zero, got R[%d][%d]=%g", i, j, R[i][j])
			}
		}
	}
	T, err := op.Transmission(0, 10e9, complex(1, 0), complex(1, 0), mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range T {
		for j := range T[i] {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if T[i][j] != want {
				tst.Fatalf("transparent transmission must be identity, got T[%d][%d]=%g", i, j, T[i][j])
			}
		}
	}
}

func TestFlatEnergyConservation(tst *testing.T) {
	chk.PrintTitle("flat/Fresnel energy conservation R+T=1")
	op, err := New("flat", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{0.2, 0.5, 0.8, 0.999}
	epsAbove := complex(1, 0)
	epsBelow := complex(3.2, 0.001)
	R, err := op.Reflection(0, 10e9, epsAbove, epsBelow, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	T, err := op.Transmission(0, 10e9, epsAbove, epsBelow, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range mu {
		for pol := 0; pol < 2; pol++ {
			idx := 2*i + pol
			sum := R[idx][idx] + T[idx][idx]
			chk.Scalar(tst, "R+T", 1e-9, sum, 1)
		}
	}
}

func TestFlatNormalIncidenceSymmetry(tst *testing.T) {
	op, err := New("flat", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{1.0}
	R, err := op.Reflection(0, 10e9, complex(1, 0), complex(4, 0), mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	// at normal incidence V and H reflectivity must coincide
	chk.Scalar(tst, "Rv == Rh at normal incidence", 1e-9, R[0][0], R[1][1])
}

func TestReflectorDefaultsToPerfectReflector(tst *testing.T) {
	op, err := New("reflector", fun.Prms{&fun.Prm{N: "temperature", V: 260}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sub := op.(*Reflector)
	mu := []float64{0.3, 0.7}
	R, err := sub.Reflection(0, 10e9, complex(1, 0), 0, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range R {
		if R[i][i] != 1 {
			tst.Fatalf("default reflector must reflect everything, got %g at %d", R[i][i], i)
		}
	}
	A, err := sub.AbsorptionMatrix(10e9, complex(1, 0), mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range A {
		if A[i][i] != 0 {
			tst.Fatalf("perfect reflector must have zero absorption, got %g at %d", A[i][i], i)
		}
	}
}

func TestReflectorRejectsActiveMode(tst *testing.T) {
	op, err := New("reflector", fun.Prms{
		&fun.Prm{N: "temperature", V: 260},
		&fun.Prm{N: "backscattering_vv", V: 0.1},
		&fun.Prm{N: "backscattering_hh", V: 0.1},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	_, err = op.DiffuseReflection(0, 10e9, complex(1, 0), []float64{0.9}, 3)
	if err == nil || !xerr.Is(err, xerr.UnsupportedMode) {
		tst.Fatalf("expected UnsupportedMode, got %v", err)
	}
}

func TestWegmullerPassiveOnly(tst *testing.T) {
	soil, err := perm.New("dobson85", fun.Prms{
		&fun.Prm{N: "moisture", V: 0.2},
		&fun.Prm{N: "sand", V: 0.4},
		&fun.Prm{N: "clay", V: 0.3},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	w, err := NewWegmuller(1e-2, 280, soil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{0.5, 0.8}
	_, err = w.Reflection(0, 10e9, complex(1, 0), 0, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	_, err = w.Reflection(0, 10e9, complex(1, 0), 0, mu, 3)
	if err == nil || !xerr.Is(err, xerr.UnsupportedMode) {
		tst.Fatalf("expected UnsupportedMode for active mode, got %v", err)
	}
}

func TestUnknownOperatorFails(tst *testing.T) {
	_, err := New("no-such-operator", nil)
	if err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("expected InputValidation, got %v", err)
	}
}
