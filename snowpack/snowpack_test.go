// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowpack

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/iface"
	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/perm"
	"github.com/cpmech/mwrt/xerr"
)

func newTestLayer(tst *testing.T) *Layer {
	ms, err := micro.New("exponential", fun.Prms{&fun.Prm{N: "corr_length", V: 1e-4}, &fun.Prm{N: "frac_volume", V: 0.3}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	air, err := perm.NewConstant(complex(1, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ice, err := perm.New("matzler87", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	l, err := NewLayer(0.3, 260, 0.3, ms, air, ice, "iba")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return l
}

func TestSensorInvariants(tst *testing.T) {
	chk.PrintTitle("sensor invariants")
	if _, err := NewSensor(10e9, Passive, math.Pi/4, 0, 1); err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("passive with m_max≠0 must fail, got %v", err)
	}
	if _, err := NewSensor(10e9, Active, math.Pi/4, 0, 1); err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("active with m_max<2 must fail, got %v", err)
	}
	s, err := NewSensor(10e9, Active, math.Pi/4, 0, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if s.NPol() != 3 {
		tst.Fatalf("active sensor must carry 3 polarizations, got %d", s.NPol())
	}
}

func TestSnowpackRequiresNPlus1Interfaces(tst *testing.T) {
	chk.PrintTitle("snowpack interface count invariant")
	l := newTestLayer(tst)
	refl, err := iface.New("reflector", fun.Prms{&fun.Prm{N: "temperature", V: 260}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	top, err := iface.New("transparent", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	_, err = New([]*Layer{l}, []iface.Operator{top})
	if err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("expected InputValidation for mismatched interface count, got %v", err)
	}
	sp, err := New([]*Layer{l}, []iface.Operator{top, refl})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if sp.NLayers() != 1 {
		tst.Fatalf("expected 1 layer, got %d", sp.NLayers())
	}
}

func TestSnowpackRejectsNonSubstrateBottom(tst *testing.T) {
	l := newTestLayer(tst)
	top, _ := iface.New("transparent", nil)
	bottom, _ := iface.New("flat", nil)
	_, err := New([]*Layer{l}, []iface.Operator{top, bottom})
	if err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("expected InputValidation for non-substrate bottom, got %v", err)
	}
}

func TestSnowpackRejectsInteriorSemiInfinite(tst *testing.T) {
	ms, _ := micro.New("exponential", fun.Prms{&fun.Prm{N: "corr_length", V: 1e-4}, &fun.Prm{N: "frac_volume", V: 0.3}})
	air, _ := perm.NewConstant(complex(1, 0))
	ice, _ := perm.New("matzler87", nil)
	bad, err := NewLayer(SemiInfinite, 260, 0.3, ms, air, ice, "iba")
	if err != nil {
		tst.Fatalf("unexpected error building semi-infinite layer: %v", err)
	}
	good := newTestLayer(tst)
	top, _ := iface.New("transparent", nil)
	refl, _ := iface.New("reflector", fun.Prms{&fun.Prm{N: "temperature", V: 260}})
	_, err = New([]*Layer{good, bad}, []iface.Operator{top, top, refl})
	if err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("expected InputValidation for interior semi-infinite layer, got %v", err)
	}
}
