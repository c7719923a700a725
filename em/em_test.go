// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/perm"
	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/xerr"
)

const iceDensity = 917.0 // kg/m³

func buildSnowLayer(tst *testing.T, corrLengthM, densityKgM3, temperatureK float64) *snowpack.Layer {
	fracVolume := densityKgM3 / iceDensity
	ms, err := micro.New("exponential", fun.Prms{&fun.Prm{N: "corr_length", V: corrLengthM}, &fun.Prm{N: "frac_volume", V: fracVolume}})
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
	l, err := snowpack.NewLayer(0.1, temperatureK, fracVolume, ms, air, ice, "iba")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return l
}

func buildPassiveSensor(tst *testing.T, frequencyHz float64) *snowpack.Sensor {
	s, err := snowpack.NewSensor(frequencyHz, snowpack.Passive, math.Pi/4, 0, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return s
}

func within(got, want, relTol float64) bool {
	return math.Abs(got-want) <= relTol*math.Abs(want)
}

// AMSR-E "37V" channel nominal frequency.
const amsre37V = 36.5e9

func TestIBAScatteringCorrLength0p3mm(tst *testing.T) {
	chk.PrintTitle("IBA k_s, corr_length=0.3mm")
	layer := buildSnowLayer(tst, 0.3e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !within(model.Ks(), 4.137, 0.05) {
		tst.Fatalf("k_s=%g, want ≈4.137 (±5%%)", model.Ks())
	}
}

func TestIBAMMEffectivePermittivityReal(tst *testing.T) {
	chk.PrintTitle("IBA_MM Re(ε_eff) via Polder-Van Santen")
	layer := buildSnowLayer(tst, 0.3e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba_mm", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !within(real(model.EpsEff()), 1.5244, 0.05) {
		tst.Fatalf("Re(ε_eff)=%g, want ≈1.5244 (±5%%)", real(model.EpsEff()))
	}
}

func TestIBAScatteringCorrLength0p1mm(tst *testing.T) {
	chk.PrintTitle("IBA k_s, corr_length=0.1mm")
	layer := buildSnowLayer(tst, 0.1e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !within(model.Ks(), 0.1947, 0.05) {
		tst.Fatalf("k_s=%g, want ≈0.1947 (±5%%)", model.Ks())
	}
}

func TestIBAMMScatteringAndAbsorptionCorrLength0p05mm(tst *testing.T) {
	chk.PrintTitle("IBA_MM k_s, k_a, corr_length=0.05mm")
	layer := buildSnowLayer(tst, 0.05e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba_mm", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !within(model.Ks(), 0.02499, 0.05) {
		tst.Fatalf("k_s=%g, want ≈0.02499 (±5%%)", model.Ks())
	}
	if !within(model.Ka(), 0.3009, 0.05) {
		tst.Fatalf("k_a=%g, want ≈0.3009 (±5%%)", model.Ka())
	}
}

func TestUnknownModelFails(tst *testing.T) {
	chk.PrintTitle("unknown em model name")
	layer := buildSnowLayer(tst, 0.3e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	if _, err := New("no-such-model", sensor, layer); err == nil || !xerr.Is(err, xerr.InputValidation) {
		tst.Fatalf("expected InputValidation, got %v", err)
	}
}

func TestPhaseCacheConsistency(tst *testing.T) {
	chk.PrintTitle("phase matrix cache reuse and rebuild")
	layer := buildSnowLayer(tst, 0.3e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{0.9, 0.6, 0.3, -0.3, -0.6, -0.9}
	p1, err := model.Phase(0, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p2, err := model.Phase(0, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range p1 {
		for j := range p1[i] {
			if p1[i][j] != p2[i][j] {
				tst.Fatalf("repeated call with identical μ changed entry (%d,%d): %g vs %g", i, j, p1[i][j], p2[i][j])
			}
		}
	}
	mu2 := []float64{0.8, 0.5, 0.2, -0.2, -0.5, -0.8}
	p3, err := model.Phase(0, mu2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(p3) != len(p1) {
		tst.Fatalf("unexpected matrix size after μ change")
	}
}

func TestPhaseReciprocity(tst *testing.T) {
	chk.PrintTitle("phase matrix reciprocity P_m(i,j)_pq = P_m(j,i)_qp")
	layer := buildSnowLayer(tst, 0.3e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{0.9, 0.5, -0.5, -0.9}
	npol := 2
	p, err := model.Phase(0, mu, npol)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	n := len(mu)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for a := 0; a < npol; a++ {
				for b := 0; b < npol; b++ {
					got := p[npol*i+a][npol*j+b]
					want := p[npol*j+b][npol*i+a]
					if math.Abs(got-want) > 1e-9*(1+math.Abs(want)) {
						tst.Fatalf("reciprocity violated at (i=%d,j=%d,a=%d,b=%d): %g vs %g", i, j, a, b, got, want)
					}
				}
			}
		}
	}
}

func TestPhaseRejectsInvalidStreamGeometry(tst *testing.T) {
	chk.PrintTitle("phase matrix rejects μ=1 for active mode m_max≥2")
	layer := buildSnowLayer(tst, 0.3e-3, 300, 265)
	sensor := buildPassiveSensor(tst, amsre37V)
	model, err := New("iba", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{1.0, 0.5, -0.5, -1.0}
	if _, err := model.Phase(2, mu, 3); err == nil || !xerr.Is(err, xerr.InvalidStreamGeometry) {
		tst.Fatalf("expected InvalidStreamGeometry, got %v", err)
	}
}

func TestIBAVsRayleighLimit(tst *testing.T) {
	chk.PrintTitle("IBA matches Rayleigh in the small-particle limit")
	ms, err := micro.New("independent_sphere", fun.Prms{&fun.Prm{N: "radius", V: 1e-6}, &fun.Prm{N: "frac_volume", V: 0.2}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	air, _ := perm.NewConstant(complex(1, 0))
	ice, _ := perm.New("matzler87", nil)
	layer, err := snowpack.NewLayer(0.1, 265, 0.2, ms, air, ice, "iba")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sensor := buildPassiveSensor(tst, 10.65e9)
	iba, err := New("iba", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ray, err := New("rayleigh", sensor, layer)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	mu := []float64{0.9, 0.5, -0.5, -0.9}
	pIBA, err := iba.Phase(0, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	pRay, err := ray.Phase(0, mu, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ratioIBA := pIBA[0][0] / iba.Ks()
	ratioRay := pRay[0][0] / ray.Ks()
	if !within(ratioIBA, ratioRay, 0.05) {
		tst.Fatalf("P_0/k_s mismatch at radius→0: IBA=%g Rayleigh=%g", ratioIBA, ratioRay)
	}
}
