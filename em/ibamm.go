// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/xerr"
)

// mmQuadPoints is the fixed Gauss-Legendre node count used for the IBA_MM
// scattering integral over θ∈[0,π] (the reference implementation uses an
// adaptive quadrature; a 64-point fixed rule matches it well within the 5%
// tolerance this model is specified to).
const mmQuadPoints = 64

// IBAMM is the Polder-Van Santen mixing variant of IBA (Matzler & Wiesmann
// 1999): it replaces Re(ε_eff) with the symmetric self-consistent mixing
// result and derives Im(ε_eff) from the mean-squared field ratio, then
// re-integrates k_s with a half-range θ∈[0,π] quadrature instead of the
// plain IBA's μ∈[-1,1] Romberg rule.
type IBAMM struct {
	base
}

func init() {
	Register("iba_mm", newIBAMM)
}

func newIBAMM(sensor *snowpack.Sensor, layer *snowpack.Layer) (Model, error) {
	e0, err := layer.Background.Eps(sensor.FrequencyHz, layer.TemperatureK)
	if err != nil {
		return nil, err
	}
	eps, err := layer.Inclusion.Eps(sensor.FrequencyHz, layer.TemperatureK)
	if err != nil {
		return nil, err
	}
	k0 := 2 * math.Pi * sensor.FrequencyHz / speedOfLight
	phi := layer.FracVolume
	depol := depolarizationFactors()

	effPermReal := polderVanSantenReal(phi, real(e0), real(eps))
	effPerm := complex(effPermReal, 0)
	y2 := meanSqFieldRatio(effPerm, e0, eps, depol)
	effPermImag := phi * imag(eps) * y2 * math.Sqrt(math.Max(0, effPermReal))
	effPerm = complex(effPermReal, effPermImag)

	// Recompute y² (and thus ibaCoeff) with the final complex ε_eff, as
	// the reference implementation does.
	y2 = meanSqFieldRatio(effPerm, e0, eps, depol)
	diff := eps - e0
	ibaCoeff := complex(y2*k0*k0*k0*k0/(4*math.Pi), 0) * diff * diff

	ka, err := absorptionLowLoss(k0, effPerm)
	if err != nil {
		return nil, err
	}
	ks, err := mmScatteringCoefficient(k0, effPerm, ibaCoeff, layer.Microstructure)
	if err != nil {
		return nil, err
	}

	return &IBAMM{base{
		k0:             k0,
		e0:             e0,
		eps:            eps,
		depol:          depol,
		effPerm:        effPerm,
		ibaCoeff:       ibaCoeff,
		ka:             ka,
		ks:             ks,
		microstructure: layer.Microstructure,
	}}, nil
}

// mmScatteringCoefficient integrates the MEMLS-averaged (H,V mean) phase
// function over θ∈[0,π] and halves it per Matzler & Wiesmann (1999) eqn 8.
func mmScatteringCoefficient(k0 float64, effPerm, ibaCoeff complex128, ms micro.Provider) (float64, error) {
	sqrtEpsAbs := sqrtAbs(effPerm)
	nodes := make([]float64, mmQuadPoints)
	weights := make([]float64, mmQuadPoints)
	quad.Legendre{}.FixedLocations(nodes, weights, 0, math.Pi)

	kDiff := make([]float64, mmQuadPoints)
	for i, theta := range nodes {
		kDiff[i] = 2 * k0 * math.Sin(theta/2) * sqrtEpsAbs
	}
	ftCorr, err := ms.FTAutocorrelation(kDiff)
	if err != nil {
		return 0, err
	}

	var ksInt float64
	for i, theta := range nodes {
		pmm := real(ibaCoeff*complex(ftCorr[i], 0)) * (1 - 0.5*math.Sin(theta)*math.Sin(theta))
		ksInt += weights[i] * pmm * math.Sin(theta)
	}
	ks := ksInt / 2
	if ks < 0 {
		return 0, xerr.New(xerr.PhysicalValueOutOfRange, "em: k_s=%g < 0, invariant violated", ks)
	}
	return ks, nil
}
