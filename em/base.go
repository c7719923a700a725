// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/xerr"
)

// base carries the quantities common to every registered model: the
// effective-medium permittivity, absorption/scattering coefficients and
// the lazily (re)built phase-matrix cache. Concrete models (iba, iba_mm,
// rayleigh, dmrt_qcacp_shortrange) embed it and fill e0/eps/effPerm/
// ibaCoeff/ka/ks during construction.
type base struct {
	k0             float64
	e0, eps        complex128
	depol          [3]float64
	effPerm        complex128
	ibaCoeff       complex128
	ka, ks         float64
	microstructure micro.Provider
	cache          *phaseCache
}

func (b *base) EpsEff() complex128 { return b.effPerm }
func (b *base) Ka() float64        { return b.ka }
func (b *base) Ks() float64        { return b.ks }

// Phase returns the Fourier-decomposed phase matrix for mode m, rebuilding
// the cache only when (μ, m_max, npol) changed since the last call.
func (b *base) Phase(m int, mu []float64, npol int) ([][]float64, error) {
	if m < 0 {
		return nil, xerr.New(xerr.InputValidation, "em: mode m=%d must be ≥ 0", m)
	}
	if !b.cache.matches(mu, m, npol) {
		c, err := buildPhaseCache(mu, m, npol, b.k0, b.effPerm, b.ibaCoeff, b.microstructure)
		if err != nil {
			return nil, err
		}
		b.cache = c
	}
	return b.cache.at(m)
}

func sqrtAbs(c complex128) float64 {
	return cmplx.Abs(cmplx.Sqrt(c))
}

// absorptionLowLoss is the low-loss-regime absorption formula shared by
// every model variant (no automatic fallback for lossy media,
// per the open design note).
func absorptionLowLoss(k0 float64, effPerm complex128) (float64, error) {
	re := real(effPerm)
	if re <= 0 {
		return 0, xerr.New(xerr.PhysicalValueOutOfRange, "em: Re(ε_eff)=%g must be > 0 for the low-loss absorption formula", re)
	}
	return k0 * imag(effPerm) / math.Sqrt(re), nil
}

// scatteringCoefficient integrates (p11+p22) over μ∈[-1,1] by Romberg
// quadrature on 2⁶+1 samples and normalizes by 4 (Ding et al. 2010,
// folded into the 1/4π already present in ibaCoeff).
func scatteringCoefficient(k0 float64, effPerm, ibaCoeff complex128, ms micro.Provider) (float64, error) {
	sqrtEpsAbs := sqrtAbs(effPerm)
	var ferr error
	integrand := func(mu float64) float64 {
		if ferr != nil {
			return 0
		}
		sinHalf := math.Sqrt(math.Max(0, (1-mu)/2))
		kDiff := []float64{2 * k0 * sinHalf * sqrtEpsAbs}
		ftCorr, err := ms.FTAutocorrelation(kDiff)
		if err != nil {
			ferr = err
			return 0
		}
		term := real(ibaCoeff * complex(ftCorr[0], 0))
		return term*mu*mu + term
	}
	ksInt := rombergIntegrate(integrand, -1, 1, 6)
	if ferr != nil {
		return 0, ferr
	}
	ks := ksInt / 4
	if ks < 0 {
		return 0, xerr.New(xerr.PhysicalValueOutOfRange, "em: k_s=%g < 0, invariant violated", ks)
	}
	return ks, nil
}
