// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"
	"math/cmplx"
)

// depolarizationFactors returns the (x,y,z) depolarization factors for
// spherical inclusions: (1/3, 1/3, 1/3), fixed for this model.
func depolarizationFactors() [3]float64 {
	return [3]float64{1. / 3., 1. / 3., 1. / 3.}
}

// maxwellGarnett computes the effective permittivity of a two-phase
// mixture (background e0, inclusion eps at volume fraction phi) with
// possibly anisotropic depolarization factors, averaged over the three
// principal axes:
//
//	ε_eff = e0 + φ·(1/3)·Σ_q (eps−e0)·e0 / (e0 + (1−φ)·A_q·(eps−e0))
//
// At depol = (1/3,1/3,1/3) this reduces to the classic two-component
// Maxwell-Garnett formula for spherical inclusions.
func maxwellGarnett(phi float64, e0, eps complex128, depol [3]float64) complex128 {
	var sum complex128
	for _, a := range depol {
		term := (eps - e0) * e0 / (e0 + complex((1-phi)*a, 0)*(eps-e0))
		sum += term
	}
	return e0 + complex(phi/3, 0)*sum
}

// meanSqFieldRatio is the mean-squared field ratio y² used by both the
// IBA coefficient and (for IBA_MM) the effective permittivity's imaginary
// correction.
//
// This sums |ratio|² (real(ratio·ratio̅)) per axis, matching §4.4's
// literal |·|² notation, so y² is real; the original computes the complex
// Σ ratio² instead. The imaginary part of ibaCoeff here comes from
// (eps−e0)² alone.
func meanSqFieldRatio(effPerm, e0, eps complex128, depol [3]float64) float64 {
	epsQ := (2*effPerm + e0) / 3
	var sum float64
	for _, a := range depol {
		ratio := epsQ / (epsQ + (eps-e0)*complex(a, 0))
		sum += real(ratio * cmplx.Conj(ratio))
	}
	return sum / 3
}

// polderVanSantenReal solves the symmetric (Bruggeman-type) self-consistent
// mixing equation for spherical inclusions, real-valued:
//
//	φ(eps−x)/(eps+2x) + (1−φ)(e0−x)/(e0+2x) = 0
//
// returning the physically continuous root (the one equal to e0 at φ=0).
func polderVanSantenReal(phi, e0, eps float64) float64 {
	b := phi*(2*eps-e0) + (1-phi)*(2*e0-eps)
	disc := b*b + 8*e0*eps
	return (b + sqrtNonNeg(disc)) / 4
}

func sqrtNonNeg(x float64) float64 {
	if x < 0 {
		x = 0
	}
	return math.Sqrt(x)
}
