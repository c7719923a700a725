// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iface

import (
	"math/cmplx"

	"github.com/cpmech/gosl/fun"
)

func init() {
	Register("flat", func() Operator { return new(Flat) })
}

// Flat is the specular Fresnel interface between two half-spaces of given
// permittivity. It carries no parameters of its own.
type Flat struct{}

func (f *Flat) Init(prms fun.Prms) error { return nil }

// fresnelCoeffs returns the amplitude reflection coefficients (rv, rh) for
// an interface between eps1 (incidence side) and eps2, at cosine mu1.
func fresnelCoeffs(eps1, eps2 complex128, mu1 float64) (rv, rh complex128) {
	n1 := cmplx.Sqrt(eps1)
	n2 := cmplx.Sqrt(eps2)
	cosTi := complex(mu1, 0)
	sinTi2 := complex(1-mu1*mu1, 0)
	sinTt2 := (n1 / n2) * (n1 / n2) * sinTi2
	cosTt := cmplx.Sqrt(1 - sinTt2)
	rh = (n1*cosTi - n2*cosTt) / (n1*cosTi + n2*cosTt)
	rv = (n2*cosTi - n1*cosTt) / (n2*cosTi + n1*cosTt)
	return rv, rh
}

// fresnelReflectivity returns the power reflectivities (Rv, Rh).
func fresnelReflectivity(eps1, eps2 complex128, mu1 float64) (Rv, Rh float64) {
	rv, rh := fresnelCoeffs(eps1, eps2, mu1)
	return real(rv * cmplx.Conj(rv)), real(rh * cmplx.Conj(rh))
}

func (f *Flat) Reflection(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	coeffs := make([]float64, npol*len(mu))
	for i, mu1 := range mu {
		Rv, Rh := fresnelReflectivity(epsAbove, epsBelow, mu1)
		coeffs[npol*i+0] = Rv
		coeffs[npol*i+1] = Rh
		if npol >= 3 {
			coeffs[npol*i+2] = (Rv + Rh) / 2
		}
	}
	return diag(coeffs), nil
}

func (f *Flat) Transmission(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	coeffs := make([]float64, npol*len(mu))
	for i, mu1 := range mu {
		Rv, Rh := fresnelReflectivity(epsAbove, epsBelow, mu1)
		coeffs[npol*i+0] = 1 - Rv
		coeffs[npol*i+1] = 1 - Rh
		if npol >= 3 {
			coeffs[npol*i+2] = 1 - (Rv+Rh)/2
		}
	}
	return diag(coeffs), nil
}

func (f *Flat) DiffuseReflection(m int, frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error) {
	return nil, nil
}
