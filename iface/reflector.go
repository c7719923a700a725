// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iface

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/xerr"
)

func init() {
	Register("reflector", func() Operator { return new(Reflector) })
}

// Reflector is a substrate with a prescribed specular reflection, scalar
// or per-polarization (V, H), and an optional prescribed backscattering
// coefficient (VV, HH). It never transmits: it terminates the stack.
type Reflector struct {
	haveSpecular      bool
	specularV         float64
	specularH         float64
	haveBackscatter   bool
	backscatterVV     float64
	backscatterHH     float64
	temperatureK      float64
}

// Init reads "temperature" [K] and at least one of "specular_reflection"
// (applies to both V and H) or the pair "specular_reflection_v" /
// "specular_reflection_h"; optionally "backscattering_vv" /
// "backscattering_hh". With nothing set, specular_reflection defaults to 1
// (a perfect reflector), matching the reference behaviour.
func (r *Reflector) Init(prms fun.Prms) error {
	var haveV, haveH bool
	for _, p := range prms {
		switch p.N {
		case "temperature":
			r.temperatureK = p.V
		case "specular_reflection":
			r.specularV, r.specularH = p.V, p.V
			r.haveSpecular = true
			haveV, haveH = true, true
		case "specular_reflection_v":
			r.specularV = p.V
			r.haveSpecular = true
			haveV = true
		case "specular_reflection_h":
			r.specularH = p.V
			r.haveSpecular = true
			haveH = true
		case "backscattering_vv":
			r.backscatterVV = p.V
			r.haveBackscatter = true
		case "backscattering_hh":
			r.backscatterHH = p.V
			r.haveBackscatter = true
		default:
			return xerr.New(xerr.InputValidation, "iface.Reflector: unknown parameter %q", p.N)
		}
	}
	if haveV != haveH && r.haveSpecular {
		return xerr.New(xerr.InputValidation, "iface.Reflector: specular_reflection_v and _h must be set together")
	}
	if r.temperatureK <= 0 {
		return xerr.New(xerr.InputValidation, "iface.Reflector: temperature must be > 0")
	}
	if !r.haveSpecular && !r.haveBackscatter {
		r.specularV, r.specularH = 1, 1
		r.haveSpecular = true
	}
	return nil
}

func (r *Reflector) Temperature() float64 { return r.temperatureK }

func (r *Reflector) Permittivity(frequencyHz float64) (complex128, error) {
	return 0, xerr.New(xerr.InputValidation, "iface.Reflector: permittivity is undefined for a prescribed reflector")
}

func (r *Reflector) Reflection(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	coeffs := make([]float64, npol*len(mu))
	for i := range mu {
		coeffs[npol*i+0] = r.specularV
		coeffs[npol*i+1] = r.specularH
		if npol >= 3 {
			coeffs[npol*i+2] = (r.specularV + r.specularH) / 2
		}
	}
	return diag(coeffs), nil
}

func (r *Reflector) Transmission(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	return zeros(npol * len(mu)), nil
}

// DiffuseReflection implements the prescribed backscattering coefficient
// with the mode sign +½ at m=0, −1 at odd m and +1 at even m, divided by
// μ. The division by μ is always applied; there is no option to turn it
// off. Passive (npol=2) only.
func (r *Reflector) DiffuseReflection(m int, frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error) {
	if !r.haveBackscatter {
		return nil, nil
	}
	if npol > 2 {
		return nil, xerr.New(xerr.UnsupportedMode, "iface.Reflector: active mode (npol=%d) is not supported", npol)
	}
	var coef float64
	switch {
	case m == 0:
		coef = 0.5
	case m%2 == 1:
		coef = -1.0
	default:
		coef = 1.0
	}
	coeffs := make([]float64, npol*len(mu))
	for i, mu1 := range mu {
		c := coef / mu1
		coeffs[npol*i+0] = c * r.backscatterVV
		coeffs[npol*i+1] = c * r.backscatterHH
	}
	return diag(coeffs), nil
}

func (r *Reflector) AbsorptionMatrix(frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error) {
	coeffs := make([]float64, npol*len(mu))
	for i := range mu {
		coeffs[npol*i+0] = 1 - r.specularV
		coeffs[npol*i+1] = 1 - r.specularH
		if npol >= 3 {
			coeffs[npol*i+2] = 1 - (r.specularV+r.specularH)/2
		}
	}
	return diag(coeffs), nil
}
