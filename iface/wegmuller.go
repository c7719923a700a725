// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iface

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/perm"
	"github.com/cpmech/mwrt/xerr"
)

const speedOfLight = 2.9979e8

// Wegmuller is the empirical rough-soil substrate of Wegmüller & Mätzler
// (1999): a Fresnel reflectivity attenuated by the rms surface roughness,
// passive mode only. It wraps a nested perm.Provider for the soil's own
// dielectric, so — unlike the other operators — it is not built through
// the string-keyed iface.New registry; use NewWegmuller directly.
type Wegmuller struct {
	roughnessRMS float64
	temperatureK float64
	soil         perm.Provider
}

// NewWegmuller builds a rough-soil substrate from an already-constructed
// permittivity provider for the soil.
func NewWegmuller(roughnessRMS, temperatureK float64, soil perm.Provider) (*Wegmuller, error) {
	if roughnessRMS <= 0 {
		return nil, xerr.New(xerr.InputValidation, "iface.Wegmuller: roughness_rms must be > 0")
	}
	if temperatureK <= 0 {
		return nil, xerr.New(xerr.InputValidation, "iface.Wegmuller: temperature must be > 0")
	}
	if soil == nil {
		return nil, xerr.New(xerr.InputValidation, "iface.Wegmuller: soil provider is required")
	}
	return &Wegmuller{roughnessRMS: roughnessRMS, temperatureK: temperatureK, soil: soil}, nil
}

// Init exists to satisfy Operator; construction always goes through
// NewWegmuller since this operator needs a nested perm.Provider that a
// flat numeric parameter list cannot carry.
func (w *Wegmuller) Init(prms fun.Prms) error {
	return xerr.New(xerr.InputValidation, "iface.Wegmuller: use NewWegmuller, not the string registry")
}

func (w *Wegmuller) Temperature() float64 { return w.temperatureK }

func (w *Wegmuller) Permittivity(frequencyHz float64) (complex128, error) {
	return w.soil.Eps(frequencyHz, w.temperatureK)
}

// adjust mutates (rv, rh) in place, per the reference rough-surface
// attenuation model.
func (w *Wegmuller) adjust(rv, rh []float64, frequencyHz float64, epsAbove complex128, mu []float64) {
	for i, mu1 := range mu {
		ksigma := real(2*math.Pi*complex(frequencyHz, 0)*cmplx.Sqrt(epsAbove)/complex(speedOfLight, 0)) * w.roughnessRMS
		rh[i] *= math.Exp(-math.Pow(ksigma, math.Sqrt(0.1*mu1)))
		if mu1 >= math.Cos(60*math.Pi/180) {
			rv[i] = rh[i] * math.Pow(mu1, 0.655)
		} else {
			thetaDeg := math.Acos(mu1) * 180 / math.Pi
			rv[i] = rh[i] * (0.635 - 0.0014*(thetaDeg-60))
		}
	}
}

func (w *Wegmuller) Reflection(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	if npol > 2 {
		return nil, xerr.New(xerr.UnsupportedMode, "iface.Wegmuller: active mode (npol=%d) is not supported", npol)
	}
	eps2, err := w.Permittivity(frequencyHz)
	if err != nil {
		return nil, err
	}
	rv := make([]float64, len(mu))
	rh := make([]float64, len(mu))
	for i, mu1 := range mu {
		rv[i], rh[i] = fresnelReflectivity(epsAbove, eps2, mu1)
	}
	w.adjust(rv, rh, frequencyHz, epsAbove, mu)
	coeffs := make([]float64, npol*len(mu))
	for i := range mu {
		coeffs[npol*i+0] = rv[i]
		coeffs[npol*i+1] = rh[i]
	}
	return diag(coeffs), nil
}

func (w *Wegmuller) Transmission(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	return zeros(npol * len(mu)), nil
}

func (w *Wegmuller) DiffuseReflection(m int, frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error) {
	return nil, nil
}

func (w *Wegmuller) AbsorptionMatrix(frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error) {
	if npol > 2 {
		return nil, xerr.New(xerr.UnsupportedMode, "iface.Wegmuller: active mode (npol=%d) is not supported", npol)
	}
	eps2, err := w.Permittivity(frequencyHz)
	if err != nil {
		return nil, err
	}
	tv := make([]float64, len(mu))
	th := make([]float64, len(mu))
	for i, mu1 := range mu {
		Rv, Rh := fresnelReflectivity(epsAbove, eps2, mu1)
		tv[i], th[i] = 1-Rv, 1-Rh
	}
	rv := make([]float64, len(mu))
	rh := make([]float64, len(mu))
	for i := range mu {
		rv[i], rh[i] = 1-tv[i], 1-th[i]
	}
	w.adjust(rv, rh, frequencyHz, epsAbove, mu)
	coeffs := make([]float64, npol*len(mu))
	for i := range mu {
		coeffs[npol*i+0] = 1 - rv[i]
		coeffs[npol*i+1] = 1 - rh[i]
	}
	return diag(coeffs), nil
}
