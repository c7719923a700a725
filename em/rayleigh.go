// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/snowpack"
)

// unitAutocorrelation is the microstructure limit ĉ(k)≡1: no structural
// form factor, i.e. point scatterers. Plugging it into the shared phase
// machinery collapses IBA onto the pure Rayleigh phase function, which is
// what this model is for (the small-particle limit).
type unitAutocorrelation struct{}

func (unitAutocorrelation) Init(prms fun.Prms) error { return nil }

func (unitAutocorrelation) FTAutocorrelation(k []float64) ([]float64, error) {
	out := make([]float64, len(k))
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

// Rayleigh is the small-particle (point-scatterer) limit: same effective
// permittivity and extinction bookkeeping as IBA, but with the
// microstructure form factor fixed at 1.
type Rayleigh struct {
	base
}

func init() {
	Register("rayleigh", newRayleigh)
}

func newRayleigh(sensor *snowpack.Sensor, layer *snowpack.Layer) (Model, error) {
	e0, err := layer.Background.Eps(sensor.FrequencyHz, layer.TemperatureK)
	if err != nil {
		return nil, err
	}
	eps, err := layer.Inclusion.Eps(sensor.FrequencyHz, layer.TemperatureK)
	if err != nil {
		return nil, err
	}
	k0 := 2 * math.Pi * sensor.FrequencyHz / speedOfLight
	depol := depolarizationFactors()

	effPerm := maxwellGarnett(layer.FracVolume, e0, eps, depol)
	y2 := meanSqFieldRatio(effPerm, e0, eps, depol)
	diff := eps - e0
	ibaCoeff := complex(y2*k0*k0*k0*k0/(4*math.Pi), 0) * diff * diff

	ms := unitAutocorrelation{}
	ka, err := absorptionLowLoss(k0, effPerm)
	if err != nil {
		return nil, err
	}
	ks, err := scatteringCoefficient(k0, effPerm, ibaCoeff, ms)
	if err != nil {
		return nil, err
	}

	return &Rayleigh{base{
		k0:             k0,
		e0:             e0,
		eps:            eps,
		depol:          depol,
		effPerm:        effPerm,
		ibaCoeff:       ibaCoeff,
		ka:             ka,
		ks:             ks,
		microstructure: ms,
	}}, nil
}
