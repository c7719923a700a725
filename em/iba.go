// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"

	"github.com/cpmech/mwrt/snowpack"
)

// speedOfLight matches the reference model's C_SPEED constant.
const speedOfLight = 2.9979e8

// IBA is the Improved Born Approximation electromagnetic model (Matzler
// 1998), grounded directly on the precompute/ks_integrand/ft_even_phase
// methods of the original IBA class.
type IBA struct {
	base
}

func init() {
	Register("iba", newIBA)
}

func newIBA(sensor *snowpack.Sensor, layer *snowpack.Layer) (Model, error) {
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

	ka, err := absorptionLowLoss(k0, effPerm)
	if err != nil {
		return nil, err
	}
	ks, err := scatteringCoefficient(k0, effPerm, ibaCoeff, layer.Microstructure)
	if err != nil {
		return nil, err
	}

	return &IBA{base{
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
