// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowpack

import (
	"math"

	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/perm"
	"github.com/cpmech/mwrt/xerr"
)

// SemiInfinite is the thickness sentinel for a layer with no lower
// boundary of its own (only legal for the top layer, modelling an
// unbounded atmosphere/half-space above the snowpack).
const SemiInfinite = math.MaxFloat64

// Layer is one horizontally homogeneous slab of the medium.
type Layer struct {
	ThicknessM     float64
	TemperatureK   float64
	FracVolume     float64
	Microstructure micro.Provider
	Background     perm.Provider // ε at φ=0
	Inclusion      perm.Provider // ε at φ=1
	EMModel        string        // registered em.Model name for this layer
}

// NewLayer validates and builds a Layer.
func NewLayer(thicknessM, temperatureK, fracVolume float64, microstructure micro.Provider, background, inclusion perm.Provider, emModel string) (*Layer, error) {
	if thicknessM <= 0 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Layer: thickness must be > 0 (or SemiInfinite), got %g", thicknessM)
	}
	if temperatureK <= 0 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Layer: temperature must be > 0 K, got %g", temperatureK)
	}
	if fracVolume < 0 || fracVolume > 1 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Layer: frac_volume must be in [0,1], got %g", fracVolume)
	}
	if microstructure == nil {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Layer: microstructure provider is required")
	}
	if background == nil || inclusion == nil {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Layer: background and inclusion permittivity providers are required")
	}
	if emModel == "" {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Layer: em_model name is required")
	}
	return &Layer{
		ThicknessM:     thicknessM,
		TemperatureK:   temperatureK,
		FracVolume:     fracVolume,
		Microstructure: microstructure,
		Background:     background,
		Inclusion:      inclusion,
		EMModel:        emModel,
	}, nil
}

// IsSemiInfinite reports whether this layer has no finite lower boundary.
func (l *Layer) IsSemiInfinite() bool {
	return l.ThicknessM == SemiInfinite
}
