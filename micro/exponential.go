// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package micro

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/xerr"
)

func init() {
	Register("exponential", func() Provider { return new(Exponential) })
}

// Exponential is the exponential autocorrelation-function microstructure
// model, parameterized by a correlation length and the layer's volume
// fraction (the latter sets the permittivity-fluctuation variance, not
// the correlation shape).
type Exponential struct {
	corrLength float64
	fracVolume float64
}

// Init reads "corr_length" [m] and "frac_volume" (dimensionless, [0,1]).
func (e *Exponential) Init(prms fun.Prms) error {
	haveFrac := false
	for _, p := range prms {
		switch p.N {
		case "corr_length":
			e.corrLength = p.V
		case "frac_volume":
			e.fracVolume = p.V
			haveFrac = true
		default:
			return xerr.New(xerr.InputValidation, "micro.Exponential: unknown parameter %q", p.N)
		}
	}
	if e.corrLength <= 0 {
		return xerr.New(xerr.InputValidation, "micro.Exponential: corr_length must be > 0")
	}
	if !haveFrac {
		return xerr.New(xerr.InputValidation, "micro.Exponential: frac_volume is required")
	}
	if e.fracVolume < 0 || e.fracVolume > 1 {
		return xerr.New(xerr.InputValidation, "micro.Exponential: frac_volume must be in [0,1], got %g", e.fracVolume)
	}
	return nil
}

// FTAutocorrelation returns ĉ(k) = φ(1−φ)·8π ℓ³ / (1 + k²ℓ²)², the
// φ(1−φ) factor being the variance of the two-phase permittivity
// fluctuation the autocorrelation function describes.
func (e *Exponential) FTAutocorrelation(k []float64) ([]float64, error) {
	out := make([]float64, len(k))
	l := e.corrLength
	variance := e.fracVolume * (1 - e.fracVolume)
	for i, ki := range k {
		u := 1 + ki*ki*l*l
		out[i] = variance * 8 * math.Pi * l * l * l / (u * u)
	}
	return clampNonNegative(out), nil
}
