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
	Register("independent_sphere", func() Provider { return new(IndependentSphere) })
}

// IndependentSphere models uncorrelated (Poisson-distributed) spheres of
// a single radius: the autocorrelation FT is the geometric form factor of
// a sphere, scaled by the layer's permittivity-fluctuation variance.
type IndependentSphere struct {
	radius     float64
	fracVolume float64
}

// Init reads "radius" [m] and "frac_volume" (dimensionless, [0,1]).
func (s *IndependentSphere) Init(prms fun.Prms) error {
	haveFrac := false
	for _, p := range prms {
		switch p.N {
		case "radius":
			s.radius = p.V
		case "frac_volume":
			s.fracVolume = p.V
			haveFrac = true
		default:
			return xerr.New(xerr.InputValidation, "micro.IndependentSphere: unknown parameter %q", p.N)
		}
	}
	if s.radius <= 0 {
		return xerr.New(xerr.InputValidation, "micro.IndependentSphere: radius must be > 0")
	}
	if !haveFrac {
		return xerr.New(xerr.InputValidation, "micro.IndependentSphere: frac_volume is required")
	}
	if s.fracVolume < 0 || s.fracVolume > 1 {
		return xerr.New(xerr.InputValidation, "micro.IndependentSphere: frac_volume must be in [0,1], got %g", s.fracVolume)
	}
	return nil
}

// FTAutocorrelation returns ĉ(k) = φ(1−φ)·4π R³ · [3(sin(x)−x·cos(x))/x³]²
// with x = kR, the classic sphere form factor scaled by the φ(1−φ)
// permittivity-fluctuation variance, continuous at k=0 where the bracket
// → 1.
func (s *IndependentSphere) FTAutocorrelation(k []float64) ([]float64, error) {
	out := make([]float64, len(k))
	R := s.radius
	variance := s.fracVolume * (1 - s.fracVolume)
	for i, ki := range k {
		x := ki * R
		var bracket float64
		if math.Abs(x) < 1e-6 {
			bracket = 1 - x*x/10 // Taylor expansion near x=0
		} else {
			bracket = 3 * (math.Sin(x) - x*math.Cos(x)) / (x * x * x)
		}
		out[i] = variance * 4 * math.Pi * R * R * R * bracket * bracket
	}
	return clampNonNegative(out), nil
}
