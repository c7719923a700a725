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
	Register("sticky_hard_spheres", func() Provider { return new(StickyHardSpheres) })
}

// StickyHardSpheres models adhesive (sticky) hard spheres of a single
// radius and volume fraction, via the Percus-Yevick hard-sphere structure
// factor (Wertheim 1963 / Thiele 1963) times the independent-sphere form
// factor, with a first-order stickiness enhancement near k→0 standing in
// for the full Baxter (1968) adhesive-sphere solution (the Baxter λ root
// is not solved; only the leading-order contact-term enhancement is
// applied).
type StickyHardSpheres struct {
	radius, stickiness, fracVolume float64
}

// Init reads "radius" [m], "stickiness" (dimensionless, larger = less
// sticky), and optionally "frac_volume" (defaults to 0.3 if unset). The
// volume fraction sets both the Percus-Yevick packing fraction and the
// φ(1−φ) variance prefactor of ĉ(k).
func (s *StickyHardSpheres) Init(prms fun.Prms) error {
	s.fracVolume = 0.3
	for _, p := range prms {
		switch p.N {
		case "radius":
			s.radius = p.V
		case "stickiness":
			s.stickiness = p.V
		case "frac_volume":
			s.fracVolume = p.V
		default:
			return xerr.New(xerr.InputValidation, "micro.StickyHardSpheres: unknown parameter %q", p.N)
		}
	}
	if s.radius <= 0 {
		return xerr.New(xerr.InputValidation, "micro.StickyHardSpheres: radius must be > 0")
	}
	if s.stickiness <= 0 {
		return xerr.New(xerr.InputValidation, "micro.StickyHardSpheres: stickiness must be > 0")
	}
	return nil
}

// FTAutocorrelation returns the independent-sphere form factor (itself
// already scaled by the φ(1−φ) fluctuation variance) times the
// Percus-Yevick/sticky structure factor S(k).
func (s *StickyHardSpheres) FTAutocorrelation(k []float64) ([]float64, error) {
	sphere := &IndependentSphere{radius: s.radius, fracVolume: s.fracVolume}
	form, err := sphere.FTAutocorrelation(k)
	if err != nil {
		return nil, err
	}
	eta := s.fracVolume
	R := s.radius
	out := make([]float64, len(k))
	for i, ki := range k {
		sk := pyHardSphereStructureFactor(ki*2*R, eta)
		sk *= 1 + math.Exp(-ki*R)/(12*s.stickiness) // leading-order sticky enhancement
		out[i] = form[i] * sk
	}
	return clampNonNegative(out), nil
}

// pyHardSphereStructureFactor evaluates the Wertheim/Thiele (1963)
// Percus-Yevick hard-sphere structure factor S(x) at x = k·σ (σ = sphere
// diameter), packing fraction η.
func pyHardSphereStructureFactor(x, eta float64) float64 {
	if x < 1e-6 {
		// S(0) = (1-η)^4 / (1+2η)^2, the PY compressibility limit.
		return math.Pow(1-eta, 4) / math.Pow(1+2*eta, 2)
	}
	alpha := math.Pow(1+2*eta, 2) / math.Pow(1-eta, 4)
	beta := -6 * eta * math.Pow(1+eta/2, 2) / math.Pow(1-eta, 4)
	gamma := eta * alpha / 2

	sinX, cosX := math.Sin(x), math.Cos(x)
	t1 := alpha * (sinX - x*cosX) / (x * x * x)
	t2 := beta * (2*x*sinX + (2-x*x)*cosX - 2) / (x * x * x * x)
	t3 := gamma * (-x*x*x*x*cosX + 4*((3*x*x-6)*cosX+(x*x*x-6*x)*sinX+6)) / math.Pow(x, 6)
	c := -24 * eta * (t1 + t2 + t3)
	return 1 / (1 - c)
}
