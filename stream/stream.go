// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream builds the angular discretization shared by the EM model
// and the DORT solver: a symmetric set of stream cosines {±μ_i}, quadrature
// weights summing to 1 on each hemisphere, and the observation direction
// μ_obs injected so no interpolation is needed at output.
package stream

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/cpmech/mwrt/xerr"
)

// Scheme selects the hemisphere quadrature rule.
type Scheme int

const (
	// Gauss is the standard Gauss-Legendre rule on (0,1].
	Gauss Scheme = iota

	// CompressedGauss remaps Gauss-Legendre nodes toward the horizon
	// (μ→0), useful when the phase function is forward-peaked near
	// grazing angles.
	CompressedGauss
)

const obsTol = 1e-9

// Options configures stream-grid construction.
type Options struct {
	N      int     // total stream count, split evenly across hemispheres
	Scheme Scheme  // quadrature scheme
	MuObs  float64 // observation/incidence cosine to inject, 0 < MuObs ≤ 1
	MMax   int     // highest azimuthal mode that will be evaluated on this grid
	NPol   int      // polarization count for the phase matrices using this grid
}

// Grid is a symmetric stream set: Mu holds upward (positive) cosines
// followed by downward (negative) cosines; W holds the matching hemisphere
// weight for each entry (weight of a downward stream equals the weight of
// its upward mirror). ObsIdx is the index of the injected/matched μ_obs
// stream within the upward half.
type Grid struct {
	Mu     []float64
	W      []float64
	ObsIdx int
}

// N returns the total number of streams (both hemispheres).
func (g *Grid) N() int { return len(g.Mu) }

// Half returns the number of streams per hemisphere.
func (g *Grid) Half() int { return len(g.Mu) / 2 }

// New builds a stream grid per Options.
func New(opts Options) (*Grid, error) {
	if opts.N < 2 || opts.N%2 != 0 {
		return nil, xerr.New(xerr.InputValidation, "stream count N=%d must be even and ≥2", opts.N)
	}
	if opts.MuObs <= 0 || opts.MuObs > 1 {
		return nil, xerr.New(xerr.InputValidation, "MuObs=%g must be in (0,1]", opts.MuObs)
	}
	nHalf := opts.N / 2
	nodes := make([]float64, nHalf)
	weights := make([]float64, nHalf)
	quad.Legendre{}.FixedLocations(nodes, weights, 0, 1)

	if opts.Scheme == CompressedGauss {
		compress(nodes, weights)
	}

	// locate or inject μ_obs
	obsIdx := -1
	for i, mu := range nodes {
		if math.Abs(mu-opts.MuObs) < obsTol {
			obsIdx = i
			break
		}
	}
	if obsIdx < 0 {
		nodes = append(nodes, opts.MuObs)
		weights = append(weights, 0) // observation point carries no quadrature mass
		obsIdx = len(nodes) - 1
	}

	if opts.NPol == 3 && opts.MMax >= 2 {
		for _, mu := range nodes {
			if math.Abs(mu-1) < obsTol {
				return nil, xerr.New(xerr.InvalidStreamGeometry,
					"μ=1 stream with npol=3 and m_max=%d ≥ 2 breaks the Matzler 2006 sign convention", opts.MMax)
			}
		}
	}

	n := len(nodes)
	mu := make([]float64, 2*n)
	w := make([]float64, 2*n)
	copy(mu[:n], nodes)
	copy(w[:n], weights)
	for i := 0; i < n; i++ {
		mu[n+i] = -nodes[i]
		w[n+i] = weights[i]
	}
	return &Grid{Mu: mu, W: w, ObsIdx: obsIdx}, nil
}

// compress remaps Gauss-Legendre nodes on (0,1) toward 0 with a power-law
// warp x ↦ x^1.5, rescaling weights by the warp's Jacobian so they still
// integrate a constant to 1 over the hemisphere.
func compress(nodes, weights []float64) {
	const p = 1.5
	for i, x := range nodes {
		xp := math.Pow(x, p)
		jac := p * math.Pow(x, p-1)
		nodes[i] = xp
		weights[i] *= jac
	}
}
