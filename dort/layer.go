// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dort

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/mwrt/xerr"
)

// eigImagRelTol bounds the imaginary part of an eigenvalue/eigenvector
// entry, relative to the largest eigenvalue magnitude, tolerated before
// the spectrum is judged non-physical.
const eigImagRelTol = 1e-6

// nearZeroRelTol is the tie-break threshold for classifying a
// near-degenerate eigenvalue as non-negative (top-anchored) vs negative
// (bottom-anchored), per the solver's numerical policy.
const nearZeroRelTol = 1e-12

// layerSolution is the eigenmode expansion of one finite-thickness
// layer's discrete-ordinate operator, plus (passive mode only) the
// constant particular solution sourced by its own thermal emission.
type layerSolution struct {
	n          int
	thicknessM float64
	vDown      *mat.Dense // n × len(downIdx), eigenvectors anchored at z=0 (top)
	vUp        *mat.Dense // n × len(upIdx), eigenvectors anchored at z=d (bottom)
	decayDown  []float64  // exp(-λ_k·d) for λ_k ≥ 0, used at the bottom
	decayUp    []float64  // exp(λ_k·d) for λ_k < 0, used at the top
	source     []float64  // particular solution L_m⁻¹·S, nil when sourceless
}

// solveLayer eigendecomposes L_m = buildOperator(...) and classifies each
// eigenmode as top-anchored (λ≥0, decays with increasing z) or
// bottom-anchored (λ<0, decays with decreasing z from the bottom), which
// keeps every exponential factor in (0,1] regardless of layer thickness
// or absorption strength (the "exponentially scaled eigenvalues"
// numerical policy). sourceRHS, when non-nil, is solved against L_m for
// the layer's constant thermal-emission particular solution.
func solveLayer(mu, w []float64, npol int, ke, thicknessM float64, phase [][]float64, sourceRHS []float64) (*layerSolution, error) {
	L := buildOperator(mu, w, npol, ke, phase)
	n, _ := L.Dims()

	var eig mat.Eigen
	if ok := eig.Factorize(L, mat.EigenRight); !ok {
		return nil, xerr.New(xerr.SolverDegenerate, "dort: eigendecomposition failed to converge")
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	maxAbs := 0.0
	for _, v := range values {
		if a := math.Abs(real(v)); a > maxAbs {
			maxAbs = a
		}
	}
	tol := eigImagRelTol * math.Max(maxAbs, 1)
	for _, v := range values {
		if math.Abs(imag(v)) > tol {
			return nil, xerr.New(xerr.NumericalInstability, "dort: non-physical complex eigenvalue %v in layer operator", v)
		}
	}

	var downIdx, upIdx []int
	zeroTol := nearZeroRelTol * math.Max(maxAbs, 1)
	for k, v := range values {
		if real(v) >= -zeroTol {
			downIdx = append(downIdx, k)
		} else {
			upIdx = append(upIdx, k)
		}
	}

	vDown := mat.NewDense(n, len(downIdx), nil)
	decayDown := make([]float64, len(downIdx))
	for c, k := range downIdx {
		for r := 0; r < n; r++ {
			vDown.Set(r, c, real(vectors.At(r, k)))
		}
		decayDown[c] = math.Exp(-real(values[k]) * thicknessM)
	}
	vUp := mat.NewDense(n, len(upIdx), nil)
	decayUp := make([]float64, len(upIdx))
	for c, k := range upIdx {
		for r := 0; r < n; r++ {
			vUp.Set(r, c, real(vectors.At(r, k)))
		}
		decayUp[c] = math.Exp(real(values[k]) * thicknessM)
	}

	var source []float64
	if sourceRHS != nil {
		var lu mat.LU
		lu.Factorize(L)
		if !lu.IsNonsingular() {
			return nil, xerr.New(xerr.SolverDegenerate, "dort: layer operator singular, cannot solve thermal source")
		}
		rhs := mat.NewVecDense(n, sourceRHS)
		var sol mat.VecDense
		if err := lu.SolveVecTo(&sol, false, rhs); err != nil {
			return nil, xerr.New(xerr.SolverDegenerate, "dort: layer source solve failed: %v", err)
		}
		source = make([]float64, n)
		for i := range source {
			source[i] = sol.AtVec(i)
		}
	}

	return &layerSolution{
		n:          n,
		thicknessM: thicknessM,
		vDown:      vDown,
		vUp:        vUp,
		decayDown:  decayDown,
		decayUp:    decayUp,
		source:     source,
	}, nil
}

// topCoeffs returns the (n×ndown, n×nup) coefficient matrices mapping
// (c_top, c_bottom) amplitudes to the full radiance vector I(z=0).
func (s *layerSolution) topCoeffs() (cTop, cBot *mat.Dense) {
	nUp := len(s.decayUp)
	scaledUp := mat.NewDense(s.n, nUp, nil)
	for c := 0; c < nUp; c++ {
		for r := 0; r < s.n; r++ {
			scaledUp.Set(r, c, s.vUp.At(r, c)*s.decayUp[c])
		}
	}
	return s.vDown, scaledUp
}

// bottomCoeffs returns the (n×ndown, n×nup) coefficient matrices mapping
// (c_top, c_bottom) amplitudes to the full radiance vector I(z=d).
func (s *layerSolution) bottomCoeffs() (cTop, cBot *mat.Dense) {
	nDown := len(s.decayDown)
	scaledDown := mat.NewDense(s.n, nDown, nil)
	for c := 0; c < nDown; c++ {
		for r := 0; r < s.n; r++ {
			scaledDown.Set(r, c, s.vDown.At(r, c)*s.decayDown[c])
		}
	}
	return scaledDown, s.vUp
}

// ndown, nup return the amplitude-vector split sizes for this layer.
func (s *layerSolution) ndown() int { return s.vDown.RawMatrix().Cols }
func (s *layerSolution) nup() int   { return s.vUp.RawMatrix().Cols }
