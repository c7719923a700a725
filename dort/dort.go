// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dort implements the DORT-style (discrete ordinates radiative
// transfer) multi-stream solver: per azimuthal Fourier mode, it builds
// the discrete-ordinate operator of every finite-thickness layer,
// eigendecomposes it, assembles the global boundary-value system coupling
// every layer through its bounding interface operators, solves it, and
// reconstructs the outgoing radiance at the top of the stack in the
// sensor's viewing direction.
package dort

import (
	"math"

	"github.com/cpmech/mwrt/em"
	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/stream"
	"github.com/cpmech/mwrt/xerr"
)

// radianceFloorRelTol is the negative-radiance tolerance, relative to the
// largest reconstructed component, beyond which a solve is rejected
// rather than silently clamped.
const radianceFloorRelTol = 1e-6

// cosmicBackgroundK is the brightness temperature of the downwelling sky
// above the stack in passive mode: uniform over the whole downward
// hemisphere, so (unlike the active beam) it only has an m=0 Fourier
// component.
const cosmicBackgroundK = 2.7

// Result is the Fourier-reconstructed outgoing radiance at the top of the
// stack, in the sensor's viewing direction: one entry per Stokes
// polarization, V,H for passive and V,H,U for active.
type Result struct {
	I []float64
}

// Solve runs the per-mode discrete-ordinate solve for sensor against sp,
// on the given angular grid, and reconstructs the Fourier sum at the
// sensor's azimuth. The top layer of sp may be semi-infinite, modelling
// the atmosphere above the snowpack: it contributes its own permittivity
// to the top boundary but is excluded from the eigen-decomposed stack
// (it has no thickness to propagate radiance through).
//
// For an active sensor, the incident beam is injected in the V
// polarization; use SolveActiveH for the H-polarized injection needed to
// recover the cross-pol (HV, VH) backscatter terms. Passive mode ignores
// the distinction (the sky is unpolarized).
func Solve(sp *snowpack.Snowpack, sensor *snowpack.Sensor, grid *stream.Grid) (*Result, error) {
	return solve(sp, sensor, grid, 0)
}

// SolveActiveH behaves like Solve but injects the active beam in the H
// polarization instead of V.
func SolveActiveH(sp *snowpack.Snowpack, sensor *snowpack.Sensor, grid *stream.Grid) (*Result, error) {
	return solve(sp, sensor, grid, 1)
}

func solve(sp *snowpack.Snowpack, sensor *snowpack.Sensor, grid *stream.Grid, txPol int) (*Result, error) {
	npol := sensor.NPol()
	nHalf := grid.Half()
	muPos := grid.Mu[:nHalf]

	layers := sp.Layers
	ifaces := sp.Interfaces
	startIdx := 0
	epsAboveTop := complex(1, 0)
	if layers[0].IsSemiInfinite() {
		atmModel, err := em.New(layers[0].EMModel, sensor, layers[0])
		if err != nil {
			return nil, err
		}
		epsAboveTop = atmModel.EpsEff()
		startIdx = 1
	}
	realLayers := layers[startIdx:]
	realIfaces := ifaces[startIdx:]
	M := len(realLayers)
	if M == 0 {
		return nil, xerr.New(xerr.InputValidation, "dort: snowpack has no finite-thickness layer to solve")
	}

	models := make([]em.Model, M)
	eps := make([]complex128, M+1)
	eps[0] = epsAboveTop
	for i, l := range realLayers {
		model, err := em.New(l.EMModel, sensor, l)
		if err != nil {
			return nil, err
		}
		models[i] = model
		eps[i+1] = model.EpsEff()
	}
	// A prescribed Reflector has no permittivity of its own; substrates
	// ignore epsBelow in Reflection (Wegmuller reads its soil provider
	// directly), so vacuum stands in when none is defined.
	substrate := sp.Substrate()
	epsSub, err := substrate.Permittivity(sensor.FrequencyHz)
	if err != nil {
		epsSub = complex(1, 0)
	}

	freq := sensor.FrequencyHz
	dPhi := sensor.AzimuthRad
	half := npol * nHalf
	result := make([]float64, npol)

	for m := 0; m <= sensor.MMax; m++ {
		layerSolns := make([]*layerSolution, M)
		for i, l := range realLayers {
			ke := models[i].Ks() + models[i].Ka()
			phase, err := models[i].Phase(m, grid.Mu, npol)
			if err != nil {
				return nil, err
			}
			// mode 0 is always the (V,H) block; embed it in the npol layout
			// with a zero U row and column.
			if n2 := 2 * len(grid.Mu); npol > 2 && len(phase) == n2 {
				full := make([][]float64, npol*len(grid.Mu))
				for r := range full {
					full[r] = make([]float64, npol*len(grid.Mu))
				}
				for r := 0; r < n2; r++ {
					for c := 0; c < n2; c++ {
						full[npol*(r/2)+r%2][npol*(c/2)+c%2] = phase[r][c]
					}
				}
				phase = full
			}
			var sourceRHS []float64
			if sensor.ObsMode == snowpack.Passive && m == 0 {
				sourceRHS = make([]float64, npol*len(grid.Mu))
				ka := models[i].Ka()
				for si, mu := range grid.Mu {
					v := ka * l.TemperatureK / mu
					sourceRHS[npol*si+0] = v
					sourceRHS[npol*si+1] = v
				}
			}
			ls, err := solveLayer(grid.Mu, grid.W, npol, ke, l.ThicknessM, phase, sourceRHS)
			if err != nil {
				return nil, err
			}
			layerSolns[i] = ls
		}

		boundaries := make([]*boundaryOp, M+1)
		for b := 0; b <= M; b++ {
			epsA := eps[b]
			var epsB complex128
			substrateBoundary := b == M
			if substrateBoundary {
				epsB = epsSub
			} else {
				epsB = eps[b+1]
			}
			bm, err := computeBoundary(realIfaces[b], m, freq, epsA, epsB, muPos, npol, substrateBoundary)
			if err != nil {
				return nil, err
			}
			boundaries[b] = bm
		}

		// topBC is the downward radiance vector incident from above the top
		// interface: a Dirac spike at the μ_obs stream for the active radar
		// beam, or the uniform cosmic-background sky for passive mode (m=0
		// only, since a uniform sky has no higher Fourier components).
		var topBC []float64
		switch {
		case sensor.ObsMode == snowpack.Active:
			topBC = make([]float64, half)
			coeff := 1 / (2 * math.Pi)
			if m > 0 {
				coeff = 1 / math.Pi
			}
			obsBase := npol * grid.ObsIdx
			topBC[obsBase+txPol] = coeff
		case sensor.ObsMode == snowpack.Passive && m == 0:
			topBC = make([]float64, half)
			for i := 0; i < nHalf; i++ {
				topBC[npol*i+0] = cosmicBackgroundK
				topBC[npol*i+1] = cosmicBackgroundK
			}
		}

		var subEmission []float64
		if sensor.ObsMode == snowpack.Passive && m == 0 {
			absMat, err := substrate.AbsorptionMatrix(freq, eps[M], muPos, npol)
			if err != nil {
				return nil, err
			}
			ones := make([]float64, half)
			for i := range ones {
				ones[i] = 1
			}
			tsub := substrate.Temperature()
			subEmission = matVec(absMat, ones)
			for i := range subEmission {
				subEmission[i] *= tsub
			}
		}

		amplitudes, err := assembleAndSolve(layerSolns, boundaries, topBC, subEmission, half)
		if err != nil {
			return nil, err
		}

		modeVec := reconstructTop(layerSolns[0], boundaries[0], amplitudes[0], topBC, grid.ObsIdx, npol)

		for p := 0; p < npol; p++ {
			w := 1.0
			if m > 0 {
				if p == 2 {
					w = math.Sin(float64(m) * dPhi)
				} else {
					w = math.Cos(float64(m) * dPhi)
				}
			}
			result[p] += w * modeVec[p]
		}
	}

	maxAbs := 0.0
	for _, v := range result {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	tol := -radianceFloorRelTol * maxAbs
	for _, v := range result {
		if v < tol {
			return nil, xerr.New(xerr.NumericalInstability, "dort: reconstructed radiance %g is negative beyond tolerance", v)
		}
	}
	return &Result{I: result}, nil
}

// reconstructTop evaluates the top-of-stack layer's eigenmode expansion
// at z=0, transmits its up-going half out through the top boundary, and
// adds the direct specular reflection of any injected top beam.
func reconstructTop(ls *layerSolution, top *boundaryOp, amplitudes, topBC []float64, obsIdx, npol int) []float64 {
	cTop := amplitudes[:ls.ndown()]
	cBot := amplitudes[ls.ndown():]
	topT, topB := ls.topCoeffs()
	full := make([]float64, ls.n)
	for r := 0; r < ls.n; r++ {
		var sum float64
		for c, a := range cTop {
			sum += topT.At(r, c) * a
		}
		for c, a := range cBot {
			sum += topB.At(r, c) * a
		}
		full[r] = sum
	}
	if ls.source != nil {
		for r := range full {
			full[r] += ls.source[r]
		}
	}
	half := len(full) / 2
	upPart := full[:half]

	outUp := matVec(top.tBA, upPart)
	if topBC != nil {
		refl := matVec(top.rAB, topBC)
		for i := range outUp {
			outUp[i] += refl[i]
		}
	}
	base := npol * obsIdx
	return outUp[base : base+npol]
}
