// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package result aggregates a solved radiance into the observable a
// sensor actually reports: brightness temperature for a passive sensor,
// normalized radar backscatter cross-sections for an active one.
package result

import (
	"math"

	"github.com/cpmech/mwrt/dort"
	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/stream"
	"github.com/cpmech/mwrt/xerr"
)

// DefaultGreyBodyCalibration is the T_phys multiplier applied to passive
// radiance when the caller has no site-specific calibration constant;
// dort.Solve already reports temperature-valued intensities, so 1
// reproduces them unchanged.
const DefaultGreyBodyCalibration = 1.0

// Result is the aggregated observable. Passive sensors populate TbV/TbH;
// active sensors populate the four backscatter terms.
type Result struct {
	Passive bool
	TbV     float64
	TbH     float64

	SigmaVV float64
	SigmaHH float64
	SigmaHV float64
	SigmaVH float64
}

// Aggregate solves sp/sensor on grid and reduces the result per §4.7:
// Tb_p = tPhys·I_p for a passive sensor, σ°_pq = 4π·μ_obs·I_pq for an
// active one. An active solve runs twice internally (V- and H-polarized
// incident beam) to recover all four σ°_pq terms.
func Aggregate(sp *snowpack.Snowpack, sensor *snowpack.Sensor, grid *stream.Grid, tPhys float64) (*Result, error) {
	switch sensor.ObsMode {
	case snowpack.Passive:
		rad, err := dort.Solve(sp, sensor, grid)
		if err != nil {
			return nil, err
		}
		return &Result{
			Passive: true,
			TbV:     tPhys * rad.I[0],
			TbH:     tPhys * rad.I[1],
		}, nil

	case snowpack.Active:
		vTx, err := dort.Solve(sp, sensor, grid)
		if err != nil {
			return nil, err
		}
		hTx, err := dort.SolveActiveH(sp, sensor, grid)
		if err != nil {
			return nil, err
		}
		scale := 4 * math.Pi * sensor.MuObs()
		return &Result{
			SigmaVV: scale * vTx.I[0],
			SigmaHV: scale * vTx.I[1],
			SigmaVH: scale * hTx.I[0],
			SigmaHH: scale * hTx.I[1],
		}, nil

	default:
		return nil, xerr.New(xerr.UnsupportedMode, "result: unknown sensor mode %d", int(sensor.ObsMode))
	}
}
