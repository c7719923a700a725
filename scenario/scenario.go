// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario is the top-level orchestration layer: it owns the
// external configuration surface (§6) and drives one solve from a
// snowpack/sensor pair to an aggregated result, fanning the independent
// per-layer EM-model construction out to a worker pool before the
// (necessarily sequential) DORT solve.
package scenario

import (
	"runtime"

	"github.com/alitto/pond"

	"github.com/cpmech/mwrt/em"
	"github.com/cpmech/mwrt/result"
	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/stream"
	"github.com/cpmech/mwrt/xerr"
)

// Options is the recognized external configuration surface (§6), beyond
// the snowpack/sensor pair themselves (their construction is out of
// scope, §1).
type Options struct {
	// NStreams is the total stream count, split evenly across
	// hemispheres, for the angular quadrature (§4.1).
	NStreams int

	// StreamScheme selects the quadrature scheme.
	StreamScheme stream.Scheme

	// GreyBodyCalibration is the T_phys multiplier applied to passive
	// radiance (§4.7); 0 selects result.DefaultGreyBodyCalibration.
	GreyBodyCalibration float64
}

// Solve validates every layer's EM model independently (fanned out to a
// worker pool sized to the host, §5), builds the angular stream grid,
// and aggregates the observable for sp/sensor per opts.
//
// The per-layer validation pass is intentionally redundant with the EM
// models dort.Solve rebuilds internally: it exists to surface
// per-layer construction errors up front, in parallel, rather than
// serially inside the (sequential) solve; EM-model construction itself
// is pure and cheap relative to the per-mode phase-matrix evaluation it
// performs lazily, so the duplication costs little.
func Solve(sp *snowpack.Snowpack, sensor *snowpack.Sensor, opts Options) (*result.Result, error) {
	if err := validateLayersParallel(sp, sensor); err != nil {
		return nil, err
	}

	tPhys := opts.GreyBodyCalibration
	if tPhys == 0 {
		tPhys = result.DefaultGreyBodyCalibration
	}

	grid, err := stream.New(stream.Options{
		N:      opts.NStreams,
		Scheme: opts.StreamScheme,
		MuObs:  sensor.MuObs(),
		MMax:   sensor.MMax,
		NPol:   sensor.NPol(),
	})
	if err != nil {
		return nil, err
	}

	return result.Aggregate(sp, sensor, grid, tPhys)
}

// validateLayersParallel builds (and discards) the named EM model for
// every finite-thickness layer, concurrently, returning the first error
// encountered.
func validateLayersParallel(sp *snowpack.Snowpack, sensor *snowpack.Sensor) error {
	n := runtime.NumCPU()
	pool := pond.New(n, 0, pond.MinWorkers(n))
	defer pool.StopAndWait()

	errs := make([]error, len(sp.Layers))
	for i, l := range sp.Layers {
		i, l := i, l
		pool.Submit(func() {
			_, err := em.New(l.EMModel, sensor, l)
			errs[i] = err
		})
	}
	pool.StopAndWait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// namedScenarioError reports an unknown reference-scenario name, as
// returned by Reference, as an InputValidation error.
func namedScenarioError(name string) error {
	return xerr.New(xerr.InputValidation, "scenario: unknown reference scenario %q", name)
}
