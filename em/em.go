// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package em implements the electromagnetic (scattering/absorption)
// models of a layer: Improved Born Approximation (iba), its Polder-Van
// Santen mixing variant (iba_mm), the dense-medium short-range alias
// (dmrt_qcacp_shortrange) and the pure Rayleigh limit (rayleigh), all
// sharing the rotated-phase-matrix Fourier decomposition machinery and
// plugged in by name.
package em

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/xerr"
)

// Model is the electromagnetic model of one layer: effective permittivity,
// absorption/scattering coefficients and the Fourier-decomposed phase
// matrix at a given mode, stream set and polarization count.
type Model interface {
	// EpsEff returns the layer's effective permittivity.
	EpsEff() complex128

	// Ka returns the absorption coefficient [m⁻¹].
	Ka() float64

	// Ks returns the scattering coefficient [m⁻¹].
	Ks() float64

	// Phase returns the (npol·N)² Fourier-decomposed phase matrix for
	// mode m ≥ 1 on stream set mu. Mode 0 is always the (2·N)² (V,H)
	// matrix, whatever npol.
	Phase(m int, mu []float64, npol int) ([][]float64, error)
}

type allocator func(sensor *snowpack.Sensor, layer *snowpack.Layer) (Model, error)

var allocators = map[string]allocator{}

// Register adds a model factory to the registry. Called from each model
// file's init().
func Register(name string, alloc allocator) {
	if _, ok := allocators[name]; ok {
		chk.Panic("em: model %q registered twice", name)
	}
	allocators[name] = alloc
}

// New builds a named electromagnetic model for the given sensor/layer
// pair. All recognized names are enumerated at registration; unknown
// names fail early.
func New(name string, sensor *snowpack.Sensor, layer *snowpack.Layer) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, xerr.New(xerr.InputValidation, "em: unknown model %q", name)
	}
	return alloc(sensor, layer)
}
