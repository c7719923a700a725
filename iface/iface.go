// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iface implements interface operators: reflection, transmission
// and (optionally) diffuse reflection at a layer boundary, per azimuthal
// Fourier mode. Matrices are dense, real-valued Mueller-type blocks
// allocated with gosl's la.MatAlloc ([][]float64), diagonal for
// specular/flat interfaces.
package iface

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/mwrt/xerr"
)

// Operator is the three-method interface contract. All methods must be
// linear in incoming radiance; mu holds the positive
// (upward) stream cosines shared by both hemispheres.
type Operator interface {
	// Init configures the operator from named parameters.
	Init(prms fun.Prms) error

	// Reflection returns the specular reflection matrix for mode m,
	// sized (npol·len(mu))². Diagonal for flat/specular interfaces.
	// epsBelow is ignored by operators whose reflectivity is prescribed
	// rather than derived from a second medium (Reflector, Transparent).
	Reflection(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error)

	// Transmission returns the coherent transmission matrix for mode m.
	Transmission(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error)

	// DiffuseReflection returns the diffuse (rough/backscatter) reflection
	// matrix for mode m, or nil if the interface has none.
	DiffuseReflection(m int, frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error)
}

// Substrate extends Operator with the thermal-emission properties needed
// at the bottom boundary.
type Substrate interface {
	Operator

	// AbsorptionMatrix returns 1 − R − T (diagonal) for energy closure.
	AbsorptionMatrix(frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error)

	// Permittivity returns the substrate's own permittivity at frequencyHz,
	// needed by rough-surface corrections (e.g. Wegmüller).
	Permittivity(frequencyHz float64) (complex128, error)

	// Temperature returns the physical temperature [K] driving thermal
	// emission at the substrate.
	Temperature() float64
}

var allocators = map[string]func() Operator{}

// Register adds an operator factory to the registry.
func Register(name string, alloc func() Operator) {
	if _, ok := allocators[name]; ok {
		chk.Panic("iface: operator %q registered twice", name)
	}
	allocators[name] = alloc
}

// New builds and initialises a named interface operator.
func New(name string, prms fun.Prms) (Operator, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, xerr.New(xerr.InputValidation, "iface: unknown operator %q", name)
	}
	op := alloc()
	if err := op.Init(prms); err != nil {
		return nil, err
	}
	return op, nil
}

// diag builds a diagonal (n×n) matrix from a value slice.
func diag(v []float64) [][]float64 {
	n := len(v)
	m := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = v[i]
	}
	return m
}

// identity builds an n×n identity matrix.
func identity(n int) [][]float64 {
	m := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// zeros builds an n×n zero matrix.
func zeros(n int) [][]float64 {
	return la.MatAlloc(n, n)
}
