// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package perm implements permittivity providers: pure mappings
// (frequency, temperature [, extras]) → ε ∈ ℂ, plugged in by name. The
// registry idiom mirrors gofem's mreten/msolid model factories.
package perm

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/xerr"
)

// Provider is a pure, thread-safe permittivity model.
type Provider interface {
	// Init configures the provider from named parameters (named "extras").
	Init(prms fun.Prms) error

	// Eps returns the complex relative permittivity at the given
	// frequency [Hz] and temperature [K].
	Eps(frequencyHz, temperatureK float64) (complex128, error)
}

var allocators = map[string]func() Provider{}

// Register adds a new provider factory to the registry. Called from each
// model file's init().
func Register(name string, alloc func() Provider) {
	if _, ok := allocators[name]; ok {
		chk.Panic("perm: provider %q registered twice", name)
	}
	allocators[name] = alloc
}

// New builds and initialises a named provider.
func New(name string, prms fun.Prms) (Provider, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, xerr.New(xerr.InputValidation, "perm: unknown provider %q", name)
	}
	p := alloc()
	if err := p.Init(prms); err != nil {
		return nil, err
	}
	return p, nil
}

// checkPhysical enforces Re(ε) ≥ 1, Im(ε) ≥ 0
func checkPhysical(eps complex128) error {
	if real(eps) < 1 {
		return xerr.New(xerr.PhysicalValueOutOfRange, "Re(ε)=%g must be ≥ 1", real(eps))
	}
	if imag(eps) < 0 {
		return xerr.New(xerr.PhysicalValueOutOfRange, "Im(ε)=%g must be ≥ 0", imag(eps))
	}
	if cmplx.IsNaN(eps) {
		return xerr.New(xerr.PhysicalValueOutOfRange, "ε is NaN")
	}
	return nil
}

// Constant wraps a fixed complex value as a Provider: a scalar is
// accepted directly as a constant provider.
type Constant struct {
	eps complex128
}

func init() {
	Register("constant", func() Provider { return &Constant{} })
}

// NewConstant builds a Constant provider directly, without going through
// the named registry (used when callers already hold a literal ε).
func NewConstant(eps complex128) (Provider, error) {
	if err := checkPhysical(eps); err != nil {
		return nil, err
	}
	return &Constant{eps: eps}, nil
}

// Init reads "re" and "im" parameters (both default 0).
func (p *Constant) Init(prms fun.Prms) error {
	var re, im float64
	for _, prm := range prms {
		switch prm.N {
		case "re":
			re = prm.V
		case "im":
			im = prm.V
		default:
			return xerr.New(xerr.InputValidation, "perm.Constant: unknown parameter %q", prm.N)
		}
	}
	eps := complex(re, im)
	if err := checkPhysical(eps); err != nil {
		return err
	}
	p.eps = eps
	return nil
}

func (p *Constant) Eps(frequencyHz, temperatureK float64) (complex128, error) {
	return p.eps, nil
}
