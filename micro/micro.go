// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package micro implements microstructure providers: pure mappings
// k → ĉ(k), the Fourier transform of the layer's autocorrelation
// function, vectorized over arbitrary k.
package micro

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/xerr"
)

// Provider exposes the Fourier transform of the microstructure
// autocorrelation function.
type Provider interface {
	Init(prms fun.Prms) error

	// FTAutocorrelation returns ĉ(k) for every k, shape-preserving,
	// non-negative, monotonically decaying to 0 as k→∞.
	FTAutocorrelation(k []float64) ([]float64, error)
}

var allocators = map[string]func() Provider{}

// Register adds a provider factory to the registry.
func Register(name string, alloc func() Provider) {
	if _, ok := allocators[name]; ok {
		chk.Panic("micro: provider %q registered twice", name)
	}
	allocators[name] = alloc
}

// New builds and initialises a named microstructure provider.
func New(name string, prms fun.Prms) (Provider, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, xerr.New(xerr.MicrostructureUndefined, "micro: unknown provider %q", name)
	}
	p := alloc()
	if err := p.Init(prms); err != nil {
		return nil, err
	}
	return p, nil
}

func clampNonNegative(v []float64) []float64 {
	for i := range v {
		if v[i] < 0 || math.IsNaN(v[i]) {
			v[i] = 0
		}
	}
	return v
}
