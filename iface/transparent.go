// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iface

import "github.com/cpmech/gosl/fun"

func init() {
	Register("transparent", func() Operator { return new(Transparent) })
}

// Transparent is a no-op interface: zero reflection, unit transmission.
// Mainly useful for tests and for layers with no real boundary above.
type Transparent struct{}

func (t *Transparent) Init(prms fun.Prms) error { return nil }

func (t *Transparent) Reflection(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	return zeros(npol * len(mu)), nil
}

func (t *Transparent) Transmission(m int, frequencyHz float64, epsAbove, epsBelow complex128, mu []float64, npol int) ([][]float64, error) {
	return identity(npol * len(mu)), nil
}

func (t *Transparent) DiffuseReflection(m int, frequencyHz float64, epsAbove complex128, mu []float64, npol int) ([][]float64, error) {
	return nil, nil
}
