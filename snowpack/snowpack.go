// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowpack

import (
	"github.com/cpmech/mwrt/iface"
	"github.com/cpmech/mwrt/xerr"
)

// Snowpack is the ordered layer stack and its bounding/inter-layer
// interfaces, top to bottom.
type Snowpack struct {
	Layers     []*Layer
	Interfaces []iface.Operator
}

// New validates and assembles a Snowpack. interfaces must have exactly
// len(layers)+1 entries (top boundary, n_layers-1 inter-layer boundaries,
// substrate at the bottom); the last entry must implement iface.Substrate.
// Only the top layer may be semi-infinite.
func New(layers []*Layer, interfaces []iface.Operator) (*Snowpack, error) {
	if len(layers) == 0 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.New: at least one layer is required")
	}
	if len(interfaces) != len(layers)+1 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.New: expected %d interfaces for %d layers, got %d", len(layers)+1, len(layers), len(interfaces))
	}
	for i, l := range layers {
		if l.IsSemiInfinite() && i != 0 {
			return nil, xerr.New(xerr.InputValidation, "snowpack.New: only the top layer (index 0) may be semi-infinite, found at index %d", i)
		}
	}
	if _, ok := interfaces[len(interfaces)-1].(iface.Substrate); !ok {
		return nil, xerr.New(xerr.InputValidation, "snowpack.New: bottom interface must be a Substrate")
	}
	for i, op := range interfaces {
		if op == nil {
			return nil, xerr.New(xerr.InputValidation, "snowpack.New: interface at index %d is nil", i)
		}
	}
	return &Snowpack{Layers: layers, Interfaces: interfaces}, nil
}

// NLayers returns the number of layers in the stack.
func (s *Snowpack) NLayers() int { return len(s.Layers) }

// Substrate returns the bottom interface, already asserted to implement
// iface.Substrate by New.
func (s *Snowpack) Substrate() iface.Substrate {
	return s.Interfaces[len(s.Interfaces)-1].(iface.Substrate)
}
