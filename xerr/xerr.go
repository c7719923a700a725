// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xerr defines the error taxonomy shared by snowpack, em, iface,
// and dort: a small set of named failure kinds that callers can test for
// with Is, instead of matching on message text.
package xerr

import (
	"github.com/cpmech/gosl/io"
)

// Kind identifies why a construction or solve failed.
type Kind int

const (
	// InputValidation: negative thickness, φ ∉ [0,1], unknown model name.
	InputValidation Kind = iota

	// PhysicalValueOutOfRange: non-physical permittivity or negative k_s.
	PhysicalValueOutOfRange

	// MicrostructureUndefined: provider lacks a Fourier transform.
	MicrostructureUndefined

	// InvalidStreamGeometry: μ=1 with npol=3 and m≥2.
	InvalidStreamGeometry

	// UnsupportedMode: e.g. Wegmüller soil under an active sensor.
	UnsupportedMode

	// SolverDegenerate: singular boundary-value system.
	SolverDegenerate

	// NumericalInstability: negative radiance or non-conservation beyond
	// tolerance.
	NumericalInstability
)

func (k Kind) String() string {
	switch k {
	case InputValidation:
		return "InputValidation"
	case PhysicalValueOutOfRange:
		return "PhysicalValueOutOfRange"
	case MicrostructureUndefined:
		return "MicrostructureUndefined"
	case InvalidStreamGeometry:
		return "InvalidStreamGeometry"
	case UnsupportedMode:
		return "UnsupportedMode"
	case SolverDegenerate:
		return "SolverDegenerate"
	case NumericalInstability:
		return "NumericalInstability"
	}
	return "Unknown"
}

// Error is the concrete error type carrying a Kind.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// New builds an *Error with a formatted message, in the style of gosl's
// chk.Err.
func New(kind Kind, msg string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: io.Sf(msg, args...)}
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
