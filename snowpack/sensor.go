// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snowpack holds the plain data model shared by the EM model and
// the solver: the Sensor observing geometry, Layer stack and interface
// list of a Snowpack, validated once at construction.
package snowpack

import (
	"math"

	"github.com/cpmech/mwrt/xerr"
)

// Mode selects passive (radiometric) or active (radar) observation.
type Mode int

const (
	Passive Mode = iota
	Active
)

func (m Mode) String() string {
	if m == Active {
		return "active"
	}
	return "passive"
}

// Sensor describes the observing geometry and mode. Passive observation
// carries two polarizations (V, H) and needs only the azimuthally
// symmetric Fourier mode (m_max=0); active observation carries three
// (V, H, U) and needs m_max ≥ 2 to resolve the azimuthal backscatter
// dependence.
type Sensor struct {
	FrequencyHz float64
	ObsMode     Mode
	ThetaIncRad float64
	AzimuthRad  float64
	MMax        int
}

// NewSensor validates and builds a Sensor. azimuthRad is ignored for
// Passive (azimuthal symmetry), required-ish but unchecked for Active
// (0 is a valid principal-plane azimuth).
func NewSensor(frequencyHz float64, mode Mode, thetaIncRad, azimuthRad float64, mMax int) (*Sensor, error) {
	if frequencyHz <= 0 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Sensor: frequency must be > 0 Hz, got %g", frequencyHz)
	}
	if thetaIncRad <= 0 || thetaIncRad >= math.Pi/2 {
		return nil, xerr.New(xerr.InputValidation, "snowpack.Sensor: incidence angle must be in (0, π/2), got %g", thetaIncRad)
	}
	switch mode {
	case Passive:
		if mMax != 0 {
			return nil, xerr.New(xerr.InputValidation, "snowpack.Sensor: passive mode requires m_max=0, got %d", mMax)
		}
	case Active:
		if mMax < 2 {
			return nil, xerr.New(xerr.InputValidation, "snowpack.Sensor: active mode requires m_max≥2, got %d", mMax)
		}
	default:
		return nil, xerr.New(xerr.UnsupportedMode, "snowpack.Sensor: unknown mode %d", int(mode))
	}
	return &Sensor{
		FrequencyHz: frequencyHz,
		ObsMode:     mode,
		ThetaIncRad: thetaIncRad,
		AzimuthRad:  azimuthRad,
		MMax:        mMax,
	}, nil
}

// NPol returns the number of Stokes components carried by this sensor's
// mode: 2 (V,H) for passive, 3 (V,H,U) for active.
func (s *Sensor) NPol() int {
	if s.ObsMode == Active {
		return 3
	}
	return 2
}

// MuObs is the cosine of the incidence angle, the stream direction that
// must be present (exactly) in the angular grid.
func (s *Sensor) MuObs() float64 {
	return math.Cos(s.ThetaIncRad)
}
