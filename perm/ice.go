// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/xerr"
)

func init() {
	Register("matzler87", func() Provider { return new(Matzler87) })
	Register("hut_ice", func() Provider { return new(HUTIce) })
	Register("dmrtml", func() Provider { return new(DMRTML) })
	Register("memls", func() Provider { return new(MEMLS) })
}

// iceEpsReal is the real part of ice permittivity shared by all ice
// providers (Mätzler 1998): temperature-dependent, frequency-independent
// in the microwave range.
func iceEpsReal(tempK float64) float64 {
	return 3.1884 + 9.1e-4*(tempK-273)
}

// iceEpsImagMatzler87 is the Mätzler & Hufford imaginary-part model
// (Mätzler 2006, "Thermal Microwave Radiation", ch. on ice): alpha/f
// carries the low-frequency relaxation tail, beta*f the Debye loss peak.
func iceEpsImagMatzler87(frequencyHz, tempK float64) float64 {
	fGHz := frequencyHz / 1e9
	theta := 300/tempK - 1
	alpha := (0.00504 + 0.0062*theta) * math.Exp(-22.1*theta)
	debyeRatio := math.Exp(335 / tempK)
	beta := 0.0207/tempK*debyeRatio/math.Pow(debyeRatio-1, 2) +
		1.16e-11*fGHz*fGHz +
		math.Exp(-9.963+0.0372*(tempK-273.16))
	return alpha/fGHz + beta*fGHz
}

// noParams rejects any parameter (these ice models take none).
func noParams(modelName string, prms fun.Prms) error {
	if len(prms) > 0 {
		return xerr.New(xerr.InputValidation, "perm.%s: takes no parameters", modelName)
	}
	return nil
}

// Matzler87 is the Mätzler (1987)/Hufford ice permittivity model.
type Matzler87 struct{}

func (m *Matzler87) Init(prms fun.Prms) error { return noParams("Matzler87", prms) }

func (m *Matzler87) Eps(frequencyHz, tempK float64) (complex128, error) {
	eps := complex(iceEpsReal(tempK), iceEpsImagMatzler87(frequencyHz, tempK))
	if err := checkPhysical(eps); err != nil {
		return 0, err
	}
	return eps, nil
}

// HUTIce is the ice permittivity model as reproduced in HUTnlayer; it
// shares the Mätzler real part but a slightly different imaginary-part
// scaling, matching the original source's _ice_permittivity_HUT.
type HUTIce struct{}

func (h *HUTIce) Init(prms fun.Prms) error { return noParams("HUTIce", prms) }

func (h *HUTIce) Eps(frequencyHz, tempK float64) (complex128, error) {
	eps := complex(iceEpsReal(tempK), 0.9745*iceEpsImagMatzler87(frequencyHz, tempK))
	if err := checkPhysical(eps); err != nil {
		return 0, err
	}
	return eps, nil
}

// DMRTML is the ice permittivity model as reproduced in DMRTML; shares the
// Mätzler real and imaginary parts with a small correction factor.
type DMRTML struct{}

func (d *DMRTML) Init(prms fun.Prms) error { return noParams("DMRTML", prms) }

func (d *DMRTML) Eps(frequencyHz, tempK float64) (complex128, error) {
	eps := complex(iceEpsReal(tempK), 0.9978*iceEpsImagMatzler87(frequencyHz, tempK))
	if err := checkPhysical(eps); err != nil {
		return 0, err
	}
	return eps, nil
}

// MEMLS is the ice permittivity model as reproduced in MEMLS; it adds an
// optional salinity correction (ppt) to the imaginary part.
type MEMLS struct {
	salinityPPT float64
}

func (m *MEMLS) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "salinity":
			m.salinityPPT = p.V
		default:
			return xerr.New(xerr.InputValidation, "perm.MEMLS: unknown parameter %q", p.N)
		}
	}
	return nil
}

func (m *MEMLS) Eps(frequencyHz, tempK float64) (complex128, error) {
	im := iceEpsImagMatzler87(frequencyHz, tempK)
	if m.salinityPPT > 0 {
		// salinity adds a conductive loss term, dominant over the pure-ice
		// term for even modest salinity (brine pockets in sea/saline ice).
		fGHz := frequencyHz / 1e9
		im += m.salinityPPT / (13 * fGHz)
	}
	eps := complex(iceEpsReal(tempK), im)
	if err := checkPhysical(eps); err != nil {
		return 0, err
	}
	return eps, nil
}
