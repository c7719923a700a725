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
	Register("dobson85", func() Provider { return new(Dobson85) })
	Register("hut", func() Provider { return new(HUT) })
}

// Dobson85 implements the Dobson et al. (1985) semi-empirical soil
// dielectric mixing model, as carried by HUTnlayer/DMRTML and reproduced
// here per the original source.
type Dobson85 struct {
	moisture, sand, clay float64
}

// Init reads "moisture", "sand", "clay" (volumetric/relative fractions).
func (d *Dobson85) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "moisture":
			d.moisture = p.V
		case "sand":
			d.sand = p.V
		case "clay":
			d.clay = p.V
		default:
			return xerr.New(xerr.InputValidation, "perm.Dobson85: unknown parameter %q", p.N)
		}
	}
	if d.moisture <= 0 {
		return xerr.New(xerr.InputValidation, "perm.Dobson85: moisture must be > 0")
	}
	return nil
}

func (d *Dobson85) Eps(frequencyHz, tempK float64) (complex128, error) {
	const (
		e0    = 8.854e12 // carried as-is from the original source's constant
		ewInf = 4.9
		es    = 4.7
		rhoB  = 1.3
		rhoS  = 2.664
	)
	temp := tempK - 273.15
	S, C, SM := d.sand, d.clay, d.moisture

	beta1 := 1.2748 - 0.519*S - 0.152*C
	beta2 := 1.33797 - 0.603*S - 0.166*C
	sigmaEff := 0.0467 + 0.2204*rhoB - 0.4111*S + 0.6614*C

	ew0 := 87.134 - 1.949e-1*temp - 1.276e-2*temp*temp + 2.491e-4*temp*temp*temp
	rtw := (1.1109e-10 - 3.824e-12*temp + 6.938e-14*temp*temp - 5.096e-16*temp*temp*temp) / (2 * math.Pi)

	denom := 1 + math.Pow(2*math.Pi*frequencyHz*rtw, 2)
	efw1 := ewInf + (ew0-ewInf)/denom
	efw2 := 2*math.Pi*frequencyHz*rtw*(ew0-ewInf)/denom + sigmaEff*(rhoS-rhoB)/(2*math.Pi*frequencyHz*e0*rhoS*SM)

	re := math.Pow(1+(rhoB/rhoS)*(math.Pow(es, 0.65)-1)+math.Pow(SM, beta1)*math.Pow(efw1, 0.65)-SM, 1/0.65)
	im := math.Pow(math.Pow(SM, beta2)*math.Pow(efw2, 0.65), 1/0.65)

	eps := complex(re, im)
	if err := checkPhysical(eps); err != nil {
		return 0, err
	}
	return eps, nil
}

// HUT implements the HUT soil dielectric model (Pulliainen et al. 1999),
// as reproduced in the original source's soil_dielectric_constant_hut.
type HUT struct {
	moisture, sand, clay, dryMatterRho float64
}

// Init reads "moisture", "sand", "clay", "drymatter" (kg/m³, SI).
func (h *HUT) Init(prms fun.Prms) error {
	for _, p := range prms {
		switch p.N {
		case "moisture":
			h.moisture = p.V
		case "sand":
			h.sand = p.V
		case "clay":
			h.clay = p.V
		case "drymatter":
			h.dryMatterRho = p.V
		default:
			return xerr.New(xerr.InputValidation, "perm.HUT: unknown parameter %q", p.N)
		}
	}
	if h.moisture <= 0 {
		return xerr.New(xerr.InputValidation, "perm.HUT: moisture must be > 0")
	}
	return nil
}

func (h *HUT) Eps(frequencyHz, tempK float64) (complex128, error) {
	const ewInf = 4.9
	tempC := tempK - 273.15
	if tempC <= 0 {
		return 0, xerr.New(xerr.InputValidation, "perm.HUT: frozen soil (T=%gK) is not implemented", tempK)
	}
	ew0 := 87.74 - 0.40008*tempC + 9.398e-4*tempC*tempC + 1.410e-6*tempC*tempC*tempC
	tw := 1 / (2 * math.Pi) * (1.1109e-10 - 3.824e-12*tempC + 6.938e-14*tempC*tempC - 5.096e-16*tempC*tempC*tempC)

	denom := 1 + math.Pow(2*math.Pi*frequencyHz*tw, 2)
	ewR := ewInf + (ew0-ewInf)/denom
	ewI := (ew0 - ewInf) * 2 * math.Pi * frequencyHz * tw / denom

	beta := 1.09 - 0.11*h.sand + 0.18*h.clay
	ew := complex(ewR, ewI)
	epsalf := complex(1+0.65*h.dryMatterRho/1000.0, 0) + complex(math.Pow(h.moisture, beta), 0)*(cpow065(ew)-1)

	eps := cpow(epsalf, 1/0.65)
	if err := checkPhysical(eps); err != nil {
		return 0, err
	}
	return eps, nil
}
