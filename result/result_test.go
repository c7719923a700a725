// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package result

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mwrt/iface"
	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/perm"
	"github.com/cpmech/mwrt/snowpack"
	"github.com/cpmech/mwrt/stream"
)

func buildLayer(tst *testing.T, thicknessM, temperatureK float64) *snowpack.Layer {
	ms, err := micro.New("exponential", fun.Prms{&fun.Prm{N: "corr_length", V: 0.3e-3}, &fun.Prm{N: "frac_volume", V: 300.0 / 917.0}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	air, err := perm.NewConstant(complex(1, 0))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	ice, err := perm.New("matzler87", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	l, err := snowpack.NewLayer(thicknessM, temperatureK, 300.0/917.0, ms, air, ice, "iba")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return l
}

func TestAggregatePassiveReportsBoundedBrightnessTemperature(tst *testing.T) {
	chk.PrintTitle("result.Aggregate, passive sensor, Tb within a physical range")
	layer := buildLayer(tst, 0.5, 260)
	top, err := iface.New("transparent", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sub, err := iface.New("reflector", fun.Prms{
		&fun.Prm{N: "temperature", V: 270},
		&fun.Prm{N: "specular_reflection", V: 0.3},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sp, err := snowpack.New([]*snowpack.Layer{layer}, []iface.Operator{top, sub})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sensor, err := snowpack.NewSensor(36.5e9, snowpack.Passive, math.Pi/4, 0, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	grid, err := stream.New(stream.Options{N: 8, Scheme: stream.Gauss, MuObs: sensor.MuObs(), MMax: 0, NPol: sensor.NPol()})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	res, err := Aggregate(sp, sensor, grid, DefaultGreyBodyCalibration)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !res.Passive {
		tst.Fatalf("expected Passive result")
	}
	for name, v := range map[string]float64{"TbV": res.TbV, "TbH": res.TbH} {
		if v <= 0 || v > 400 {
			tst.Fatalf("%s=%g out of a generous physical range", name, v)
		}
	}
}

func TestAggregateActiveReportsAllFourBackscatterTerms(tst *testing.T) {
	chk.PrintTitle("result.Aggregate, active sensor, all four σ°_pq terms finite and non-negative")
	layer := buildLayer(tst, 0.5, 260)
	top, err := iface.New("transparent", nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sub, err := iface.New("reflector", fun.Prms{
		&fun.Prm{N: "temperature", V: 270},
		&fun.Prm{N: "specular_reflection", V: 0.3},
	})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sp, err := snowpack.New([]*snowpack.Layer{layer}, []iface.Operator{top, sub})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	sensor, err := snowpack.NewSensor(13.6e9, snowpack.Active, math.Pi/6, 0, 3)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	grid, err := stream.New(stream.Options{N: 8, Scheme: stream.Gauss, MuObs: sensor.MuObs(), MMax: sensor.MMax, NPol: sensor.NPol()})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	res, err := Aggregate(sp, sensor, grid, DefaultGreyBodyCalibration)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for name, v := range map[string]float64{
		"SigmaVV": res.SigmaVV, "SigmaHH": res.SigmaHH,
		"SigmaHV": res.SigmaHV, "SigmaVH": res.SigmaVH,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Fatalf("%s is not finite: %g", name, v)
		}
		if v < -1e-9 {
			tst.Fatalf("%s is negative: %g", name, v)
		}
	}
}
