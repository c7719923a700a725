// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mwrt runs the named reference scenarios (S5, S6) and reports
// the aggregated observable.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/mwrt/scenario"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	app := &cli.App{
		Name:  "mwrt",
		Usage: "microwave layered-medium radiative transfer",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "solve a named reference scenario",
				ArgsUsage: "<S5|S6>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "streams", Value: 0, Usage: "override the stream count (0 keeps the scenario default)"},
				},
				Action: runScenario,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func runScenario(cCtx *cli.Context) error {
	name := cCtx.Args().First()
	if name == "" {
		return cli.Exit("missing reference scenario name (S5 or S6)", 1)
	}

	sp, sensor, opts, err := scenario.Reference(name)
	if err != nil {
		return err
	}
	if n := cCtx.Int("streams"); n > 0 {
		opts.NStreams = n
	}

	res, err := scenario.Solve(sp, sensor, opts)
	if err != nil {
		return err
	}

	io.PfWhite("\nmwrt -- reference scenario %s\n\n", name)
	if res.Passive {
		io.Pf("Tb_V = %.2f K\n", res.TbV)
		io.Pf("Tb_H = %.2f K\n", res.TbH)
	} else {
		io.Pf("sigma_VV = %.4f\n", res.SigmaVV)
		io.Pf("sigma_HH = %.4f\n", res.SigmaHH)
		io.Pf("sigma_HV = %.4f\n", res.SigmaHV)
		io.Pf("sigma_VH = %.4f\n", res.SigmaVH)
	}
	return nil
}
