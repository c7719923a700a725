// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dort

import (
	"gonum.org/v1/gonum/mat"
)

// expand repeats each stream-level value npol times, producing the
// per-(stream,polarization) vector that indexes the discrete-ordinate
// operator and its eigensystem.
func expand(v []float64, npol int) []float64 {
	out := make([]float64, len(v)*npol)
	for i, x := range v {
		for p := 0; p < npol; p++ {
			out[i*npol+p] = x
		}
	}
	return out
}

// buildOperator assembles the per-mode discrete-ordinate operator
//
//	L_m[i][j] = δ_ij·(k_e/|μ_i|) − (w_j/|μ_i|)·P_m[i][j]
//
// the row-divided, column-weighted form of μ_i dI_i/dz = -k_e·I_i +
// Σ_j w_j·P_m(μ_i,μ_j)·I_j (weights apply to the source/column direction
// of the quadrature sum, not the observation/row direction), so that the
// hemispheric-integral energy-conservation invariant holds.
func buildOperator(mu, w []float64, npol int, ke float64, phase [][]float64) *mat.Dense {
	muE := expand(mu, npol)
	wE := expand(w, npol)
	n := len(muE)
	L := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		invMu := 1 / absf(muE[i])
		for j := 0; j < n; j++ {
			v := -invMu * wE[j] * phase[i][j]
			if i == j {
				v += ke * invMu
			}
			L.Set(i, j, v)
		}
	}
	return L
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
