// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

// rombergIntegrate integrates f over [a,b] by Romberg's method on
// 2^maxRow+1 trapezoid samples. gosl's num package has no Romberg
// primitive (only QuadGs/DerivCen), so this is hand-rolled directly from
// the classical Richardson-extrapolated trapezoid recursion.
func rombergIntegrate(f func(x float64) float64, a, b float64, maxRow int) float64 {
	r := make([][]float64, maxRow+1)
	for i := range r {
		r[i] = make([]float64, maxRow+1)
	}
	h := b - a
	r[0][0] = 0.5 * h * (f(a) + f(b))
	for i := 1; i <= maxRow; i++ {
		h /= 2
		var sum float64
		n := 1 << uint(i-1)
		for k := 0; k < n; k++ {
			sum += f(a + h*float64(2*k+1))
		}
		r[i][0] = 0.5*r[i-1][0] + h*sum
		pow4 := 1.0
		for j := 1; j <= i; j++ {
			pow4 *= 4
			r[i][j] = r[i][j-1] + (r[i][j-1]-r[i-1][j-1])/(pow4-1)
		}
	}
	return r[maxRow][maxRow]
}
