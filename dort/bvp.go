// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dort

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/mwrt/iface"
	"github.com/cpmech/mwrt/xerr"
)

// boundaryOp holds the four half×half coupling matrices at one interface:
// rAB/tAB reflect/transmit radiance incident from above, rBA/tBA reflect/
// transmit radiance incident from below. The bottom (substrate) boundary
// only reflects from above; tAB, rBA, tBA are nil there.
type boundaryOp struct {
	rAB, tAB, rBA, tBA [][]float64
}

// computeBoundary evaluates an interface operator's four directional
// matrices for mode m between epsAbove and epsBelow, adding any diffuse
// (rough-surface) reflection to the above-side reflectivity only, per the
// single-sided roughness convention of Reflector/Wegmuller.
func computeBoundary(op iface.Operator, m int, freqHz float64, epsAbove, epsBelow complex128, muPos []float64, npol int, substrate bool) (*boundaryOp, error) {
	rAB, err := op.Reflection(m, freqHz, epsAbove, epsBelow, muPos, npol)
	if err != nil {
		return nil, err
	}
	diffuse, err := op.DiffuseReflection(m, freqHz, epsAbove, muPos, npol)
	if err != nil {
		return nil, err
	}
	if diffuse != nil {
		for i := range rAB {
			for j := range rAB[i] {
				rAB[i][j] += diffuse[i][j]
			}
		}
	}
	b := &boundaryOp{rAB: rAB}
	if substrate {
		return b, nil
	}
	if b.tAB, err = op.Transmission(m, freqHz, epsAbove, epsBelow, muPos, npol); err != nil {
		return nil, err
	}
	if b.rBA, err = op.Reflection(m, freqHz, epsBelow, epsAbove, muPos, npol); err != nil {
		return nil, err
	}
	if b.tBA, err = op.Transmission(m, freqHz, epsBelow, epsAbove, muPos, npol); err != nil {
		return nil, err
	}
	return b, nil
}

func sliceRows(src *mat.Dense, r0, r1 int) *mat.Dense {
	rows := r1 - r0
	_, cols := src.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, src.At(r0+i, j))
		}
	}
	return out
}

// matMulDenseSlice computes m (rows×half) · d (half×cols) for a plain
// [][]float64 operator matrix m, returning a *mat.Dense.
func matMulDenseSlice(m [][]float64, d *mat.Dense) *mat.Dense {
	rows := len(m)
	_, cols := d.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum float64
			for k := range m[i] {
				sum += m[i][k] * d.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

func matVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i := range m {
		var sum float64
		for j, x := range v {
			sum += m[i][j] * x
		}
		out[i] = sum
	}
	return out
}

func addInto(dst *mat.Dense, rowOff, colOff int, src *mat.Dense, scale float64) {
	rows, cols := src.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(rowOff+i, colOff+j, dst.At(rowOff+i, colOff+j)+scale*src.At(i, j))
		}
	}
}

// assembleAndSolve builds and solves the global boundary-value system for
// one azimuthal mode, returning the per-layer (c_top, c_bottom) amplitude
// split as a flat slice per layer.
//
// Unknown layout per layer l: [c_top_l (ndown_l) | c_bottom_l (nup_l)].
// Equation layout per boundary: one half-sized "downward continuity" row
// block per layer top (coupled to the layer above or the top boundary
// condition), and one half-sized "upward continuity" row block per layer
// bottom (coupled to the layer below or the substrate).
func assembleAndSolve(layers []*layerSolution, boundaries []*boundaryOp, topBC, substrateEmission []float64, half int) ([][]float64, error) {
	M := len(layers)
	sizes := make([]int, M)
	offsets := make([]int, M+1)
	for l, ls := range layers {
		sizes[l] = ls.n
		offsets[l+1] = offsets[l] + ls.n
	}
	total := offsets[M]
	A := mat.NewDense(total, total, nil)
	rhs := make([]float64, total)

	// row block base offsets: downRow[l] then upRow[l], each `half` rows,
	// laid out layer by layer to match the unknown ordering above.
	downRow := make([]int, M)
	upRow := make([]int, M)
	for l := 0; l < M; l++ {
		downRow[l] = 2 * half * l
		upRow[l] = 2*half*l + half
	}

	for l := 0; l < M; l++ {
		ls := layers[l]
		ndown, nup := ls.ndown(), ls.nup()
		colTop := offsets[l]
		colBot := offsets[l] + ndown

		topT, topB := ls.topCoeffs()
		botT, botB := ls.bottomCoeffs()
		topUpT, topUpB := sliceRows(topT, 0, half), sliceRows(topB, 0, half)
		topDownT, topDownB := sliceRows(topT, half, ls.n), sliceRows(topB, half, ls.n)
		botUpT, botUpB := sliceRows(botT, 0, half), sliceRows(botB, 0, half)
		botDownT, botDownB := sliceRows(botT, half, ls.n), sliceRows(botB, half, ls.n)

		sourceUp, sourceDown := make([]float64, half), make([]float64, half)
		if ls.source != nil {
			copy(sourceUp, ls.source[:half])
			copy(sourceDown, ls.source[half:])
		}

		// down-continuity at this layer's top.
		bAbove := boundaries[l]
		addInto(A, downRow[l], colTop, topDownT, 1)
		addInto(A, downRow[l], colBot, topDownB, 1)
		addInto(A, downRow[l], colTop, matMulDenseSlice(bAbove.rBA, topUpT), 1)
		addInto(A, downRow[l], colBot, matMulDenseSlice(bAbove.rBA, topUpB), 1)
		if l == 0 {
			for i, v := range matVec(bAbove.tAB, topBC) {
				rhs[downRow[l]+i] += v
			}
		} else {
			prev := layers[l-1]
			prevColTop := offsets[l-1]
			prevColBot := offsets[l-1] + prev.ndown()
			prevBotT, prevBotB := prev.bottomCoeffs()
			prevDownT := sliceRows(prevBotT, half, prev.n)
			prevDownB := sliceRows(prevBotB, half, prev.n)
			addInto(A, downRow[l], prevColTop, matMulDenseSlice(bAbove.tAB, prevDownT), -1)
			addInto(A, downRow[l], prevColBot, matMulDenseSlice(bAbove.tAB, prevDownB), -1)
			if prev.source != nil {
				for i, v := range matVec(bAbove.tAB, prev.source[half:]) {
					rhs[downRow[l]+i] += v
				}
			}
		}
		for i := 0; i < half; i++ {
			rhs[downRow[l]+i] -= sourceDown[i]
		}
		for i, v := range matVec(bAbove.rBA, sourceUp) {
			rhs[downRow[l]+i] += v
		}

		// up-continuity at this layer's bottom.
		bBelow := boundaries[l+1]
		addInto(A, upRow[l], colTop, botUpT, 1)
		addInto(A, upRow[l], colBot, botUpB, 1)
		addInto(A, upRow[l], colTop, matMulDenseSlice(bBelow.rAB, botDownT), -1)
		addInto(A, upRow[l], colBot, matMulDenseSlice(bBelow.rAB, botDownB), -1)
		if l < M-1 {
			next := layers[l+1]
			nextColTop := offsets[l+1]
			nextColBot := offsets[l+1] + next.ndown()
			nextTopT, nextTopB := next.topCoeffs()
			nextUpT := sliceRows(nextTopT, 0, half)
			nextUpB := sliceRows(nextTopB, 0, half)
			addInto(A, upRow[l], nextColTop, matMulDenseSlice(bBelow.tBA, nextUpT), -1)
			addInto(A, upRow[l], nextColBot, matMulDenseSlice(bBelow.tBA, nextUpB), -1)
			if next.source != nil {
				for i, v := range matVec(bBelow.tBA, next.source[:half]) {
					rhs[upRow[l]+i] += v
				}
			}
		} else if substrateEmission != nil {
			for i, v := range substrateEmission {
				rhs[upRow[l]+i] += v
			}
		}
		for i := 0; i < half; i++ {
			rhs[upRow[l]+i] -= sourceUp[i]
		}
		for i, v := range matVec(bBelow.rAB, sourceDown) {
			rhs[upRow[l]+i] += v
		}
	}

	var lu mat.LU
	lu.Factorize(A)
	if !lu.IsNonsingular() {
		return nil, xerr.New(xerr.SolverDegenerate, "dort: global boundary-value system is singular")
	}
	rhsVec := mat.NewVecDense(total, rhs)
	var solVec mat.VecDense
	if err := lu.SolveVecTo(&solVec, false, rhsVec); err != nil {
		return nil, xerr.New(xerr.SolverDegenerate, "dort: global system solve failed: %v", err)
	}

	out := make([][]float64, M)
	for l := 0; l < M; l++ {
		n := sizes[l]
		out[l] = make([]float64, n)
		for i := 0; i < n; i++ {
			out[l][i] = solVec.AtVec(offsets[l] + i)
		}
	}
	return out, nil
}
