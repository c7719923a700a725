// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/mwrt/micro"
	"github.com/cpmech/mwrt/xerr"
)

// degenTol is the sinΘ→0 / |μ|=1 regularization threshold (Matzler 2006
// p.113, preserved literally per the rotation sign convention).
const degenTol = 1e-6

// phaseCache is the single-writer, many-reader Fourier-decomposed phase
// matrix table owned by an em.Model instance, keyed by (μ, m_max, npol).
// Once built it is never mutated: readers always observe a complete table.
type phaseCache struct {
	mu   []float64
	mMax int
	npol int
	// block[0] is always the 2×2-per-stream mode-0 matrix; block[m] for
	// m≥1 is the npol×npol-per-stream matrix (only populated when npol=3).
	block [][][]float64
}

func (c *phaseCache) matches(mu []float64, mMax, npol int) bool {
	if c == nil || c.npol != npol || c.mMax < mMax || len(c.mu) != len(mu) {
		return false
	}
	for i := range mu {
		if c.mu[i] != mu[i] {
			return false
		}
	}
	return true
}

// at returns the cached matrix for Fourier mode m.
func (c *phaseCache) at(m int) ([][]float64, error) {
	if m < 0 || m > c.mMax {
		return nil, xerr.New(xerr.InputValidation, "em: mode m=%d out of cached range [0,%d]", m, c.mMax)
	}
	return c.block[m], nil
}

// buildPhaseCache computes the Fourier-decomposed IBA phase matrix for
// every mode 0..mMax, for every ordered pair of stream cosines in mu.
// Grounded line-for-line on the rotated-Rayleigh-kernel/DFT algorithm of
// the IBA electromagnetic model (rotation angles, degenerate-geometry
// regularization, Δφ≥π sign flip, mode-0-is-always-2×2 structure).
func buildPhaseCache(mu []float64, mMax, npol int, k0 float64, effPerm, ibaCoeff complex128, ms micro.Provider) (*phaseCache, error) {
	if npol == 3 && mMax >= 2 {
		for _, m := range mu {
			if math.Abs(math.Abs(m)-1) < degenTol {
				return nil, xerr.New(xerr.InvalidStreamGeometry,
					"em: μ=1 stream with npol=3 and m_max=%d ≥ 2 breaks the Matzler 2006 sign convention", mMax)
			}
		}
	}

	n := len(mu)
	nSamples := 1 << uint(mMax+2)
	dphiStep := 2 * math.Pi / float64(nSamples)
	sqrtEpsAbs := cmplx.Abs(cmplx.Sqrt(effPerm))

	sin := make([]float64, n)
	for i, m := range mu {
		sin[i] = math.Sqrt(math.Max(0, 1-m*m))
	}
	cosPD := make([]float64, nSamples)
	for k := range cosPD {
		cosPD[k] = math.Cos(float64(k) * dphiStep)
	}

	// Fourier basis weights, shared across all (i,j) pairs.
	cosW := make([][]float64, mMax+1)
	sinW := make([][]float64, mMax+1)
	for m := 0; m <= mMax; m++ {
		cosW[m] = make([]float64, nSamples)
		sinW[m] = make([]float64, nSamples)
		for k := 0; k < nSamples; k++ {
			theta := 2 * math.Pi * float64(m*k) / float64(nSamples)
			cosW[m][k] = math.Cos(theta)
			sinW[m][k] = math.Sin(theta)
		}
	}

	size0 := 2 * n
	block := make([][][]float64, mMax+1)
	block[0] = zeros(size0)
	if npol == 3 {
		sizeM := npol * n
		for m := 1; m <= mMax; m++ {
			block[m] = zeros(sizeM)
		}
	}

	kDiff := make([]float64, nSamples*n)
	for i := 0; i < n; i++ {
		muI, sinI := mu[i], sin[i]

		for k := 0; k < nSamples; k++ {
			for j := 0; j < n; j++ {
				ct := muI*mu[j] + sinI*sin[j]*cosPD[k]
				ct = clip(ct, -1, 1)
				kDiff[k*n+j] = 2 * k0 * sqrtEpsAbs * math.Sqrt(math.Max(0, (1-ct)/2))
			}
		}
		ftCorr, err := ms.FTAutocorrelation(kDiff)
		if err != nil {
			return nil, err
		}

		for j := 0; j < n; j++ {
			sinJ := sin[j]
			boundary := math.Abs(math.Abs(muI)-1) < degenTol && math.Abs(sinJ) < degenTol

			var re11, im11, re12, im12, re21, im21, re22, im22 []float64
			var re13, im13, re23, im23, re31, im31, re32, im32, re33, im33 []float64
			re11, im11 = make([]float64, mMax+1), make([]float64, mMax+1)
			re12, im12 = make([]float64, mMax+1), make([]float64, mMax+1)
			re21, im21 = make([]float64, mMax+1), make([]float64, mMax+1)
			re22, im22 = make([]float64, mMax+1), make([]float64, mMax+1)
			if npol == 3 {
				re13, im13 = make([]float64, mMax+1), make([]float64, mMax+1)
				re23, im23 = make([]float64, mMax+1), make([]float64, mMax+1)
				re31, im31 = make([]float64, mMax+1), make([]float64, mMax+1)
				re32, im32 = make([]float64, mMax+1), make([]float64, mMax+1)
				re33, im33 = make([]float64, mMax+1), make([]float64, mMax+1)
			}

			for k := 0; k < nSamples; k++ {
				ct := muI*mu[j] + sinI*sinJ*cosPD[k]
				ct = clip(ct, -1, 1)
				cosT2 := ct * ct
				sinT := math.Sqrt(math.Max(0, 1-cosT2))

				cosI1Raw := muI*sinJ - mu[j]*sinI*cosPD[k]
				cosI2Raw := mu[j]*sinI - muI*sinJ*cosPD[k]
				var cosI1, cosI2 float64
				if sinT >= degenTol {
					cosI1 = cosI1Raw / sinT
					cosI2 = cosI2Raw / sinT
				} else {
					cosI1 = cosI1Raw
					cosI2 = cosI2Raw
				}
				if boundary {
					cosI1 = 1
					cosI2 = cosPD[k]
				}
				cosI1 = clip(cosI1, -1, 1)
				cosI2 = clip(cosI2, -1, 1)

				cosa := -cosI2
				cosai := cosI1
				cosa2 := cosa * cosa
				cosai2 := cosai * cosai
				sina2 := math.Max(0, 1-cosa2)
				sinai2 := math.Max(0, 1-cosai2)
				sin2a := -2 * cosa * math.Sqrt(sina2)
				sin2ai := 2 * cosai * math.Sqrt(sinai2)
				cos2a := 2*cosa2 - 1
				cos2ai := 2*cosai2 - 1

				if float64(k)*dphiStep >= math.Pi {
					sin2a = -sin2a
					sin2ai = -sin2ai
				}

				fc := ftCorr[k*n+j]
				p11 := fc * (cosa2*cosai2*cosT2 + sina2*sinai2 - 0.5*sin2a*ct*sin2ai)
				p12 := fc * (cosa2*sinai2*cosT2 + sina2*cosai2 + 0.5*sin2a*ct*sin2ai)
				p21 := fc * (sina2*cosai2*cosT2 + cosa2*sinai2 + 0.5*sin2a*ct*sin2ai)
				p22 := fc * (sina2*sinai2*cosT2 + cosa2*cosai2 - 0.5*sin2a*ct*sin2ai)

				for m := 0; m <= mMax; m++ {
					cw, sw := cosW[m][k], sinW[m][k]
					re11[m] += p11 * cw
					im11[m] -= p11 * sw
					re12[m] += p12 * cw
					im12[m] -= p12 * sw
					re21[m] += p21 * cw
					im21[m] -= p21 * sw
					re22[m] += p22 * cw
					im22[m] -= p22 * sw
				}

				if npol == 3 {
					p13 := fc * 0.5 * (cosa2*sin2ai*cosT2 - sina2*sin2ai + sin2a*ct*cos2ai)
					p23 := fc * 0.5 * (sina2*cosT2*sin2ai - cosa2*sin2ai - sin2a*ct*cos2ai)
					p31 := fc * (-sin2a*cosT2*cosai2 + sin2a*sinai2 - cos2a*ct*sin2ai)
					p32 := fc * (-sin2a*cosT2*sinai2 + sin2a*cosai2 + cos2a*ct*sin2ai)
					p33 := fc * (-0.5*sin2a*cosT2*sin2ai - 0.5*sin2a*sin2ai + cos2a*ct*cos2ai)
					for m := 0; m <= mMax; m++ {
						cw, sw := cosW[m][k], sinW[m][k]
						re13[m] += p13 * cw
						im13[m] -= p13 * sw
						re23[m] += p23 * cw
						im23[m] -= p23 * sw
						re31[m] += p31 * cw
						im31[m] -= p31 * sw
						re32[m] += p32 * cw
						im32[m] -= p32 * sw
						re33[m] += p33 * cw
						im33[m] -= p33 * sw
					}
				}
			}

			inv := 1 / float64(nSamples)
			v11m0 := ibaCoeff * complex(re11[0]*inv, im11[0]*inv)
			v12m0 := ibaCoeff * complex(re12[0]*inv, im12[0]*inv)
			v21m0 := ibaCoeff * complex(re21[0]*inv, im21[0]*inv)
			v22m0 := ibaCoeff * complex(re22[0]*inv, im22[0]*inv)
			block[0][2*i][2*j] = real(v11m0)
			block[0][2*i][2*j+1] = real(v12m0)
			block[0][2*i+1][2*j] = real(v21m0)
			block[0][2*i+1][2*j+1] = real(v22m0)

			if npol == 3 {
				const delta = 2.0
				for m := 1; m <= mMax; m++ {
					v11 := ibaCoeff * complex(re11[m]*inv, im11[m]*inv)
					v12 := ibaCoeff * complex(re12[m]*inv, im12[m]*inv)
					v21 := ibaCoeff * complex(re21[m]*inv, im21[m]*inv)
					v22 := ibaCoeff * complex(re22[m]*inv, im22[m]*inv)
					v13 := ibaCoeff * complex(re13[m]*inv, im13[m]*inv)
					v23 := ibaCoeff * complex(re23[m]*inv, im23[m]*inv)
					v31 := ibaCoeff * complex(re31[m]*inv, im31[m]*inv)
					v32 := ibaCoeff * complex(re32[m]*inv, im32[m]*inv)
					v33 := ibaCoeff * complex(re33[m]*inv, im33[m]*inv)

					b := block[m]
					b[npol*i][npol*j] = real(v11) * delta
					b[npol*i][npol*j+1] = real(v12) * delta
					b[npol*i+1][npol*j] = real(v21) * delta
					b[npol*i+1][npol*j+1] = real(v22) * delta
					b[npol*i][npol*j+2] = -imag(v13) * delta
					b[npol*i+1][npol*j+2] = -imag(v23) * delta
					b[npol*i+2][npol*j] = imag(v31) * delta
					b[npol*i+2][npol*j+1] = imag(v32) * delta
					b[npol*i+2][npol*j+2] = real(v33) * delta
				}
			}
		}
	}

	return &phaseCache{mu: append([]float64(nil), mu...), mMax: mMax, npol: npol, block: block}, nil
}

// zeros builds an n×n zero matrix.
func zeros(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
