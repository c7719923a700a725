// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import "math/cmplx"

func cpow(z complex128, p float64) complex128 {
	return cmplx.Pow(z, complex(p, 0))
}

func cpow065(z complex128) complex128 {
	return cpow(z, 0.65)
}
