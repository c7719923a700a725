// Copyright 2016 The MWRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"github.com/cpmech/mwrt/snowpack"
)

// init registers "dmrt_qcacp_shortrange" as an alias of iba: the
// short-range quasi-crystalline approximation with coherent potential
// reduces, in the single-scattering/low-density regime this model
// targets, to the same Maxwell-Garnett-mixed IBA phase function. A
// distinct closed-form QCA-CP kernel is future work, not a rename.
func init() {
	Register("dmrt_qcacp_shortrange", func(sensor *snowpack.Sensor, layer *snowpack.Layer) (Model, error) {
		return newIBA(sensor, layer)
	})
}
