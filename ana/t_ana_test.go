// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01. closed-form cantilever grid")

	cb := &CantileverGrid{EI: 1000, GJ: 500, L: 2, P: 10, T: 5}

	// fixed end
	chk.Float64(tst, "w(0)", 1e-15, cb.Deflection(0), 0)
	chk.Float64(tst, "θ(0)", 1e-15, cb.Slope(0), 0)
	chk.Float64(tst, "φ(0)", 1e-15, cb.Twist(0), 0)
	chk.Float64(tst, "M(0)", 1e-15, cb.Moment(0), -cb.P*cb.L)

	// tip: w = -PL³/3EI, θ = -PL²/2EI, φ = TL/GJ
	chk.Float64(tst, "w(L)", 1e-15, cb.Deflection(cb.L), -10.0*8.0/(3.0*1000.0))
	chk.Float64(tst, "θ(L)", 1e-15, cb.Slope(cb.L), -10.0*4.0/(2.0*1000.0))
	chk.Float64(tst, "φ(L)", 1e-15, cb.Twist(cb.L), 5.0*2.0/500.0)
	chk.Float64(tst, "M(L)", 1e-15, cb.Moment(cb.L), 0)
	chk.Float64(tst, "V", 1e-15, cb.Shear(), 10)
}

func Test_rightangle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rightangle01. closed-form right-angle grid")

	// with EI=GJ the corner deflection reduces to -5PL³/48EI and the
	// corner rotation to -PL²/8EI
	ra := &RightAngleGrid{EI: 1000, GJ: 1000, L: 2, P: 10}
	chk.Float64(tst, "w(corner)", 1e-15, ra.CornerDeflection(), -5.0*10.0*8.0/(48.0*1000.0))
	chk.Float64(tst, "θ(corner)", 1e-15, ra.CornerRotation(), -10.0*4.0/(8.0*1000.0))
	chk.Float64(tst, "fz(support)", 1e-15, ra.VerticalReaction(), 5)

	// vanishing torsional rigidity: w -> -PL³/6EI
	soft := &RightAngleGrid{EI: 1000, GJ: 1e-9, L: 2, P: 10}
	chk.Float64(tst, "w(corner) GJ→0", 1e-9, soft.CornerDeflection(), -10.0*8.0/(6.0*1000.0))
}
