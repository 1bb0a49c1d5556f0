// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// RightAngleGrid holds the closed-form solution of a two-member grid at a
// right angle. Both members have the same length and rigidities; the outer
// ends are fixed and the corner carries a downward force P.
//
//	 y
//	 ^        [C] fixed
//	 |         ‖
//	 |         ‖
//	 |         ‖
//	[A]========B ← corner, P down
//	 fixed
//
// Condensing the corner equations gives the corner deflection
//
//	w = -P L³ / (24 EI - 72 EI² / (4 EI + GJ))
//
// and, by symmetry, equal corner rotations and equal vertical reactions.
type RightAngleGrid struct {
	EI float64 // flexural rigidity
	GJ float64 // torsional rigidity
	L  float64 // length of each member
	P  float64 // magnitude of downward corner force
}

// CornerDeflection returns the (downward negative) deflection of the corner
func (o *RightAngleGrid) CornerDeflection() float64 {
	den := 24.0*o.EI - 72.0*o.EI*o.EI/(4.0*o.EI+o.GJ)
	return -o.P * o.L * o.L * o.L / den
}

// CornerRotation returns the corner rotation; rx and ry are equal by symmetry
func (o *RightAngleGrid) CornerRotation() float64 {
	return 6.0 * o.EI / (o.L * (4.0*o.EI + o.GJ)) * o.CornerDeflection()
}

// VerticalReaction returns the (upward) vertical reaction at each fixed end
func (o *RightAngleGrid) VerticalReaction() float64 {
	return o.P / 2.0
}
