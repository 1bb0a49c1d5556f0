// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions of simple grids, mainly to
// verify the fem package
package ana

// CantileverGrid holds the closed-form solution of a single grid member
// fixed at one end and loaded at the tip with a downward force P and a
// torque T about the member axis
//
//	 |\
//	 |‖========================== ← T
//	 |/                         ↓ P
//	  x=0                        x=L
type CantileverGrid struct {
	EI float64 // flexural rigidity
	GJ float64 // torsional rigidity
	L  float64 // member length
	P  float64 // magnitude of downward tip force
	T  float64 // tip torque about the member axis
}

// Deflection returns the (downward negative) deflection at distance x from
// the support
func (o *CantileverGrid) Deflection(x float64) float64 {
	return -o.P * x * x * (3.0*o.L - x) / (6.0 * o.EI)
}

// Slope returns the bending rotation at distance x from the support
func (o *CantileverGrid) Slope(x float64) float64 {
	return -o.P * x * (2.0*o.L - x) / (2.0 * o.EI)
}

// Twist returns the rotation about the member axis at distance x from the
// support
func (o *CantileverGrid) Twist(x float64) float64 {
	return o.T * x / o.GJ
}

// Moment returns the (hogging negative) bending moment at distance x from
// the support
func (o *CantileverGrid) Moment(x float64) float64 {
	return -o.P * (o.L - x)
}

// Shear returns the shear force, constant along the member
func (o *CantileverGrid) Shear() float64 {
	return o.P
}
