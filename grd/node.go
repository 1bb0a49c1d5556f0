// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grd

// Node represents a junction of grid members
//
//	DOFs:  uz -- vertical deflection (z is up)
//	       rx -- rotation about the global x-axis
//	       ry -- rotation about the global y-axis
type Node struct {

	// basic data
	Id    int     // index of node in grid
	Label string  // user-friendly label; e.g. "A"
	X     float64 // x-axis coordinate
	Y     float64 // y-axis coordinate

	// externally-applied load
	Fz float64 // vertical load
	Mx float64 // moment about the x-axis
	My float64 // moment about the y-axis

	// support
	Sup Support // support type; Free means unsupported
}

// SetLoad sets the externally-applied load at this node
func (o *Node) SetLoad(fz, mx, my float64) {
	o.Fz = fz
	o.Mx = mx
	o.My = my
}

// SetSupport sets the support type for this node
func (o *Node) SetSupport(sup Support) {
	o.Sup = sup
}

// Loaded tells whether any load component is nonzero
func (o *Node) Loaded() bool {
	return o.Fz != 0 || o.Mx != 0 || o.My != 0
}
