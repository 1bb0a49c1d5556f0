// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/wensley-rushing/ospgrid/grd"
)

// Solution holds the results of a grid analysis: the nodal DOF values and
// the assembled internal forces
type Solution struct {

	// input
	Dom *Domain // the analysed domain

	// results
	Y la.Vector   // [Ny] values of free DOFs
	U [][]float64 // [nnodes][Ndof] all DOF values; zeros at restrained DOFs

	// derived (lazy)
	fint [][]float64 // [nnodes][Ndof] assembled internal nodal forces
}

// Solve solves the reduced system Kb⋅Y = Fb and returns the solution. The
// dense LAPACK solver is used, matching the full/general system of
// equations choice of the original wrapper; grillage systems are small.
func (o *Domain) Solve() (sol *Solution) {

	// solution structure
	sol = &Solution{Dom: o}
	sol.Y = la.NewVector(o.Ny)

	// solve reduced system
	if o.Ny > 0 {
		K := o.Kb.ToDense()
		la.DenSolve(sol.Y, K, o.Fb, false)
	}

	// scatter free DOF values to nodes
	sol.U = make([][]float64, len(o.Grid.Nodes))
	for i := range o.Grid.Nodes {
		sol.U[i] = []float64{0, 0, 0}
		for j := 0; j < Ndof; j++ {
			if I := o.Eqs[i][j]; I >= 0 {
				sol.U[i][j] = sol.Y[I]
			}
		}
	}

	// message
	if o.ShowMsg {
		io.PfGreen("> Solution obtained (%d equations)\n", o.Ny)
	}
	return
}

// Displacement returns the displacements (uz, rx, ry) of a node.
// The node handle may be *grd.Node, a label, or an index.
func (o *Solution) Displacement(node interface{}) (uz, rx, ry float64) {
	n := o.Dom.Grid.GetNode(node)
	u := o.U[n.Id]
	return u[0], u[1], u[2]
}

// Reactions returns the support reactions (fz, mx, my) of a node: the
// assembled internal forces minus the applied loads at the restrained DOFs.
// Unrestrained DOFs have zero reaction.
func (o *Solution) Reactions(node interface{}) (fz, mx, my float64) {
	n := o.Dom.Grid.GetNode(node)
	o.calcInternalForces()
	f := o.fint[n.Id]
	r := []float64{0, 0, 0}
	uz, rx, ry := n.Sup.Fixity()
	for j, fixed := range []bool{uz, rx, ry} {
		if fixed {
			r[j] = f[j] - []float64{n.Fz, n.Mx, n.My}[j]
		}
	}
	return r[0], r[1], r[2]
}

// gather collects the 6 global DOF values of a member
func (o *Solution) gather(m *grd.Member) (ug la.Vector) {
	ug = la.NewVector(2 * Ndof)
	for k, n := range []*grd.Node{m.NodeI, m.NodeJ} {
		for j := 0; j < Ndof; j++ {
			ug[j+k*Ndof] = o.U[n.Id][j]
		}
	}
	return
}

// calcInternalForces assembles the internal nodal forces fint := Σ kg⋅ug
// over all members (lazy; computed once)
func (o *Solution) calcInternalForces() {
	if o.fint != nil {
		return
	}
	o.fint = make([][]float64, len(o.Dom.Grid.Nodes))
	for i := range o.fint {
		o.fint[i] = []float64{0, 0, 0}
	}
	fg := la.NewVector(2 * Ndof)
	for _, m := range o.Dom.Grid.Members {
		la.MatVecMul(fg, 1, m.GlobalStiffness(), o.gather(m))
		for k, n := range []*grd.Node{m.NodeI, m.NodeJ} {
			for j := 0; j < Ndof; j++ {
				o.fint[n.Id][j] += fg[j+k*Ndof]
			}
		}
	}
}
