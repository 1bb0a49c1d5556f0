// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem wraps the numeric engine for the analysis of plane grids: it
// numbers equations, assembles the global system into gosl structures and
// delegates the equation solving to gosl/la
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/wensley-rushing/ospgrid/grd"
)

// Ndof is the number of degrees of freedom per grid node: (uz, rx, ry)
const Ndof = 3

// Domain holds the equation numbering and the assembled system for a grid.
// Only free DOFs receive equation numbers; restrained DOFs are marked -1 so
// the assembled system is the reduced one, after the imposition of the
// boundary conditions.
type Domain struct {

	// input
	Grid *grd.Grid // the grid model

	// equation numbers
	Eqs [][]int // [nnodes][Ndof] equation number of each DOF; -1 marks restrained
	Ny  int     // total number of free equations

	// assembled system
	Kb    *la.Triplet // reduced global stiffness
	Fb    la.Vector   // reduced global force vector
	NnzKb int         // number of nonzeros in Kb

	// verbose
	ShowMsg bool // show messages
}

// NewDomain numbers the equations of a grid and assembles the reduced
// global system
func NewDomain(g *grd.Grid, verbose bool) (o *Domain, err error) {

	// check model first
	if err = g.Check(); err != nil {
		return nil, chk.Err("grid model is invalid:\n%v", err)
	}

	// new domain
	o = &Domain{Grid: g, ShowMsg: verbose}

	// number equations: free DOFs only
	o.Eqs = make([][]int, len(g.Nodes))
	var eq int
	for i, n := range g.Nodes {
		o.Eqs[i] = []int{-1, -1, -1}
		uz, rx, ry := n.Sup.Fixity()
		for j, fixed := range []bool{uz, rx, ry} {
			if !fixed {
				o.Eqs[i][j] = eq
				eq++
			}
		}
	}
	o.Ny = eq

	// assemble stiffness
	o.NnzKb = 6 * 6 * len(g.Members)
	o.Kb = la.NewTriplet(o.Ny, o.Ny, o.NnzKb)
	for _, m := range g.Members {
		kg := m.GlobalStiffness()
		umap := o.Umap(m)
		for i, I := range umap {
			if I < 0 {
				continue
			}
			for j, J := range umap {
				if J < 0 {
					continue
				}
				o.Kb.Put(I, J, kg.Get(i, j))
			}
		}
	}

	// assemble force vector
	o.Fb = la.NewVector(o.Ny)
	for i, n := range g.Nodes {
		for j, f := range []float64{n.Fz, n.Mx, n.My} {
			if I := o.Eqs[i][j]; I >= 0 {
				o.Fb[I] += f
			}
		}
	}

	// message
	if o.ShowMsg {
		io.Pf(">> Number of equations = %d\n", o.Ny)
	}
	return
}

// Umap returns the assembly map of a member: the global equation numbers of
// its 6 DOFs in the order (uz, rx, ry) for each end. -1 marks restrained.
func (o *Domain) Umap(m *grd.Member) (umap []int) {
	umap = make([]int, 2*Ndof)
	for k, n := range []*grd.Node{m.NodeI, m.NodeJ} {
		for j := 0; j < Ndof; j++ {
			umap[j+k*Ndof] = o.Eqs[n.Id][j]
		}
	}
	return
}

// SystemStiffness returns the reduced global stiffness matrix; i.e. after
// the imposition of the boundary conditions
func (o *Domain) SystemStiffness() *la.Matrix {
	return o.Kb.ToDense()
}

// SystemForce returns the reduced global force vector; i.e. after the
// imposition of the boundary conditions
func (o *Domain) SystemForce() la.Vector {
	f := la.NewVector(o.Ny)
	copy(f, o.Fb)
	return f
}
