// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Member represents a grillage member: a straight beam lying in the x-y
// plane loaded transversely. Each end carries three DOFs in the local order
//
//	w  -- transverse deflection (along z)
//	φt -- twist (rotation about the member axis t)
//	φn -- bending rotation (about the in-plane normal n)
//
//	        z,w
//	         ^
//	         |    φn                 φn
//	         |   ,'                 ,'
//	        (0)-----------------------------(1)------> t
//	         `-> φt                 `-> φt
//
//	Props: EI (flexural rigidity), GJ (torsional rigidity). Nodes: 0 and 1.
type Member struct {

	// basic data
	Id    int   // index of member in grid
	NodeI *Node // start node
	NodeJ *Node // end node

	// parameters
	EI float64 // flexural rigidity
	GJ float64 // torsional rigidity

	// derived
	Dx float64 // x-projection of member
	Dy float64 // y-projection of member
	L  float64 // length of member
}

// NewMember returns a new grillage member connecting nodeI to nodeJ
func NewMember(id int, nodeI, nodeJ *Node, ei, gj float64) *Member {
	ϵp := 1e-9
	if ei < ϵp || gj < ϵp {
		chk.Panic("EI and GJ parameters must be both positive. EI=%g, GJ=%g", ei, gj)
	}
	o := &Member{Id: id, NodeI: nodeI, NodeJ: nodeJ, EI: ei, GJ: gj}
	o.Dx = nodeJ.X - nodeI.X
	o.Dy = nodeJ.Y - nodeI.Y
	o.L = math.Sqrt(o.Dx*o.Dx + o.Dy*o.Dy)
	if o.L < ϵp {
		chk.Panic("nodes %q and %q are coincident: member %d has zero length", nodeI.Label, nodeJ.Label, id)
	}
	return o
}

// Direction returns the unit vector along the member, from nodeI to nodeJ
func (o *Member) Direction() (c, s float64) {
	return o.Dx / o.L, o.Dy / o.L
}

// LocalStiffness returns the member stiffness matrix in local coordinates
// with nodal DOFs in the order (w, φt, φn) per node
func (o *Member) LocalStiffness() (kl *la.Matrix) {
	l := o.L
	ll := l * l
	k11 := 12.0 * o.EI / (ll * l)
	k13 := 6.0 * o.EI / ll
	k22 := o.GJ / l
	k33 := 4.0 * o.EI / l
	k36 := 2.0 * o.EI / l
	return la.NewMatrixDeep2([][]float64{
		{k11, 0, k13, -k11, 0, k13},
		{0, k22, 0, 0, -k22, 0},
		{k13, 0, k33, -k13, 0, k36},
		{-k11, 0, -k13, k11, 0, -k13},
		{0, -k22, 0, 0, k22, 0},
		{k13, 0, k36, -k13, 0, k33},
	})
}

// Transformation returns the matrix T relating the member DOFs in the global
// system (uz, rx, ry) to the local system (w, φt, φn); i.e. ul := T ⋅ ug
func (o *Member) Transformation() (T *la.Matrix) {
	c, s := o.Direction()
	T = la.NewMatrix(6, 6)
	for k := 0; k < 2; k++ {
		m := 3 * k
		T.Set(m+0, m+0, 1)
		T.Set(m+1, m+1, c)
		T.Set(m+1, m+2, s)
		T.Set(m+2, m+1, -s)
		T.Set(m+2, m+2, c)
	}
	return
}

// GlobalStiffness returns the member stiffness matrix in global coordinates;
// i.e. the contributions of this member to the global DOFs
func (o *Member) GlobalStiffness() (kg *la.Matrix) {
	T := o.Transformation()
	kl := o.LocalStiffness()
	aux := la.NewMatrix(6, 6)
	kg = la.NewMatrix(6, 6)
	la.MatTrMatMul(aux, 1, T, kl) // aux := 1 * trans(T) * kl
	la.MatMatMul(kg, 1, aux, T)   // kg  := 1 * aux * T
	return
}
