// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/la"

// Nstations is the default number of points along a member used to generate
// bending moment / shear force / torsion diagrams
var Nstations = 11

// MemberEndForcesLocal returns the member end forces in local coordinates:
//
//	(Vi, Ti, Mi, Vj, Tj, Mj)
//
// where V is the transverse force, T the torque about the member axis and
// M the bending moment, at the i- and j-ends.
func (o *Solution) MemberEndForcesLocal(member interface{}) (fl la.Vector) {
	m := o.Dom.Grid.GetMember(member)
	ug := o.gather(m)
	ul := la.NewVector(2 * Ndof)
	fl = la.NewVector(2 * Ndof)
	la.MatVecMul(ul, 1, m.Transformation(), ug) // ul := T ⋅ ug
	la.MatVecMul(fl, 1, m.LocalStiffness(), ul) // fl := kl ⋅ ul
	return
}

// MemberEndForces returns the member end forces in the global coordinate
// system as a 12-component vector: 6 DOFs for the i-end and 6 for the
// j-end, in the frame ordering (Fx, Fy, Fz, Mx, My, Mz). The in-plane
// components Fx, Fy and Mz are identically zero for a grid.
func (o *Solution) MemberEndForces(member interface{}) (f la.Vector) {
	m := o.Dom.Grid.GetMember(member)
	fl := o.MemberEndForcesLocal(m)
	fg := la.NewVector(2 * Ndof)
	la.MatTrVecMul(fg, 1, m.Transformation(), fl) // fg := trans(T) ⋅ fl
	f = la.NewVector(12)
	for k := 0; k < 2; k++ {
		f[6*k+2] = fg[3*k+0] // Fz
		f[6*k+3] = fg[3*k+1] // Mx
		f[6*k+4] = fg[3*k+2] // My
	}
	return
}

// StationForces returns the internal forces sampled at nstations points
// along a member:
//
//	V -- shear force (positive when the i-end pushes up)
//	T -- torque (positive per the right-hand rule about the member axis)
//	M -- bending moment (sagging positive)
//
// Without span loading V and T are constant and M varies linearly.
// Use nstations < 2 for the default number of stations.
func (o *Solution) StationForces(member interface{}, nstations int) (V, T, M []float64) {
	if nstations < 2 {
		nstations = Nstations
	}
	fl := o.MemberEndForcesLocal(member)
	V = make([]float64, nstations)
	T = make([]float64, nstations)
	M = make([]float64, nstations)
	ds := 1.0 / float64(nstations-1)
	for i := 0; i < nstations; i++ {
		s := float64(i) * ds
		V[i] = fl[0]
		T[i] = -fl[1]
		M[i] = -fl[2]*(1.0-s) + fl[5]*s
	}
	return
}

// StationDeflections returns the member transverse deflection sampled at
// nstations points, interpolated with the beam (Hermite) shape functions
// from the nodal deflections and rotations
func (o *Solution) StationDeflections(member interface{}, nstations int) (W []float64) {
	if nstations < 2 {
		nstations = Nstations
	}
	m := o.Dom.Grid.GetMember(member)
	ul := la.NewVector(2 * Ndof)
	la.MatVecMul(ul, 1, m.Transformation(), o.gather(m))
	wi, θi := ul[0], ul[2]
	wj, θj := ul[3], ul[5]
	l := m.L
	W = make([]float64, nstations)
	ds := 1.0 / float64(nstations-1)
	for i := 0; i < nstations; i++ {
		s := float64(i) * ds
		ss := s * s
		sss := ss * s
		W[i] = (1.0-3.0*ss+2.0*sss)*wi + l*(s-2.0*ss+sss)*θi +
			(3.0*ss-2.0*sss)*wj + l*(sss-ss)*θj
	}
	return
}
