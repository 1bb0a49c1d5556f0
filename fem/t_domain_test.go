// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wensley-rushing/ospgrid/grd"
)

// cantileverGrid builds a single member of length 2 along the x-axis, fixed
// at A and loaded at the tip B with Fz=-10 and Mx=5. EI=1000, GJ=500.
func cantileverGrid() *grd.Grid {
	g := grd.NewGrid()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 2, 0)
	g.AddMember("A", "B", 1000, 500)
	g.AddSupport("A", grd.Fixed)
	g.AddLoad("B", -10, 5, 0)
	return g
}

// rightAngleGrid builds two members at right angles, fixed at both far ends
// and loaded at the corner B with Fz=-10. EI=GJ=1000, L=2.
func rightAngleGrid() *grd.Grid {
	g := grd.NewGrid()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 2, 0)
	g.AddNode("C", 2, 2)
	g.AddMember("A", "B", 1000, 1000)
	g.AddMember("B", "C", 1000, 1000)
	g.AddSupport("A", grd.Fixed)
	g.AddSupport("C", grd.Fixed)
	g.AddLoad("B", -10, 0, 0)
	return g
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. equation numbering and reduced system")

	dom, err := NewDomain(cantileverGrid(), chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}

	chk.Ints(tst, "eqs: A", dom.Eqs[0], []int{-1, -1, -1})
	chk.Ints(tst, "eqs: B", dom.Eqs[1], []int{0, 1, 2})
	chk.IntAssert(dom.Ny, 3)
	chk.Ints(tst, "umap", dom.Umap(dom.Grid.Members[0]), []int{-1, -1, -1, 0, 1, 2})

	// reduced system: tip DOFs (uz, rx, ry) of the cantilever
	// 12EI/L^3=1500, GJ/L=250, 4EI/L=2000, 6EI/L^2=1500
	K := dom.SystemStiffness()
	chk.Deep2(tst, "K", 1e-11, K.GetDeep2(), [][]float64{
		{1500, 0, -1500},
		{0, 250, 0},
		{-1500, 0, 2000},
	})
	chk.Array(tst, "F", 1e-15, dom.SystemForce(), []float64{-10, 5, 0})
}

func Test_domain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain02. two-member grid")

	dom, err := NewDomain(rightAngleGrid(), chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}

	chk.Ints(tst, "eqs: A", dom.Eqs[0], []int{-1, -1, -1})
	chk.Ints(tst, "eqs: B", dom.Eqs[1], []int{0, 1, 2})
	chk.Ints(tst, "eqs: C", dom.Eqs[2], []int{-1, -1, -1})
	chk.IntAssert(dom.Ny, 3)

	// both members contribute to the corner DOFs: bending of one restrains
	// the same rotation that the other restrains in torsion
	K := dom.SystemStiffness()
	chk.Deep2(tst, "K", 1e-11, K.GetDeep2(), [][]float64{
		{3000, -1500, -1500},
		{-1500, 2500, 0},
		{-1500, 0, 2500},
	})
	chk.Array(tst, "F", 1e-15, dom.SystemForce(), []float64{-10, 0, 0})
}

func Test_domain03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain03. invalid grids are rejected")

	g := grd.NewGrid()
	if _, err := NewDomain(g, false); err == nil {
		tst.Errorf("NewDomain must fail for an empty grid\n")
		return
	}

	g.AddNode("A", 0, 0)
	g.AddNode("B", 1, 0)
	g.AddMember("A", "B", 10, 10)
	if _, err := NewDomain(g, false); err == nil {
		tst.Errorf("NewDomain must fail for a grid without supports\n")
		return
	}
}
