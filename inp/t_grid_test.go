// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/wensley-rushing/ospgrid/fem"
	"github.com/wensley-rushing/ospgrid/grd"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. cantilever grid file")

	dat, g := ReadGrid("data/cantilever.grd")
	chk.IntAssert(len(dat.Nodes), 2)
	chk.IntAssert(len(dat.Members), 1)
	if dat.Key != "cantilever" {
		tst.Errorf("wrong filename key: %q\n", dat.Key)
		return
	}
	if dat.DirOut != "/tmp/ospgrid/cantilever" {
		tst.Errorf("wrong default output directory: %q\n", dat.DirOut)
		return
	}

	// model
	a := g.GetNode("A")
	b := g.GetNode("B")
	if a.Sup != grd.Fixed || b.Sup != grd.Free {
		tst.Errorf("supports not read correctly\n")
		return
	}
	chk.Float64(tst, "B: fz", 1e-15, b.Fz, -10)
	chk.Float64(tst, "B: mx", 1e-15, b.Mx, 5)
	m := g.GetMemberByNodes("A", "B")
	chk.Float64(tst, "ei", 1e-15, m.EI, 1000)
	chk.Float64(tst, "gj", 1e-15, m.GJ, 500)
	chk.Float64(tst, "L", 1e-15, m.L, 2)

	// the file describes the tip-loaded cantilever: w = -PL³/3EI
	dom, err := fem.NewDomain(g, chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}
	uz, _, _ := dom.Solve().Displacement("B")
	chk.Float64(tst, "uz(B)", 1e-14, uz, -0.026666666666666666)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. right-angle grid file")

	dat, g := ReadGrid("data/rightangle.grd")
	chk.IntAssert(len(dat.Nodes), 3)
	chk.IntAssert(len(dat.Members), 2)

	dom, err := fem.NewDomain(g, chk.Verbose)
	if err != nil {
		tst.Errorf("NewDomain failed: %v\n", err)
		return
	}
	uz, rx, ry := dom.Solve().Displacement("B")
	chk.Float64(tst, "uz(B)", 1e-14, uz, -1.0/120.0)
	chk.Float64(tst, "rx(B)", 1e-14, rx, -0.005)
	chk.Float64(tst, "ry(B)", 1e-14, ry, -0.005)
}

func Test_write01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("write01. write and read back a grid definition")

	g := grd.NewGrid()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 3, 0)
	g.AddNode("C", 3, 4)
	g.AddMember("A", "B", 200, 100)
	g.AddMember("B", "C", 200, 100)
	g.AddSupport("A", grd.Fixed)
	g.AddSupport("C", grd.PinnedY)
	g.AddLoad("B", -1, 0, 2)

	fnamepath := filepath.Join(tst.TempDir(), "roundtrip.grd")
	WriteGrid(g, "round trip test", fnamepath)

	dat, h := ReadGrid(fnamepath)
	if dat.Desc != "round trip test" {
		tst.Errorf("wrong description: %q\n", dat.Desc)
		return
	}
	chk.IntAssert(len(h.Nodes), 3)
	chk.IntAssert(len(h.Members), 2)
	if h.GetNode("C").Sup != grd.PinnedY {
		tst.Errorf("support of node C not preserved\n")
		return
	}
	chk.Float64(tst, "B: my", 1e-15, h.GetNode("B").My, 2)
	chk.Float64(tst, "B-C: L", 1e-15, h.GetMemberByNodes("C", "B").L, 4)
}
