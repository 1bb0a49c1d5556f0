// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/wensley-rushing/ospgrid/fem"
	"github.com/wensley-rushing/ospgrid/grd"
)

// solveCantilever builds and solves the cantilever grid used throughout the
// documentation: L=2, EI=1000, GJ=500, tip force Fz=-10 and torque Mx=5
func solveCantilever(tst *testing.T) *fem.Solution {
	g := grd.NewGrid()
	g.AddNode("A", 0, 0)
	g.AddNode("B", 2, 0)
	g.AddMember("A", "B", 1000, 500)
	g.AddSupport("A", grd.Fixed)
	g.AddLoad("B", -10, 5, 0)
	dom, err := fem.NewDomain(g, chk.Verbose)
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	return dom.Solve()
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. results report")

	sol := solveCantilever(tst)
	rep := Report(sol)
	if chk.Verbose {
		io.Pf("%s", rep)
	}

	// the report carries the three tables and both node labels
	for _, want := range []string{
		"nodal displacements:",
		"support reactions:",
		"member end forces (local):",
		"A-B",
		"-2.666667e-02", // uz at the tip
		"20.000000",     // my reaction at the wall
	} {
		if !strings.Contains(rep, want) {
			tst.Errorf("report is missing %q\n", want)
			return
		}
	}

	// free nodes must not show up in the reactions table: title, header,
	// one data row and the trailing blank line
	reactions := rep[strings.Index(rep, "support reactions"):strings.Index(rep, "member end forces")]
	if strings.Count(reactions, "\n") != 4 {
		tst.Errorf("reactions table must have exactly one data row:\n%s", reactions)
		return
	}
}

func Test_scale01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scale01. automatic scale of deflected shape")

	// sf = 0.25 size / max|uz| = 0.25⋅2/0.0266667 = 18.75, rounded to 20
	sol := solveCantilever(tst)
	chk.Float64(tst, "sf", 1e-14, AutoScaleDefo(sol), 20)
}

func Test_plot01(tst *testing.T) {

	//verbose() // when verbose, write the figures to /tmp/ospgrid
	chk.PrintTitle("plot01. grid, deflected shape and diagrams")

	if !chk.Verbose {
		tst.Skip("plotting is only tested in verbose mode")
	}
	sol := solveCantilever(tst)
	Draw(sol, "/tmp/ospgrid", "t_plot01", 0, 0.1)
}
