// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements results extraction, reporting and plotting for
// analysed grids
package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/wensley-rushing/ospgrid/fem"
	"github.com/wensley-rushing/ospgrid/grd"
)

// Report returns a text report with the nodal displacements, the support
// reactions and the member end forces
func Report(sol *fem.Solution) (l string) {
	g := sol.Dom.Grid

	// displacements
	l = "nodal displacements:\n"
	l += io.Sf("%6s%16s%16s%16s\n", "node", "uz", "rx", "ry")
	for _, n := range g.Nodes {
		uz, rx, ry := sol.Displacement(n)
		l += io.Sf("%6s%16.6e%16.6e%16.6e\n", n.Label, uz, rx, ry)
	}

	// reactions
	l += "\nsupport reactions:\n"
	l += io.Sf("%6s%10s%16s%16s%16s\n", "node", "support", "Fz", "Mx", "My")
	for _, n := range g.Nodes {
		if n.Sup == grd.Free {
			continue
		}
		fz, mx, my := sol.Reactions(n)
		l += io.Sf("%6s%10s%16.6f%16.6f%16.6f\n", n.Label, n.Sup.Code(), fz, mx, my)
	}

	// member end forces
	l += "\nmember end forces (local):\n"
	l += io.Sf("%8s%10s%12s%12s%12s%12s%12s%12s\n", "member", "nodes", "Vi", "Ti", "Mi", "Vj", "Tj", "Mj")
	for _, m := range g.Members {
		fl := sol.MemberEndForcesLocal(m)
		nodes := io.Sf("%s-%s", m.NodeI.Label, m.NodeJ.Label)
		l += io.Sf("%8d%10s%12.4f%12.4f%12.4f%12.4f%12.4f%12.4f\n", m.Id, nodes,
			fl[0], fl[1], fl[2], fl[3], fl[4], fl[5])
	}
	return
}

// PrintReport prints the results report to stdout
func PrintReport(sol *fem.Solution) {
	io.Pf("%s", Report(sol))
}

// SaveReport writes the results report to dirout/fnkey.res
func SaveReport(sol *fem.Solution, dirout, fnkey string) {
	if err := os.MkdirAll(dirout, 0777); err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", dirout, err)
	}
	fn := filepath.Join(dirout, fnkey+".res")
	if err := os.WriteFile(fn, []byte(Report(sol)), 0644); err != nil {
		chk.Panic("cannot write results file %q: %v", fn, err)
	}
}
