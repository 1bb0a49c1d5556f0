// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ospgrid analyses plane elastic grids (grillages) defined in .grd files:
// it assembles the grid model, solves it with gosl and reports the nodal
// displacements, support reactions and member forces, optionally rendering
// the deflected shape and force diagrams.
//
//	usage: ospgrid file.grd [saveFigs] [sfDefo] [coef]
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/wensley-rushing/ospgrid/fem"
	"github.com/wensley-rushing/ospgrid/inp"
	"github.com/wensley-rushing/ospgrid/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				io.Pf("See location of error below:\n")
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
	}()

	// input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".grd", true)
	saveFigs := io.ArgToBool(1, true)
	sfDefo := io.ArgToFloat(2, 0)
	coef := io.ArgToFloat(3, 0.1)

	// read input data
	dat, g := inp.ReadGrid(fnamepath)
	io.Pf("> Grid definition (.grd) file read\n")
	if dat.Desc != "" {
		io.Pf("> %s\n", dat.Desc)
	}

	// analyse
	dom, err := fem.NewDomain(g, true)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	sol := dom.Solve()

	// report
	io.Pf("\n%s\n", out.Report(sol))

	// figures
	if saveFigs {
		out.SaveReport(sol, dat.DirOut, dat.Key)
		out.Draw(sol, dat.DirOut, dat.Key, sfDefo, coef)
		io.PfGreen("> Results saved to %s\n", dat.DirOut)
	}
}
