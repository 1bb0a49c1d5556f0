// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/wensley-rushing/ospgrid/fem"
	"github.com/wensley-rushing/ospgrid/grd"
)

// PlotGrid plots the grid in plan view showing nodes and members. With
// labels on, node labels, member indices and support codes are printed.
func PlotGrid(g *grd.Grid, labels bool) {
	for _, m := range g.Members {
		sty := StyModel
		if !labels {
			sty = StyModelThin
		}
		plt.Plot([]float64{m.NodeI.X, m.NodeJ.X}, []float64{m.NodeI.Y, m.NodeJ.Y}, sty)
		if labels {
			cx := (m.NodeI.X + m.NodeJ.X) / 2.0
			cy := (m.NodeI.Y + m.NodeJ.Y) / 2.0
			plt.Text(cx, cy, io.Sf("(%d)", m.Id), &plt.A{Fsz: 8, C: "#919191", Ha: "center", NoClip: true})
		}
	}
	for _, n := range g.Nodes {
		plt.PlotOne(n.X, n.Y, StyNode)
		if labels {
			plt.Text(n.X, n.Y, "  "+n.Label, &plt.A{Fsz: 10, NoClip: true})
			if n.Sup != grd.Free {
				plt.Text(n.X, n.Y, io.Sf("[%s]", n.Sup.Code()), &plt.A{Fsz: 8, C: "#0000aa", Va: "top", Ha: "center", NoClip: true})
			}
		}
	}
	plt.Equal()
}

// AutoScaleDefo computes the scale factor for the deflected shape: the
// largest deflection is drawn at about 1/4 the grid dimension, rounded to
// one significant step
func AutoScaleDefo(sol *fem.Solution) (sf float64) {
	var maxDisp float64
	for _, n := range sol.Dom.Grid.Nodes {
		uz, _, _ := sol.Displacement(n)
		maxDisp = utl.Max(maxDisp, math.Abs(uz))
	}
	if maxDisp < 1e-12 {
		return 1
	}
	sf = 0.25 * sol.Dom.Grid.Size() / maxDisp
	mag := math.Pow(10, math.Ceil(math.Log10(sf)))
	return math.Round(10.0*sf/mag) * mag / 10.0
}

// PlotDefo plots the deflected shape of the grid in 3D. A zero scale factor
// activates auto-scaling; the scale factor actually used is returned.
func PlotDefo(sol *fem.Solution, scaleFactor float64) (sf float64) {
	sf = scaleFactor
	if sf == 0 {
		sf = AutoScaleDefo(sol)
	}
	nsta := fem.Nstations
	zeros := make([]float64, nsta)
	for _, m := range sol.Dom.Grid.Members {
		X := utl.LinSpace(m.NodeI.X, m.NodeJ.X, nsta)
		Y := utl.LinSpace(m.NodeI.Y, m.NodeJ.Y, nsta)
		W := sol.StationDeflections(m, nsta)
		Z := make([]float64, nsta)
		for i := 0; i < nsta; i++ {
			Z[i] = sf * W[i]
		}
		plt.Plot3dLine(X, Y, zeros, StyModelThin)
		plt.Plot3dLine(X, Y, Z, StyDefo)
	}
	return
}

// Draw renders all results figures: the grid, the deflected shape, and the
// bending moment, shear force and torsion moment diagrams. With dirout
// non-empty, one file per figure is saved as dirout/fnkey_<figure>.png;
// otherwise each figure is shown interactively.
//
//	sfDefo -- scale factor for the deflected shape; 0 means auto
//	coef   -- diagram scaling coefficient; e.g. 0.1
func Draw(sol *fem.Solution, dirout, fnkey string, sfDefo, coef float64) {

	g := sol.Dom.Grid
	endFigure := func(suffix string) {
		if dirout == "" {
			plt.Show()
			return
		}
		plt.Save(dirout, fnkey+"_"+suffix)
	}

	// grid
	plt.Reset(true, nil)
	PlotGrid(g, true)
	plt.Title("Model", nil)
	endFigure("grid")

	// deflected shape
	plt.Reset(true, nil)
	sf := PlotDefo(sol, sfDefo)
	plt.Title(io.Sf("Displaced Shape (scale: %g)", sf), nil)
	endFigure("defo")

	// diagrams
	for _, fig := range []struct {
		suffix string
		title  string
		plot   func(*fem.Solution, bool, string, float64, float64)
	}{
		{"bmd", "Bending Moment Diagram", PlotDiagMoment},
		{"sfd", "Shear Force Diagram", PlotDiagShear},
		{"tmd", "Torsion Moment Diagram", PlotDiagTorsion},
	} {
		plt.Reset(true, nil)
		PlotGrid(g, false)
		fig.plot(sol, true, "", 1e-10, coef)
		plt.Title(fig.title, nil)
		endFigure(fig.suffix)
	}
}
