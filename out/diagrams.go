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
)

// PlotDiagMoment plots the bending moment diagram of all members in plan
// view, offset normal to each member.
//
//	withtext -- show bending moment values at the extreme stations
//	numfmt   -- number format for values. use "" to choose the default one
//	tol      -- tolerance to clip absolute values
//	coef     -- scaling coefficient: max(dimension) divided by max(value); e.g. 0.1
func PlotDiagMoment(sol *fem.Solution, withtext bool, numfmt string, tol, coef float64) {
	vals := stationValues(sol, func(V, T, M []float64) []float64 { return M })
	plotDiag(sol, vals, withtext, numfmt, tol, diagScale(sol, vals, coef))
}

// PlotDiagShear plots the shear force diagram of all members in plan view.
// The diagram is drawn on the opposite side to the bending moment so that it
// appears per convention. Arguments as in PlotDiagMoment.
func PlotDiagShear(sol *fem.Solution, withtext bool, numfmt string, tol, coef float64) {
	vals := stationValues(sol, func(V, T, M []float64) []float64 { return V })
	plotDiag(sol, vals, withtext, numfmt, tol, -diagScale(sol, vals, coef))
}

// PlotDiagTorsion plots the torsion moment diagram of all members in plan
// view. Arguments as in PlotDiagMoment.
func PlotDiagTorsion(sol *fem.Solution, withtext bool, numfmt string, tol, coef float64) {
	vals := stationValues(sol, func(V, T, M []float64) []float64 { return T })
	plotDiag(sol, vals, withtext, numfmt, tol, -diagScale(sol, vals, coef))
}

// stationValues samples one internal force component at the stations of all
// members
func stationValues(sol *fem.Solution, pick func(V, T, M []float64) []float64) (vals [][]float64) {
	vals = make([][]float64, len(sol.Dom.Grid.Members))
	for i, m := range sol.Dom.Grid.Members {
		V, T, M := sol.StationForces(m, fem.Nstations)
		vals[i] = pick(V, T, M)
	}
	return
}

// diagScale computes a common scaling factor for all members: coef times the
// largest grid dimension divided by the largest absolute value
func diagScale(sol *fem.Solution, vals [][]float64, coef float64) (sf float64) {
	var maxAbs float64
	for _, vv := range vals {
		for _, v := range vv {
			maxAbs = utl.Max(maxAbs, math.Abs(v))
		}
	}
	sf = 1.0
	if maxAbs > 1e-7 {
		sf = coef * sol.Dom.Grid.Size() / maxAbs
	}
	return
}

// plotDiag draws the diagram of one internal force component for all members
func plotDiag(sol *fem.Solution, vals [][]float64, withtext bool, numfmt string, tol, sf float64) {
	g := sol.Dom.Grid
	for im, m := range g.Members {

		// stations and normal direction
		vv := vals[im]
		nstations := len(vv)
		ds := 1.0 / float64(nstations-1)
		c, s := m.Direction()
		nx, ny := -s, c // n := u × v with u out-of-plane

		// extreme stations
		imin, imax := argMinMax(vv)

		// draw text function
		drawText := func(cx, cy, val float64) {
			if math.Abs(val) <= tol {
				return
			}
			str := io.Sf("%g", val)
			if numfmt != "" {
				str = io.Sf(numfmt, val)
			} else {
				if len(str) > 10 {
					str = io.Sf("%.8f", val) // truncate number
					str = io.Sf("%g", io.Atof(str))
				}
			}
			plt.Text(cx, cy, str, &plt.A{Fsz: 7, Ha: "center", NoClip: true})
		}

		// draw
		ptsX := make([]float64, nstations)
		ptsY := make([]float64, nstations)
		for i := 0; i < nstations; i++ {

			// station
			t := float64(i) * ds
			x := (1.0-t)*m.NodeI.X + t*m.NodeJ.X
			y := (1.0-t)*m.NodeI.Y + t*m.NodeJ.Y

			// point on diagram and centre for text
			px := x - sf*vv[i]*nx
			py := y - sf*vv[i]*ny
			cx := (x + px) / 2.0
			cy := (y + py) / 2.0
			ptsX[i], ptsY[i] = px, py

			// hatching line
			sty := StyDiag
			if i == imin || i == imax {
				sty = StyDiagMax
				if vv[i] < 0 {
					sty = StyDiagMin
				}
			}
			plt.Plot([]float64{x, px}, []float64{y, py}, sty)

			// values at extremes and extremities
			if withtext {
				if i == imin || i == imax || i == 0 || i == nstations-1 {
					drawText(cx, cy, vv[i])
				}
			}
		}

		// diagram outline
		plt.Plot(ptsX, ptsY, StyDiagOutline)
	}
}

// argMinMax returns the indices of the smallest and largest values
func argMinMax(v []float64) (imin, imax int) {
	for i := 1; i < len(v); i++ {
		if v[i] < v[imin] {
			imin = i
		}
		if v[i] > v[imax] {
			imax = i
		}
	}
	return
}
