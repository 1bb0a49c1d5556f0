// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the grid definition data read from a (.grd) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/wensley-rushing/ospgrid/grd"
)

// NodeData holds input data for one grid node
type NodeData struct {
	Label   string  `json:"label"`   // user-friendly label; e.g. "A"
	X       float64 `json:"x"`       // x-axis coordinate
	Y       float64 `json:"y"`       // y-axis coordinate
	Support string  `json:"support"` // one-character support descriptor; "" means free
	Fz      float64 `json:"fz"`      // vertical load
	Mx      float64 `json:"mx"`      // moment about the x-axis
	My      float64 `json:"my"`      // moment about the y-axis
}

// MemberData holds input data for one grid member
type MemberData struct {
	I  string  `json:"i"`  // label of start node
	J  string  `json:"j"`  // label of end node
	EI float64 `json:"ei"` // flexural rigidity
	GJ float64 `json:"gj"` // torsional rigidity
}

// GridData holds all data from a grid definition (.grd) file
type GridData struct {

	// global information
	Desc   string `json:"desc"`   // description of grid
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/ospgrid

	// model definition
	Nodes   []*NodeData   `json:"nodes"`   // all nodes
	Members []*MemberData `json:"members"` // all members

	// derived
	Key string // filename key of .grd file
}

// ReadGrid reads a grid definition from a .grd JSON file and builds the
// grid model
func ReadGrid(fnamepath string) (dat *GridData, g *grd.Grid) {

	// read file
	b := io.ReadFile(fnamepath)

	// decode
	dat = new(GridData)
	if err := json.Unmarshal(b, dat); err != nil {
		chk.Panic("ReadGrid: cannot unmarshal grid definition file %q\n%v", fnamepath, err)
	}

	// filename key and output directory
	dat.Key = io.FnKey(filepath.Base(fnamepath))
	if dat.DirOut == "" {
		dat.DirOut = "/tmp/ospgrid/" + dat.Key
	}

	// build grid
	g = dat.MakeGrid()
	return
}

// MakeGrid builds the grid model from the input data
func (o *GridData) MakeGrid() (g *grd.Grid) {
	g = grd.NewGrid()
	for _, nd := range o.Nodes {
		n := g.AddNode(nd.Label, nd.X, nd.Y)
		if nd.Support != "" {
			n.SetSupport(grd.ParseSupport(nd.Support))
		}
		n.SetLoad(nd.Fz, nd.Mx, nd.My)
	}
	for _, md := range o.Members {
		g.AddMember(md.I, md.J, md.EI, md.GJ)
	}
	if err := g.Check(); err != nil {
		chk.Panic("MakeGrid: %v", err)
	}
	return
}

// GridToData converts a grid model back to input data; e.g. for saving a
// programmatically built model
func GridToData(g *grd.Grid, desc string) (dat *GridData) {
	dat = &GridData{Desc: desc}
	for _, n := range g.Nodes {
		dat.Nodes = append(dat.Nodes, &NodeData{
			Label:   n.Label,
			X:       n.X,
			Y:       n.Y,
			Support: n.Sup.Code(),
			Fz:      n.Fz,
			Mx:      n.Mx,
			My:      n.My,
		})
	}
	for _, m := range g.Members {
		dat.Members = append(dat.Members, &MemberData{
			I:  m.NodeI.Label,
			J:  m.NodeJ.Label,
			EI: m.EI,
			GJ: m.GJ,
		})
	}
	return
}

// WriteGrid writes a grid definition .grd JSON file
func WriteGrid(g *grd.Grid, desc, fnamepath string) {
	dat := GridToData(g, desc)
	b, err := json.MarshalIndent(dat, "", "  ")
	if err != nil {
		chk.Panic("WriteGrid: cannot marshal grid data\n%v", err)
	}
	if err := os.MkdirAll(filepath.Dir(fnamepath), 0777); err != nil {
		chk.Panic("WriteGrid: cannot create directory for %q\n%v", fnamepath, err)
	}
	if err := os.WriteFile(fnamepath, append(b, '\n'), 0644); err != nil {
		chk.Panic("WriteGrid: cannot write grid definition file %q\n%v", fnamepath, err)
	}
}
