// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the definition of a plane elastic grid: a set of labelled
// nodes connected by grillage members. It provides the user-friendly
// interface for building models to be analysed by the fem package.
//
// Node handles passed to the methods below may be:
//
//	*Node  -- the node itself
//	string -- the node label; e.g. "A"
//	int    -- the node index
//
// Member handles may be *Member, the member index, or a [2]string with the
// end node labels in any order.
type Grid struct {
	Nodes   []*Node   // all nodes
	Members []*Member // all members

	// auxiliary map: label => node
	label2node map[string]*Node
}

// NewGrid returns a new empty grid
func NewGrid() (o *Grid) {
	o = new(Grid)
	o.Clear()
	return
}

// Clear removes any nodes or members from the grid
func (o *Grid) Clear() {
	o.Nodes = nil
	o.Members = nil
	o.label2node = make(map[string]*Node)
}

// AddNode adds a node to the grid. Labels must be unique.
func (o *Grid) AddNode(label string, x, y float64) *Node {
	if _, ok := o.label2node[label]; ok {
		chk.Panic("node with label %q exists already", label)
	}
	n := &Node{Id: len(o.Nodes), Label: label, X: x, Y: y}
	o.Nodes = append(o.Nodes, n)
	o.label2node[label] = n
	return n
}

// AddMember adds a member to the grid connecting nodeI to nodeJ.
//
//	nodeI, nodeJ -- node handles (see Grid)
//	ei           -- flexural rigidity
//	gj           -- torsional rigidity
func (o *Grid) AddMember(nodeI, nodeJ interface{}, ei, gj float64) *Member {
	ni := o.GetNode(nodeI)
	nj := o.GetNode(nodeJ)
	if ni == nj {
		chk.Panic("member ends must be distinct nodes: %q given twice", ni.Label)
	}
	m := NewMember(len(o.Members), ni, nj, ei, gj)
	o.Members = append(o.Members, m)
	return m
}

// AddLoad sets the externally-applied load at a node
func (o *Grid) AddLoad(node interface{}, fz, mx, my float64) {
	o.GetNode(node).SetLoad(fz, mx, my)
}

// AddSupport adds a support to a node. The support handle may be a Support
// value or a one-character descriptor string; see ParseSupport.
func (o *Grid) AddSupport(node, support interface{}) {
	n := o.GetNode(node)
	switch sup := support.(type) {
	case Support:
		n.SetSupport(sup)
	case string:
		n.SetSupport(ParseSupport(sup))
	default:
		chk.Panic("support handle must be a Support or a descriptor string. %v is invalid", support)
	}
}

// GetNode returns the node corresponding to a handle
func (o *Grid) GetNode(node interface{}) *Node {
	switch hnd := node.(type) {
	case *Node:
		return hnd
	case string:
		n, ok := o.label2node[hnd]
		if !ok {
			chk.Panic("cannot find node %q - is it defined?", hnd)
		}
		return n
	case int:
		if hnd < 0 || hnd >= len(o.Nodes) {
			chk.Panic("node index %d is out of range. 0 ≤ index < %d is required", hnd, len(o.Nodes))
		}
		return o.Nodes[hnd]
	}
	chk.Panic("either node object, label, or node index must be passed. %v is invalid", node)
	return nil
}

// GetMember returns the member corresponding to a handle
func (o *Grid) GetMember(member interface{}) *Member {
	switch hnd := member.(type) {
	case *Member:
		return hnd
	case int:
		if hnd < 0 || hnd >= len(o.Members) {
			chk.Panic("member index %d is out of range. 0 ≤ index < %d is required", hnd, len(o.Members))
		}
		return o.Members[hnd]
	case [2]string:
		return o.GetMemberByNodes(hnd[0], hnd[1])
	}
	chk.Panic("either member object, index, or pair of node labels must be passed. %v is invalid", member)
	return nil
}

// GetMemberByNodes returns the member connecting two nodes given their
// labels, in any order
func (o *Grid) GetMemberByNodes(labelI, labelJ string) *Member {
	for _, m := range o.Members {
		if (m.NodeI.Label == labelI && m.NodeJ.Label == labelJ) ||
			(m.NodeI.Label == labelJ && m.NodeJ.Label == labelI) {
			return m
		}
	}
	chk.Panic("member with nodes %q and %q could not be found", labelI, labelJ)
	return nil
}

// Limits returns the bounding box of the grid
func (o *Grid) Limits() (xmin, xmax, ymin, ymax float64) {
	for i, n := range o.Nodes {
		if i == 0 {
			xmin, xmax, ymin, ymax = n.X, n.X, n.Y, n.Y
			continue
		}
		xmin = utl.Min(xmin, n.X)
		xmax = utl.Max(xmax, n.X)
		ymin = utl.Min(ymin, n.Y)
		ymax = utl.Max(ymax, n.Y)
	}
	return
}

// Size returns the largest plan dimension of the grid
func (o *Grid) Size() float64 {
	xmin, xmax, ymin, ymax := o.Limits()
	return utl.Max(xmax-xmin, ymax-ymin)
}

// Check verifies that the grid defines a solvable model
func (o *Grid) Check() (err error) {
	if len(o.Nodes) < 2 {
		return chk.Err("grid must have at least two nodes. %d given", len(o.Nodes))
	}
	if len(o.Members) < 1 {
		return chk.Err("grid must have at least one member")
	}
	nsup := 0
	for _, n := range o.Nodes {
		if n.Sup != Free {
			nsup++
		}
	}
	if nsup == 0 {
		return chk.Err("grid must have at least one supported node")
	}
	return
}
