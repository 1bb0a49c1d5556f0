// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grd implements the data structures defining a plane grid
// (grillage): nodes, members and supports
package grd

import "github.com/cpmech/gosl/chk"

// Support defines the fixity of a grid node. Each node has three degrees of
// freedom: the vertical deflection uz and the rotations rx and ry.
type Support int

const (

	// Free means no support at all
	Free Support = iota

	// PinnedX holds the node down but lets it rotate about the x-axis
	PinnedX

	// PinnedY holds the node down but lets it rotate about the y-axis
	PinnedY

	// Prop holds the node down and lets it rotate about both axes
	Prop

	// Fixed restrains all three degrees of freedom
	Fixed

	// FixedVRoller restrains both rotations but lets the node move vertically
	FixedVRoller
)

// Fixity returns the restrained DOFs in the order (uz, rx, ry)
func (o Support) Fixity() (uz, rx, ry bool) {
	switch o {
	case Free:
		return false, false, false
	case PinnedX:
		return true, false, true
	case PinnedY:
		return true, true, false
	case Prop:
		return true, false, false
	case Fixed:
		return true, true, true
	case FixedVRoller:
		return false, true, true
	}
	chk.Panic("support type %d is unavailable", int(o))
	return
}

// Code returns the one-character support descriptor
func (o Support) Code() string {
	switch o {
	case PinnedX:
		return "X"
	case PinnedY:
		return "Y"
	case Prop:
		return "P"
	case Fixed:
		return "F"
	case FixedVRoller:
		return "V"
	}
	return ""
}

// String returns the support name
func (o Support) String() string {
	switch o {
	case Free:
		return "free"
	case PinnedX:
		return "pinned-x"
	case PinnedY:
		return "pinned-y"
	case Prop:
		return "prop"
	case Fixed:
		return "fixed"
	case FixedVRoller:
		return "fixed-v-roller"
	}
	return "unknown"
}

// ParseSupport converts a one-character support descriptor as follows:
//
//	""  => Free
//	"X" => PinnedX
//	"Y" => PinnedY
//	"P" => Prop
//	"F" => Fixed
//	"V" => FixedVRoller
func ParseSupport(code string) Support {
	switch code {
	case "":
		return Free
	case "X":
		return PinnedX
	case "Y":
		return PinnedY
	case "P":
		return Prop
	case "F":
		return Fixed
	case "V":
		return FixedVRoller
	}
	chk.Panic("support code %q is unavailable", code)
	return Free
}
