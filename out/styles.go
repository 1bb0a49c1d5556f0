// Copyright 2022 The Ospgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/plt"

// plot formats
var (

	// StyModel is the format of grid members in plan views
	StyModel = &plt.A{C: "k", Lw: 2, NoClip: true}

	// StyModelThin is the format of the background model under diagrams
	StyModelThin = &plt.A{C: "k", Lw: 0.8, NoClip: true}

	// StyNode is the format of node markers
	StyNode = &plt.A{C: "k", M: "o", NoClip: true}

	// StyDefo is the format of the deflected shape
	StyDefo = &plt.A{C: "red", Lw: 1.5, NoClip: true}

	// StyDiag is the format of diagram hatching lines
	StyDiag = &plt.A{C: "#919191", Lw: 1, NoClip: true}

	// StyDiagMin and StyDiagMax highlight the extreme stations
	StyDiagMin = &plt.A{C: "#9f0000", Lw: 2, NoClip: true}
	StyDiagMax = &plt.A{C: "#109f24", Lw: 2, NoClip: true}

	// StyDiagOutline is the format of the diagram outline polyline
	StyDiagOutline = &plt.A{C: "k", Lw: 1, NoClip: true}
)
