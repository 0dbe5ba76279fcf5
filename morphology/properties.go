// SPDX-License-Identifier: MIT
// Package: morphio/morphology

package morphology

import "github.com/nrngo/morphio/swc"

// CellFamily identifies the broad kind of cell a morphology describes.
// This reader always produces Neuron; other families (Glia, ...) belong
// to readers this module does not implement.
type CellFamily int

const (
	Neuron CellFamily = iota
	Glia
)

// String renders the cell family name.
func (f CellFamily) String() string {
	switch f {
	case Neuron:
		return "neuron"
	case Glia:
		return "glia"
	default:
		return "unknown"
	}
}

// Version identifies the source format and its revision.
type Version struct {
	Kind  string
	Major int
	Minor int
}

// Soma is the frozen, classified soma: its shape plus parallel
// points/diameters.
type Soma struct {
	Shape     swc.SomaShapeKind
	Points    []swc.Point
	Diameters []float64
}

// Section is one frozen section: a maximal chain of same-type samples,
// collapsed during assembly, with a duplicated fork point at the head of
// every non-root section (unless Options.NoDuplicates stripped it).
type Section struct {
	Points    []swc.Point
	Diameters []float64
	Type      swc.SectionType

	// Parent is the index into Properties.Sections of this section's
	// parent, or -1 for a root section.
	Parent int
	// Children holds the indices of this section's direct children, in
	// the order they were appended.
	Children []int
	// Order is this section's depth from its root section. Zero unless
	// Options.UnifyBranchOrders was set.
	Order int
}

// Properties is the immutable value BuildReadOnly produces: the plain
// data a downstream geometric-query layer would read from. This module
// implements no geometric queries itself.
type Properties struct {
	CellFamily CellFamily
	Version    Version
	Soma       Soma
	Sections   []Section
}
