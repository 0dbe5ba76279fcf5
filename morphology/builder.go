// SPDX-License-Identifier: MIT
// Package: morphio/morphology

package morphology

import "github.com/nrngo/morphio/swc"

// Builder is the concrete mutable-morphology-builder swc.Load assembles
// into. It satisfies swc.Builder[Properties].
type Builder struct {
	cfg      builderConfig
	soma     Soma
	sections []Section
	built    bool
}

// NewBuilder constructs an empty Builder, applying any BuilderOption in
// order.
func NewBuilder(opts ...BuilderOption) *Builder {
	return &Builder{cfg: newBuilderConfig(opts...)}
}

// somaSetter adapts Builder to swc.SomaBuilder without exposing the whole
// Builder as a soma-mutation surface.
type somaSetter struct{ b *Builder }

// SetShape implements swc.SomaBuilder.
func (s somaSetter) SetShape(kind swc.SomaShapeKind, points []swc.Point, diameters []float64) {
	s.b.soma = Soma{Shape: kind, Points: points, Diameters: diameters}
}

// Soma implements swc.Builder.
func (b *Builder) Soma() swc.SomaBuilder {
	return somaSetter{b: b}
}

// AppendRootSection implements swc.Builder.
func (b *Builder) AppendRootSection(points []swc.Point, diameters []float64, typ swc.SectionType) swc.SectionHandle {
	return b.appendSection(points, diameters, typ, -1)
}

func (b *Builder) appendSection(points []swc.Point, diameters []float64, typ swc.SectionType, parent int) swc.SectionHandle {
	if b.built {
		panic("morphology: AppendSection after BuildReadOnly")
	}
	idx := len(b.sections)
	b.sections = append(b.sections, Section{
		Points:    points,
		Diameters: diameters,
		Type:      typ,
		Parent:    parent,
	})
	if parent >= 0 {
		b.sections[parent].Children = append(b.sections[parent].Children, idx)
	}
	if b.cfg.onSection != nil {
		b.cfg.onSection(idx, typ, parent < 0)
	}
	return &sectionHandle{b: b, index: idx}
}

// sectionHandle is a tagged-integer newtype: it carries the section's
// index in Builder.sections, never a raw sample id, so the two can never
// be confused.
type sectionHandle struct {
	b     *Builder
	index int
}

// AppendSection implements swc.SectionHandle.
func (h *sectionHandle) AppendSection(points []swc.Point, diameters []float64, typ swc.SectionType) swc.SectionHandle {
	return h.b.appendSection(points, diameters, typ, h.index)
}

// ApplyModifiers implements swc.Builder. options is the bit-field Load
// forwards opaquely from its caller.
func (b *Builder) ApplyModifiers(options uint64) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	opts := Options(options)
	if opts&^allOptions != 0 {
		return ErrUnknownOption
	}
	if opts.Has(RecenterSoma) {
		b.recenterSoma()
	}
	if opts.Has(UnifyBranchOrders) {
		b.unifyBranchOrders()
	}
	if opts.Has(NoDuplicates) {
		b.stripDuplicateForkPoints()
	}
	return nil
}

// BuildReadOnly implements swc.Builder, freezing the assembled state.
func (b *Builder) BuildReadOnly() Properties {
	b.built = true
	return Properties{
		CellFamily: Neuron,
		Version:    Version{Kind: "swc", Major: 1, Minor: 0},
		Soma:       b.soma,
		Sections:   b.sections,
	}
}

// recenterSoma translates every point in the soma and every section so
// the soma's centroid sits at the origin.
func (b *Builder) recenterSoma() {
	if len(b.soma.Points) == 0 {
		return
	}
	var cx, cy, cz float64
	for _, p := range b.soma.Points {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(b.soma.Points))
	centroid := swc.Point{X: cx / n, Y: cy / n, Z: cz / n}

	translate := func(pts []swc.Point) {
		for i := range pts {
			pts[i].X -= centroid.X
			pts[i].Y -= centroid.Y
			pts[i].Z -= centroid.Z
		}
	}
	translate(b.soma.Points)
	for i := range b.sections {
		translate(b.sections[i].Points)
	}
}

// unifyBranchOrders assigns each section's Order as its depth from its
// root section, via a breadth-first walk of the section forest, so
// consumers see contiguous branch numbering regardless of how many
// soma-typed samples assembly skipped on the way there.
func (b *Builder) unifyBranchOrders() {
	var roots []int
	for i, s := range b.sections {
		if s.Parent < 0 {
			roots = append(roots, i)
		}
	}
	queue := append([]int{}, roots...)
	depth := make(map[int]int, len(b.sections))
	for _, r := range roots {
		depth[r] = 0
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range b.sections[cur].Children {
			depth[child] = depth[cur] + 1
			queue = append(queue, child)
		}
	}
	for i := range b.sections {
		b.sections[i].Order = depth[i]
	}
}

// stripDuplicateForkPoints removes the duplicated fork point assembly
// inserted at the head of every non-root section, trading the
// self-contained-geometry property of each section's own points for a
// smaller point count.
func (b *Builder) stripDuplicateForkPoints() {
	for i := range b.sections {
		s := &b.sections[i]
		if s.Parent < 0 || len(s.Points) < 2 {
			continue
		}
		parent := b.sections[s.Parent]
		if len(parent.Points) == 0 {
			continue
		}
		last := parent.Points[len(parent.Points)-1]
		if s.Points[0] == last {
			s.Points = s.Points[1:]
			s.Diameters = s.Diameters[1:]
		}
	}
}
