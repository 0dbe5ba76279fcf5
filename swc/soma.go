package swc

import "math"

// somaShape is the classified soma: its variant plus the parallel
// points/diameters the builder's soma receives.
type somaShape struct {
	kind      SomaShapeKind
	points    []Point
	diameters []float64
}

// classifySoma selects one of the four soma shapes from idx.somaSamples
// (already gathered in source order by validate) and runs the shape's
// conformance checks.
func classifySoma(idx *sampleIndex, path string, warn WarningSink) (somaShape, error) {
	samples := idx.somaSamples

	switch {
	case len(samples) == 0:
		return somaShape{kind: SomaUndefined}, nil

	case len(samples) == 1:
		s := samples[0]
		if s.ParentID != NoParent {
			parent, ok := idx.byID[s.ParentID]
			if ok && parent.Type != Soma {
				return somaShape{}, &LoadError{Code: ErrSomaWithNeuriteParent, Path: path, Line: s.Line, SampleID: s.ID, ParentID: NoParent}
			}
		}
		return somaShape{
			kind:      SomaSinglePoint,
			points:    []Point{s.Point},
			diameters: []float64{s.Diameter},
		}, nil

	case len(samples) == 3 && samples[1].ParentID == samples[0].ID && samples[2].ParentID == samples[0].ID:
		shape := somaShape{
			kind:      SomaNeuromorphoThreePointCylinders,
			points:    []Point{samples[0].Point, samples[1].Point, samples[2].Point},
			diameters: []float64{samples[0].Diameter, samples[1].Diameter, samples[2].Diameter},
		}
		checkNeuromorphoConformance(samples, warn)
		return shape, nil

	default:
		return classifyCylinders(samples, idx, path, warn)
	}
}

// checkNeuromorphoConformance checks the neuromorpho three-point soma
// convention: the canonical arrangement requires children at
// (x, y-r, z, d) and (x, y+r, z, d) exactly. The warning fires only when
// the arrangement is not canonical but both children coincide with the
// center in x, z, and diameter within Epsilon -- i.e. the shape "looks
// like" a neuromorpho three-point soma but is off along y.
func checkNeuromorphoConformance(samples []Sample, warn WarningSink) {
	center, c1, c2 := samples[0], samples[1], samples[2]
	r := center.Diameter / 2

	canonical := c1.Point == Point{X: center.Point.X, Y: center.Point.Y - r, Z: center.Point.Z} &&
		c2.Point == Point{X: center.Point.X, Y: center.Point.Y + r, Z: center.Point.Z} &&
		c1.Diameter == center.Diameter && c2.Diameter == center.Diameter
	if canonical {
		return
	}

	coincident := func(s Sample) bool {
		return math.Abs(s.Point.X-center.Point.X) < Epsilon &&
			math.Abs(s.Point.Z-center.Point.Z) < Epsilon &&
			math.Abs(s.Diameter-center.Diameter) < Epsilon
	}
	if coincident(c1) && coincident(c2) {
		warn.Warn(Warning{Kind: SomaNonConform, SampleID: center.ID, Line: center.Line})
	}
}

// classifyCylinders handles every soma sample count/shape that isn't
// single-point or the canonical three-point layout: a linear chain of
// samples, in source order.
func classifyCylinders(samples []Sample, idx *sampleIndex, path string, warn WarningSink) (somaShape, error) {
	shape := somaShape{kind: SomaCylinders}

	noParentCount := 0
	for _, s := range samples {
		shape.points = append(shape.points, s.Point)
		shape.diameters = append(shape.diameters, s.Diameter)

		if s.ParentID == NoParent {
			noParentCount++
			continue
		}
		parent, ok := idx.byID[s.ParentID]
		if !ok {
			return somaShape{}, &LoadError{Code: ErrMissingParent, Path: path, Line: s.Line, SampleID: s.ID, ParentID: s.ParentID}
		}
		if parent.Type != Soma {
			return somaShape{}, &LoadError{Code: ErrSomaWithNeuriteParent, Path: path, Line: s.Line, SampleID: s.ID, ParentID: NoParent}
		}
	}
	if noParentCount > 1 {
		return somaShape{}, &LoadError{Code: ErrMultipleSomata, Path: path, SampleID: NoParent, ParentID: NoParent}
	}

	for _, s := range samples {
		children := idx.childrenOf[s.ID]
		if len(children) <= 1 {
			continue
		}
		somaChildren := 0
		for _, childID := range children {
			if child, ok := idx.byID[childID]; ok && child.Type == Soma {
				somaChildren++
			}
		}
		if somaChildren > 1 {
			return somaShape{}, &LoadError{Code: ErrSomaBifurcation, Path: path, Line: s.Line, SampleID: s.ID, ParentID: NoParent}
		}
	}

	return shape, nil
}
