package swc

// SectionHandle is the opaque handle a Builder returns for an emitted
// section. Only the builder that created it knows how to extend it;
// swc treats it as a capability to append one more section.
type SectionHandle interface {
	// AppendSection appends a child section to the section this handle
	// refers to and returns a handle to the new section.
	AppendSection(points []Point, diameters []float64, typ SectionType) SectionHandle
}

// SomaBuilder receives the classified soma.
type SomaBuilder interface {
	SetShape(kind SomaShapeKind, points []Point, diameters []float64)
}

// Builder is the mutable-morphology-builder collaborator: the external
// component that owns the assembled output. P is the immutable value type
// BuildReadOnly produces.
type Builder[P any] interface {
	Soma() SomaBuilder
	AppendRootSection(points []Point, diameters []float64, typ SectionType) SectionHandle
	ApplyModifiers(options uint64) error
	BuildReadOnly() P
}

// ErrorFormatter produces human-readable diagnostic strings from
// structured inputs. swc never hardcodes message prose; it calls the
// formatter (when non-nil) to attach Detail to a *LoadError before
// returning it.
type ErrorFormatter interface {
	FormatSample(code ErrorCode, path string, s Sample) string
	FormatSamplePair(code ErrorCode, path string, child, parent Sample) string
	FormatLine(code ErrorCode, path string, line int) string
}

// Load reads SWC text in contents, assembles a soma and section forest
// into b, and returns the builder's frozen output. path is used only for
// diagnostics. options is forwarded opaquely to b.ApplyModifiers; swc does
// not interpret its bits. fmtr may be nil, in which case LoadError.Detail
// is left empty and callers format messages from Code/Line/SampleID
// themselves.
//
// Load is synchronous: it returns only once the full forest has been
// assembled or a fatal error has been hit. warn is invoked synchronously,
// in pass order (validator, then soma classifier, then assembler) and, in
// each pass, in source order.
func Load[P any](path string, contents []byte, options uint64, b Builder[P], warn WarningSink, fmtr ErrorFormatter) (P, error) {
	var zero P
	if warn == nil {
		warn = DiscardWarnings{}
	}

	samples, err := readSamples(contents)
	if err != nil {
		return zero, attachDetail(err, path, fmtr)
	}

	idx, err := validate(samples, path, warn)
	if err != nil {
		return zero, attachDetail(err, path, fmtr)
	}

	shape, err := classifySoma(idx, path, warn)
	if err != nil {
		return zero, attachDetail(err, path, fmtr)
	}
	b.Soma().SetShape(shape.kind, shape.points, shape.diameters)

	if err := assemble(b, idx, shape, warn); err != nil {
		return zero, attachDetail(err, path, fmtr)
	}

	if err := b.ApplyModifiers(options); err != nil {
		return zero, err
	}

	return b.BuildReadOnly(), nil
}

func attachDetail(err error, path string, fmtr ErrorFormatter) error {
	le, ok := err.(*LoadError)
	if !ok || fmtr == nil || le.Detail != "" {
		return err
	}
	le.Path = path
	switch {
	case le.SampleID != NoParent && le.ParentID != NoParent:
		le.Detail = fmtr.FormatSamplePair(le.Code, path, Sample{ID: le.SampleID}, Sample{ID: le.ParentID})
	case le.SampleID != NoParent:
		le.Detail = fmtr.FormatSample(le.Code, path, Sample{ID: le.SampleID, Line: le.Line})
	default:
		le.Detail = fmtr.FormatLine(le.Code, path, le.Line)
	}
	return le
}
