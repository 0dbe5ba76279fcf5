package swc

// readSamples drives the tokenizer to materialize a flat, ordered list of
// Sample records, one per non-empty non-comment line. It enforces
// per-line shape: exactly seven numeric fields terminated by newline or
// EOF. No sorting is performed; samples are returned in source order.
func readSamples(contents []byte) ([]Sample, error) {
	t := newTokenizer(contents)

	// Skip a possible comment/blank prelude before the first record.
	t.consumeLineAndTrailingComments()

	var samples []Sample
	for !t.done() {
		line := t.line

		id, err := t.readInt()
		if err != nil {
			return nil, err
		}
		if id < 0 {
			return nil, &LoadError{Code: ErrNegativeID, Line: line, SampleID: SampleID(id), ParentID: NoParent}
		}

		rawType, err := t.readInt()
		if err != nil {
			return nil, err
		}

		x, err := t.readFloat()
		if err != nil {
			return nil, err
		}
		y, err := t.readFloat()
		if err != nil {
			return nil, err
		}
		z, err := t.readFloat()
		if err != nil {
			return nil, err
		}

		radius, err := t.readFloat()
		if err != nil {
			return nil, err
		}

		rawParent, err := t.readInt()
		if err != nil {
			return nil, err
		}
		if rawParent < -1 {
			return nil, &LoadError{Code: ErrNegativeID, Line: line, SampleID: SampleID(id), ParentID: SampleID(rawParent)}
		}
		parent := NoParent
		if rawParent != -1 {
			parent = SampleID(rawParent)
		}

		if !t.consumeLineAndTrailingComments() {
			return nil, &LoadError{Code: ErrLineNonParsable, Line: line, SampleID: SampleID(id), ParentID: NoParent}
		}

		samples = append(samples, Sample{
			ID:       SampleID(id),
			Type:     SectionType(rawType),
			Point:    Point{X: x, Y: y, Z: z},
			Diameter: 2 * radius,
			ParentID: parent,
			Line:     line,
		})
	}
	return samples, nil
}
