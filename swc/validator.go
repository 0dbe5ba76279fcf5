package swc

// sampleIndex holds the two lookup structures built from the flat sample
// list, plus the derived soma/root subsets the soma classifier and tree
// assembler consume.
type sampleIndex struct {
	byID        map[SampleID]Sample
	childrenOf  map[SampleID][]SampleID
	somaSamples []Sample
	rootSamples []Sample
}

// validate runs a single forward pass over the flat sample list: it builds
// byID and childrenOf, enforces per-sample invariants, and
// on a second pass over the flat list rejects any non-root sample whose
// parent never appeared (forward references are legal; dangling ones are
// not).
func validate(samples []Sample, path string, warn WarningSink) (*sampleIndex, error) {
	idx := &sampleIndex{
		byID:       make(map[SampleID]Sample, len(samples)),
		childrenOf: make(map[SampleID][]SampleID, len(samples)),
	}

	for _, s := range samples {
		if s.Diameter < Epsilon {
			warn.Warn(Warning{Kind: ZeroDiameter, SampleID: s.ID, Line: s.Line})
		}
		if s.ParentID == s.ID {
			return nil, &LoadError{Code: ErrSelfParent, Path: path, Line: s.Line, SampleID: s.ID, ParentID: NoParent}
		}
		if s.Type <= 0 || s.Type >= SectionTypeOutOfRangeStart {
			return nil, &LoadError{Code: ErrUnsupportedSectionType, Path: path, Line: s.Line, SampleID: s.ID, ParentID: NoParent}
		}
		if s.ParentID == NoParent && s.Type != Soma {
			warn.Warn(Warning{Kind: DisconnectedNeurite, SampleID: s.ID, Line: s.Line})
		}
		if s.Type == Soma {
			idx.somaSamples = append(idx.somaSamples, s)
		}
		if s.ParentID == NoParent || s.Type == Soma {
			idx.rootSamples = append(idx.rootSamples, s)
		}
		if _, exists := idx.byID[s.ID]; exists {
			return nil, &LoadError{Code: ErrRepeatedID, Path: path, Line: s.Line, SampleID: s.ID, ParentID: NoParent}
		}
		idx.byID[s.ID] = s
		idx.childrenOf[s.ParentID] = append(idx.childrenOf[s.ParentID], s.ID)
	}

	for _, s := range samples {
		if s.ParentID == NoParent || s.Type == Soma {
			continue
		}
		if _, ok := idx.byID[s.ParentID]; !ok {
			return nil, &LoadError{Code: ErrMissingParent, Path: path, Line: s.Line, SampleID: s.ID, ParentID: s.ParentID}
		}
	}

	return idx, nil
}
