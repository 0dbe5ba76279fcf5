package morphology

import "github.com/nrngo/morphio/swc"

// WalkOptions configures Walk.
type WalkOptions struct {
	// OnExit, if set, runs after a section's whole subtree has been
	// visited, mirroring a post-order DFS hook. An error aborts the walk.
	OnExit func(index int, typ swc.SectionType) error
}

// WalkOption customizes a Walk call.
type WalkOption func(*WalkOptions)

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(index int, typ swc.SectionType) error) WalkOption {
	return func(o *WalkOptions) {
		o.OnExit = fn
	}
}

// Walk traverses props.Sections depth-first in source order, starting from
// every root section, calling visit in pre-order. Traversal uses an
// explicit stack rather than recursion, so it costs no stack depth
// proportional to Sections' length.
//
// visit returning an error aborts the walk and Walk returns that error.
func Walk(props Properties, visit func(index int, section Section) error, opts ...WalkOption) error {
	cfg := WalkOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var roots []int
	for i, s := range props.Sections {
		if s.Parent < 0 {
			roots = append(roots, i)
		}
	}

	type frame struct {
		index    int
		exited   bool
		children []int
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{index: roots[i]})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if !top.exited {
			section := props.Sections[top.index]
			if err := visit(top.index, section); err != nil {
				return err
			}
			top.exited = true
			top.children = section.Children
			for i := len(top.children) - 1; i >= 0; i-- {
				stack = append(stack, frame{index: top.children[i]})
			}
			continue
		}

		if cfg.OnExit != nil {
			if err := cfg.OnExit(top.index, props.Sections[top.index].Type); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}
