// SPDX-License-Identifier: MIT
// Package: morphio/morphology

package morphology

import "github.com/nrngo/morphio/swc"

// Options is the post-processing bit-field swc.Load forwards opaquely
// through to Builder.ApplyModifiers. swc never interprets these bits;
// only this package does.
type Options uint64

const (
	// RecenterSoma translates every point in the morphology so the soma's
	// centroid sits at the origin.
	RecenterSoma Options = 1 << iota
	// UnifyBranchOrders renumbers each root section's descendants so
	// branch order is contiguous starting at zero, independent of gaps
	// left by skipped soma-typed samples during assembly.
	UnifyBranchOrders
	// NoDuplicates strips the duplicated fork point from the head of
	// every non-root section, trading geometric self-containedness for a
	// smaller point count.
	NoDuplicates

	allOptions = RecenterSoma | UnifyBranchOrders | NoDuplicates
)

// Has reports whether bit is set in o.
func (o Options) Has(bit Options) bool {
	return o&bit != 0
}

// DefaultOptions is the empty bit-field: no post-processing.
func DefaultOptions() Options {
	return 0
}

// builderConfig aggregates the knobs NewBuilder accepts, resolved once at
// construction from the functional options passed in.
type builderConfig struct {
	onSection func(index int, typ swc.SectionType, isRoot bool)
}

// BuilderOption customizes a Builder at construction time.
type BuilderOption func(*builderConfig)

// WithOnSection registers a hook invoked synchronously every time a
// section is appended (root or child). Useful for CLI progress lines or
// test assertions on emission order.
func WithOnSection(fn func(index int, typ swc.SectionType, isRoot bool)) BuilderOption {
	return func(c *builderConfig) {
		c.onSection = fn
	}
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
