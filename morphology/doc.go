// Package morphology implements the mutable-morphology-builder collaborator
// that package swc assembles a soma and section forest into, and the
// immutable Properties value the build freezes into.
//
// swc treats Properties, Section, and Soma as opaque; this package is the
// one concrete instance of that builder contract: a resolved,
// functional-options Options value (BuilderOption, DefaultOptions),
// sentinel errors, and a thin facade (NewBuilder) over the mutation logic.
package morphology
