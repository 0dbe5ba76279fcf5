// Package swc reads SWC neuron-morphology text files into an in-memory
// soma + section forest.
//
// SWC is a line-oriented, whitespace-separated format: every non-comment
// line declares one sample point (id, structural type, x, y, z, radius,
// parent id). Loading a file is a single synchronous call that performs,
// in order:
//
//   - a tolerant lexical pass (readSamples) that yields samples in source
//     order, independent of declaration order between parent and child;
//   - a structural validation pass (validate) that indexes samples by id
//     and by parent id, and rejects self-parents, duplicate ids, dangling
//     references, and out-of-range structural types;
//   - soma classification (classifySoma), choosing one of four soma
//     shapes from the samples whose type is Soma;
//   - tree assembly (assemble), which collapses maximal unbranched chains
//     of same-type samples into sections and emits them, with duplicated
//     fork points, into a caller-supplied Builder.
//
// The package owns no I/O: Load takes the file contents as an already-read
// byte slice, and reports fatal failures as *LoadError together with any
// accumulated warnings via the caller's WarningSink.
package swc
