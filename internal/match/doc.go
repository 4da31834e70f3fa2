// Package match provides fuzzy identifier matching used to attach
// "did you mean" suggestions to declaration errors.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalized similarity of two identifiers
//   - Suggest: ranks candidate identifiers close to a wanted one
package match
