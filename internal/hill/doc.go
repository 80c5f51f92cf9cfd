// Package hill implements Hill cipher encryption over the lowercase alphabet a-z.
//
// It covers the three stages of a run:
//   - loading and validating an N×N key matrix (2 ≤ N ≤ 9)
//   - sanitizing arbitrary text down to a bounded sequence of letters
//   - padding, splitting into N-letter column vectors and multiplying by the key modulo 26
//
// Decryption is not provided and keys are not checked for invertibility.
package hill
