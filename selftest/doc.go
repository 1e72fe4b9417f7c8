// Package selftest runs known-answer vectors through the sha2 package.
//
// Vectors are described in YAML. A stream may hold several documents,
// and each document is either a single vector or a list of vectors. A
// vector names its variant, its input (literal text, or hex bytes via
// input_hex, optionally repeated) and the expected lowercase hex
// digest. Default returns the published FIPS 180-4 vectors embedded in
// the binary.
package selftest
