// Package sha2 computes SHA-224 and SHA-256 digests as defined in
// FIPS 180-4. A message is padded to a multiple of 64 bytes, split into
// 512-bit blocks, and each block is expanded into a 64-word schedule
// and folded into an 8-word state by the 64-round compression function.
//
// Sum is the single entry point. It is a pure function of its input:
// every call owns its state, and the round constants and initial hash
// values are read-only package data, so concurrent calls need no
// coordination. The package does not stream, and it makes no
// constant-time guarantees.
package sha2
