// Package render turns raw sha2 digests into text. Encode supports plain
// lowercase hex and base64 as well as the multiformats family: a
// self-describing multihash, its base16 multibase form, and a CIDv1 for
// the raw codec. Line formats a Record with single-brace {name}
// placeholders, and JSON marshals it for machine consumption.
package render
