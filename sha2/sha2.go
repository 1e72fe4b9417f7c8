package sha2

import (
	"encoding/hex"
	"fmt"
)

// Digest is the output of Sum: 28 bytes for SHA224, 32 for SHA256.
type Digest []byte

// Hex returns the lowercase hexadecimal form of d.
func (d Digest) Hex() string {
	return hex.EncodeToString(d)
}

func (d Digest) String() string {
	return d.Hex()
}

// Sum computes the digest of msg for variant v. The only error is
// ErrUnsupportedVariant.
func Sum(msg []byte, v Variant) (Digest, error) {
	const errCtx = "computing digest"

	st, err := newState(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	padded := pad(msg)

	// Blocks chain through st and must be processed in order.
	for off := 0; off < len(padded); off += BlockSize {
		w := expand(padded[off : off+BlockSize])
		st = compress(st, &w)
	}

	return st.export(), nil
}

// MustSum is like Sum but panics on an unsupported variant.
func MustSum(msg []byte, v Variant) Digest {
	d, err := Sum(msg, v)
	if err != nil {
		panic(err)
	}

	return d
}

// Sum224 returns the SHA-224 digest of msg.
func Sum224(msg []byte) [Size224]byte {
	var out [Size224]byte

	copy(out[:], MustSum(msg, SHA224))

	return out
}

// Sum256 returns the SHA-256 digest of msg.
func Sum256(msg []byte) [Size256]byte {
	var out [Size256]byte

	copy(out[:], MustSum(msg, SHA256))

	return out
}
