package sha2

import "fmt"

// Working word indexes.
const (
	wordA = iota
	wordB
	wordC
	wordD
	wordE
	wordF
	wordG
	wordH
	stateWords
)

// Initial hash values. The SHA-224 set is the second 32 bits of the
// fractional parts of the square roots of the 9th through 16th primes;
// the SHA-256 set is the first 32 bits for the first 8 primes.
var (
	initial224 = [stateWords]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
	initial256 = [stateWords]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
)

// state holds the working words a..h of one digest computation. It is
// a value: rotate and add return the successor instead of mutating.
type state struct {
	words   [stateWords]uint32
	variant Variant
}

// newState loads the initial hash values for v.
func newState(v Variant) (state, error) {
	const errCtx = "initializing state"

	switch v {
	case SHA224:
		return state{words: initial224, variant: v}, nil
	case SHA256:
		return state{words: initial256, variant: v}, nil
	default:
		return state{}, fmt.Errorf(
			"%s: %w: %d", errCtx, ErrUnsupportedVariant, int(v),
		)
	}
}

// rotate shifts every word one position down (h drops out) and
// injects the round temporaries: e becomes d+t1 and a becomes t1+t2.
func (st state) rotate(t1, t2 uint32) state {
	var next [stateWords]uint32

	copy(next[wordB:], st.words[:wordH])
	next[wordE] += t1
	next[wordA] = t1 + t2

	st.words = next

	return st
}

// add returns st with v added word by word modulo 2^32.
func (st state) add(v [stateWords]uint32) state {
	for i := range st.words {
		st.words[i] += v[i]
	}

	return st
}

// export serializes the words big-endian. SHA-224 drops word h.
func (st state) export() []byte {
	out := make([]byte, st.variant.Size())

	for i := 0; i*4 < len(out); i++ {
		wordToBytes(out[i*4:], st.words[i])
	}

	return out
}
