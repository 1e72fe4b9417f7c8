package sha2

// Exported aliases for testing unexported helpers from
// the sha2_test package.

// PadForTest exposes pad.
var PadForTest = pad

// ExpandForTest exposes expand.
var ExpandForTest = expand

// BytesToWordForTest exposes bytesToWord.
var BytesToWordForTest = bytesToWord

// WordToBytesForTest exposes wordToBytes.
var WordToBytesForTest = wordToBytes

// InitialWordsForTest returns the initial state words
// for v.
func InitialWordsForTest(v Variant) ([8]uint32, error) {
	st, err := newState(v)

	return st.words, err
}

// RotateForTest applies one state rotation to words.
func RotateForTest(
	words [8]uint32,
	t1 uint32,
	t2 uint32,
) [8]uint32 {
	return state{words: words, variant: SHA256}.rotate(t1, t2).words
}

// CompressBlockForTest compresses a single 64-byte
// block into the initial state of v and exports it.
func CompressBlockForTest(v Variant, block []byte) []byte {
	st, err := newState(v)
	if err != nil {
		panic(err)
	}

	w := expand(block)

	return compress(st, &w).export()
}
