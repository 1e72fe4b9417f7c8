package sha2

// lengthSize is the size of the trailing bit-length field.
const lengthSize = 8

// pad returns a copy of msg extended with the 0x80 marker, zero bytes
// and the big-endian bit length of msg, so that the result is a
// multiple of BlockSize. msg is not modified.
func pad(msg []byte) []byte {
	// uint64 arithmetic wraps at exactly 2^64 regardless of the host
	// word size.
	bitLen := uint64(len(msg)) * 8

	n := len(msg) + 1 + lengthSize
	if rem := n % BlockSize; rem != 0 {
		n += BlockSize - rem
	}

	out := make([]byte, n)
	copy(out, msg)
	out[len(msg)] = 0x80

	wordToBytes(out[n-8:], uint32(bitLen>>32))
	wordToBytes(out[n-4:], uint32(bitLen))

	return out
}
