package sha2

// bytesToWord reads a big-endian word from the first 4 bytes of b.
func bytesToWord(b []byte) uint32 {
	_ = b[3] // bounds check hint

	return uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
}

// wordToBytes writes w big-endian into the first 4 bytes of dst.
func wordToBytes(dst []byte, w uint32) {
	_ = dst[3]

	dst[0] = byte(w >> 24)
	dst[1] = byte(w >> 16)
	dst[2] = byte(w >> 8)
	dst[3] = byte(w)
}
