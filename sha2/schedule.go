package sha2

import "math/bits"

// scheduleLen is the number of words expanded from one block.
const scheduleLen = 64

// sigma0 is the σ0 schedule function.
func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

// sigma1 is the σ1 schedule function.
func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// expand derives the message schedule of one 64-byte block. Words 0-15
// are the block itself; later words depend only on earlier words.
func expand(block []byte) [scheduleLen]uint32 {
	_ = block[BlockSize-1]

	var w [scheduleLen]uint32

	for i := range 16 {
		w[i] = bytesToWord(block[i*4:])
	}

	for i := 16; i < scheduleLen; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}

	return w
}
