package sha2_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/sha2sum/sha2"
)

func TestPad_empty_message_is_one_block(t *testing.T) {
	t.Parallel()

	got := sha2.PadForTest(nil)

	require.Len(t, got, 64)
	assert.Equal(t, byte(0x80), got[0])
	assert.Equal(t, make([]byte, 63), got[1:])
}

func TestPad_length_invariant(t *testing.T) {
	t.Parallel()

	for n := range 300 {
		msg := bytes.Repeat([]byte{0x61}, n)
		got := sha2.PadForTest(msg)

		// Smallest multiple of 64 that fits msg, the
		// marker byte and the 8-byte length.
		want := ((n + 9 + 63) / 64) * 64

		require.Len(t, got, want, "len %d", n)
		assert.Equal(t, msg, got[:n])
		assert.Equal(t, byte(0x80), got[n])
		assert.Equal(t, make([]byte, want-n-9), got[n+1:want-8])
		assert.Equal(
			t,
			uint64(n)*8,
			binary.BigEndian.Uint64(got[want-8:]),
		)
	}
}

func TestPad_boundary_lengths(t *testing.T) {
	t.Parallel()

	assert.Len(t, sha2.PadForTest(make([]byte, 55)), 64)
	assert.Len(t, sha2.PadForTest(make([]byte, 56)), 128)
	assert.Len(t, sha2.PadForTest(make([]byte, 64)), 128)
	assert.Len(t, sha2.PadForTest(make([]byte, 119)), 128)
	assert.Len(t, sha2.PadForTest(make([]byte, 120)), 192)
}

func TestPad_does_not_alias_input(t *testing.T) {
	t.Parallel()

	msg := make([]byte, 3, 64)
	copy(msg, "abc")

	got := sha2.PadForTest(msg)
	got[0] = 'x'

	assert.Equal(t, "abc", string(msg))
	assert.Equal(t, byte(0), msg[:4][3])
}

func TestWordCodec_roundtrip(t *testing.T) {
	t.Parallel()

	b := []byte{0xde, 0xad, 0xbe, 0xef}

	w := sha2.BytesToWordForTest(b)
	assert.Equal(t, uint32(0xdeadbeef), w)

	out := make([]byte, 4)
	sha2.WordToBytesForTest(out, w)
	assert.Equal(t, b, out)
}

func TestWordCodec_reads_only_first_four_bytes(t *testing.T) {
	t.Parallel()

	got := sha2.BytesToWordForTest(
		[]byte{0x00, 0x00, 0x01, 0x02, 0xff},
	)

	assert.Equal(t, uint32(0x0102), got)
}

func TestExpand_leading_words_are_block_words(t *testing.T) {
	t.Parallel()

	block := sha2.PadForTest([]byte("abc"))
	w := sha2.ExpandForTest(block)

	assert.Equal(t, uint32(0x61626380), w[0])

	for i := 1; i < 15; i++ {
		assert.Zero(t, w[i], "word %d", i)
	}

	assert.Equal(t, uint32(24), w[15])
	// W16 = W0 for "abc"; W17 = σ1(W15) = σ1(24).
	assert.Equal(t, uint32(0x61626380), w[16])
	assert.Equal(t, uint32(0x000f0000), w[17])
}

func TestInitialWords_distinct_per_variant(t *testing.T) {
	t.Parallel()

	w224, err := sha2.InitialWordsForTest(sha2.SHA224)
	require.NoError(t, err)

	w256, err := sha2.InitialWordsForTest(sha2.SHA256)
	require.NoError(t, err)

	assert.Equal(t, uint32(0xc1059ed8), w224[0])
	assert.Equal(t, uint32(0x6a09e667), w256[0])

	for i := range w224 {
		assert.NotEqual(t, w224[i], w256[i])
	}

	_, err = sha2.InitialWordsForTest(sha2.Variant(160))
	require.ErrorIs(t, err, sha2.ErrUnsupportedVariant)
}

func TestRotate_shifts_by_index(t *testing.T) {
	t.Parallel()

	in := [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}

	got := sha2.RotateForTest(in, 10, 20)

	assert.Equal(
		t,
		[8]uint32{30, 1, 2, 3, 14, 5, 6, 7},
		got,
	)
	assert.Equal(t, [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}, in)
}

func TestRotate_wraps_modulo_2_32(t *testing.T) {
	t.Parallel()

	in := [8]uint32{0, 0, 0, 0xffffffff, 0, 0, 0, 0}

	got := sha2.RotateForTest(in, 2, 0xffffffff)

	assert.Equal(t, uint32(1), got[0])
	assert.Equal(t, uint32(1), got[4])
}

func TestCompressBlock_single_block_digest(t *testing.T) {
	t.Parallel()

	block := sha2.PadForTest([]byte("abc"))
	require.Len(t, block, 64)

	got := sha2.CompressBlockForTest(sha2.SHA256, block)

	assert.Equal(
		t,
		[]byte(sha2.MustSum([]byte("abc"), sha2.SHA256)),
		got,
	)
}
