package sha2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/sha2sum/sha2"
)

func TestParseVariant_accepted_names(t *testing.T) {
	t.Parallel()

	tests := map[string]sha2.Variant{
		"224":     sha2.SHA224,
		"sha224":  sha2.SHA224,
		"SHA-224": sha2.SHA224,
		"256":     sha2.SHA256,
		" sha256": sha2.SHA256,
		"Sha-256": sha2.SHA256,
	}

	for in, want := range tests {
		got, err := sha2.ParseVariant(in)

		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseVariant_rejects_unknown(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"", "512", "sha1", "md5", "-224", "-256", "sha--256",
	} {
		_, err := sha2.ParseVariant(in)

		require.ErrorIs(t, err, sha2.ErrUnsupportedVariant, in)
		assert.Contains(t, err.Error(), "parsing variant")
	}
}

func TestVariant_Size_and_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 28, sha2.SHA224.Size())
	assert.Equal(t, 32, sha2.SHA256.Size())
	assert.Zero(t, sha2.Variant(384).Size())

	assert.Equal(t, "sha224", sha2.SHA224.String())
	assert.Equal(t, "sha256", sha2.SHA256.String())
	assert.Equal(t, "Variant(7)", sha2.Variant(7).String())

	assert.True(t, sha2.SHA256.Valid())
	assert.False(t, sha2.Variant(0).Valid())
}
