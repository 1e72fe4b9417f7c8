package sha2

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedVariant is returned when a digest is requested for a
// variant other than SHA224 or SHA256.
var ErrUnsupportedVariant = errors.New("unsupported variant")

// Variant selects the digest size and initial hash values.
type Variant int

const (
	// SHA224 produces a 28-byte digest.
	SHA224 Variant = 224
	// SHA256 produces a 32-byte digest.
	SHA256 Variant = 256
)

const (
	// Size224 is the SHA-224 digest length in bytes.
	Size224 = 28
	// Size256 is the SHA-256 digest length in bytes.
	Size256 = 32
	// BlockSize is the block length in bytes for both variants.
	BlockSize = 64
)

// Size returns the digest length of v in bytes, or 0 for an
// unsupported variant.
func (v Variant) Size() int {
	switch v {
	case SHA224:
		return Size224
	case SHA256:
		return Size256
	default:
		return 0
	}
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v.Size() != 0
}

func (v Variant) String() string {
	switch v {
	case SHA224:
		return "sha224"
	case SHA256:
		return "sha256"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant parses names like "256", "sha256" or "SHA-224".
func ParseVariant(s string) (Variant, error) {
	const errCtx = "parsing variant"

	name := strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(name, "sha"); ok {
		name = strings.TrimPrefix(rest, "-")
	}

	switch name {
	case "224":
		return SHA224, nil
	case "256":
		return SHA256, nil
	default:
		return 0, fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnsupportedVariant, s,
		)
	}
}
